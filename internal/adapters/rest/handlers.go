package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/everoutes/eve-routes-go/internal/adapters/cache"
	"github.com/everoutes/eve-routes-go/internal/application/trading/queries"
	"github.com/everoutes/eve-routes-go/internal/application/trading/types"
	"github.com/everoutes/eve-routes-go/internal/domain/shared"
)

const maxCargoCeiling = 1_000_000

// opportunityParams carries the validated query string of /api/opportunities.
type opportunityParams struct {
	FromStation string  `validate:"required"`
	ToStation   string  `validate:"required,nefield=FromStation"`
	MaxCargo    float64 `validate:"gt=0,lte=1000000"`
	MinProfit   float64 `validate:"gte=0"`
	Limit       int     `validate:"gte=0"`
}

// responseMetadata describes a set of returned opportunities.
type responseMetadata struct {
	FromStation      string  `json:"from_station"`
	ToStation        string  `json:"to_station"`
	MaxCargo         float64 `json:"max_cargo"`
	MinProfit        float64 `json:"min_profit"`
	TotalFound       int     `json:"total_found"`
	Showing          int     `json:"showing"`
	QueryTimeSeconds float64 `json:"query_time_seconds"`
	Timestamp        string  `json:"timestamp"`
	Cached           bool    `json:"cached"`
}

type opportunitiesResponse struct {
	Opportunities []*types.OpportunityDTO `json:"opportunities"`
	Metadata      responseMetadata        `json:"metadata"`
}

func (s *Server) parseOpportunityParams(r *http.Request) (opportunityParams, error) {
	q := r.URL.Query()

	params := opportunityParams{
		FromStation: strings.ToLower(strings.TrimSpace(q.Get("from"))),
		ToStation:   strings.ToLower(strings.TrimSpace(q.Get("to"))),
		MaxCargo:    s.trading.DefaultMaxCargo,
		MinProfit:   s.trading.DefaultMinProfit,
		Limit:       s.trading.ResultLimit,
	}
	if params.FromStation == "" {
		params.FromStation = "jita"
	}
	if params.ToStation == "" {
		params.ToStation = "dodixie"
	}

	if raw := q.Get("max_cargo"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, fmt.Errorf("max_cargo must be a number")
		}
		params.MaxCargo = v
	}
	if raw := q.Get("min_profit"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, fmt.Errorf("min_profit must be a number")
		}
		params.MinProfit = v
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf("limit must be an integer")
		}
		params.Limit = v
	}

	if !shared.IsKnownHub(params.FromStation) {
		return params, fmt.Errorf("unknown from station %q, valid stations: %s",
			params.FromStation, strings.Join(shared.HubNames(), ", "))
	}
	if !shared.IsKnownHub(params.ToStation) {
		return params, fmt.Errorf("unknown to station %q, valid stations: %s",
			params.ToStation, strings.Join(shared.HubNames(), ", "))
	}
	if err := s.validate.Struct(params); err != nil {
		return params, formatParamError(err)
	}
	return params, nil
}

// formatParamError turns a validation failure into a client-facing message.
func formatParamError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	switch verrs[0].Field() {
	case "ToStation":
		return fmt.Errorf("from and to stations must differ")
	case "MaxCargo":
		return fmt.Errorf("max_cargo must be between 1 and %d m³", maxCargoCeiling)
	case "MinProfit":
		return fmt.Errorf("min_profit must not be negative")
	case "Limit":
		return fmt.Errorf("limit must not be negative")
	default:
		return fmt.Errorf("invalid parameter %s", verrs[0].Field())
	}
}

func (s *Server) handleOpportunities(w http.ResponseWriter, r *http.Request) {
	params, err := s.parseOpportunityParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cacheKey := cache.Key(
		params.FromStation,
		params.ToStation,
		int64(params.MaxCargo),
		int64(params.MinProfit),
	)

	if payload, ok := s.cache.Get(r.Context(), cacheKey); ok {
		if served := serveCached(w, payload); served {
			return
		}
		s.logger.Warn("discarding malformed cache entry", zap.String("key", cacheKey))
	}

	start := time.Now()
	response, err := s.mediator.Send(r.Context(), &queries.FindTradeOpportunitiesQuery{
		FromStation: params.FromStation,
		ToStation:   params.ToStation,
		MaxCargo:    params.MaxCargo,
		MinProfit:   params.MinProfit,
		Limit:       params.Limit,
	})
	if err != nil {
		if errors.Is(err, shared.ErrUnknownStation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("opportunity query failed",
			zap.String("from", params.FromStation),
			zap.String("to", params.ToStation),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "Failed to analyze trade route")
		return
	}

	result, ok := response.(*queries.FindTradeOpportunitiesResponse)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Unexpected response type")
		return
	}

	body := opportunitiesResponse{
		Opportunities: result.Opportunities,
		Metadata: responseMetadata{
			FromStation:      params.FromStation,
			ToStation:        params.ToStation,
			MaxCargo:         params.MaxCargo,
			MinProfit:        params.MinProfit,
			TotalFound:       result.TotalFound,
			Showing:          len(result.Opportunities),
			QueryTimeSeconds: time.Since(start).Seconds(),
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
			Cached:           false,
		},
	}

	if encoded, err := json.Marshal(body); err == nil {
		s.cache.Set(r.Context(), cacheKey, string(encoded))
	}

	writeJSON(w, http.StatusOK, body)
}

// serveCached replays a stored response with its cached flag flipped.
func serveCached(w http.ResponseWriter, payload string) bool {
	var body opportunitiesResponse
	if err := json.Unmarshal([]byte(payload), &body); err != nil {
		return false
	}
	body.Metadata.Cached = true
	writeJSON(w, http.StatusOK, body)
	return true
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stations": shared.HubNames(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	redisStatus := "unavailable"
	if s.cache.Available() {
		redisStatus = "connected"
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"redis":     redisStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	if !s.cache.Available() {
		writeError(w, http.StatusServiceUnavailable, "Cache not available")
		return
	}

	stats, err := s.cache.GetStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read cache stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	if !s.cache.Available() {
		writeError(w, http.StatusServiceUnavailable, "Cache not available")
		return
	}

	cleared, err := s.cache.Clear(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to clear cache")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":         "Cache cleared",
		"entries_removed": cleared,
	})
}
