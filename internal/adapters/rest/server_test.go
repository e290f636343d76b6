package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everoutes/eve-routes-go/internal/application/common"
	"github.com/everoutes/eve-routes-go/internal/application/trading/queries"
	"github.com/everoutes/eve-routes-go/internal/application/trading/types"
	"github.com/everoutes/eve-routes-go/internal/infrastructure/config"
)

// stubMediator returns a canned response for every request, or fails.
type stubMediator struct {
	response common.Response
	err      error
	lastSent common.Request
}

func (m *stubMediator) Register(reflect.Type, common.RequestHandler) error { return nil }

func (m *stubMediator) Send(_ context.Context, request common.Request) (common.Response, error) {
	m.lastSent = request
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Addr:               ":0",
		RateLimitPerMinute: 1000,
		CORSAllowedOrigins: []string{"*"},
	}
}

func testTradingConfig() config.TradingConfig {
	return config.TradingConfig{
		DefaultMaxCargo:  33500,
		DefaultMinProfit: 100000,
		ResultLimit:      35,
	}
}

func newTestServer(m common.Mediator) *Server {
	return NewServer(testServerConfig(), testTradingConfig(), m, nil, nil)
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "203.0.113.7:41000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleOpportunities_Success(t *testing.T) {
	mediator := &stubMediator{
		response: &queries.FindTradeOpportunitiesResponse{
			Opportunities: []*types.OpportunityDTO{
				{
					ItemID:        34,
					ItemName:      "Tritanium",
					BuyPrice:      4.5,
					SellPrice:     5.2,
					ProfitPerUnit: 0.7,
					TotalProfit:   700000,
				},
			},
			TotalFound:  1,
			FromStation: "jita",
			ToStation:   "dodixie",
		},
	}
	handler := newTestServer(mediator).Handler()

	rec := get(t, handler, "/api/opportunities?from=jita&to=dodixie")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	opportunities := body["opportunities"].([]interface{})
	require.Len(t, opportunities, 1)

	first := opportunities[0].(map[string]interface{})
	assert.Equal(t, "Tritanium", first["item_name"])
	assert.Equal(t, float64(700000), first["total_profit"])

	metadata := body["metadata"].(map[string]interface{})
	assert.Equal(t, "jita", metadata["from_station"])
	assert.Equal(t, "dodixie", metadata["to_station"])
	assert.Equal(t, float64(1), metadata["total_found"])
	assert.Equal(t, float64(1), metadata["showing"])
	assert.Equal(t, false, metadata["cached"])
	assert.NotEmpty(t, metadata["timestamp"])
}

func TestHandleOpportunities_AppliesDefaults(t *testing.T) {
	mediator := &stubMediator{
		response: &queries.FindTradeOpportunitiesResponse{
			Opportunities: []*types.OpportunityDTO{},
		},
	}
	handler := newTestServer(mediator).Handler()

	rec := get(t, handler, "/api/opportunities")
	require.Equal(t, http.StatusOK, rec.Code)

	query, ok := mediator.lastSent.(*queries.FindTradeOpportunitiesQuery)
	require.True(t, ok)
	assert.Equal(t, "jita", query.FromStation)
	assert.Equal(t, "dodixie", query.ToStation)
	assert.Equal(t, 33500.0, query.MaxCargo)
	assert.Equal(t, 100000.0, query.MinProfit)
	assert.Equal(t, 35, query.Limit)
}

func TestHandleOpportunities_ExplicitZeroMinProfitPreserved(t *testing.T) {
	mediator := &stubMediator{
		response: &queries.FindTradeOpportunitiesResponse{
			Opportunities: []*types.OpportunityDTO{},
		},
	}
	handler := newTestServer(mediator).Handler()

	rec := get(t, handler, "/api/opportunities?from=jita&to=dodixie&min_profit=0")
	require.Equal(t, http.StatusOK, rec.Code)

	query, ok := mediator.lastSent.(*queries.FindTradeOpportunitiesQuery)
	require.True(t, ok)
	assert.Equal(t, 0.0, query.MinProfit)
}

func TestHandleOpportunities_ParameterValidation(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		message string
	}{
		{
			name:    "unknown from station",
			target:  "/api/opportunities?from=perimeter&to=dodixie",
			message: "unknown from station",
		},
		{
			name:    "unknown to station",
			target:  "/api/opportunities?from=jita&to=nowhere",
			message: "unknown to station",
		},
		{
			name:    "same station twice",
			target:  "/api/opportunities?from=jita&to=jita",
			message: "must differ",
		},
		{
			name:    "non-numeric cargo",
			target:  "/api/opportunities?max_cargo=huge",
			message: "max_cargo must be a number",
		},
		{
			name:    "cargo above ceiling",
			target:  "/api/opportunities?max_cargo=2000000",
			message: "max_cargo must be between",
		},
		{
			name:    "zero cargo",
			target:  "/api/opportunities?max_cargo=0",
			message: "max_cargo must be between",
		},
		{
			name:    "negative min profit",
			target:  "/api/opportunities?min_profit=-5",
			message: "min_profit must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestServer(&stubMediator{}).Handler()
			rec := get(t, handler, tt.target)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeBody(t, rec)["error"], tt.message)
		})
	}
}

func TestHandleOpportunities_QueryFailure(t *testing.T) {
	mediator := &stubMediator{err: fmt.Errorf("upstream unavailable")}
	handler := newTestServer(mediator).Handler()

	rec := get(t, handler, "/api/opportunities?from=jita&to=amarr")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "Failed to analyze")
}

func TestHandleHealth(t *testing.T) {
	handler := newTestServer(&stubMediator{}).Handler()

	rec := get(t, handler, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "unavailable", body["redis"])
}

func TestHandleStations(t *testing.T) {
	handler := newTestServer(&stubMediator{}).Handler()

	rec := get(t, handler, "/api/stations")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	stations := body["stations"].([]interface{})
	assert.Contains(t, stations, "jita")
	assert.Contains(t, stations, "hek")
}

func TestCacheEndpoints_UnavailableWithoutRedis(t *testing.T) {
	handler := newTestServer(&stubMediator{}).Handler()

	for _, target := range []string{"/api/cache/stats", "/api/cache/clear"} {
		rec := get(t, handler, target)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
	}
}

func TestUnknownEndpoint(t *testing.T) {
	handler := newTestServer(&stubMediator{}).Handler()

	rec := get(t, handler, "/api/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "not found")
}

func TestRateLimit_RejectsAboveBudget(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimitPerMinute = 2
	server := NewServer(cfg, testTradingConfig(), &stubMediator{}, nil, nil)
	handler := server.Handler()

	assert.Equal(t, http.StatusOK, get(t, handler, "/health").Code)
	assert.Equal(t, http.StatusOK, get(t, handler, "/health").Code)

	rec := get(t, handler, "/health")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRequestIDHeader(t *testing.T) {
	handler := newTestServer(&stubMediator{}).Handler()

	rec := get(t, handler, "/health")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
