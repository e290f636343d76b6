package queries

import (
	"context"
	"fmt"

	"github.com/everoutes/eve-routes-go/internal/application/common"
	"github.com/everoutes/eve-routes-go/internal/application/trading/services"
	"github.com/everoutes/eve-routes-go/internal/application/trading/types"
)

// FindTradeOpportunitiesQuery requests a trade route analysis between two
// hubs. Negative numeric values select the handler's configured defaults;
// zero is honored as given.
type FindTradeOpportunitiesQuery struct {
	FromStation string  // Origin hub name (e.g. "jita")
	ToStation   string  // Destination hub name (e.g. "dodixie")
	MaxCargo    float64 // Cargo capacity in m³
	MinProfit   float64 // Minimum total profit in ISK
	Limit       int     // Maximum opportunities to return
}

// FindTradeOpportunitiesResponse contains the analysis results
type FindTradeOpportunitiesResponse struct {
	Opportunities []*types.OpportunityDTO
	TotalFound    int
	FromStation   string
	ToStation     string
}

// FindTradeOpportunitiesHandler handles trade opportunity queries
type FindTradeOpportunitiesHandler struct {
	finder           *services.OpportunityFinder
	defaultMaxCargo  float64
	defaultMinProfit float64
	defaultLimit     int
}

// NewFindTradeOpportunitiesHandler creates a new handler. The defaults are
// applied when a query omits the corresponding parameter.
func NewFindTradeOpportunitiesHandler(
	finder *services.OpportunityFinder,
	defaultMaxCargo float64,
	defaultMinProfit float64,
	defaultLimit int,
) *FindTradeOpportunitiesHandler {
	return &FindTradeOpportunitiesHandler{
		finder:           finder,
		defaultMaxCargo:  defaultMaxCargo,
		defaultMinProfit: defaultMinProfit,
		defaultLimit:     defaultLimit,
	}
}

// Handle executes the query
func (h *FindTradeOpportunitiesHandler) Handle(
	ctx context.Context,
	request common.Request,
) (common.Response, error) {
	query, ok := request.(*FindTradeOpportunitiesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	// Negative values mean "not set". Zero is a legitimate request: a
	// min_profit of 0 disables the total-profit floor entirely.
	maxCargo := query.MaxCargo
	if maxCargo < 0 {
		maxCargo = h.defaultMaxCargo
	}

	minProfit := query.MinProfit
	if minProfit < 0 {
		minProfit = h.defaultMinProfit
	}

	limit := query.Limit
	if limit < 0 {
		limit = h.defaultLimit
	}

	opportunities, err := h.finder.FindOpportunities(
		ctx,
		query.FromStation,
		query.ToStation,
		maxCargo,
		minProfit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find opportunities: %w", err)
	}

	totalFound := len(opportunities)

	// Presentation limiting happens here, not in the engine.
	if len(opportunities) > limit {
		opportunities = opportunities[:limit]
	}

	return &FindTradeOpportunitiesResponse{
		Opportunities: types.OpportunitiesToDTOs(opportunities),
		TotalFound:    totalFound,
		FromStation:   query.FromStation,
		ToStation:     query.ToStation,
	}, nil
}
