package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/everoutes/eve-routes-go/internal/domain/catalog"
	"github.com/everoutes/eve-routes-go/internal/domain/market"
	"github.com/everoutes/eve-routes-go/internal/domain/shared"
	"github.com/everoutes/eve-routes-go/internal/domain/trading"
)

// OpportunityFinder orchestrates order-book retrieval, cross-station
// matching and opportunity construction. This is an application service
// that coordinates infrastructure (order fetcher, catalog resolver) with
// domain logic (analyzer).
type OpportunityFinder struct {
	fetcher  market.OrderFetcher
	resolver catalog.BatchResolver
	analyzer *trading.Analyzer
	logger   *zap.Logger
}

// NewOpportunityFinder creates a new opportunity finder service
func NewOpportunityFinder(
	fetcher market.OrderFetcher,
	resolver catalog.BatchResolver,
	analyzer *trading.Analyzer,
	logger *zap.Logger,
) *OpportunityFinder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpportunityFinder{
		fetcher:  fetcher,
		resolver: resolver,
		analyzer: analyzer,
		logger:   logger,
	}
}

// FindOpportunities locates profitable hauls from one trade hub to another.
//
// Algorithm:
//  1. Resolve both hub names to region/station ids
//  2. Fetch sell-side orders at the origin region, buy-side at the destination
//  3. Filter each book to the exact hub station
//  4. Index both books by item type and intersect the type sets
//  5. Screen each common item on best-ask vs best-bid per-unit profit
//  6. Batch-resolve catalog metadata for surviving candidates only
//  7. Compute capacity-constrained totals, filter by minProfit
//  8. Sort by total profit potential, descending
//
// Catalog resolution costs one upstream call per item, so screening runs
// before resolution and only survivors are resolved.
//
// Unknown hub names are the only fatal error. Empty books (total upstream
// unavailability included) yield an empty result, and per-item failures are
// logged and skipped: one bad record never aborts the analysis.
func (f *OpportunityFinder) FindOpportunities(
	ctx context.Context,
	fromStation string,
	toStation string,
	maxCargo float64,
	minProfit float64,
) ([]*trading.TradeOpportunity, error) {
	if maxCargo <= 0 {
		return nil, trading.ErrInvalidCargoCapacity
	}

	from, err := shared.ResolveHub(fromStation)
	if err != nil {
		return nil, fmt.Errorf("invalid origin: %w", err)
	}
	to, err := shared.ResolveHub(toStation)
	if err != nil {
		return nil, fmt.Errorf("invalid destination: %w", err)
	}

	f.logger.Info("starting trade analysis",
		zap.String("from", from.Name),
		zap.String("to", to.Name),
		zap.Float64("max_cargo", maxCargo),
		zap.Float64("min_profit", minProfit))

	sellOrders, err := f.fetcher.RegionOrders(ctx, from.RegionID, market.SideSell)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sell orders: %w", err)
	}
	buyOrders, err := f.fetcher.RegionOrders(ctx, to.RegionID, market.SideBuy)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch buy orders: %w", err)
	}

	originBook := market.FilterByStation(sellOrders, from.StationID)
	destBook := market.FilterByStation(buyOrders, to.StationID)

	f.logger.Info("filtered order books",
		zap.Int("origin_sell_orders", len(originBook)),
		zap.Int("destination_buy_orders", len(destBook)))

	sellIndex := market.IndexByType(originBook)
	buyIndex := market.IndexByType(destBook)
	commonTypes := sellIndex.Intersect(buyIndex)

	// Deterministic iteration keeps repeated runs over an identical
	// snapshot emitting an identical ordered result.
	sort.Slice(commonTypes, func(i, j int) bool { return commonTypes[i] < commonTypes[j] })

	f.logger.Info("matched items across stations", zap.Int("common_items", len(commonTypes)))

	// Stage one: cheap per-unit screen before any catalog lookups.
	candidates := make([]trading.CandidateMatch, 0, len(commonTypes))
	for _, typeID := range commonTypes {
		bestAsk, okAsk := sellIndex.BestAsk(typeID)
		bestBid, okBid := buyIndex.BestBid(typeID)
		if !okAsk || !okBid {
			continue
		}

		candidate, err := f.analyzer.ScreenCandidate(typeID, bestAsk, bestBid)
		if err != nil {
			// Unprofitable or malformed; skip without aborting the pass.
			f.logger.Debug("candidate dropped", zap.Int64("type_id", typeID), zap.Error(err))
			continue
		}
		candidates = append(candidates, *candidate)
	}

	f.logger.Info("screened candidates", zap.Int("survivors", len(candidates)))

	if len(candidates) == 0 {
		return []*trading.TradeOpportunity{}, nil
	}

	// Stage two: resolve metadata for survivors only.
	typeIDs := make([]int64, len(candidates))
	for i, c := range candidates {
		typeIDs[i] = c.TypeID
	}
	typesInfo := f.resolver.ResolveBatch(ctx, typeIDs)

	opportunities := make([]*trading.TradeOpportunity, 0, len(candidates))
	for _, candidate := range candidates {
		info, ok := typesInfo[candidate.TypeID]
		if !ok {
			// Resolution failed upstream; drop this item, keep the rest.
			continue
		}

		opp, err := f.analyzer.BuildOpportunity(candidate, info.Name, info.Volume, maxCargo)
		if err != nil {
			f.logger.Debug("opportunity rejected",
				zap.Int64("type_id", candidate.TypeID),
				zap.Error(err))
			continue
		}

		if opp.TotalProfitPotential() >= minProfit {
			opportunities = append(opportunities, opp)
		}
	}

	// Stable sort preserves input order on equal profit, keeping results
	// deterministic for identical snapshots.
	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].TotalProfitPotential() > opportunities[j].TotalProfitPotential()
	})

	f.logger.Info("trade analysis complete", zap.Int("opportunities", len(opportunities)))

	return opportunities, nil
}
