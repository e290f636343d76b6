package trading

import (
	"fmt"

	"github.com/everoutes/eve-routes-go/internal/domain/market"
)

// MinProfitPerUnit is the fixed per-unit profit floor applied during the
// cheap screening stage, in ISK. Items under the floor are dropped before
// any catalog lookup is spent on them.
const MinProfitPerUnit = 10000.0

// Analyzer provides pure business logic for screening cross-station order
// pairs and building trade opportunities.
//
// This is a domain service with no infrastructure dependencies. All methods
// are stateless and deterministic.
type Analyzer struct{}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// ScreenCandidate applies the first-stage profitability screen to the best
// orders on each side of a route: the origin's lowest ask (acquisition) and
// the destination's highest bid (disposal).
//
// Returns a CandidateMatch when disposal exceeds acquisition by at least
// MinProfitPerUnit; otherwise an error describing why the item was dropped.
// Items failing either check get no partial credit.
func (a *Analyzer) ScreenCandidate(typeID int64, bestAsk, bestBid market.Order) (*CandidateMatch, error) {
	buyPrice := bestAsk.Price
	sellPrice := bestBid.Price

	if sellPrice <= buyPrice {
		return nil, fmt.Errorf("%w: type %d (%.2f <= %.2f)", ErrNoProfit, typeID, sellPrice, buyPrice)
	}

	profitPerUnit := sellPrice - buyPrice
	if profitPerUnit < MinProfitPerUnit {
		return nil, fmt.Errorf("%w: type %d (%.2f < %.0f)",
			ErrBelowProfitFloor, typeID, profitPerUnit, MinProfitPerUnit)
	}

	return &CandidateMatch{
		TypeID:         typeID,
		BuyPrice:       buyPrice,
		SellPrice:      sellPrice,
		ProfitPerUnit:  profitPerUnit,
		BestSellVolume: bestAsk.VolumeRemain,
		BestBuyVolume:  bestBid.VolumeRemain,
	}, nil
}

// BuildOpportunity runs the second-stage calculation for a screened
// candidate once its catalog metadata is known. The unit volume constrains
// cargo capacity; order liquidity constrains the rest.
func (a *Analyzer) BuildOpportunity(
	candidate CandidateMatch,
	itemName string,
	unitVolume float64,
	maxCargo float64,
) (*TradeOpportunity, error) {
	return NewTradeOpportunity(candidate, itemName, unitVolume, maxCargo)
}
