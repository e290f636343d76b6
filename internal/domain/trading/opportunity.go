package trading

import (
	"fmt"
	"math"
)

// TradeOpportunity represents an immutable profitable haul between two
// stations: buy at the origin's lowest ask, haul, sell into the
// destination's highest bid.
//
// Price terminology (from the hauler's perspective):
//   - BuyPrice: what we PAY at the origin (the sell-side ask)
//   - SellPrice: what we RECEIVE at the destination (the buy-side bid)
//
// Immutability: all fields are private with read-only getters to preserve
// value object semantics.
type TradeOpportunity struct {
	itemID               int64
	itemName             string
	buyPrice             float64
	sellPrice            float64
	profitPerUnit        float64 // sellPrice - buyPrice
	profitMargin         float64 // (profitPerUnit / buyPrice) × 100
	unitVolume           float64 // m³ per unit
	maxUnitsByCargo      int64   // floor(maxCargo / unitVolume)
	maxUnitsByOrders     int64   // min(origin ask volume, destination bid volume)
	totalProfitPotential float64 // profitPerUnit × maxUnits
	iskInvestment        float64 // buyPrice × maxUnits
}

// NewTradeOpportunity builds a TradeOpportunity from a screened candidate
// plus its catalog unit volume and the hauler's cargo capacity. All derived
// values are computed during construction.
//
// Returns an error if:
//   - maxCargo is non-positive
//   - unitVolume is non-positive (capacity cannot be computed)
//   - sellPrice does not exceed buyPrice
//   - neither cargo space nor order liquidity allows a single unit
func NewTradeOpportunity(
	candidate CandidateMatch,
	itemName string,
	unitVolume float64,
	maxCargo float64,
) (*TradeOpportunity, error) {
	if maxCargo <= 0 {
		return nil, ErrInvalidCargoCapacity
	}
	if unitVolume <= 0 {
		return nil, fmt.Errorf("%w: type %d", ErrNoUnitVolume, candidate.TypeID)
	}
	if candidate.SellPrice <= candidate.BuyPrice {
		return nil, fmt.Errorf("%w: type %d (%.2f <= %.2f)",
			ErrNoProfit, candidate.TypeID, candidate.SellPrice, candidate.BuyPrice)
	}

	profitPerUnit := candidate.SellPrice - candidate.BuyPrice
	profitMargin := (profitPerUnit / candidate.BuyPrice) * 100.0

	maxUnitsByCargo := int64(math.Floor(maxCargo / unitVolume))
	maxUnitsByOrders := candidate.BestSellVolume
	if candidate.BestBuyVolume < maxUnitsByOrders {
		maxUnitsByOrders = candidate.BestBuyVolume
	}

	maxUnits := maxUnitsByCargo
	if maxUnitsByOrders < maxUnits {
		maxUnits = maxUnitsByOrders
	}
	if maxUnits <= 0 {
		return nil, fmt.Errorf("%w: type %d", ErrNoCapacity, candidate.TypeID)
	}

	return &TradeOpportunity{
		itemID:               candidate.TypeID,
		itemName:             itemName,
		buyPrice:             candidate.BuyPrice,
		sellPrice:            candidate.SellPrice,
		profitPerUnit:        profitPerUnit,
		profitMargin:         profitMargin,
		unitVolume:           unitVolume,
		maxUnitsByCargo:      maxUnitsByCargo,
		maxUnitsByOrders:     maxUnitsByOrders,
		totalProfitPotential: profitPerUnit * float64(maxUnits),
		iskInvestment:        candidate.BuyPrice * float64(maxUnits),
	}, nil
}

// Getters - read-only access to maintain immutability

func (o *TradeOpportunity) ItemID() int64 {
	return o.itemID
}

func (o *TradeOpportunity) ItemName() string {
	return o.itemName
}

func (o *TradeOpportunity) BuyPrice() float64 {
	return o.buyPrice
}

func (o *TradeOpportunity) SellPrice() float64 {
	return o.sellPrice
}

func (o *TradeOpportunity) ProfitPerUnit() float64 {
	return o.profitPerUnit
}

func (o *TradeOpportunity) ProfitMargin() float64 {
	return o.profitMargin
}

func (o *TradeOpportunity) UnitVolume() float64 {
	return o.unitVolume
}

func (o *TradeOpportunity) MaxUnitsByCargo() int64 {
	return o.maxUnitsByCargo
}

func (o *TradeOpportunity) MaxUnitsByOrders() int64 {
	return o.maxUnitsByOrders
}

// MaxUnits is the number of units actually movable in one trip: the smaller
// of the cargo and order-liquidity constraints.
func (o *TradeOpportunity) MaxUnits() int64 {
	if o.maxUnitsByCargo < o.maxUnitsByOrders {
		return o.maxUnitsByCargo
	}
	return o.maxUnitsByOrders
}

func (o *TradeOpportunity) TotalProfitPotential() float64 {
	return o.totalProfitPotential
}

func (o *TradeOpportunity) ISKInvestment() float64 {
	return o.iskInvestment
}

// String returns a human-readable representation
func (o *TradeOpportunity) String() string {
	return fmt.Sprintf("TradeOpportunity{item=%s, margin=%.1f%%, units=%d, profit=%.0f}",
		o.itemName, o.profitMargin, o.MaxUnits(), o.totalProfitPotential)
}
