package types

import "github.com/everoutes/eve-routes-go/internal/domain/trading"

// OpportunityDTO is a data transfer object for trade opportunities. JSON
// field names match the public API contract.
type OpportunityDTO struct {
	ItemID           int64   `json:"item_id"`
	ItemName         string  `json:"item_name"`
	BuyPrice         float64 `json:"buy_price"`
	SellPrice        float64 `json:"sell_price"`
	ProfitPerUnit    float64 `json:"profit_per_unit"`
	ProfitMargin     float64 `json:"profit_margin"`
	Volume           float64 `json:"volume"`
	MaxUnits         int64   `json:"max_units"`
	MaxUnitsByCargo  int64   `json:"max_units_by_cargo"`
	MaxUnitsByOrders int64   `json:"max_units_by_orders"`
	TotalWeight      float64 `json:"total_weight"`
	TotalProfit      float64 `json:"total_profit"`
	Investment       float64 `json:"investment"`
}

// OpportunityToDTO converts a domain opportunity to its transfer shape.
// Total cargo weight is derived here, at the presentation boundary, rather
// than by the engine.
func OpportunityToDTO(opp *trading.TradeOpportunity) *OpportunityDTO {
	maxUnits := opp.MaxUnits()
	return &OpportunityDTO{
		ItemID:           opp.ItemID(),
		ItemName:         opp.ItemName(),
		BuyPrice:         opp.BuyPrice(),
		SellPrice:        opp.SellPrice(),
		ProfitPerUnit:    opp.ProfitPerUnit(),
		ProfitMargin:     opp.ProfitMargin(),
		Volume:           opp.UnitVolume(),
		MaxUnits:         maxUnits,
		MaxUnitsByCargo:  opp.MaxUnitsByCargo(),
		MaxUnitsByOrders: opp.MaxUnitsByOrders(),
		TotalWeight:      float64(maxUnits) * opp.UnitVolume(),
		TotalProfit:      opp.TotalProfitPotential(),
		Investment:       opp.ISKInvestment(),
	}
}

// OpportunitiesToDTOs converts a ranked opportunity list.
func OpportunitiesToDTOs(opps []*trading.TradeOpportunity) []*OpportunityDTO {
	dtos := make([]*OpportunityDTO, len(opps))
	for i, opp := range opps {
		dtos[i] = OpportunityToDTO(opp)
	}
	return dtos
}
