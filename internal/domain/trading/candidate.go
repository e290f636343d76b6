package trading

// CandidateMatch is the transient record produced by the cheap per-unit
// screen and consumed by the final capacity calculation. It carries the
// best prices on each side of the route plus the remaining volume of the
// orders those prices came from; it is discarded once the corresponding
// TradeOpportunity (or rejection) is decided.
type CandidateMatch struct {
	TypeID         int64
	BuyPrice       float64 // lowest ask at the origin station (what we pay)
	SellPrice      float64 // highest bid at the destination station (what we receive)
	ProfitPerUnit  float64
	BestSellVolume int64 // volume_remain on the origin ask
	BestBuyVolume  int64 // volume_remain on the destination bid
}
