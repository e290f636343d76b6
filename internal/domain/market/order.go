package market

// OrderSide selects which side of the order book to fetch.
type OrderSide string

const (
	// SideSell is the ask side: standing offers to sell an item.
	SideSell OrderSide = "sell"
	// SideBuy is the bid side: standing offers to buy an item.
	SideBuy OrderSide = "buy"
)

// Order is a single market order as reported by the upstream order-book
// endpoint. It is a read-only snapshot owned by the external market; this
// system holds orders only for the duration of one analysis pass.
type Order struct {
	OrderID      int64   `json:"order_id"`
	TypeID       int64   `json:"type_id"`
	LocationID   int64   `json:"location_id"`
	Price        float64 `json:"price"`
	VolumeRemain int64   `json:"volume_remain"`
	IsBuyOrder   bool    `json:"is_buy_order"`
}

// FilterByStation narrows a region-wide order set to orders located at one
// station. Pure filter: empty input yields empty output, never an error.
func FilterByStation(orders []Order, stationID int64) []Order {
	filtered := make([]Order, 0, len(orders))
	for _, order := range orders {
		if order.LocationID == stationID {
			filtered = append(filtered, order)
		}
	}
	return filtered
}
