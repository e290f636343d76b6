package market

import "context"

// OrderFetcher retrieves the full paginated order book for a region and
// side. Implementations return whatever pages were accumulated before a
// transport failure; partial data is acceptable and must not be an error.
type OrderFetcher interface {
	RegionOrders(ctx context.Context, regionID int64, side OrderSide) ([]Order, error)
}
