package market

// OrderIndex groups a station's orders by item type so the engine can
// intersect item sets and pick best prices without rescanning the full book.
type OrderIndex struct {
	byType map[int64][]Order
}

// IndexByType builds an OrderIndex from a flat order list.
func IndexByType(orders []Order) *OrderIndex {
	byType := make(map[int64][]Order)
	for _, order := range orders {
		byType[order.TypeID] = append(byType[order.TypeID], order)
	}
	return &OrderIndex{byType: byType}
}

// TypeIDs returns the item types present in the index.
func (idx *OrderIndex) TypeIDs() []int64 {
	ids := make([]int64, 0, len(idx.byType))
	for id := range idx.byType {
		ids = append(ids, id)
	}
	return ids
}

// Has reports whether any orders exist for the given type.
func (idx *OrderIndex) Has(typeID int64) bool {
	_, ok := idx.byType[typeID]
	return ok
}

// Len returns the number of distinct item types in the index.
func (idx *OrderIndex) Len() int {
	return len(idx.byType)
}

// BestAsk returns the lowest-priced order for the given type. This is the
// acquisition price when buying from the sell side of the book.
func (idx *OrderIndex) BestAsk(typeID int64) (Order, bool) {
	orders, ok := idx.byType[typeID]
	if !ok || len(orders) == 0 {
		return Order{}, false
	}
	best := orders[0]
	for _, order := range orders[1:] {
		if order.Price < best.Price {
			best = order
		}
	}
	return best, true
}

// BestBid returns the highest-priced order for the given type. This is the
// disposal price when selling into the buy side of the book.
func (idx *OrderIndex) BestBid(typeID int64) (Order, bool) {
	orders, ok := idx.byType[typeID]
	if !ok || len(orders) == 0 {
		return Order{}, false
	}
	best := orders[0]
	for _, order := range orders[1:] {
		if order.Price > best.Price {
			best = order
		}
	}
	return best, true
}

// Intersect returns the type ids present in both indexes. Only items
// tradable on both sides of a route are candidates for matching.
func (idx *OrderIndex) Intersect(other *OrderIndex) []int64 {
	common := make([]int64, 0)
	for id := range idx.byType {
		if other.Has(id) {
			common = append(common, id)
		}
	}
	return common
}
