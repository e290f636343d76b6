package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everoutes/eve-routes-go/internal/domain/market"
)

func TestFilterByStation(t *testing.T) {
	orders := []market.Order{
		{OrderID: 1, TypeID: 34, LocationID: 60003760, Price: 5.0, VolumeRemain: 100},
		{OrderID: 2, TypeID: 34, LocationID: 60011866, Price: 6.0, VolumeRemain: 50},
		{OrderID: 3, TypeID: 35, LocationID: 60003760, Price: 11.0, VolumeRemain: 20},
	}

	filtered := market.FilterByStation(orders, 60003760)

	require.Len(t, filtered, 2)
	assert.Equal(t, int64(1), filtered[0].OrderID)
	assert.Equal(t, int64(3), filtered[1].OrderID)
}

func TestFilterByStation_EmptyInput(t *testing.T) {
	filtered := market.FilterByStation(nil, 60003760)

	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestFilterByStation_NoMatches(t *testing.T) {
	orders := []market.Order{
		{OrderID: 1, TypeID: 34, LocationID: 60011866},
	}

	assert.Empty(t, market.FilterByStation(orders, 60003760))
}

func TestOrderIndex_BestAsk(t *testing.T) {
	idx := market.IndexByType([]market.Order{
		{OrderID: 1, TypeID: 34, Price: 5.0, VolumeRemain: 100},
		{OrderID: 2, TypeID: 34, Price: 4.5, VolumeRemain: 30},
		{OrderID: 3, TypeID: 34, Price: 6.0, VolumeRemain: 200},
	})

	best, ok := idx.BestAsk(34)
	require.True(t, ok)
	assert.Equal(t, int64(2), best.OrderID)
	assert.Equal(t, 4.5, best.Price)
}

func TestOrderIndex_BestBid(t *testing.T) {
	idx := market.IndexByType([]market.Order{
		{OrderID: 1, TypeID: 34, Price: 5.0, VolumeRemain: 100},
		{OrderID: 2, TypeID: 34, Price: 7.5, VolumeRemain: 30},
	})

	best, ok := idx.BestBid(34)
	require.True(t, ok)
	assert.Equal(t, int64(2), best.OrderID)
	assert.Equal(t, 7.5, best.Price)
}

func TestOrderIndex_MissingType(t *testing.T) {
	idx := market.IndexByType(nil)

	_, ok := idx.BestAsk(34)
	assert.False(t, ok)
	_, ok = idx.BestBid(34)
	assert.False(t, ok)
	assert.False(t, idx.Has(34))
	assert.Zero(t, idx.Len())
}

func TestOrderIndex_Intersect(t *testing.T) {
	sells := market.IndexByType([]market.Order{
		{TypeID: 34}, {TypeID: 35}, {TypeID: 36},
	})
	buys := market.IndexByType([]market.Order{
		{TypeID: 35}, {TypeID: 36}, {TypeID: 37},
	})

	common := sells.Intersect(buys)

	assert.ElementsMatch(t, []int64{35, 36}, common)
}
