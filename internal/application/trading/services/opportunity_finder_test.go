package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everoutes/eve-routes-go/internal/application/trading/services"
	"github.com/everoutes/eve-routes-go/internal/domain/catalog"
	"github.com/everoutes/eve-routes-go/internal/domain/market"
	"github.com/everoutes/eve-routes-go/internal/domain/shared"
	"github.com/everoutes/eve-routes-go/internal/domain/trading"
)

const (
	jitaStation    = int64(60003760)
	dodixieStation = int64(60011866)
)

// fakeFetcher serves a fixed order-book snapshot keyed by region and side.
type fakeFetcher struct {
	orders map[market.OrderSide]map[int64][]market.Order
}

func (f *fakeFetcher) RegionOrders(_ context.Context, regionID int64, side market.OrderSide) ([]market.Order, error) {
	return f.orders[side][regionID], nil
}

// fakeResolver resolves from a fixed catalog, omitting unknown ids.
type fakeResolver struct {
	infos map[int64]catalog.TypeInfo
}

func (r *fakeResolver) ResolveBatch(_ context.Context, typeIDs []int64) map[int64]catalog.TypeInfo {
	resolved := make(map[int64]catalog.TypeInfo)
	for _, id := range typeIDs {
		if info, ok := r.infos[id]; ok {
			resolved[id] = info
		}
	}
	return resolved
}

func newFinder(sellAtJita, buyAtDodixie []market.Order, infos map[int64]catalog.TypeInfo) *services.OpportunityFinder {
	jita, _ := shared.ResolveHub("jita")
	dodixie, _ := shared.ResolveHub("dodixie")

	fetcher := &fakeFetcher{orders: map[market.OrderSide]map[int64][]market.Order{
		market.SideSell: {jita.RegionID: sellAtJita},
		market.SideBuy:  {dodixie.RegionID: buyAtDodixie},
	}}
	return services.NewOpportunityFinder(fetcher, &fakeResolver{infos: infos}, trading.NewAnalyzer(), nil)
}

func TestFindOpportunities_ProfitBelowFloorYieldsNothing(t *testing.T) {
	finder := newFinder(
		[]market.Order{{TypeID: 1, LocationID: jitaStation, Price: 100, VolumeRemain: 50}},
		[]market.Order{{TypeID: 1, LocationID: dodixieStation, Price: 150, VolumeRemain: 40}},
		map[int64]catalog.TypeInfo{1: {TypeID: 1, Name: "Tritanium", Volume: 10}},
	)

	opps, err := finder.FindOpportunities(context.Background(), "jita", "dodixie", 1000, 1000)

	require.NoError(t, err)
	assert.Empty(t, opps, "50 ISK/unit is under the 10k screening floor")
}

func TestFindOpportunities_SingleProfitableItem(t *testing.T) {
	finder := newFinder(
		[]market.Order{{TypeID: 1, LocationID: jitaStation, Price: 100, VolumeRemain: 50}},
		[]market.Order{{TypeID: 1, LocationID: dodixieStation, Price: 20000, VolumeRemain: 40}},
		map[int64]catalog.TypeInfo{1: {TypeID: 1, Name: "Tritanium", Volume: 10}},
	)

	opps, err := finder.FindOpportunities(context.Background(), "jita", "dodixie", 1000, 1000)

	require.NoError(t, err)
	require.Len(t, opps, 1)
	opp := opps[0]
	assert.Equal(t, int64(1), opp.ItemID())
	assert.Equal(t, "Tritanium", opp.ItemName())
	assert.Equal(t, 19900.0, opp.ProfitPerUnit())
	assert.Equal(t, int64(100), opp.MaxUnitsByCargo())
	assert.Equal(t, int64(40), opp.MaxUnitsByOrders())
	assert.Equal(t, int64(40), opp.MaxUnits())
	assert.Equal(t, 796000.0, opp.TotalProfitPotential())
}

func TestFindOpportunities_SortedByTotalProfitDescending(t *testing.T) {
	finder := newFinder(
		[]market.Order{
			{TypeID: 1, LocationID: jitaStation, Price: 100, VolumeRemain: 10},
			{TypeID: 2, LocationID: jitaStation, Price: 100, VolumeRemain: 100},
			{TypeID: 3, LocationID: jitaStation, Price: 100, VolumeRemain: 50},
		},
		[]market.Order{
			{TypeID: 1, LocationID: dodixieStation, Price: 20100, VolumeRemain: 10},
			{TypeID: 2, LocationID: dodixieStation, Price: 20100, VolumeRemain: 100},
			{TypeID: 3, LocationID: dodixieStation, Price: 20100, VolumeRemain: 50},
		},
		map[int64]catalog.TypeInfo{
			1: {TypeID: 1, Name: "A", Volume: 1},
			2: {TypeID: 2, Name: "B", Volume: 1},
			3: {TypeID: 3, Name: "C", Volume: 1},
		},
	)

	opps, err := finder.FindOpportunities(context.Background(), "jita", "dodixie", 10000, 1)

	require.NoError(t, err)
	require.Len(t, opps, 3)
	for i := 1; i < len(opps); i++ {
		assert.GreaterOrEqual(t,
			opps[i-1].TotalProfitPotential(),
			opps[i].TotalProfitPotential(),
			"output must be non-increasing in total profit")
	}
	assert.Equal(t, "B", opps[0].ItemName())
	assert.Equal(t, "C", opps[1].ItemName())
	assert.Equal(t, "A", opps[2].ItemName())
}

func TestFindOpportunities_MinProfitFilter(t *testing.T) {
	finder := newFinder(
		[]market.Order{{TypeID: 1, LocationID: jitaStation, Price: 100, VolumeRemain: 40}},
		[]market.Order{{TypeID: 1, LocationID: dodixieStation, Price: 20000, VolumeRemain: 40}},
		map[int64]catalog.TypeInfo{1: {TypeID: 1, Name: "Tritanium", Volume: 10}},
	)

	// Total profit is 796,000; a higher floor excludes it.
	opps, err := finder.FindOpportunities(context.Background(), "jita", "dodixie", 1000, 800000)

	require.NoError(t, err)
	assert.Empty(t, opps)
}

func TestFindOpportunities_UnresolvedItemDroppedOthersKept(t *testing.T) {
	finder := newFinder(
		[]market.Order{
			{TypeID: 1, LocationID: jitaStation, Price: 100, VolumeRemain: 40},
			{TypeID: 2, LocationID: jitaStation, Price: 100, VolumeRemain: 40},
		},
		[]market.Order{
			{TypeID: 1, LocationID: dodixieStation, Price: 20000, VolumeRemain: 40},
			{TypeID: 2, LocationID: dodixieStation, Price: 20000, VolumeRemain: 40},
		},
		// Type 2 has no catalog entry: its resolution "failed" upstream.
		map[int64]catalog.TypeInfo{1: {TypeID: 1, Name: "Tritanium", Volume: 10}},
	)

	opps, err := finder.FindOpportunities(context.Background(), "jita", "dodixie", 1000, 1000)

	require.NoError(t, err)
	require.Len(t, opps, 1)
	assert.Equal(t, int64(1), opps[0].ItemID())
}

func TestFindOpportunities_OtherStationsFilteredOut(t *testing.T) {
	otherStation := int64(60000001)
	finder := newFinder(
		[]market.Order{{TypeID: 1, LocationID: otherStation, Price: 100, VolumeRemain: 40}},
		[]market.Order{{TypeID: 1, LocationID: dodixieStation, Price: 20000, VolumeRemain: 40}},
		map[int64]catalog.TypeInfo{1: {TypeID: 1, Name: "Tritanium", Volume: 10}},
	)

	opps, err := finder.FindOpportunities(context.Background(), "jita", "dodixie", 1000, 1)

	require.NoError(t, err)
	assert.Empty(t, opps, "orders elsewhere in the region are not tradable at the hub")
}

func TestFindOpportunities_EmptyUpstreamYieldsEmptyResult(t *testing.T) {
	finder := newFinder(nil, nil, nil)

	opps, err := finder.FindOpportunities(context.Background(), "jita", "dodixie", 1000, 1000)

	require.NoError(t, err, "total upstream unavailability is not an error")
	assert.Empty(t, opps)
}

func TestFindOpportunities_UnknownStation(t *testing.T) {
	finder := newFinder(nil, nil, nil)

	_, err := finder.FindOpportunities(context.Background(), "thera", "dodixie", 1000, 1000)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrUnknownStation)

	_, err = finder.FindOpportunities(context.Background(), "jita", "perimeter", 1000, 1000)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrUnknownStation)
}

func TestFindOpportunities_InvalidCargo(t *testing.T) {
	finder := newFinder(nil, nil, nil)

	_, err := finder.FindOpportunities(context.Background(), "jita", "dodixie", 0, 1000)

	require.Error(t, err)
	assert.ErrorIs(t, err, trading.ErrInvalidCargoCapacity)
}

func TestFindOpportunities_IdempotentOverIdenticalSnapshot(t *testing.T) {
	sell := []market.Order{
		{TypeID: 1, LocationID: jitaStation, Price: 100, VolumeRemain: 40},
		{TypeID: 2, LocationID: jitaStation, Price: 200, VolumeRemain: 40},
	}
	buy := []market.Order{
		{TypeID: 1, LocationID: dodixieStation, Price: 20100, VolumeRemain: 40},
		{TypeID: 2, LocationID: dodixieStation, Price: 20200, VolumeRemain: 40},
	}
	infos := map[int64]catalog.TypeInfo{
		1: {TypeID: 1, Name: "A", Volume: 1},
		2: {TypeID: 2, Name: "B", Volume: 1},
	}
	finder := newFinder(sell, buy, infos)

	first, err := finder.FindOpportunities(context.Background(), "jita", "dodixie", 1000, 1)
	require.NoError(t, err)
	second, err := finder.FindOpportunities(context.Background(), "jita", "dodixie", 1000, 1)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ItemID(), second[i].ItemID())
		assert.Equal(t, first[i].TotalProfitPotential(), second[i].TotalProfitPotential())
	}
}
