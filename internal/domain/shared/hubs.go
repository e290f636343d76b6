package shared

import (
	"fmt"
	"sort"
	"strings"
)

// TradeHub identifies one of the major trade stations and the market region
// that contains it. Region ids scope the order-book endpoint; station ids
// narrow the region-wide book to the hub itself.
type TradeHub struct {
	Name      string
	RegionID  int64
	StationID int64
}

// The five major trade hubs. Market data is only meaningful at these
// stations; everything else in a region is noise for hauling purposes.
var tradeHubs = map[string]TradeHub{
	"jita":    {Name: "jita", RegionID: 10000002, StationID: 60003760},    // The Forge, Caldari Navy Assembly Plant
	"dodixie": {Name: "dodixie", RegionID: 10000032, StationID: 60011866}, // Sinq Laison, Federation Navy Assembly Plant
	"amarr":   {Name: "amarr", RegionID: 10000043, StationID: 60008494},   // Domain, Emperor Family Academy
	"rens":    {Name: "rens", RegionID: 10000030, StationID: 60004588},    // Heimatar, Brutor Tribe Treasury
	"hek":     {Name: "hek", RegionID: 10000042, StationID: 60005686},     // Metropolis, Boundless Creation Factory
}

// ResolveHub resolves a hub name (case-insensitive) to its region and
// station ids. Unknown names return ErrUnknownStation; callers are expected
// to validate user input against HubNames before reaching this point.
func ResolveHub(name string) (TradeHub, error) {
	hub, ok := tradeHubs[strings.ToLower(name)]
	if !ok {
		return TradeHub{}, fmt.Errorf("%w: %s", ErrUnknownStation, name)
	}
	return hub, nil
}

// IsKnownHub reports whether name resolves to a trade hub.
func IsKnownHub(name string) bool {
	_, ok := tradeHubs[strings.ToLower(name)]
	return ok
}

// HubNames returns the known hub names in alphabetical order.
func HubNames() []string {
	names := make([]string, 0, len(tradeHubs))
	for name := range tradeHubs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
