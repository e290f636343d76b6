// Package catalog models the static item catalog: type ids resolved to
// display names and unit volumes.
package catalog

import "fmt"

// TypeInfo is the catalog entry for one tradable item type. Unit volume is
// in cubic meters and constrains how many units fit in a cargo hold.
type TypeInfo struct {
	TypeID int64
	Name   string
	Volume float64
}

// PlaceholderName is the sentinel stored for ids whose name lookup failed.
// Caching the sentinel keeps permanently-unavailable ids from being
// re-fetched on every analysis.
func PlaceholderName(typeID int64) string {
	return fmt.Sprintf("Unknown_%d", typeID)
}
