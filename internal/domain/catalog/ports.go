package catalog

import "context"

// Client fetches catalog metadata for a single type id from the upstream
// item-metadata endpoint.
type Client interface {
	TypeInfo(ctx context.Context, typeID int64) (*TypeInfo, error)
}

// BatchResolver resolves catalog metadata for a set of type ids. The
// returned map is sparse: ids whose lookup failed are omitted and callers
// must skip items not present.
type BatchResolver interface {
	ResolveBatch(ctx context.Context, typeIDs []int64) map[int64]TypeInfo
}
