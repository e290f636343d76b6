// Package catalog resolves item type ids to display names and unit volumes.
package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/everoutes/eve-routes-go/internal/domain/catalog"
)

// Resolver looks up item metadata from the upstream catalog endpoint.
// Single-item name lookups go through the process-lifetime name cache; a
// cache miss triggers exactly one upstream call, and failures are cached as
// a placeholder so dead ids are not retried on every analysis.
type Resolver struct {
	client catalog.Client
	cache  *catalog.NameCache
	logger *zap.Logger
}

// NewResolver creates a resolver backed by the given upstream client and
// name cache. The cache is injected so tests can supply a fresh one.
func NewResolver(client catalog.Client, cache *catalog.NameCache, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// ResolveName returns the display name for a type id, consulting the cache
// first. Lookup failures store the Unknown_<id> placeholder and return it.
func (r *Resolver) ResolveName(ctx context.Context, typeID int64) string {
	if name, ok := r.cache.Get(typeID); ok {
		return name
	}

	info, err := r.client.TypeInfo(ctx, typeID)
	if err != nil {
		r.logger.Warn("failed to resolve item name",
			zap.Int64("type_id", typeID),
			zap.Error(err))
		placeholder := catalog.PlaceholderName(typeID)
		r.cache.Put(typeID, placeholder)
		return placeholder
	}

	r.cache.Put(typeID, info.Name)
	return info.Name
}

// ResolveBatch fetches metadata for a set of type ids, one upstream call
// per id. Ids whose lookup fails are silently omitted: the returned map is
// sparse and callers must skip items not present. The batch path does not
// populate the name cache since volume data is only needed once per
// analysis.
func (r *Resolver) ResolveBatch(ctx context.Context, typeIDs []int64) map[int64]catalog.TypeInfo {
	resolved := make(map[int64]catalog.TypeInfo, len(typeIDs))

	r.logger.Info("resolving item metadata", zap.Int("count", len(typeIDs)))

	for i, typeID := range typeIDs {
		info, err := r.client.TypeInfo(ctx, typeID)
		if err != nil {
			r.logger.Warn("failed to resolve item metadata",
				zap.Int64("type_id", typeID),
				zap.Error(err))
			continue
		}
		resolved[typeID] = *info

		if (i+1)%50 == 0 {
			r.logger.Info("metadata resolution progress",
				zap.Int("resolved", i+1),
				zap.Int("total", len(typeIDs)))
		}
	}

	r.logger.Info("resolved item metadata",
		zap.Int("resolved", len(resolved)),
		zap.Int("requested", len(typeIDs)))

	return resolved
}
