// internal/content/resolver.go
//
// Read-path content resolution.
//
// A resolve starts from the static default registry, overlays every stored
// override for the entity, and returns the merged map.  Results are held in
// the TTL cache; concurrent misses for the same key collapse into a single
// database fetch via singleflight.
//
// Notes
//   - Overrides whose component or element id is unknown to the registry
//     still apply.  The schema governs the admin editor, not the render
//     path, so a row written against an older schema keeps working.
//   - On a store error the resolver degrades to pure defaults and reports
//     the error alongside, letting handlers render a complete page while
//     still logging the failure.
package content

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/photoid-app/photoid/internal/metrics"
)

// Resolver merges default content with stored overrides, caching results.
type Resolver struct {
	db    *sqlx.DB
	cache *Cache
	group singleflight.Group
	log   *zap.SugaredLogger
}

// NewResolver wires a resolver over db with the given cache TTL.
func NewResolver(db *sqlx.DB, ttl time.Duration, log *zap.SugaredLogger) *Resolver {
	if log == nil {
		log = zap.S()
	}
	return &Resolver{
		db:    db,
		cache: NewCache(ttl),
		log:   log,
	}
}

// Cache exposes the underlying cache for invalidation by the write path.
func (r *Resolver) Cache() *Cache { return r.cache }

// ResolvePage returns the merged content for one landing page.
func (r *Resolver) ResolvePage(ctx context.Context, entityID, slug string) (Map, error) {
	return r.resolve(ctx, pageKey(slug), entityID, EntityPage, DefaultPageContent)
}

// ResolveProduct returns the merged content for one product page.
func (r *Resolver) ResolveProduct(ctx context.Context, entityID, locale, slug string) (Map, error) {
	return r.resolve(ctx, productKey(locale, slug), entityID, EntityProduct, DefaultProductContent)
}

func (r *Resolver) resolve(ctx context.Context, key, entityID string, entity EntityType, defaults func() Map) (Map, error) {
	if m, ok := r.cache.Get(key); ok {
		metrics.ContentCacheHits.Inc()
		return m.Clone(), nil
	}
	metrics.ContentCacheMisses.Inc()

	v, err, _ := r.group.Do(key, func() (any, error) {
		rows, err := ByEntity(ctx, r.db, entityID, entity)
		if err != nil {
			return nil, err
		}
		merged := defaults()
		for _, row := range rows {
			elems, ok := merged[row.Component]
			if !ok {
				elems = make(map[string]string)
				merged[row.Component] = elems
			}
			elems[row.ElementID] = row.CustomValue
		}
		r.cache.Set(key, merged)
		return merged, nil
	})
	if err != nil {
		metrics.ContentResolveErrors.Inc()
		r.log.Errorw("content resolve failed, serving defaults",
			"key", key, "entity_id", entityID, "err", err)
		return defaults(), err
	}
	// Clone so callers never mutate the cached copy.
	return v.(Map).Clone(), nil
}
