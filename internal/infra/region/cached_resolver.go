// Package region resolves district codes to display names, with an in-memory
// TTL cache in front of the district table. The table is reference data that
// changes on the order of years, so a short-lived cache is safe and removes
// three lookups from every address write.
package region

import (
	"context"
	"time"

	"store/config"
	"store/internal/domain/repository"
	"store/internal/domain/service"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultNameTTL         = 12 * time.Hour
	defaultCleanupInterval = 1 * time.Hour
)

// cachedResolver implements the service.RegionNameResolver interface.
type cachedResolver struct {
	districts repository.DistrictRepository
	cache     *gocache.Cache
}

// NewCachedResolver is the constructor for cachedResolver.
func NewCachedResolver(cfg *config.Config, districts repository.DistrictRepository) service.RegionNameResolver {
	ttl := defaultNameTTL
	cleanup := defaultCleanupInterval
	if cfg != nil && cfg.Cache != nil {
		if cfg.Cache.DistrictTTL > 0 {
			ttl = cfg.Cache.DistrictTTL
		}
		if cfg.Cache.CleanupInterval > 0 {
			cleanup = cfg.Cache.CleanupInterval
		}
	}

	return &cachedResolver{
		districts: districts,
		cache:     gocache.New(ttl, cleanup),
	}
}

// ResolveName returns the display name for a district code, hitting the
// database only on a cache miss. Unknown codes resolve to "" and are cached
// too, so a bad code does not hammer the table.
func (r *cachedResolver) ResolveName(ctx context.Context, code string) (string, error) {
	if cached, found := r.cache.Get(code); found {
		name, _ := cached.(string)

		return name, nil
	}

	name, err := r.districts.FindNameByCode(ctx, code)
	if err != nil {
		return "", err
	}

	r.cache.SetDefault(code, name)

	return name, nil
}
