package services

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

const gridCacheTTL = 1 * time.Hour

func gridCacheKey(timetableID string) string {
	return "timetable:grid:" + timetableID
}

// CachedGrid returns the cached grid JSON for a timetable, if any.
// A nil client means caching is disabled.
func CachedGrid(ctx context.Context, rdb *redis.Client, timetableID string) ([]byte, bool) {
	if rdb == nil {
		return nil, false
	}
	payload, err := rdb.Get(ctx, gridCacheKey(timetableID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Grid cache read failed for %s: %v", timetableID, err)
		}
		return nil, false
	}
	return payload, true
}

// StoreGridCache caches the rendered grid JSON for a timetable.
func StoreGridCache(ctx context.Context, rdb *redis.Client, timetableID string, payload []byte) {
	if rdb == nil {
		return
	}
	if err := rdb.Set(ctx, gridCacheKey(timetableID), payload, gridCacheTTL).Err(); err != nil {
		log.Printf("Grid cache write failed for %s: %v", timetableID, err)
	}
}

// InvalidateGridCache drops the cached grid after a save or delete.
func InvalidateGridCache(ctx context.Context, rdb *redis.Client, timetableID string) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, gridCacheKey(timetableID)).Err(); err != nil {
		log.Printf("Grid cache invalidation failed for %s: %v", timetableID, err)
	}
}

// YearGridCacheKeys returns the grid cache keys for the given timetables.
// A slot-config change reshapes every grid of its year, so they all have
// to drop together.
func YearGridCacheKeys(timetables []*models.Timetable) []string {
	keys := make([]string, 0, len(timetables))
	for _, t := range timetables {
		keys = append(keys, gridCacheKey(t.ID))
	}
	return keys
}

// InvalidateYearGrids drops the cached grids of every given timetable.
// Called after a slot-config save so cached grids built against the old
// configuration are not served until the TTL runs out.
func InvalidateYearGrids(ctx context.Context, rdb *redis.Client, timetables []*models.Timetable) {
	if rdb == nil || len(timetables) == 0 {
		return
	}
	if err := rdb.Del(ctx, YearGridCacheKeys(timetables)...).Err(); err != nil {
		log.Printf("Grid cache invalidation failed after slot config change: %v", err)
	}
}
