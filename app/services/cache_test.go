package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

func TestYearGridCacheKeys(t *testing.T) {
	t.Run("covers every timetable of the year", func(t *testing.T) {
		timetables := []*models.Timetable{
			{ID: "tt-1", Year: 2},
			{ID: "tt-2", Year: 2},
			{ID: "tt-3", Year: 2},
		}

		keys := YearGridCacheKeys(timetables)

		assert.Len(t, keys, 3)
		for i, tt := range timetables {
			assert.Equal(t, gridCacheKey(tt.ID), keys[i])
		}
	})

	t.Run("matches the keys reads and writes use", func(t *testing.T) {
		keys := YearGridCacheKeys([]*models.Timetable{{ID: "abc"}})

		assert.Equal(t, []string{"timetable:grid:abc"}, keys)
	})

	t.Run("empty list yields no keys", func(t *testing.T) {
		assert.Empty(t, YearGridCacheKeys(nil))
	})
}

func TestCacheDisabled(t *testing.T) {
	ctx := context.Background()

	payload, ok := CachedGrid(ctx, nil, "tt-1")
	assert.False(t, ok)
	assert.Nil(t, payload)

	StoreGridCache(ctx, nil, "tt-1", []byte(`{}`))
	InvalidateGridCache(ctx, nil, "tt-1")
	InvalidateYearGrids(ctx, nil, []*models.Timetable{{ID: "tt-1"}})
}
