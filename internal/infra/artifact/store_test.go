package artifact

import (
	"context"
	"testing"
	"time"

	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestRunStore_SaveAndLatest(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	store := NewRunStore(bucket)

	started := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	first := entity.NewRunSummary(entity.PipelineStage, "run-1", started)
	first.RowsIn = 4
	second := entity.NewRunSummary(entity.PipelineStage, "run-2", started.Add(time.Hour))
	second.RowsIn = 9
	second.Drop("invalid", 2)

	require.NoError(t, store.SaveSummary(ctx, first))
	require.NoError(t, store.SaveSummary(ctx, second))

	latest, err := store.LatestSummary(ctx, entity.PipelineStage)
	require.NoError(t, err)
	assert.Equal(t, "run-2", latest.RunID)
	assert.Equal(t, 9, latest.RowsIn)
	assert.Equal(t, map[string]int{"invalid": 2}, latest.Dropped)

	exists, err := bucket.Exists(ctx, "runs/stage/run-1.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRunStore_LatestNotFound(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, err := NewRunStore(bucket).LatestSummary(context.Background(), entity.PipelineOSM)
	assert.True(t, errors.Is(err, domainerrors.ErrRunNotFound))
}

func TestGeocodeCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	cache := NewGeocodeCache(bucket)

	empty, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	results := map[string]*entity.GeocodeResult{
		"12|Main St|Moncton|E1A1A1": {
			FormattedAddress: "12 Main St, Moncton, NB E1A 1A1",
			Coordinates:      &entity.Coordinates{Lat: 46.09, Lon: -64.78},
			Components:       entity.AddressComponents{AddressNumber: "12", StreetName: "Main St", PostalCode: "E1A 1A1"},
		},
		"no-coordinates": {FormattedAddress: "Somewhere"},
		"skipped":        nil,
	}
	require.NoError(t, cache.Save(ctx, results))

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, results["12|Main St|Moncton|E1A1A1"], loaded["12|Main St|Moncton|E1A1A1"])
	assert.Nil(t, loaded["no-coordinates"].Coordinates)
}
