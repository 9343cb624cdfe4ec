// Package artifact persists run summaries and the geocode cache in a
// gocloud.dev blob bucket.
package artifact

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/domain/lifecycle"
	"poolscout/internal/domain/service"
	"poolscout/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	runsPrefix    = "runs"
	latestKey     = "latest.json"
	geocodeKey    = "cache/geocode.json"
	jsonType      = "application/json"
	defaultBucket = "mem://"
)

// BucketParams holds the dependencies for opening the artifact bucket.
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured bucket and closes it when the app stops.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	bucketURL := defaultBucket
	if params.Config.Artifacts != nil && params.Config.Artifacts.BucketURL != "" {
		bucketURL = params.Config.Artifacts.BucketURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open artifact bucket %s", bucketURL)
	}

	params.Logger.Info("Artifact bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

// runStore implements service.RunStore.
type runStore struct {
	bucket *blob.Bucket
}

// NewRunStore creates a run store on the bucket.
func NewRunStore(bucket *blob.Bucket) service.RunStore {
	return &runStore{bucket: bucket}
}

// SaveSummary writes the summary under its run id, then as the pipeline's latest run.
func (s *runStore) SaveSummary(ctx context.Context, summary *entity.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode run summary")
	}

	dir := path.Join(runsPrefix, string(summary.Pipeline))
	for _, key := range []string{path.Join(dir, summary.RunID+".json"), path.Join(dir, latestKey)} {
		if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: jsonType}); err != nil {
			return errors.Wrapf(err, "failed to write %s", key)
		}
	}

	return nil
}

// LatestSummary reads the latest summary of a pipeline.
func (s *runStore) LatestSummary(ctx context.Context, pipeline entity.Pipeline) (*entity.RunSummary, error) {
	data, err := s.bucket.ReadAll(ctx, path.Join(runsPrefix, string(pipeline), latestKey))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrRunNotFound.WithDetails(string(pipeline))
		}

		return nil, errors.Wrap(err, "failed to read latest run summary")
	}

	var summary entity.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, errors.Wrap(err, "failed to decode run summary")
	}

	return &summary, nil
}

// geocodeCache implements service.GeocodeCache as one JSON object keyed by query.
type geocodeCache struct {
	bucket *blob.Bucket
}

// NewGeocodeCache creates a geocode cache on the bucket.
func NewGeocodeCache(bucket *blob.Bucket) service.GeocodeCache {
	return &geocodeCache{bucket: bucket}
}

type cachedResult struct {
	FormattedAddress string                   `json:"formattedAddress"`
	Lat              *float64                 `json:"lat,omitempty"`
	Lon              *float64                 `json:"lon,omitempty"`
	Components       entity.AddressComponents `json:"components"`
}

// Load returns the stored results; a missing cache is empty.
func (c *geocodeCache) Load(ctx context.Context) (map[string]*entity.GeocodeResult, error) {
	data, err := c.bucket.ReadAll(ctx, geocodeKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return map[string]*entity.GeocodeResult{}, nil
		}

		return nil, errors.Wrap(err, "failed to read geocode cache")
	}

	var stored map[string]cachedResult
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocode cache")
	}

	results := make(map[string]*entity.GeocodeResult, len(stored))
	for key, r := range stored {
		results[key] = &entity.GeocodeResult{
			FormattedAddress: r.FormattedAddress,
			Coordinates:      entity.NewCoordinates(r.Lat, r.Lon),
			Components:       r.Components,
		}
	}

	return results, nil
}

// Save replaces the stored cache. Nil results are not persisted.
func (c *geocodeCache) Save(ctx context.Context, results map[string]*entity.GeocodeResult) error {
	stored := make(map[string]cachedResult, len(results))
	for key, r := range results {
		if r == nil {
			continue
		}
		entry := cachedResult{FormattedAddress: r.FormattedAddress, Components: r.Components}
		if r.Coordinates != nil {
			lat, lon := r.Coordinates.Lat, r.Coordinates.Lon
			entry.Lat, entry.Lon = &lat, &lon
		}
		stored[key] = entry
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return errors.Wrap(err, "failed to encode geocode cache")
	}
	if err := c.bucket.WriteAll(ctx, geocodeKey, data, &blob.WriterOptions{ContentType: jsonType}); err != nil {
		return errors.Wrap(err, "failed to write geocode cache")
	}

	return nil
}
