package config

import "time"

// Defaults applied to unset values. They mirror the production settings of
// the batch jobs.
const (
	DefaultGeocodingProvider = "geocodio"
	DefaultGeocodingTimeout  = 10 * time.Second
	DefaultRequestDelay      = 60 * time.Millisecond
	DefaultMaxFix            = 250
	DefaultReverseBatchSize  = 100
	DefaultReverseBatchPause = time.Second

	DefaultRetryInitialInterval = time.Second
	DefaultRetryMaxInterval     = 30 * time.Second
	DefaultRetryMaxRetries      = 3

	DefaultOverpassURL     = "https://overpass-api.de/api/interpreter"
	DefaultOverpassTimeout = 3 * time.Minute
	DefaultTileSizeDeg     = 0.02
	DefaultMinTileMeters   = 500.0
	DefaultTileDelay       = 100 * time.Millisecond
	DefaultRateLimitBase   = 15 * time.Second
	DefaultOverpassRetries = 3
	DefaultFinalRetryWait  = 180 * time.Second
	DefaultListingTimeout  = 30 * time.Second
	DefaultLocationDelay   = 2 * time.Second
	DefaultWindowWords     = 12
	DefaultMatchRadius     = 50.0
	DefaultMaxVariants     = 256
	DefaultBufferKm        = 5.0
	DefaultLookbackDays    = 10
	DefaultRemovalLookback = 30
	DefaultArtifactsBucket = "mem://"
	DefaultSlowQuery       = 200 * time.Millisecond
)

func applyDefaults(cfg *Config) {
	setDuration(&cfg.Env.SlowQuery, DefaultSlowQuery)

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	g := cfg.Geocoding
	setString(&g.Provider, DefaultGeocodingProvider)
	setDuration(&g.Timeout, DefaultGeocodingTimeout)
	setDuration(&g.RequestDelay, DefaultRequestDelay)
	setInt(&g.MaxFix, DefaultMaxFix)
	setInt(&g.ReverseBatchSize, DefaultReverseBatchSize)
	setDuration(&g.ReverseBatchPause, DefaultReverseBatchPause)
	setDuration(&g.Retry.InitialInterval, DefaultRetryInitialInterval)
	setDuration(&g.Retry.MaxInterval, DefaultRetryMaxInterval)
	if g.Retry.MaxRetries == 0 {
		g.Retry.MaxRetries = DefaultRetryMaxRetries
	}

	if cfg.Overpass == nil {
		cfg.Overpass = &OverpassConfig{}
	}
	o := cfg.Overpass
	setString(&o.URL, DefaultOverpassURL)
	setDuration(&o.Timeout, DefaultOverpassTimeout)
	setFloat(&o.TileSizeDeg, DefaultTileSizeDeg)
	setFloat(&o.MinTileMeters, DefaultMinTileMeters)
	setDuration(&o.TileDelay, DefaultTileDelay)
	setDuration(&o.RateLimitBase, DefaultRateLimitBase)
	setInt(&o.MaxRetries, DefaultOverpassRetries)
	setDuration(&o.FinalRetryWait, DefaultFinalRetryWait)

	if cfg.ListingSource == nil {
		cfg.ListingSource = &ListingSourceConfig{}
	}
	setDuration(&cfg.ListingSource.Timeout, DefaultListingTimeout)
	setDuration(&cfg.ListingSource.LocationDelay, DefaultLocationDelay)

	if cfg.Pool == nil {
		cfg.Pool = &PoolConfig{}
	}
	setInt(&cfg.Pool.WindowWords, DefaultWindowWords)

	if cfg.Matching == nil {
		cfg.Matching = &MatchingConfig{}
	}
	setFloat(&cfg.Matching.RadiusMeters, DefaultMatchRadius)
	setInt(&cfg.Matching.MaxVariants, DefaultMaxVariants)

	if cfg.Dedup == nil {
		cfg.Dedup = &DedupConfig{}
	}
	setFloat(&cfg.Dedup.BufferKm, DefaultBufferKm)

	if cfg.Reconcile == nil {
		cfg.Reconcile = &ReconcileConfig{}
	}
	setInt(&cfg.Reconcile.LookbackDays, DefaultLookbackDays)
	setInt(&cfg.Reconcile.RemovalLookbackDays, DefaultRemovalLookback)

	if cfg.Artifacts == nil {
		cfg.Artifacts = &ArtifactsConfig{}
	}
	setString(&cfg.Artifacts.BucketURL, DefaultArtifactsBucket)
}

func setString(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if *dst == 0 {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if *dst == 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if *dst == 0 {
		*dst = v
	}
}
