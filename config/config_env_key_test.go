package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"masterDB": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geocoding": map[string]any{
			"apiKey": "",
			"retry": map[string]any{
				"maxRetries": 3,
			},
		},
		"overpass": map[string]any{
			"finalRetryWait": "180s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MASTERDB_SSLMODE", want: "masterDB.sslMode"},
		{envKey: "MASTERDB_MASTER_USERNAME", want: "masterDB.master.userName"},
		{envKey: "GEOCODING_APIKEY", want: "geocoding.apiKey"},
		{envKey: "GEOCODING_RETRY_MAXRETRIES", want: "geocoding.retry.maxRetries"},
		{envKey: "OVERPASS_FINALRETRYWAIT", want: "overpass.finalRetryWait"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsUnsetSections(t *testing.T) {
	cfg := &Config{Geocoding: &GeocodingConfig{MaxFix: 10}}

	applyDefaults(cfg)

	if cfg.Geocoding.MaxFix != 10 {
		t.Fatalf("MaxFix = %d, want explicit value 10 kept", cfg.Geocoding.MaxFix)
	}
	if cfg.Geocoding.Provider != DefaultGeocodingProvider {
		t.Fatalf("Provider = %q, want %q", cfg.Geocoding.Provider, DefaultGeocodingProvider)
	}
	if cfg.Overpass == nil || cfg.Overpass.TileSizeDeg != DefaultTileSizeDeg {
		t.Fatalf("Overpass defaults not applied: %+v", cfg.Overpass)
	}
	if cfg.Matching.RadiusMeters != DefaultMatchRadius {
		t.Fatalf("RadiusMeters = %v, want %v", cfg.Matching.RadiusMeters, DefaultMatchRadius)
	}
	if cfg.Artifacts.BucketURL != DefaultArtifactsBucket {
		t.Fatalf("BucketURL = %q, want %q", cfg.Artifacts.BucketURL, DefaultArtifactsBucket)
	}
	if cfg.Env.SlowQuery != DefaultSlowQuery {
		t.Fatalf("SlowQuery = %v, want %v", cfg.Env.SlowQuery, DefaultSlowQuery)
	}
}
