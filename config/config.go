package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`

		// SlowQuery is the duration after which a statement is logged as slow.
		SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"omitempty,min=1,max=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// ListingDB holds every scraped listing and its sighting history.
	ListingDB *postgres.DBConn `json:"listingDB" yaml:"listingDB" mapstructure:"listingDB" validate:"required"`
	// MasterDB holds canonical properties, pools and reconciled listings.
	MasterDB *postgres.DBConn `json:"masterDB" yaml:"masterDB" mapstructure:"masterDB" validate:"required"`
	// StageDB holds open-data pools and addresses awaiting promotion.
	StageDB *postgres.DBConn `json:"stageDB" yaml:"stageDB" mapstructure:"stageDB" validate:"required"`

	Geocoding     *GeocodingConfig     `json:"geocoding" yaml:"geocoding"`
	Overpass      *OverpassConfig      `json:"overpass" yaml:"overpass"`
	ListingSource *ListingSourceConfig `json:"listingSource" yaml:"listingSource"`
	Pool          *PoolConfig          `json:"pool" yaml:"pool"`
	Matching      *MatchingConfig      `json:"matching" yaml:"matching"`
	Dedup         *DedupConfig         `json:"dedup" yaml:"dedup"`
	Reconcile     *ReconcileConfig     `json:"reconcile" yaml:"reconcile"`
	Artifacts     *ArtifactsConfig     `json:"artifacts" yaml:"artifacts"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// GeocodingConfig configures the paid geocoding provider used for address
// correction and reverse geocoding of open-data pools.
type GeocodingConfig struct {
	// Provider is "geocodio" or "google"
	Provider string        `json:"provider" yaml:"provider" validate:"oneof=geocodio google"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	BaseURL  string        `json:"baseUrl" yaml:"baseUrl" validate:"omitempty,url"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`

	// Fixed pause between correction calls
	RequestDelay time.Duration `json:"requestDelay" yaml:"requestDelay"`

	// Hard ceiling of rows corrected per run
	MaxFix int `json:"maxFix" yaml:"maxFix" validate:"gte=0"`

	Retry RetryConfig `json:"retry" yaml:"retry"`

	// Reverse geocoding pauses for ReverseBatchPause after every ReverseBatchSize requests
	ReverseBatchSize  int           `json:"reverseBatchSize" yaml:"reverseBatchSize"`
	ReverseBatchPause time.Duration `json:"reverseBatchPause" yaml:"reverseBatchPause"`

	// PersistCache keeps successful forward results in the artifact bucket between runs
	PersistCache bool `json:"persistCache" yaml:"persistCache"`
}

// RetryConfig bounds exponential backoff on rate-limit and gateway errors.
type RetryConfig struct {
	InitialInterval time.Duration `json:"initialInterval" yaml:"initialInterval"`
	MaxInterval     time.Duration `json:"maxInterval" yaml:"maxInterval"`
	MaxRetries      uint64        `json:"maxRetries" yaml:"maxRetries"`
}

// OverpassConfig configures tiled pool extraction from OpenStreetMap.
type OverpassConfig struct {
	URL     string        `json:"url" yaml:"url" validate:"omitempty,url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Edge length of the extraction grid in degrees
	TileSizeDeg float64 `json:"tileSizeDeg" yaml:"tileSizeDeg" validate:"gte=0"`

	// Tiles at or below this size are not split further on gateway timeouts
	MinTileMeters float64 `json:"minTileMeters" yaml:"minTileMeters"`

	TileDelay      time.Duration `json:"tileDelay" yaml:"tileDelay"`
	RateLimitBase  time.Duration `json:"rateLimitBase" yaml:"rateLimitBase"`
	MaxRetries     int           `json:"maxRetries" yaml:"maxRetries"`
	FinalRetryWait time.Duration `json:"finalRetryWait" yaml:"finalRetryWait"`
}

// ListingSourceConfig configures the listing search provider.
type ListingSourceConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl" validate:"omitempty,url"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Pause between search locations
	LocationDelay time.Duration `json:"locationDelay" yaml:"locationDelay"`
}

// PoolConfig configures pool inference.
type PoolConfig struct {
	// Maximum words between a pool mention and an ownership cue
	WindowWords int `json:"windowWords" yaml:"windowWords" validate:"gte=0"`
}

// MatchingConfig configures listing to property reconciliation.
type MatchingConfig struct {
	RadiusMeters float64 `json:"radiusMeters" yaml:"radiusMeters" validate:"gte=0"`
	MaxVariants  int     `json:"maxVariants" yaml:"maxVariants" validate:"gte=0"`
}

// DedupConfig configures stage promotion cleaning.
type DedupConfig struct {
	BufferKm float64 `json:"bufferKm" yaml:"bufferKm" validate:"gte=0"`
}

// ReconcileConfig configures the listing store extraction for reconciliation.
type ReconcileConfig struct {
	LookbackDays        int `json:"lookbackDays" yaml:"lookbackDays" validate:"gte=0"`
	RemovalLookbackDays int `json:"removalLookbackDays" yaml:"removalLookbackDays" validate:"gte=0"`
}

// ArtifactsConfig locates the bucket run summaries are written to.
type ArtifactsConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/lib/poolscout or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	// Build replicas from environment variables (LISTINGDB_REPLICAS_0_HOST, MASTERDB_REPLICAS_0_PORT, etc.)
	cfg.ListingDB.Replicas = buildReplicasFromEnv("LISTINGDB")
	cfg.MasterDB.Replicas = buildReplicasFromEnv("MASTERDB")
	cfg.StageDB.Replicas = buildReplicasFromEnv("STAGEDB")

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: {PREFIX}_REPLICAS_{index}_{field}
// Example: MASTERDB_REPLICAS_0_HOST, MASTERDB_REPLICAS_0_PORT, MASTERDB_REPLICAS_0_USERNAME, MASTERDB_REPLICAS_0_PASSWORD
func buildReplicasFromEnv(prefix string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		keyPrefix := prefix + "_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(keyPrefix + "HOST")
		port := os.Getenv(keyPrefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(keyPrefix + "USERNAME"),
			Password: os.Getenv(keyPrefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
