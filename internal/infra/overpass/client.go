// Package overpass extracts swimming pools from OpenStreetMap through the
// Overpass API, one map tile at a time.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/domain/service"
	"poolscout/internal/errors"
	"poolscout/internal/infra/metrics"
	"poolscout/internal/transform/area"
	"poolscout/internal/util"

	"github.com/cenkalti/backoff/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/planar"
)

const queryTemplate = `[out:json][timeout:%d];
(
  node["leisure"="swimming_pool"](%[2]s);
  way["leisure"="swimming_pool"](%[2]s);
  relation["leisure"="swimming_pool"](%[2]s);
  node["swimming_pool"="yes"](%[2]s);
  way["swimming_pool"="yes"](%[2]s);
);
out center tags;`

// Request outcomes handled by the retry layers above query.
var (
	errRateLimited    = errors.New("overpass rate limited")
	errGatewayTimeout = errors.New("overpass gateway timeout")
)

type response struct {
	Elements []element `json:"elements"`
}

type element struct {
	Type   string   `json:"type"`
	ID     int64    `json:"id"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

// Client implements service.PoolSource.
type Client struct {
	http   *http.Client
	cfg    config.OverpassConfig
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates an Overpass pool source.
func New(cfg *config.OverpassConfig, logger *slog.Logger) service.PoolSource {
	return newClient(cfg, logger)
}

func newClient(cfg *config.OverpassConfig, logger *slog.Logger) *Client {
	return &Client{
		http:   &http.Client{Timeout: cfg.Timeout},
		cfg:    *cfg,
		logger: logger.With(slog.String("source", "overpass")),
		sleep:  util.Sleep,
	}
}

// FetchPools queries every tile overlapping the area and returns the pools
// located inside it, one per coordinate.
func (c *Client) FetchPools(ctx context.Context, mp orb.MultiPolygon) ([]entity.OSMPool, error) {
	tiles := area.Tiles(mp, area.ZoomForSize(c.cfg.TileSizeDeg))
	c.logger.LogAttrs(ctx, slog.LevelInfo, "Extracting pools",
		slog.Int("tiles", len(tiles)), slog.Int("zoom", int(area.ZoomForSize(c.cfg.TileSizeDeg))))

	seen := make(map[string]struct{})
	pools := make([]entity.OSMPool, 0)

	for i, tile := range tiles {
		if i > 0 {
			if err := c.sleep(ctx, c.cfg.TileDelay); err != nil {
				return nil, err
			}
		}

		found, err := c.fetchTile(ctx, tile, false)
		if err != nil {
			return nil, errors.Wrapf(err, "tile %d/%d/%d", tile.Z, tile.X, tile.Y)
		}

		for _, p := range found {
			if !planar.MultiPolygonContains(mp, p.Position.Point()) {
				continue
			}
			key := coordinateKey(p.Position)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			pools = append(pools, p)
		}
	}

	c.logger.LogAttrs(ctx, slog.LevelInfo, "Pool extraction finished", slog.Int("pools", len(pools)))

	return pools, nil
}

// fetchTile queries one tile. A gateway timeout splits the tile into its
// quadrants; at the minimum tile size it waits once and retries instead.
func (c *Client) fetchTile(ctx context.Context, tile maptile.Tile, finalRetry bool) ([]entity.OSMPool, error) {
	bound := tile.Bound()
	pools, err := c.queryWithRateLimit(ctx, bound)
	if !errors.Is(err, errGatewayTimeout) {
		return pools, err
	}

	if area.WidthMeters(bound) > c.cfg.MinTileMeters {
		metrics.OverpassRequests.WithLabelValues(metrics.StatusSplit).Inc()
		c.logger.LogAttrs(ctx, slog.LevelDebug, "Splitting tile after gateway timeout",
			slog.Int("z", int(tile.Z)), slog.Uint64("x", uint64(tile.X)), slog.Uint64("y", uint64(tile.Y)))

		var all []entity.OSMPool
		for _, q := range area.Quadrants(tile) {
			found, err := c.fetchTile(ctx, q, false)
			if err != nil {
				return nil, err
			}
			all = append(all, found...)
		}

		return all, nil
	}

	if finalRetry {
		return nil, domainerrors.ErrUpstreamUnavailable.WithDetails("overpass timed out on minimum size tile")
	}

	c.logger.LogAttrs(ctx, slog.LevelWarn, "Minimum size tile timed out; waiting before last retry",
		slog.Duration("wait", c.cfg.FinalRetryWait))
	if err := c.sleep(ctx, c.cfg.FinalRetryWait); err != nil {
		return nil, err
	}

	return c.fetchTile(ctx, tile, true)
}

// queryWithRateLimit retries rate-limited requests with exponential backoff
// starting at RateLimitBase.
func (c *Client) queryWithRateLimit(ctx context.Context, bound orb.Bound) ([]entity.OSMPool, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.RateLimitBase
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = c.cfg.RateLimitBase << max(c.cfg.MaxRetries, 0)
	bo.MaxElapsedTime = 0
	bo.Reset()
	schedule := backoff.WithMaxRetries(bo, uint64(max(c.cfg.MaxRetries, 0)))

	for {
		pools, err := c.query(ctx, bound)
		if !errors.Is(err, errRateLimited) {
			return pools, err
		}

		wait := schedule.NextBackOff()
		if wait == backoff.Stop {
			return nil, domainerrors.ErrUpstreamUnavailable.WithDetails("overpass rate limit persisted")
		}
		c.logger.LogAttrs(ctx, slog.LevelWarn, "Overpass rate limited; backing off", slog.Duration("wait", wait))
		if err := c.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

func (c *Client) query(ctx context.Context, bound orb.Bound) ([]entity.OSMPool, error) {
	form := url.Values{}
	form.Set("data", buildQuery(bound, c.cfg.Timeout))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build overpass request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.OverpassRequests.WithLabelValues(metrics.StatusError).Inc()

		return nil, domainerrors.ErrUpstreamUnavailable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		metrics.OverpassRequests.WithLabelValues(metrics.StatusThrottled).Inc()

		return nil, errRateLimited
	case http.StatusGatewayTimeout:
		metrics.OverpassRequests.WithLabelValues(metrics.StatusThrottled).Inc()

		return nil, errGatewayTimeout
	default:
		metrics.OverpassRequests.WithLabelValues(metrics.StatusError).Inc()

		return nil, domainerrors.ErrUpstreamUnavailable.WithDetails("overpass status " + strconv.Itoa(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read overpass response")
	}

	var decoded response
	if err := json.Unmarshal(body, &decoded); err != nil {
		metrics.OverpassRequests.WithLabelValues(metrics.StatusError).Inc()

		return nil, errors.Wrap(err, "failed to decode overpass response")
	}
	metrics.OverpassRequests.WithLabelValues(metrics.StatusOK).Inc()

	return toPools(decoded.Elements), nil
}

// buildQuery renders the pool query for a bound. Overpass expects
// south,west,north,east.
func buildQuery(b orb.Bound, timeout time.Duration) string {
	bbox := fmt.Sprintf("%.7f,%.7f,%.7f,%.7f", b.Min.Lat(), b.Min.Lon(), b.Max.Lat(), b.Max.Lon())
	seconds := int(timeout.Seconds())
	if seconds <= 0 {
		seconds = 180
	}

	return fmt.Sprintf(queryTemplate, seconds, bbox)
}

func toPools(elements []element) []entity.OSMPool {
	pools := make([]entity.OSMPool, 0, len(elements))
	for _, e := range elements {
		var pos entity.Coordinates
		switch {
		case e.Lat != nil && e.Lon != nil:
			pos = entity.Coordinates{Lat: *e.Lat, Lon: *e.Lon}
		case e.Center != nil:
			pos = entity.Coordinates{Lat: e.Center.Lat, Lon: e.Center.Lon}
		default:
			continue
		}

		pools = append(pools, entity.OSMPool{
			OSMID:    e.ID,
			OSMType:  e.Type,
			Position: pos,
			Tags:     e.Tags,
		})
	}

	return pools
}

// coordinateKey identifies a position to about a centimeter.
func coordinateKey(c entity.Coordinates) string {
	return strconv.FormatFloat(math.Round(c.Lat*1e7)/1e7, 'f', 7, 64) + "," +
		strconv.FormatFloat(math.Round(c.Lon*1e7)/1e7, 'f', 7, 64)
}
