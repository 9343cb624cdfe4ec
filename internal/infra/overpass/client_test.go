package overpass

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poolsBody = `{"elements":[
	{"type":"node","id":1,"lat":46.0950,"lon":-64.7750,"tags":{"leisure":"swimming_pool","access":"private"}},
	{"type":"way","id":2,"center":{"lat":46.0960,"lon":-64.7760},"tags":{"leisure":"swimming_pool"}},
	{"type":"way","id":3,"center":{"lat":46.0950,"lon":-64.7750},"tags":{"swimming_pool":"yes"}},
	{"type":"relation","id":4,"tags":{"leisure":"swimming_pool"}},
	{"type":"node","id":5,"lat":47.5,"lon":-60.0}
]}`

type recordedSleeps struct {
	waits []time.Duration
}

func (r *recordedSleeps) sleep(_ context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)

	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordedSleeps) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := newClient(&config.OverpassConfig{
		URL:            srv.URL,
		Timeout:        5 * time.Second,
		TileSizeDeg:    config.DefaultTileSizeDeg,
		MinTileMeters:  config.DefaultMinTileMeters,
		TileDelay:      config.DefaultTileDelay,
		RateLimitBase:  config.DefaultRateLimitBase,
		MaxRetries:     config.DefaultOverpassRetries,
		FinalRetryWait: config.DefaultFinalRetryWait,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := &recordedSleeps{}
	c.sleep = rec.sleep

	return c, rec
}

func testArea() orb.MultiPolygon {
	return orb.MultiPolygon{{{
		{-64.78, 46.09}, {-64.77, 46.09}, {-64.77, 46.10}, {-64.78, 46.10}, {-64.78, 46.09},
	}}}
}

func TestFetchPools_DedupesAndClipsToArea(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Contains(t, r.PostForm.Get("data"), `"leisure"="swimming_pool"`)
		assert.Contains(t, r.PostForm.Get("data"), "out center tags;")
		_, _ = io.WriteString(w, poolsBody)
	})

	pools, err := c.FetchPools(context.Background(), testArea())
	require.NoError(t, err)
	require.Len(t, pools, 2)

	assert.Equal(t, int64(1), pools[0].OSMID)
	assert.Equal(t, "private", pools[0].Tags["access"])
	assert.Equal(t, int64(2), pools[1].OSMID)
	assert.Equal(t, entity.Coordinates{Lat: 46.0960, Lon: -64.7760}, pools[1].Position)
}

func TestFetchTile_RateLimitBacksOffExponentially(t *testing.T) {
	var calls atomic.Int32
	c, rec := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)

			return
		}
		_, _ = io.WriteString(w, `{"elements":[]}`)
	})

	_, err := c.fetchTile(context.Background(), maptile.At(orb.Point{-64.775, 46.095}, 14), false)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{15 * time.Second, 30 * time.Second}, rec.waits)
}

func TestFetchTile_RateLimitExhausted(t *testing.T) {
	var calls atomic.Int32
	c, rec := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.fetchTile(context.Background(), maptile.At(orb.Point{-64.775, 46.095}, 14), false)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
	assert.Equal(t, int32(4), calls.Load())
	assert.Equal(t, []time.Duration{15 * time.Second, 30 * time.Second, 60 * time.Second}, rec.waits)
}

func TestFetchTile_GatewayTimeoutSplitsIntoQuadrants(t *testing.T) {
	var calls atomic.Int32
	c, rec := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusGatewayTimeout)

			return
		}
		_, _ = io.WriteString(w, `{"elements":[{"type":"node","id":9,"lat":46.095,"lon":-64.775}]}`)
	})

	pools, err := c.fetchTile(context.Background(), maptile.At(orb.Point{-64.775, 46.095}, 14), false)
	require.NoError(t, err)
	assert.Len(t, pools, 4, "one response per quadrant")
	assert.Equal(t, int32(5), calls.Load())
	assert.Empty(t, rec.waits)
}

func TestFetchTile_MinimumTileWaitsOnce(t *testing.T) {
	tile := maptile.At(orb.Point{-64.775, 46.095}, 17)

	t.Run("recovers after the long wait", func(t *testing.T) {
		var calls atomic.Int32
		c, rec := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusGatewayTimeout)

				return
			}
			_, _ = io.WriteString(w, `{"elements":[]}`)
		})

		_, err := c.fetchTile(context.Background(), tile, false)
		require.NoError(t, err)
		assert.Equal(t, []time.Duration{180 * time.Second}, rec.waits)
	})

	t.Run("gives up after the second timeout", func(t *testing.T) {
		c, rec := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusGatewayTimeout)
		})

		_, err := c.fetchTile(context.Background(), tile, false)
		assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
		assert.Len(t, rec.waits, 1)
	})
}

func TestBuildQuery_UsesSouthWestNorthEast(t *testing.T) {
	q := buildQuery(orb.Bound{Min: orb.Point{-64.8, 46.0}, Max: orb.Point{-64.7, 46.1}}, 0)

	assert.True(t, strings.HasPrefix(q, "[out:json][timeout:180];"))
	assert.Contains(t, q, `node["leisure"="swimming_pool"](46.0000000,-64.8000000,46.1000000,-64.7000000);`)
}
