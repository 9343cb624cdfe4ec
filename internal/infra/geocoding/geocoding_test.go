package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(provider, baseURL string) *config.GeocodingConfig {
	return &config.GeocodingConfig{
		Provider: provider,
		APIKey:   "test-key",
		BaseURL:  baseURL,
		Timeout:  2 * time.Second,
		Retry: config.RetryConfig{
			InitialInterval: time.Millisecond,
			MaxInterval:     2 * time.Millisecond,
			MaxRetries:      2,
		},
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(testConfig("bing", ""), testLogger())
	assert.ErrorContains(t, err, "unknown geocoding provider")
}

func TestGeocodio_ForwardGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode", r.URL.Path)
		assert.Equal(t, "12 Main St", r.URL.Query().Get("street"))
		assert.Equal(t, "E1A1A1", r.URL.Query().Get("postal_code"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		_, _ = io.WriteString(w, `{"results":[{
			"formatted_address":"12 Main St, Moncton, NB E1A 1A1",
			"address_components":{"number":"12","street":"Main","suffix":"St","formatted_street":"Main St",
				"city":"Moncton","state":"NB","zip":"E1A 1A1","country":"CA"},
			"location":{"lat":46.09,"lng":-64.78}}]}`)
	}))
	defer srv.Close()

	g, err := New(testConfig(ProviderGeocodio, srv.URL), testLogger())
	require.NoError(t, err)

	res, err := g.ForwardGeocode(context.Background(), entity.GeocodeQuery{
		AddressNumber: "12", StreetAddress: "Main St", City: "Moncton", PostalCode: "E1A1A1",
	})
	require.NoError(t, err)
	assert.Equal(t, "12", res.Components.AddressNumber)
	assert.Equal(t, "Main St", res.Components.StreetName)
	assert.Equal(t, "NB", res.Components.ProvinceState)
	require.NotNil(t, res.Coordinates)
	assert.InDelta(t, -64.78, res.Coordinates.Lon, 1e-9)
}

func TestGeocodio_NoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"results":[]}`)
	}))
	defer srv.Close()

	g, err := New(testConfig(ProviderGeocodio, srv.URL), testLogger())
	require.NoError(t, err)

	_, err = g.ReverseGeocode(context.Background(), entity.Coordinates{Lat: 46.1, Lon: -64.8})
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodeNoResult))
}

func TestGeocodio_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusGatewayTimeout)

			return
		}
		_, _ = io.WriteString(w, `{"results":[{"formatted_address":"5 Elm St","location":{"lat":1,"lng":2}}]}`)
	}))
	defer srv.Close()

	g, err := New(testConfig(ProviderGeocodio, srv.URL), testLogger())
	require.NoError(t, err)

	res, err := g.ReverseGeocode(context.Background(), entity.Coordinates{Lat: 1, Lon: 2})
	require.NoError(t, err)
	assert.Equal(t, "5 Elm St", res.FormattedAddress)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGeocodio_QuotaExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g, err := New(testConfig(ProviderGeocodio, srv.URL), testLogger())
	require.NoError(t, err)

	_, err = g.ForwardGeocode(context.Background(), entity.GeocodeQuery{StreetAddress: "1 A St"})
	assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
	assert.Equal(t, int32(3), calls.Load(), "one call plus two retries")
}

func TestGeocodio_GatewayUnavailableFailsRequestOnly(t *testing.T) {
	for _, code := range []int{http.StatusServiceUnavailable, http.StatusGatewayTimeout} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(code)
			}))
			defer srv.Close()

			g, err := New(testConfig(ProviderGeocodio, srv.URL), testLogger())
			require.NoError(t, err)

			_, err = g.ForwardGeocode(context.Background(), entity.GeocodeQuery{StreetAddress: "1 A St"})
			assert.True(t, errors.Is(err, domainerrors.ErrGeocodeFailed))
			assert.False(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
			assert.Equal(t, int32(3), calls.Load(), "one call plus two retries")
		})
	}
}

func TestGeocodio_ServerErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g, err := New(testConfig(ProviderGeocodio, srv.URL), testLogger())
	require.NoError(t, err)

	_, err = g.ForwardGeocode(context.Background(), entity.GeocodeQuery{StreetAddress: "1 A St"})
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodeFailed))
	assert.Equal(t, int32(1), calls.Load())
}

func TestGoogle_ForwardGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12 Main St, Moncton, E1A1A1", r.URL.Query().Get("address"))
		_, _ = io.WriteString(w, `{"status":"OK","results":[{
			"formatted_address":"12 Main St, Moncton, NB E1A 1A1, Canada",
			"address_components":[
				{"long_name":"12","short_name":"12","types":["street_number"]},
				{"long_name":"Main Street","short_name":"Main St","types":["route"]},
				{"long_name":"Moncton","short_name":"Moncton","types":["locality","political"]},
				{"long_name":"New Brunswick","short_name":"NB","types":["administrative_area_level_1","political"]},
				{"long_name":"Canada","short_name":"CA","types":["country","political"]},
				{"long_name":"E1A 1A1","short_name":"E1A 1A1","types":["postal_code"]}],
			"geometry":{"location":{"lat":46.09,"lng":-64.78}}}]}`)
	}))
	defer srv.Close()

	g, err := New(testConfig(ProviderGoogle, srv.URL), testLogger())
	require.NoError(t, err)

	res, err := g.ForwardGeocode(context.Background(), entity.GeocodeQuery{
		AddressNumber: "12", StreetAddress: "Main St", City: "Moncton", PostalCode: "E1A1A1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AddressComponents{
		AddressNumber: "12",
		StreetName:    "Main Street",
		City:          "Moncton",
		ProvinceState: "NB",
		Country:       "CA",
		PostalCode:    "E1A 1A1",
	}, res.Components)
}

func TestGoogle_Statuses(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		target error
	}{
		{name: "zero results", body: `{"status":"ZERO_RESULTS","results":[]}`, target: domainerrors.ErrGeocodeNoResult},
		{name: "over query limit", body: `{"status":"OVER_QUERY_LIMIT","results":[]}`, target: domainerrors.ErrQuotaExceeded},
		{name: "request denied", body: `{"status":"REQUEST_DENIED","error_message":"bad key"}`, target: domainerrors.ErrGeocodeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			g, err := New(testConfig(ProviderGoogle, srv.URL), testLogger())
			require.NoError(t, err)

			_, err = g.ReverseGeocode(context.Background(), entity.Coordinates{Lat: 46, Lon: -64})
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}
