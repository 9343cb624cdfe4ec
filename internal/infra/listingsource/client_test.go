package listingsource

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

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var moncton = entity.SearchLocation{CountryCode: "CA", ProvinceState: "NB", SearchArea: "Moncton"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(&config.ListingSourceConfig{BaseURL: srv.URL + "/", APIKey: "secret", Timeout: time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil))).(*client)
	c.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	c.backoff = func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, maxAttempts-1)
	}

	return c
}

func TestFetchListings(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listings", r.URL.Path)
		assert.Equal(t, "Moncton", r.URL.Query().Get("search_area"))
		assert.Equal(t, "NB", r.URL.Query().Get("province_state"))
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		_, _ = io.WriteString(w, `{"listings":[
			{"mls_id":"M1","description":"Inground pool","address":"12 Main St|Moncton, New Brunswick E1A1A1",
			 "bedrooms":"3 + 1","bathrooms":2,"size":"1850 sqft","price":"$349,900","house_category":"House",
			 "latitude":46.09,"longitude":-64.78},
			{"mls_id":12345,"description":"","address":"","bedrooms":null}
		]}`)
	})

	listings, err := c.FetchListings(context.Background(), moncton)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, "M1", first.MLSID)
	assert.Equal(t, "3 + 1", first.Bedrooms)
	assert.Equal(t, "2", first.Bathrooms)
	assert.Equal(t, "$349,900", first.Price)
	assert.Equal(t, "CA-NB-Moncton", first.SearchLocation)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), first.CollectedAt)
	require.NotNil(t, first.Latitude)
	assert.InDelta(t, 46.09, *first.Latitude, 1e-9)

	assert.Equal(t, "12345", listings[1].MLSID)
	assert.Empty(t, listings[1].Bedrooms)
	assert.Nil(t, listings[1].Latitude)
}

func TestFetchListings_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < maxAttempts {
			w.WriteHeader(http.StatusBadGateway)

			return
		}
		_, _ = io.WriteString(w, `{"listings":[]}`)
	})

	listings, err := c.FetchListings(context.Background(), moncton)
	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.Equal(t, int32(maxAttempts), calls.Load())
}

func TestFetchListings_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		target  error
		attempt int32
	}{
		{name: "persistent throttling", status: http.StatusTooManyRequests, target: domainerrors.ErrUpstreamUnavailable, attempt: maxAttempts},
		{name: "rejected request", status: http.StatusForbidden, target: domainerrors.ErrUpstreamUnavailable, attempt: 1},
		{name: "undecodable body", status: http.StatusOK, body: `<html>`, target: domainerrors.ErrMalformedInput, attempt: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.FetchListings(context.Background(), moncton)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Equal(t, tt.attempt, calls.Load())
		})
	}
}
