// Package listingsource fetches real-estate listings from the listing search
// provider.
package listingsource

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
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

	"github.com/cenkalti/backoff/v4"
)

const maxAttempts = 3

type searchResponse struct {
	Listings []listingDTO `json:"listings"`
}

// listingDTO carries the provider's columns. Numeric columns arrive either as
// numbers or as free text ("4 + 1", "1,850 sqft"), so they are kept as text.
type listingDTO struct {
	MLSID         flexString `json:"mls_id"`
	Description   string     `json:"description"`
	Amenities     string     `json:"amenities"`
	Address       string     `json:"address"`
	Bedrooms      flexString `json:"bedrooms"`
	Bathrooms     flexString `json:"bathrooms"`
	Size          flexString `json:"size"`
	Stories       flexString `json:"stories"`
	Price         flexString `json:"price"`
	HouseCategory string     `json:"house_category"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""

		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)

		return nil
	}
	*f = flexString(data)

	return nil
}

type client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
	now     func() time.Time
	backoff func() backoff.BackOff
}

// New creates the listing search client.
func New(cfg *config.ListingSourceConfig, logger *slog.Logger) service.ListingSource {
	return &client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger.With(slog.String("source", "listings")),
		now:     time.Now,
		backoff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxAttempts-1)
		},
	}
}

// FetchListings returns the current listings of one search location.
func (c *client) FetchListings(ctx context.Context, location entity.SearchLocation) ([]entity.RawListing, error) {
	params := url.Values{}
	params.Set("country_code", location.CountryCode)
	params.Set("province_state", location.ProvinceState)
	params.Set("search_area", location.SearchArea)
	endpoint := c.baseURL + "/listings?" + params.Encode()

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "failed to build listing request"))
		}
		if c.apiKey != "" {
			req.Header.Set("X-API-Key", c.apiKey)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return errors.Wrap(err, "listing request failed")
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return errors.Errorf("listing source status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(domainerrors.ErrUpstreamUnavailable.WithDetails("listing source status " + strconv.Itoa(resp.StatusCode)))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "failed to read listing response")
		}

		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(c.backoff(), ctx)); err != nil {
		metrics.ListingSourceRequests.WithLabelValues(metrics.StatusError).Inc()
		if errors.Is(err, domainerrors.ErrUpstreamUnavailable) || ctx.Err() != nil {
			return nil, err
		}

		return nil, errors.Join(domainerrors.ErrUpstreamUnavailable.WithDetails(location.Tag()), err)
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		metrics.ListingSourceRequests.WithLabelValues(metrics.StatusError).Inc()

		return nil, errors.Join(domainerrors.ErrMalformedInput.WithDetails("listing response"), err)
	}
	metrics.ListingSourceRequests.WithLabelValues(metrics.StatusOK).Inc()

	collectedAt := c.now().UTC()
	listings := make([]entity.RawListing, 0, len(decoded.Listings))
	for _, l := range decoded.Listings {
		listings = append(listings, entity.RawListing{
			MLSID:          string(l.MLSID),
			Description:    l.Description,
			Amenities:      l.Amenities,
			Address:        l.Address,
			Bedrooms:       string(l.Bedrooms),
			Bathrooms:      string(l.Bathrooms),
			Size:           string(l.Size),
			Stories:        string(l.Stories),
			Price:          string(l.Price),
			HouseCategory:  l.HouseCategory,
			Latitude:       l.Latitude,
			Longitude:      l.Longitude,
			SearchLocation: location.Tag(),
			CollectedAt:    collectedAt,
		})
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "Fetched listings",
		slog.String("location", location.Tag()), slog.Int("count", len(listings)))

	return listings, nil
}
