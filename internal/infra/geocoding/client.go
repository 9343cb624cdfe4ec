// Package geocoding implements service.Geocoder against the Geocodio and
// Google geocoding APIs.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"poolscout/config"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/domain/service"
	"poolscout/internal/errors"
	"poolscout/internal/infra/metrics"

	"github.com/cenkalti/backoff/v4"
)

// Supported providers.
const (
	ProviderGeocodio = "geocodio"
	ProviderGoogle   = "google"
)

const (
	opForward = "forward"
	opReverse = "reverse"
)

// Retryable outcomes. Only exhausted throttling means the quota is spent; an
// unavailable gateway fails the single request.
var (
	errThrottled   = errors.New("geocoding provider throttled the request")
	errUnavailable = errors.New("geocoding provider unavailable")
)

// New builds the geocoder selected by cfg.Provider.
func New(cfg *config.GeocodingConfig, logger *slog.Logger) (service.Geocoder, error) {
	if cfg.APIKey == "" {
		logger.LogAttrs(context.Background(), slog.LevelWarn, "Geocoding API key is empty; requests will be rejected",
			slog.String("provider", cfg.Provider))
	}

	c := newClient(cfg, logger)
	switch cfg.Provider {
	case ProviderGeocodio, "":
		return newGeocodio(c, cfg), nil
	case ProviderGoogle:
		return newGoogle(c, cfg), nil
	default:
		return nil, errors.Errorf("unknown geocoding provider %q", cfg.Provider)
	}
}

// client performs provider requests with exponential backoff on throttling.
type client struct {
	http     *http.Client
	provider string
	retry    config.RetryConfig
	logger   *slog.Logger
}

func newClient(cfg *config.GeocodingConfig, logger *slog.Logger) *client {
	return &client{
		http:     &http.Client{Timeout: cfg.Timeout},
		provider: cfg.Provider,
		retry:    cfg.Retry,
		logger:   logger,
	}
}

func (c *client) backOff(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	if c.retry.InitialInterval > 0 {
		bo.InitialInterval = c.retry.InitialInterval
	}
	if c.retry.MaxInterval > 0 {
		bo.MaxInterval = c.retry.MaxInterval
	}
	bo.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(bo, c.retry.MaxRetries), ctx)
}

// getJSON fetches url and decodes the body into out. check inspects the decoded
// body for provider-level statuses carried in a 200 response.
func (c *client) getJSON(ctx context.Context, op, url string, out any, check func() error) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "failed to build geocoding request"))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return backoff.Permanent(domainerrors.ErrGeocodeFailed.WithDetails(err.Error()))
		}
		defer resp.Body.Close()

		if retryErr := retryable(resp.StatusCode); retryErr != nil {
			c.logger.LogAttrs(ctx, slog.LevelDebug, "Geocoding request will be retried",
				slog.String("provider", c.provider), slog.Int("status", resp.StatusCode))

			return retryErr
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(domainerrors.ErrGeocodeFailed.WithDetails(err.Error()))
		}
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnprocessableEntity {
			return backoff.Permanent(domainerrors.ErrGeocodeNoResult.WithDetails(strconv.Itoa(resp.StatusCode)))
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(domainerrors.ErrGeocodeFailed.WithDetails("status " + strconv.Itoa(resp.StatusCode)))
		}

		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(domainerrors.ErrGeocodeFailed.WithDetails("decode: " + err.Error()))
		}
		if check == nil {
			return nil
		}
		if err := check(); err != nil {
			if errors.IsAny(err, errThrottled, errUnavailable) {
				return err
			}

			return backoff.Permanent(err)
		}

		return nil
	}

	err := backoff.Retry(operation, c.backOff(ctx))
	metrics.GeocodeRequests.WithLabelValues(c.provider, op, status(err)).Inc()

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errThrottled):
		c.logger.LogAttrs(ctx, slog.LevelError, "Geocoding quota exhausted after retries",
			slog.String("provider", c.provider), slog.Uint64("retries", c.retry.MaxRetries))

		return domainerrors.ErrQuotaExceeded.WithDetails(c.provider)
	case errors.Is(err, errUnavailable):
		c.logger.LogAttrs(ctx, slog.LevelWarn, "Geocoding provider unavailable after retries",
			slog.String("provider", c.provider), slog.Uint64("retries", c.retry.MaxRetries))

		return domainerrors.ErrGeocodeFailed.WithDetails(c.provider + " unavailable")
	case ctx.Err() != nil:
		return errors.Wrap(ctx.Err(), "geocoding request cancelled")
	default:
		return err
	}
}

func retryable(code int) error {
	switch code {
	case http.StatusTooManyRequests:
		return errThrottled
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return errUnavailable
	default:
		return nil
	}
}

func status(err error) string {
	switch {
	case err == nil:
		return metrics.StatusOK
	case errors.Is(err, errThrottled):
		return metrics.StatusThrottled
	case errors.Is(err, domainerrors.ErrGeocodeNoResult):
		return metrics.StatusNoResult
	default:
		return metrics.StatusError
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
