package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/domain/service"
	"poolscout/internal/errors"
	"poolscout/internal/transform/address"
	"poolscout/internal/usecase"
	"poolscout/internal/util"

	"go.uber.org/fx"
)

const defaultCountry = "Canada"

// AddressCorrectorParams holds the dependencies of the address corrector.
type AddressCorrectorParams struct {
	fx.In

	Geocoder service.Geocoder
	Cache    service.GeocodeCache `optional:"true"`
	Config   *config.Config
	Logger   *slog.Logger
}

type addressCorrector struct {
	geocoder service.Geocoder
	cache    service.GeocodeCache
	maxFix   int
	delay    time.Duration
	logger   *slog.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewAddressCorrector creates the geocoding-backed address corrector.
func NewAddressCorrector(params AddressCorrectorParams) usecase.AddressCorrector {
	maxFix, delay := config.DefaultMaxFix, config.DefaultRequestDelay
	if g := params.Config.Geocoding; g != nil {
		maxFix, delay = g.MaxFix, g.RequestDelay
	}

	return &addressCorrector{
		geocoder: params.Geocoder,
		cache:    params.Cache,
		maxFix:   maxFix,
		delay:    delay,
		logger:   params.Logger,
		sleep:    util.Sleep,
	}
}

// Correct implements usecase.AddressCorrector.
func (c *addressCorrector) Correct(ctx context.Context, listings []entity.Listing, critical []int) (*usecase.CorrectionResult, error) {
	out := slices.Clone(listings)
	res := &usecase.CorrectionResult{}
	results := c.loadCache(ctx)

	var quotaErr error
	calls := 0
	for n, idx := range critical {
		if n >= c.maxFix {
			res.Skipped = len(critical) - n
			c.logger.LogAttrs(ctx, slog.LevelWarn, "Correction cap reached",
				slog.Int("maxFix", c.maxFix),
				slog.Int("skipped", res.Skipped),
			)

			break
		}
		if idx < 0 || idx >= len(out) {
			continue
		}

		query := geocodeQuery(out[idx])
		key := query.Key()

		result, cached := results[key]
		if cached {
			res.CacheHits++
		} else {
			if calls > 0 {
				if err := c.sleep(ctx, c.delay); err != nil {
					return nil, errors.Wrap(err, "address correction interrupted")
				}
			}
			calls++
			res.Attempted++

			var err error
			result, err = c.geocoder.ForwardGeocode(ctx, query)
			if err != nil {
				if errors.Is(err, domainerrors.ErrQuotaExceeded) {
					quotaErr = err
					c.logger.LogAttrs(ctx, slog.LevelError, "Geocoding quota exhausted, stopping correction",
						slog.Int("attempted", res.Attempted),
						slog.Any("error", err),
					)

					break
				}
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, errors.Wrap(ctxErr, "address correction interrupted")
				}

				res.Failed++
				results[key] = nil
				c.logger.LogAttrs(ctx, slog.LevelDebug, "Geocoding failed, row left unchanged",
					slog.String("mlsId", out[idx].MLSID),
					slog.Any("error", err),
				)

				continue
			}
			results[key] = result
		}

		if result == nil {
			continue
		}
		if merged, changed := address.Merge(out[idx], result); changed {
			out[idx] = merged
			res.Corrected++
		}
	}

	c.saveCache(ctx, results)

	stillFailing := map[int]bool{}
	for _, idx := range address.FailingIndices(address.ValidateListings(out)) {
		stillFailing[idx] = true
	}
	isCritical := map[int]bool{}
	for _, idx := range critical {
		isCritical[idx] = true
	}

	res.Listings = make([]entity.Listing, 0, len(out))
	for i, l := range out {
		if isCritical[i] && stillFailing[i] {
			res.Dropped = append(res.Dropped, l)

			continue
		}
		res.Listings = append(res.Listings, l)
	}

	c.logger.LogAttrs(ctx, slog.LevelInfo, "Address correction finished",
		slog.Int("critical", len(critical)),
		slog.Int("attempted", res.Attempted),
		slog.Int("cacheHits", res.CacheHits),
		slog.Int("corrected", res.Corrected),
		slog.Int("failed", res.Failed),
		slog.Int("skipped", res.Skipped),
		slog.Int("dropped", len(res.Dropped)),
	)

	if quotaErr != nil {
		return res, errors.Wrap(quotaErr, "address correction stopped")
	}

	return res, nil
}

func (c *addressCorrector) loadCache(ctx context.Context) map[string]*entity.GeocodeResult {
	results := map[string]*entity.GeocodeResult{}
	if c.cache == nil {
		return results
	}

	stored, err := c.cache.Load(ctx)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to load geocode cache", slog.Any("error", err))

		return results
	}
	for k, v := range stored {
		if v != nil {
			results[k] = v
		}
	}

	return results
}

// saveCache persists positive results only; misses are remembered for the
// current run and retried on the next one.
func (c *addressCorrector) saveCache(ctx context.Context, results map[string]*entity.GeocodeResult) {
	if c.cache == nil {
		return
	}

	positive := make(map[string]*entity.GeocodeResult, len(results))
	for k, v := range results {
		if v != nil {
			positive[k] = v
		}
	}
	if err := c.cache.Save(ctx, positive); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to save geocode cache", slog.Any("error", err))
	}
}

func geocodeQuery(l entity.Listing) entity.GeocodeQuery {
	return entity.GeocodeQuery{
		AddressNumber: l.Address.AddressNumber,
		StreetAddress: l.Address.StreetAddress,
		City:          l.Address.City,
		PostalCode:    l.Address.PostalCode,
		ProvinceState: l.Address.ProvinceState,
		Country:       defaultCountry,
	}
}
