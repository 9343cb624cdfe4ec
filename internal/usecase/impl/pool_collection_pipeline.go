package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/domain/repository"
	"poolscout/internal/domain/service"
	"poolscout/internal/errors"
	"poolscout/internal/transform/area"
	"poolscout/internal/usecase"
	"poolscout/internal/util"

	"go.uber.org/fx"
)

const unknownAccess = "unknown"

// PoolCollectionPipelineParams holds the dependencies of the open-data pool pipeline.
type PoolCollectionPipelineParams struct {
	fx.In

	Source   service.PoolSource
	Geocoder service.Geocoder
	Stage    repository.StageRepository
	Config   *config.Config
	Logger   *slog.Logger
}

type poolCollectionPipeline struct {
	source     service.PoolSource
	geocoder   service.Geocoder
	stage      repository.StageRepository
	delay      time.Duration
	batchSize  int
	batchPause time.Duration
	logger     *slog.Logger
	now        func() time.Time
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewPoolCollectionPipeline creates the pipeline that stages OpenStreetMap pools.
func NewPoolCollectionPipeline(params PoolCollectionPipelineParams) usecase.Pipeline {
	p := &poolCollectionPipeline{
		source:     params.Source,
		geocoder:   params.Geocoder,
		stage:      params.Stage,
		delay:      config.DefaultRequestDelay,
		batchSize:  config.DefaultReverseBatchSize,
		batchPause: config.DefaultReverseBatchPause,
		logger:     params.Logger.With(slog.String("pipeline", string(entity.PipelineOSM))),
		now:        time.Now,
		sleep:      util.Sleep,
	}
	if g := params.Config.Geocoding; g != nil {
		p.delay, p.batchSize, p.batchPause = g.RequestDelay, g.ReverseBatchSize, g.ReverseBatchPause
	}

	return p
}

func (p *poolCollectionPipeline) Name() entity.Pipeline {
	return entity.PipelineOSM
}

// Run extracts pools inside the requested polygon, reverse geocodes them and
// stages pools, addresses and nearest-address assignments.
func (p *poolCollectionPipeline) Run(ctx context.Context, req usecase.RunRequest) (*entity.RunSummary, error) {
	summary := entity.NewRunSummary(entity.PipelineOSM, req.RunID, p.now().UTC())

	polygon, err := area.Parse(req.Polygon)
	if err != nil {
		return finishRun(summary, p.now, err)
	}

	pools, err := p.source.FetchPools(ctx, polygon)
	if err != nil {
		return finishRun(summary, p.now, errors.Wrap(err, "failed to extract pools"))
	}
	summary.RowsIn = len(pools)
	if len(pools) == 0 {
		p.logger.LogAttrs(ctx, slog.LevelWarn, "No pools found inside polygon")

		return finishRun(summary, p.now, nil)
	}

	results, geocodeErr := p.reverseGeocode(ctx, pools, summary)
	if results == nil {
		return finishRun(summary, p.now, geocodeErr)
	}

	addresses := uniqueAddresses(pools, results)
	summary.RecordStage(stageUniqueAddresses, summary.Counters["geocoded"], len(addresses))

	stagePools := make([]*entity.StagePool, len(pools))
	for i, pool := range pools {
		osmID := pool.OSMID
		stagePools[i] = &entity.StagePool{
			Position: pool.Position,
			Access:   accessTag(pool.Tags),
			OSMID:    &osmID,
		}
	}

	if err := p.stage.InsertAddresses(ctx, addresses); err != nil {
		return finishRun(summary, p.now, errors.Join(domainerrors.ErrPersistFailed, err))
	}
	if err := p.stage.InsertPools(ctx, stagePools); err != nil {
		return finishRun(summary, p.now, errors.Join(domainerrors.ErrPersistFailed, err))
	}

	poolIDs := make([]int64, len(stagePools))
	for i, sp := range stagePools {
		poolIDs[i] = sp.ID
	}
	assignments, err := p.stage.AssignNearestAddresses(ctx, poolIDs)
	if err != nil {
		return finishRun(summary, p.now, errors.Join(domainerrors.ErrPersistFailed, err))
	}

	summary.Count("addresses_staged", len(addresses))
	summary.Count("pools_staged", len(stagePools))
	summary.Count("assignments", len(assignments))
	summary.RowsOut = len(assignments)
	summary.Drop("no_staged_address", len(stagePools)-len(assignments))

	p.logger.LogAttrs(ctx, slog.LevelInfo, "Staged open-data pools",
		slog.Int("pools", len(stagePools)),
		slog.Int("addresses", len(addresses)),
		slog.Int("assignments", len(assignments)),
	)

	if geocodeErr != nil {
		return finishRun(summary, p.now, errors.Wrap(geocodeErr, "pool collection stopped early"))
	}

	return finishRun(summary, p.now, nil)
}

// reverseGeocode resolves an address for every pool, pausing longer after
// each batch. Pools the provider cannot resolve keep a nil result. A quota
// error stops the loop and is returned along with the results so far.
func (p *poolCollectionPipeline) reverseGeocode(ctx context.Context, pools []entity.OSMPool, summary *entity.RunSummary) ([]*entity.GeocodeResult, error) {
	results := make([]*entity.GeocodeResult, len(pools))
	geocoded, failed := 0, 0

	var stopErr error
	for i, pool := range pools {
		if i > 0 {
			pause := p.delay
			if p.batchSize > 0 && i%p.batchSize == 0 {
				pause = p.batchPause
				p.logger.LogAttrs(ctx, slog.LevelInfo, "Reverse geocoding progress",
					slog.Int("done", i),
					slog.Int("total", len(pools)),
				)
			}
			if err := p.sleep(ctx, pause); err != nil {
				return nil, errors.Wrap(err, "reverse geocoding interrupted")
			}
		}

		res, err := p.geocoder.ReverseGeocode(ctx, pool.Position)
		if err != nil {
			if errors.Is(err, domainerrors.ErrQuotaExceeded) {
				stopErr = err
				p.logger.LogAttrs(ctx, slog.LevelError, "Geocoding quota exhausted, stopping reverse geocoding",
					slog.Int("done", i),
					slog.Any("error", err),
				)

				break
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, errors.Wrap(ctxErr, "reverse geocoding interrupted")
			}
			failed++
			p.logger.LogAttrs(ctx, slog.LevelDebug, "Reverse geocoding failed",
				slog.Int64("osmId", pool.OSMID),
				slog.Any("error", err),
			)

			continue
		}
		results[i] = res
		geocoded++
	}

	summary.Count("geocoded", geocoded)
	summary.Count("geocode_failed", failed)
	summary.RecordStage(stageReverseGeocode, len(pools), geocoded)

	return results, stopErr
}

// uniqueAddresses keeps one staged address per number, street, city and
// postal code. Results with neither a street nor a city are ignored.
func uniqueAddresses(pools []entity.OSMPool, results []*entity.GeocodeResult) []*entity.StageAddress {
	seen := map[string]struct{}{}
	var out []*entity.StageAddress

	for i, res := range results {
		if res == nil {
			continue
		}
		c := res.Components
		if strings.TrimSpace(c.StreetName) == "" && strings.TrimSpace(c.City) == "" {
			continue
		}

		key := strings.Join([]string{c.AddressNumber, c.StreetName, c.City, c.PostalCode}, "|")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		at := pools[i].Position
		if res.Coordinates != nil {
			at = *res.Coordinates
		}
		out = append(out, &entity.StageAddress{
			AddressNumber: c.AddressNumber,
			StreetName:    c.StreetName,
			Municipality:  c.City,
			ProvinceState: c.ProvinceState,
			PostalCode:    c.PostalCode,
			Country:       c.Country,
			Coordinates:   &at,
		})
	}

	return out
}

func accessTag(tags map[string]string) string {
	if v := strings.TrimSpace(tags["access"]); v != "" {
		return v
	}

	return unknownAccess
}
