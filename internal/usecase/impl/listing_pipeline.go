package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/domain/repository"
	"poolscout/internal/domain/service"
	"poolscout/internal/errors"
	"poolscout/internal/transform/address"
	"poolscout/internal/transform/listing"
	"poolscout/internal/transform/poolinfer"
	"poolscout/internal/usecase"
	"poolscout/internal/util"

	"go.uber.org/fx"
)

// ListingPipelineParams holds the dependencies of the listing pipeline.
type ListingPipelineParams struct {
	fx.In

	Source     service.ListingSource
	Listings   repository.ListingRepository
	TxManager  repository.ListingTransactionManager
	Corrector  usecase.AddressCorrector
	Classifier *poolinfer.Classifier
	Config     *config.Config
	Logger     *slog.Logger
}

type listingPipeline struct {
	source        service.ListingSource
	listings      repository.ListingRepository
	txManager     repository.ListingTransactionManager
	corrector     usecase.AddressCorrector
	classifier    *poolinfer.Classifier
	locationDelay time.Duration
	logger        *slog.Logger
	now           func() time.Time
	sleep         func(ctx context.Context, d time.Duration) error
}

// NewListingPipeline creates the weekly listing pipeline.
func NewListingPipeline(params ListingPipelineParams) usecase.Pipeline {
	delay := config.DefaultLocationDelay
	if params.Config.ListingSource != nil {
		delay = params.Config.ListingSource.LocationDelay
	}

	return &listingPipeline{
		source:        params.Source,
		listings:      params.Listings,
		txManager:     params.TxManager,
		corrector:     params.Corrector,
		classifier:    params.Classifier,
		locationDelay: delay,
		logger:        params.Logger.With(slog.String("pipeline", string(entity.PipelineListings))),
		now:           time.Now,
		sleep:         util.Sleep,
	}
}

func (p *listingPipeline) Name() entity.Pipeline {
	return entity.PipelineListings
}

// Run extracts listings for every search location, classifies pools,
// repairs addresses and loads the result into the listing store.
func (p *listingPipeline) Run(ctx context.Context, req usecase.RunRequest) (*entity.RunSummary, error) {
	runAt := p.now().UTC()
	summary := entity.NewRunSummary(entity.PipelineListings, req.RunID, runAt)

	locations, err := p.listings.FindSearchLocations(ctx)
	if err != nil {
		return finishRun(summary, p.now, errors.Wrap(err, "failed to load search locations"))
	}

	raw, err := p.extract(ctx, locations, summary)
	if err != nil {
		return finishRun(summary, p.now, err)
	}
	summary.RowsIn = len(raw)

	cleaned, err := listing.Clean(raw)
	if err != nil {
		return finishRun(summary, p.now, errors.Wrap(err, "failed to clean listings"))
	}
	summary.RecordStage(stageClean, len(raw), len(cleaned.Listings))
	summary.Drop(dropDuplicateMLS, cleaned.DuplicateMLS)
	summary.Drop(dropMissingMLS, cleaned.MissingMLS)
	summary.Count("unparsed_prices", cleaned.UnparsedPrices)

	homes, removed := listing.FilterHomes(cleaned.Listings)
	summary.RecordStage(stageHomeFilter, len(cleaned.Listings), len(homes))
	summary.Drop(dropNonHome, removed)
	p.logger.LogAttrs(ctx, slog.LevelInfo, "Filtered non-home listings",
		slog.Int("before", len(cleaned.Listings)),
		slog.Int("after", len(homes)),
	)

	classified := p.classifier.ClassifyListings(homes)
	for _, l := range classified {
		if l.Pool.Flag {
			summary.Count("pool_flagged", 1)
		}
	}

	parsed := address.ParseListings(classified)
	failing := address.FailingIndices(address.ValidateListings(parsed))
	triage := address.Triage(parsed, failing)
	summary.Count("address_issues", len(failing))
	summary.Count("critical_issues", len(triage.Critical))
	summary.Count("minor_issues", len(triage.Minor))

	// A quota error still carries the partial result; the resolved rows are
	// loaded and the run is reported as failed afterwards.
	correction, correctionErr := p.corrector.Correct(ctx, parsed, triage.Critical)
	if correction == nil {
		return finishRun(summary, p.now, errors.Wrap(correctionErr, "failed to correct addresses"))
	}
	summary.Corrected = correction.Corrected
	summary.Count("geocode_attempted", correction.Attempted)
	summary.Count("geocode_cache_hits", correction.CacheHits)
	summary.Count("geocode_failed", correction.Failed)
	summary.Count("geocode_skipped", correction.Skipped)
	summary.RecordStage(stageAddressCorrection, len(parsed), len(correction.Listings))
	summary.Drop(dropUnresolvableAddress, len(correction.Dropped))

	rows, sightings, skipped := prepareListingRows(correction.Listings, runAt)
	summary.RecordStage(stagePrepareLoad, len(correction.Listings), len(rows))
	for _, s := range skipped {
		summary.Drop(s.Reason, 1)
		p.logger.LogAttrs(ctx, slog.LevelDebug, "Skipped listing",
			slog.String("mlsId", s.MLSID),
			slog.String("reason", s.Reason),
		)
	}
	summary.RowsOut = len(rows)

	if len(rows) > 0 {
		loaded, err := p.load(ctx, rows, sightings, runAt)
		if err != nil {
			return finishRun(summary, p.now, err)
		}
		summary.Count("inserted", loaded.Inserted)
		summary.Count("sightings", loaded.SightingsStored)
		summary.Count("removed", loaded.Removed)
		summary.Count("relisted", loaded.Relisted)
	} else {
		p.logger.LogAttrs(ctx, slog.LevelWarn, "No listing rows to load")
	}

	if correctionErr != nil {
		return finishRun(summary, p.now, errors.Wrap(correctionErr, "listing run stopped early"))
	}

	p.logger.LogAttrs(ctx, slog.LevelInfo, "Listing run finished",
		slog.Int("rowsIn", summary.RowsIn),
		slog.Int("rowsOut", summary.RowsOut),
		slog.Int("dropped", summary.TotalDropped()),
	)

	return finishRun(summary, p.now, nil)
}

// extract queries each location in turn. A failing location is recorded and
// skipped; only an empty result across all of them fails the run.
func (p *listingPipeline) extract(ctx context.Context, locations []entity.SearchLocation, summary *entity.RunSummary) ([]entity.RawListing, error) {
	var (
		raw      []entity.RawListing
		failures int
	)
	for i, loc := range locations {
		if i > 0 {
			if err := p.sleep(ctx, p.locationDelay); err != nil {
				return nil, errors.Wrap(err, "listing extraction interrupted")
			}
		}

		fetched, err := p.source.FetchListings(ctx, loc)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, errors.Wrap(ctxErr, "listing extraction interrupted")
			}
			failures++
			summary.Errors = append(summary.Errors, loc.Tag()+": "+err.Error())
			p.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to fetch listings for location",
				slog.String("location", loc.Tag()),
				slog.Any("error", err),
			)

			continue
		}

		for j := range fetched {
			if fetched[j].SearchLocation == "" {
				fetched[j].SearchLocation = loc.Tag()
			}
		}
		raw = append(raw, fetched...)
	}
	summary.Count("locations", len(locations))
	summary.Count("location_failures", failures)

	if failures > 0 && failures == len(locations) {
		return nil, domainerrors.ErrUpstreamUnavailable.WithDetails("every search location failed")
	}

	p.logger.LogAttrs(ctx, slog.LevelInfo, "Extracted listings",
		slog.Int("locations", len(locations)),
		slog.Int("failures", failures),
		slog.Int("listings", len(raw)),
	)

	return raw, nil
}

func (p *listingPipeline) load(ctx context.Context, rows []*entity.ListingRow, sightings []entity.Sighting, runAt time.Time) (entity.ListingLoadResult, error) {
	var res entity.ListingLoadResult

	queried := queriedLocations(sightings)
	err := p.txManager.Execute(ctx, func(repo repository.ListingRepository) error {
		if _, err := repo.StageListings(ctx, rows); err != nil {
			return errors.Wrap(err, "failed to stage listings")
		}

		var err error
		if res.Inserted, err = repo.InsertNewListings(ctx); err != nil {
			return errors.Wrap(err, "failed to insert new listings")
		}
		if res.SightingsStored, err = repo.RecordSightings(ctx, sightings, runAt); err != nil {
			return errors.Wrap(err, "failed to record sightings")
		}
		if res.Removed, err = repo.DetectRemovals(ctx, queried, runAt); err != nil {
			return errors.Wrap(err, "failed to detect removals")
		}
		if res.Relisted, err = repo.DetectRelistings(ctx); err != nil {
			return errors.Wrap(err, "failed to detect relistings")
		}

		return nil
	})
	if err != nil {
		return entity.ListingLoadResult{}, errors.Join(domainerrors.ErrPersistFailed, err)
	}

	p.logger.LogAttrs(ctx, slog.LevelInfo, "Loaded listings",
		slog.Int("staged", len(rows)),
		slog.Int("inserted", res.Inserted),
		slog.Int("sightings", res.SightingsStored),
		slog.Int("removed", res.Removed),
		slog.Int("relisted", res.Relisted),
	)

	return res, nil
}

// prepareListingRows converts listings to store rows. Rows without a numeric
// civic number or coordinates cannot be stored and are reported instead.
func prepareListingRows(listings []entity.Listing, runAt time.Time) ([]*entity.ListingRow, []entity.Sighting, []entity.SkippedListing) {
	rows := make([]*entity.ListingRow, 0, len(listings))
	var (
		sightings []entity.Sighting
		skipped   []entity.SkippedListing
	)

	for i := range listings {
		l := &listings[i]

		number, ok := civicNumber(l.Address.AddressNumber)
		if !ok {
			skipped = append(skipped, entity.SkippedListing{MLSID: l.MLSID, Reason: dropMissingAddressNumber})

			continue
		}
		if l.Coordinates == nil {
			skipped = append(skipped, entity.SkippedListing{MLSID: l.MLSID, Reason: dropMissingCoordinates})

			continue
		}

		rows = append(rows, &entity.ListingRow{
			MLSID:          l.MLSID,
			DateCollected:  runAt,
			Description:    l.FullDescription(),
			Bedrooms:       l.Bedrooms,
			Bathrooms:      l.Bathrooms,
			SizeSqft:       l.SizeSqft,
			Stories:        l.Stories,
			HouseCategory:  l.HouseCategory,
			Price:          l.Price,
			AddressNumber:  number,
			StreetName:     l.Address.StreetName(),
			FullStreetName: l.RawAddress,
			Municipality:   l.Address.City,
			ProvinceState:  l.Address.ProvinceState,
			PostalCode:     l.Address.PostalCode,
			PoolMentioned:  l.Pool.Flag,
			PoolType:       l.Pool.Type,
			Lat:            l.Coordinates.Lat,
			Lon:            l.Coordinates.Lon,
			SearchLocation: l.SearchLocation,
		})
		if l.SearchLocation != "" {
			sightings = append(sightings, entity.Sighting{MLSID: l.MLSID, SearchLocation: l.SearchLocation})
		}
	}

	return rows, sightings, skipped
}

// civicNumber reads the leading digits of an address number such as "12A".
func civicNumber(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end == -1 {
		end = len(s)
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// queriedLocations lists the distinct search locations that produced rows.
func queriedLocations(sightings []entity.Sighting) []string {
	seen := map[string]struct{}{}
	for _, s := range sightings {
		seen[s.SearchLocation] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for loc := range seen {
		out = append(out, loc)
	}
	slices.Sort(out)

	return out
}
