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
	"poolscout/internal/errors"
	"poolscout/internal/transform/address"
	"poolscout/internal/transform/dedup"
	"poolscout/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	stageMatchNew     = "match_new_listings"
	stageMatchRemoved = "match_removed_listings"
)

// ReconcilePipelineParams holds the dependencies of the reconciliation pipeline.
type ReconcilePipelineParams struct {
	fx.In

	Listings  repository.ListingRepository
	Matcher   usecase.EntityMatcher
	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

type reconcilePipeline struct {
	listings        repository.ListingRepository
	matcher         usecase.EntityMatcher
	txManager       repository.TransactionManager
	lookback        int
	removalLookback int
	newAddressID    dedup.IDGenerator
	newPropertyID   func() string
	logger          *slog.Logger
	now             func() time.Time
}

// matchedListing is a new listing tied to an existing property.
type matchedListing struct {
	listing  *entity.StoredListing
	property *entity.Property
}

// reconcilePlan is everything the master transaction has to write.
type reconcilePlan struct {
	matched   []matchedListing
	unmatched []*entity.StoredListing
	removals  []entity.ListingRemoval
}

// reconcileResult is what one master transaction wrote.
type reconcileResult struct {
	propertiesCreated int
	locationsUpdated  int
	poolsInserted     int
	listingsUpserted  int
	removals          entity.RemovalUpdateResult
}

// NewReconcilePipeline creates the pipeline that syncs pool listings into the master store.
func NewReconcilePipeline(params ReconcilePipelineParams) usecase.Pipeline {
	lookback, removalLookback := config.DefaultLookbackDays, config.DefaultRemovalLookback
	if r := params.Config.Reconcile; r != nil {
		lookback, removalLookback = r.LookbackDays, r.RemovalLookbackDays
	}

	return &reconcilePipeline{
		listings:        params.Listings,
		matcher:         params.Matcher,
		txManager:       params.TxManager,
		lookback:        lookback,
		removalLookback: removalLookback,
		newAddressID:    dedup.RandomBigint,
		newPropertyID:   uuid.NewString,
		logger:          params.Logger.With(slog.String("pipeline", string(entity.PipelineReconcile))),
		now:             time.Now,
	}
}

func (p *reconcilePipeline) Name() entity.Pipeline {
	return entity.PipelineReconcile
}

// Run matches recent pool listings against master properties. Unmatched
// listings create a property with its pool, matched ones refresh the property
// position and gain a pool when they have none. Removed listings that match a
// property are flagged as removed.
func (p *reconcilePipeline) Run(ctx context.Context, req usecase.RunRequest) (*entity.RunSummary, error) {
	runAt := p.now().UTC()
	summary := entity.NewRunSummary(entity.PipelineReconcile, req.RunID, runAt)

	fresh, err := p.listings.FindNewPoolListings(ctx, runAt.AddDate(0, 0, -p.lookback))
	if err != nil {
		return finishRun(summary, p.now, errors.Wrap(err, "failed to load new pool listings"))
	}
	removed, err := p.listings.FindRemovedPoolListings(ctx, runAt.AddDate(0, 0, -p.removalLookback))
	if err != nil {
		return finishRun(summary, p.now, errors.Wrap(err, "failed to load removed pool listings"))
	}
	summary.RowsIn = len(fresh) + len(removed)

	plan, err := p.match(ctx, fresh, removed, runAt, summary)
	if err != nil {
		return finishRun(summary, p.now, err)
	}

	if len(plan.matched)+len(plan.unmatched)+len(plan.removals) == 0 {
		p.logger.LogAttrs(ctx, slog.LevelInfo, "Nothing to reconcile")

		return finishRun(summary, p.now, nil)
	}

	var res *reconcileResult
	for attempt := 1; ; attempt++ {
		res, err = p.apply(ctx, plan)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateKey) || attempt == maxPromotionAttempts {
			return finishRun(summary, p.now, errors.Join(domainerrors.ErrPersistFailed, err))
		}
		p.logger.LogAttrs(ctx, slog.LevelWarn, "Address id collision, retrying reconciliation",
			slog.Int("attempt", attempt),
		)
	}

	summary.Count("properties_created", res.propertiesCreated)
	summary.Count("locations_updated", res.locationsUpdated)
	summary.Count("pools_inserted", res.poolsInserted)
	summary.Count("listings_upserted", res.listingsUpserted)
	summary.Count("removals_updated", res.removals.Updated)
	summary.Count("removals_not_found", res.removals.NotFound)
	summary.Count("removals_already_removed", res.removals.AlreadyRemoved)
	summary.RowsOut = len(plan.matched) + len(plan.unmatched) + len(plan.removals)

	p.logger.LogAttrs(ctx, slog.LevelInfo, "Reconciliation finished",
		slog.Int("matched", len(plan.matched)),
		slog.Int("created", res.propertiesCreated),
		slog.Int("pools", res.poolsInserted),
		slog.Int("removed", res.removals.Updated),
	)

	return finishRun(summary, p.now, nil)
}

func (p *reconcilePipeline) match(ctx context.Context, fresh, removed []*entity.StoredListing, runAt time.Time, summary *entity.RunSummary) (*reconcilePlan, error) {
	plan := &reconcilePlan{}

	for _, l := range fresh {
		res, err := p.matcher.Match(ctx, matchInput(l))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to match listing %s", l.MLSID)
		}
		summary.Matches[string(res.Strategy)]++

		if res.Matched() {
			plan.matched = append(plan.matched, matchedListing{listing: l, property: res.Property})

			continue
		}

		switch {
		case strings.TrimSpace(l.AddressNumber) == "":
			summary.Drop(dropMissingAddressNumber, 1)
		case !usableCoordinates(l.Coordinates):
			summary.Drop(dropMissingCoordinates, 1)
		default:
			plan.unmatched = append(plan.unmatched, l)
		}
	}
	summary.RecordStage(stageMatchNew, len(fresh), len(plan.matched)+len(plan.unmatched))

	for _, l := range removed {
		res, err := p.matcher.Match(ctx, matchInput(l))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to match removed listing %s", l.MLSID)
		}
		summary.Matches[string(res.Strategy)]++

		if !res.Matched() {
			summary.Drop(dropUnmatchedRemoval, 1)
			p.logger.LogAttrs(ctx, slog.LevelWarn, "Removed listing has no property match",
				slog.String("mlsId", l.MLSID),
			)

			continue
		}

		removalDate := runAt
		if l.RemovalDate != nil {
			removalDate = *l.RemovalDate
		}
		plan.removals = append(plan.removals, entity.ListingRemoval{MLSID: l.MLSID, RemovalDate: removalDate})
	}
	summary.RecordStage(stageMatchRemoved, len(removed), len(plan.removals))

	p.logger.LogAttrs(ctx, slog.LevelInfo, "Matched pool listings",
		slog.Int("new", len(fresh)),
		slog.Int("matched", len(plan.matched)),
		slog.Int("unmatched", len(plan.unmatched)),
		slog.Int("removed", len(removed)),
		slog.Int("removalsMatched", len(plan.removals)),
	)

	return plan, nil
}

// apply writes the plan in one master transaction. Unmatched listings sharing
// an address create a single property.
func (p *reconcilePipeline) apply(ctx context.Context, plan *reconcilePlan) (*reconcileResult, error) {
	out := &reconcileResult{}

	err := p.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		props := f.NewPropertyRepository()

		newProps, owners, byKey, err := p.newProperties(plan.unmatched)
		if err != nil {
			return err
		}
		if len(newProps) > 0 {
			if err := props.InsertProperties(ctx, newProps); err != nil {
				return errors.Wrap(err, "failed to insert properties")
			}
		}
		out.propertiesCreated = len(newProps)

		var pools []*entity.Pool
		for i, prop := range newProps {
			pools = append(pools, &entity.Pool{PropertyID: prop.ID, PoolType: owners[i].PoolType})
		}

		poolRepo := f.NewPoolRepository()
		withPool := map[string]bool{}
		for _, m := range plan.matched {
			if usableCoordinates(m.listing.Coordinates) {
				if err := props.UpdatePropertyLocation(ctx, m.property.ID, *m.listing.Coordinates); err != nil {
					return errors.Wrap(err, "failed to update property location")
				}
				out.locationsUpdated++
			}

			if _, seen := withPool[m.property.ID]; seen {
				continue
			}
			has, err := poolRepo.HasPool(ctx, m.property.ID)
			if err != nil {
				return errors.Wrap(err, "failed to check property pool")
			}
			withPool[m.property.ID] = true
			if !has {
				pools = append(pools, &entity.Pool{PropertyID: m.property.ID, PoolType: m.listing.PoolType})
			}
		}
		if len(pools) > 0 {
			if out.poolsInserted, err = poolRepo.InsertPools(ctx, pools); err != nil {
				return errors.Wrap(err, "failed to insert pools")
			}
		}

		links := make([]*entity.MasterListing, 0, len(plan.matched)+len(plan.unmatched))
		for _, m := range plan.matched {
			links = append(links, masterListing(m.listing, m.property.AddressID))
		}
		for _, l := range plan.unmatched {
			links = append(links, masterListing(l, byKey[propertyKey(l)].AddressID))
		}

		listingRepo := f.NewMasterListingRepository()
		if len(links) > 0 {
			if out.listingsUpserted, err = listingRepo.UpsertListings(ctx, links); err != nil {
				return errors.Wrap(err, "failed to upsert listings")
			}
		}
		if len(plan.removals) > 0 {
			if out.removals, err = listingRepo.MarkListingsRemoved(ctx, plan.removals); err != nil {
				return errors.Wrap(err, "failed to mark listings removed")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// newProperties builds one property per distinct address among unmatched
// listings. owners[i] is the listing that created newProps[i].
func (p *reconcilePipeline) newProperties(unmatched []*entity.StoredListing) ([]*entity.Property, []*entity.StoredListing, map[string]*entity.Property, error) {
	byKey := map[string]*entity.Property{}
	var (
		newProps []*entity.Property
		owners   []*entity.StoredListing
	)

	for _, l := range unmatched {
		key := propertyKey(l)
		if _, dup := byKey[key]; dup {
			continue
		}

		addressID, err := p.newAddressID()
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "failed to generate address id")
		}
		coords := *l.Coordinates
		prop := &entity.Property{
			ID:            p.newPropertyID(),
			AddressID:     addressID,
			AddressNumber: strings.TrimSpace(l.AddressNumber),
			StreetName:    streetName(l),
			Municipality:  l.Municipality,
			ProvinceState: l.ProvinceState,
			PostalCode:    address.CanonicalPostalCode(l.PostalCode),
			Country:       "Canada",
			Coordinates:   &coords,
		}
		byKey[key] = prop
		newProps = append(newProps, prop)
		owners = append(owners, l)
	}

	return newProps, owners, byKey, nil
}

func propertyKey(l *entity.StoredListing) string {
	place := address.CanonicalPostalCode(l.PostalCode)
	if place == "" {
		place = strings.ToUpper(strings.TrimSpace(l.Municipality))
	}

	return strings.Join([]string{
		strings.TrimSpace(l.AddressNumber),
		strings.ToUpper(streetName(l)),
		place,
	}, "|")
}

// streetName drops a leading civic number equal to the listing's address
// number. Rows loaded before street names were split still carry it.
func streetName(l *entity.StoredListing) string {
	street := strings.TrimSpace(l.StreetName)
	number := strings.TrimSpace(l.AddressNumber)
	if number == "" {
		return street
	}
	if rest, ok := strings.CutPrefix(street, number+" "); ok {
		return strings.TrimSpace(rest)
	}

	return street
}

func matchInput(l *entity.StoredListing) usecase.MatchInput {
	return usecase.MatchInput{
		AddressNumber: l.AddressNumber,
		StreetName:    streetName(l),
		PostalCode:    l.PostalCode,
		Municipality:  l.Municipality,
		Coordinates:   l.Coordinates,
	}
}

func masterListing(l *entity.StoredListing, addressID int64) *entity.MasterListing {
	var price *int64
	if l.Price.Valid {
		v := l.Price.Decimal.IntPart()
		price = &v
	}

	return &entity.MasterListing{
		MLSID:                l.MLSID,
		PropertyAddressID:    addressID,
		Bathrooms:            l.Bathrooms,
		Bedrooms:             l.Bedrooms,
		DateCollected:        l.CollectedAt,
		Description:          l.Description,
		HouseCategory:        l.HouseCategory,
		ListingAddressNumber: l.AddressNumber,
		Price:                price,
		SizeSqft:             l.SizeSqft,
		Stories:              l.Stories,
	}
}

func usableCoordinates(c *entity.Coordinates) bool {
	return c != nil && c.InRange() && !c.IsZero()
}
