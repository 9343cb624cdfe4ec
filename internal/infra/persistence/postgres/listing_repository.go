package postgres

import (
	"context"
	"sort"
	"time"

	"poolscout/internal/domain/entity"
	"poolscout/internal/domain/repository"
	"poolscout/internal/errors"
	"poolscout/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const (
	listingBatchSize  = 1000
	sightingBatchSize = 1000
)

const insertNewListingsSQL = `
INSERT INTO listing (` + listingColumns + `)
SELECT ` + listingColumns + `
FROM listing_staging s
WHERE NOT EXISTS (
    SELECT 1 FROM listing l WHERE l.mls_id = s.mls_id
)`

const listingColumns = "mls_id, date_collected, description, bedrooms, bathrooms, " +
	"size_sqft, stories, house_cat, price, address_number, street_name, " +
	"full_street_name, municipality, province_state, postal_code, " +
	"pool_mentioned, pool_type, lat, lon"

const detectRemovalsSQL = `
WITH removed_from_areas AS (
    SELECT DISTINCT lsl.mls_id, lsl.search_location
    FROM listing_search_location lsl
    WHERE lsl.search_location IN ?
      AND lsl.last_seen < ?
)
INSERT INTO listing_removal (mls_id, removal_date, search_location)
SELECT rfa.mls_id, ?, rfa.search_location
FROM removed_from_areas rfa
WHERE NOT EXISTS (
    SELECT 1 FROM listing_removal lr
    WHERE lr.mls_id = rfa.mls_id
      AND lr.search_location = rfa.search_location
)`

// A staged listing relists a removed one when at least two of street,
// municipality and postal code agree and the price moved.
const detectRelistingsSQL = `
WITH removed_history AS (
    SELECT l.*
    FROM listing l
    JOIN listing_removal r ON r.mls_id = l.mls_id
),
relisted_candidates AS (
    SELECT
        oh.mls_id AS old_mls_id,
        s.mls_id AS new_mls_id,
        s.date_collected AS re_list_date,
        s.price - oh.price AS price_change,
        (CASE WHEN s.street_name = oh.street_name THEN 1 ELSE 0 END +
         CASE WHEN s.municipality = oh.municipality THEN 1 ELSE 0 END +
         CASE WHEN s.postal_code = oh.postal_code THEN 1 ELSE 0 END) AS match_score
    FROM listing_staging s
    JOIN removed_history oh ON (
        s.street_name = oh.street_name OR
        s.municipality = oh.municipality OR
        s.postal_code = oh.postal_code
    )
    WHERE s.mls_id <> oh.mls_id
)
INSERT INTO re_listing (mls_id, re_listing_id, re_list_date, price_change)
SELECT rc.old_mls_id, rc.new_mls_id, rc.re_list_date, rc.price_change
FROM relisted_candidates rc
WHERE rc.match_score >= 2
  AND rc.price_change IS NOT NULL
  AND rc.price_change <> 0
  AND NOT EXISTS (
      SELECT 1 FROM re_listing r
      WHERE r.mls_id = rc.old_mls_id
        AND r.re_listing_id = rc.new_mls_id
  )`

const poolListingColumns = `
    l.mls_id,
    COALESCE(l.address_number::text, '') AS address_number,
    COALESCE(l.street_name, '') AS street_name,
    COALESCE(l.municipality, '') AS municipality,
    COALESCE(l.province_state, '') AS province_state,
    COALESCE(l.postal_code, '') AS postal_code,
    l.lat,
    l.lon,
    l.date_collected,
    COALESCE(l.description, '') AS description,
    l.bedrooms,
    l.bathrooms,
    l.size_sqft,
    l.stories,
    COALESCE(l.house_cat, '') AS house_cat,
    l.price,
    COALESCE(l.pool_type, 'none') AS pool_type,
    l.pool_mentioned`

const findNewPoolListingsSQL = `
SELECT` + poolListingColumns + `
FROM listing l
WHERE l.date_collected >= ?
  AND l.pool_mentioned = true
ORDER BY l.date_collected DESC`

// A listing removed from several search locations is reported once, with
// its latest removal date.
const findRemovedPoolListingsSQL = `
SELECT DISTINCT ON (l.mls_id)` + poolListingColumns + `,
    lr.removal_date
FROM listing l
JOIN listing_removal lr ON lr.mls_id = l.mls_id
WHERE lr.removal_date >= ?
  AND l.pool_mentioned = true
ORDER BY l.mls_id, lr.removal_date DESC`

// listingRepository implements the domain.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// FindSearchLocations lists every queried area in a stable order.
func (repo *listingRepository) FindSearchLocations(ctx context.Context) ([]entity.SearchLocation, error) {
	var rows []model.SearchLocationModel
	if err := repo.db.WithContext(ctx).
		Order("country_code, province_state, search_area").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find search locations")
	}

	locations := make([]entity.SearchLocation, 0, len(rows))
	for _, r := range rows {
		locations = append(locations, entity.SearchLocation{
			CountryCode:   r.CountryCode,
			ProvinceState: r.ProvinceState,
			SearchArea:    r.SearchArea,
		})
	}

	return locations, nil
}

// StageListings truncates the staging table and bulk inserts rows.
func (repo *listingRepository) StageListings(ctx context.Context, rows []*entity.ListingRow) (int, error) {
	db := repo.db.WithContext(ctx)
	if err := db.Exec("TRUNCATE TABLE listing_staging").Error; err != nil {
		return 0, errors.Wrap(err, "failed to truncate listing staging")
	}
	if len(rows) == 0 {
		return 0, nil
	}

	models := make([]*model.ListingStagingModel, 0, len(rows))
	for _, r := range rows {
		models = append(models, fromListingRow(r))
	}

	if err := db.CreateInBatches(models, listingBatchSize).Error; err != nil {
		return 0, writeError(err, "failed to stage listings")
	}

	return len(models), nil
}

// InsertNewListings copies staged listings whose MLS id is not stored yet.
func (repo *listingRepository) InsertNewListings(ctx context.Context) (int, error) {
	result := repo.db.WithContext(ctx).Exec(insertNewListingsSQL)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to insert new listings")
	}

	return int(result.RowsAffected), nil
}

// RecordSightings upserts last-seen timestamps for stored listings.
func (repo *listingRepository) RecordSightings(ctx context.Context, sightings []entity.Sighting, seenAt time.Time) (int, error) {
	unique := uniqueSightings(sightings)
	total := 0

	for start := 0; start < len(unique); start += sightingBatchSize {
		end := min(start+sightingBatchSize, len(unique))
		batch := unique[start:end]

		args := make([]any, 0, 2+len(batch)*2)
		args = append(args, seenAt, seenAt)
		for _, s := range batch {
			args = append(args, s.MLSID, s.SearchLocation)
		}

		sql := `INSERT INTO listing_search_location (mls_id, search_location, first_seen, last_seen)
SELECT v.mls_id, v.search_location, ?, ?
FROM (VALUES ` + tuples("(?, ?)", len(batch)) + `) AS v(mls_id, search_location)
WHERE EXISTS (SELECT 1 FROM listing l WHERE l.mls_id = v.mls_id)
ON CONFLICT (mls_id, search_location) DO UPDATE SET last_seen = EXCLUDED.last_seen`

		result := repo.db.WithContext(ctx).Exec(sql, args...)
		if result.Error != nil {
			return total, errors.Wrap(result.Error, "failed to record sightings")
		}
		total += int(result.RowsAffected)
	}

	return total, nil
}

// DetectRemovals records listings not seen in queried locations since runAt.
func (repo *listingRepository) DetectRemovals(ctx context.Context, queried []string, runAt time.Time) (int, error) {
	if len(queried) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).Exec(detectRemovalsSQL, queried, runAt, runAt)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to detect removed listings")
	}

	return int(result.RowsAffected), nil
}

// DetectRelistings records removed listings reappearing under a new MLS id.
func (repo *listingRepository) DetectRelistings(ctx context.Context) (int, error) {
	result := repo.db.WithContext(ctx).Exec(detectRelistingsSQL)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to detect relistings")
	}

	return int(result.RowsAffected), nil
}

// FindNewPoolListings returns pool listings collected since the cutoff.
func (repo *listingRepository) FindNewPoolListings(ctx context.Context, since time.Time) ([]*entity.StoredListing, error) {
	var rows []model.PoolListingRow
	if err := repo.db.WithContext(ctx).Raw(findNewPoolListingsSQL, since).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find new pool listings")
	}

	return toStoredListings(rows), nil
}

// FindRemovedPoolListings returns pool listings removed since the cutoff.
func (repo *listingRepository) FindRemovedPoolListings(ctx context.Context, since time.Time) ([]*entity.StoredListing, error) {
	var rows []model.PoolListingRow
	if err := repo.db.WithContext(ctx).Raw(findRemovedPoolListingsSQL, since).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find removed pool listings")
	}

	return toStoredListings(rows), nil
}

// --- Helper Functions ---

// uniqueSightings drops repeated pairs; an upsert may not touch a row twice.
func uniqueSightings(sightings []entity.Sighting) []entity.Sighting {
	seen := make(map[entity.Sighting]struct{}, len(sightings))
	out := make([]entity.Sighting, 0, len(sightings))
	for _, s := range sightings {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MLSID != out[j].MLSID {
			return out[i].MLSID < out[j].MLSID
		}

		return out[i].SearchLocation < out[j].SearchLocation
	})

	return out
}

// --- Mapper Functions ---

// fromListingRow converts a prepared listing to a staging model.
func fromListingRow(r *entity.ListingRow) *model.ListingStagingModel {
	return &model.ListingStagingModel{
		MLSID:          r.MLSID,
		DateCollected:  r.DateCollected,
		Description:    r.Description,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		SizeSqft:       r.SizeSqft,
		Stories:        r.Stories,
		HouseCategory:  r.HouseCategory,
		Price:          r.Price,
		AddressNumber:  r.AddressNumber,
		StreetName:     r.StreetName,
		FullStreetName: r.FullStreetName,
		Municipality:   r.Municipality,
		ProvinceState:  r.ProvinceState,
		PostalCode:     r.PostalCode,
		PoolMentioned:  r.PoolMentioned,
		PoolType:       string(r.PoolType),
		Lat:            r.Lat,
		Lon:            r.Lon,
	}
}

// toStoredListings converts pool listing rows to domain entities.
func toStoredListings(rows []model.PoolListingRow) []*entity.StoredListing {
	out := make([]*entity.StoredListing, 0, len(rows))
	for _, r := range rows {
		poolType := entity.PoolType(r.PoolType)
		if poolType == "" {
			poolType = entity.PoolTypeNone
		}
		out = append(out, &entity.StoredListing{
			MLSID:         r.MLSID,
			AddressNumber: r.AddressNumber,
			StreetName:    r.StreetName,
			Municipality:  r.Municipality,
			ProvinceState: r.ProvinceState,
			PostalCode:    r.PostalCode,
			Coordinates:   entity.NewCoordinates(r.Lat, r.Lon),
			CollectedAt:   r.DateCollected,
			Description:   r.Description,
			Bedrooms:      r.Bedrooms,
			Bathrooms:     r.Bathrooms,
			SizeSqft:      r.SizeSqft,
			Stories:       r.Stories,
			HouseCategory: r.HouseCat,
			Price:         r.Price,
			PoolType:      poolType,
			PoolMentioned: r.PoolMentioned,
			RemovalDate:   r.RemovalDate,
		})
	}

	return out
}
