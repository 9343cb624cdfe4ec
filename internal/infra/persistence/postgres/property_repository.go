package postgres

import (
	"context"

	"poolscout/internal/domain/entity"
	"poolscout/internal/domain/repository"
	"poolscout/internal/errors"
	"poolscout/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

const propertyColumns = `
    p.id,
    p.address_id,
    COALESCE(p.address_number, '') AS address_number,
    COALESCE(p.street_name, '') AS street_name,
    COALESCE(p.municipality, '') AS municipality,
    COALESCE(p.province_state, '') AS province_state,
    COALESCE(p.postal_code, '') AS postal_code,
    COALESCE(p.country, '') AS country,
    p.lat,
    p.lon`

const findPropertiesByPostalCodeSQL = `
SELECT` + propertyColumns + `
FROM properties p
WHERE REPLACE(UPPER(p.postal_code), ' ', '') = ?
ORDER BY p.address_id`

const findNearestPropertySQL = `
SELECT` + propertyColumns + `,
    ST_Distance(p.geom, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography) AS distance_m
FROM properties p
WHERE p.geom IS NOT NULL
  AND ST_DWithin(p.geom, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)
ORDER BY distance_m
LIMIT 1`

const findPropertiesWithinBoundSQL = `
SELECT` + propertyColumns + `
FROM properties p
WHERE p.geom IS NOT NULL
  AND ST_Intersects(p.geom::geometry, ST_MakeEnvelope(?, ?, ?, ?, 4326))
ORDER BY p.address_id`

const updatePropertyLocationSQL = `
UPDATE properties
SET lat = ?, lon = ?, geom = ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
WHERE id = ?`

// masterBatchSize keeps bulk writes to the master store well under the
// 65535 bind parameter limit of a single statement.
const masterBatchSize = 1000

// propertyTuple carries explicit casts; untyped VALUES parameters resolve to text.
const propertyTuple = "(?::uuid, ?::bigint, ?, ?, ?, ?, ?, ?, ?::double precision, ?::double precision)"

// propertyRepository implements the domain.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

// FindPropertiesByPostalCode returns properties sharing the canonical postal code.
func (repo *propertyRepository) FindPropertiesByPostalCode(ctx context.Context, postalCode string) ([]*entity.Property, error) {
	var rows []model.PropertyRow
	if err := repo.db.WithContext(ctx).Raw(findPropertiesByPostalCodeSQL, postalCode).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties by postal code")
	}

	return toProperties(rows), nil
}

// FindNearestProperty returns the closest property within radiusMeters.
func (repo *propertyRepository) FindNearestProperty(ctx context.Context, at entity.Coordinates, radiusMeters float64) (*entity.Property, float64, error) {
	var rows []model.PropertyRow
	err := repo.db.WithContext(ctx).
		Raw(findNearestPropertySQL, at.Lon, at.Lat, at.Lon, at.Lat, radiusMeters).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find nearest property")
	}
	if len(rows) == 0 {
		return nil, 0, repository.ErrPropertyNotFound
	}

	return toProperty(rows[0]), rows[0].DistanceM, nil
}

// FindPropertiesWithinBound returns properties located inside the bound.
func (repo *propertyRepository) FindPropertiesWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Property, error) {
	var rows []model.PropertyRow
	err := repo.db.WithContext(ctx).
		Raw(findPropertiesWithinBoundSQL, bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat()).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find properties within bound")
	}

	return toProperties(rows), nil
}

// InsertProperties persists properties in batches, assigning ids where missing.
func (repo *propertyRepository) InsertProperties(ctx context.Context, properties []*entity.Property) error {
	for _, p := range properties {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
	}

	for start := 0; start < len(properties); start += masterBatchSize {
		batch := properties[start:min(start+masterBatchSize, len(properties))]

		args := make([]any, 0, len(batch)*10)
		for _, p := range batch {
			var lat, lon *float64
			if p.Coordinates != nil {
				lat, lon = &p.Coordinates.Lat, &p.Coordinates.Lon
			}
			args = append(args,
				p.ID, p.AddressID, p.AddressNumber, p.StreetName, p.Municipality,
				p.ProvinceState, p.PostalCode, p.Country, lat, lon,
			)
		}

		sql := `INSERT INTO properties (id, address_id, address_number, street_name, municipality,
    province_state, postal_code, country, lat, lon, geom)
SELECT v.id, v.address_id, v.address_number, v.street_name, v.municipality,
    v.province_state, v.postal_code, v.country, v.lat, v.lon,
    CASE WHEN v.lat IS NULL OR v.lon IS NULL THEN NULL
         ELSE ST_SetSRID(ST_MakePoint(v.lon, v.lat), 4326)::geography END
FROM (VALUES ` + tuples(propertyTuple, len(batch)) + `)
    AS v(id, address_id, address_number, street_name, municipality, province_state, postal_code, country, lat, lon)`

		if err := repo.db.WithContext(ctx).Exec(sql, args...).Error; err != nil {
			return writeError(err, "failed to insert properties")
		}
	}

	return nil
}

// UpdatePropertyLocation overwrites the coordinates and geometry of a property.
func (repo *propertyRepository) UpdatePropertyLocation(ctx context.Context, propertyID string, at entity.Coordinates) error {
	result := repo.db.WithContext(ctx).Exec(updatePropertyLocationSQL, at.Lat, at.Lon, at.Lon, at.Lat, propertyID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update property location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// tuples repeats a parenthesized placeholder tuple n times.
func tuples(tuple string, n int) string {
	out := make([]byte, 0, (len(tuple)+2)*n)
	for i := range n {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = append(out, tuple...)
	}

	return string(out)
}

// --- Mapper Functions ---

func toProperty(r model.PropertyRow) *entity.Property {
	return &entity.Property{
		ID:            r.ID.String(),
		AddressID:     r.AddressID,
		AddressNumber: r.AddressNumber,
		StreetName:    r.StreetName,
		Municipality:  r.Municipality,
		ProvinceState: r.ProvinceState,
		PostalCode:    r.PostalCode,
		Country:       r.Country,
		Coordinates:   entity.NewCoordinates(r.Lat, r.Lon),
	}
}

func toProperties(rows []model.PropertyRow) []*entity.Property {
	out := make([]*entity.Property, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProperty(r))
	}

	return out
}
