package postgres

import (
	"context"

	"poolscout/internal/domain/entity"
	"poolscout/internal/domain/repository"
	"poolscout/internal/errors"
	"poolscout/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const stageBatchSize = 500

// stageAddressTuple casts coordinates so the geometry expression type-checks.
const stageAddressTuple = "(?, ?, ?, ?, ?, ?, ?::double precision, ?::double precision)"

// Each pool is linked to the closest staged address by KNN on the geometry
// index; the stored distance is measured on the spheroid.
const assignNearestAddressesSQL = `
INSERT INTO assignment (pool_id, address_id, distance_meters, uploaded)
SELECT p.id, a.id,
    ST_Distance(ST_SetSRID(ST_MakePoint(p.lon, p.lat), 4326)::geography, a.geom::geography),
    FALSE
FROM pool p
CROSS JOIN LATERAL (
    SELECT ad.id, ad.geom
    FROM address ad
    WHERE ad.geom IS NOT NULL
    ORDER BY ad.geom <-> ST_SetSRID(ST_MakePoint(p.lon, p.lat), 4326)
    LIMIT 1
) a
WHERE p.id IN ?
RETURNING id, pool_id, address_id, distance_meters, uploaded`

const findPendingAssignmentsSQL = `
SELECT
    a.id AS assignment_id,
    a.pool_id,
    COALESCE(ad.address_number, '') AS address_number,
    COALESCE(ad.street_name, '') AS street_name,
    COALESCE(ad.municipality, '') AS municipality,
    COALESCE(ad.province_state, '') AS province_state,
    COALESCE(ad.postal_code, '') AS postal_code,
    COALESCE(ad.country, '') AS country,
    ad.lat,
    ad.lon
FROM assignment a
JOIN address ad ON ad.id = a.address_id
WHERE a.uploaded = FALSE OR a.uploaded IS NULL
ORDER BY a.id`

// stageRepository implements the domain.StageRepository interface.
type stageRepository struct {
	db *gorm.DB
}

// NewStageRepository is the constructor for stageRepository.
func NewStageRepository(db *gorm.DB) repository.StageRepository {
	return &stageRepository{db: db}
}

// InsertPools persists pool observations and copies the generated ids back.
func (repo *stageRepository) InsertPools(ctx context.Context, pools []*entity.StagePool) error {
	if len(pools) == 0 {
		return nil
	}

	models := make([]*model.StagePoolModel, 0, len(pools))
	for _, p := range pools {
		models = append(models, &model.StagePoolModel{
			Lat:      p.Position.Lat,
			Lon:      p.Position.Lon,
			PoolType: p.Access,
			OSMID:    p.OSMID,
		})
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(models, stageBatchSize).Error; err != nil {
		return writeError(err, "failed to insert stage pools")
	}

	for i, m := range models {
		pools[i].ID = m.ID
	}

	return nil
}

// InsertAddresses persists addresses with their point geometry and copies the
// generated ids back in insertion order.
func (repo *stageRepository) InsertAddresses(ctx context.Context, addresses []*entity.StageAddress) error {
	for start := 0; start < len(addresses); start += stageBatchSize {
		batch := addresses[start:min(start+stageBatchSize, len(addresses))]

		args := make([]any, 0, len(batch)*8)
		for _, a := range batch {
			var lat, lon *float64
			if a.Coordinates != nil {
				lat, lon = &a.Coordinates.Lat, &a.Coordinates.Lon
			}
			args = append(args,
				a.AddressNumber, a.StreetName, a.Municipality, a.ProvinceState,
				a.PostalCode, a.Country, lat, lon,
			)
		}

		sql := `INSERT INTO address (address_number, street_name, municipality, province_state,
    postal_code, country, lat, lon, geom)
SELECT v.address_number, v.street_name, v.municipality, v.province_state,
    v.postal_code, v.country, v.lat, v.lon,
    CASE WHEN v.lat IS NULL OR v.lon IS NULL THEN NULL
         ELSE ST_SetSRID(ST_MakePoint(v.lon, v.lat), 4326) END
FROM (VALUES ` + tuples(stageAddressTuple, len(batch)) + `)
    AS v(address_number, street_name, municipality, province_state, postal_code, country, lat, lon)
RETURNING id`

		var ids []int64
		if err := repo.db.WithContext(ctx).Raw(sql, args...).Scan(&ids).Error; err != nil {
			return writeError(err, "failed to insert stage addresses")
		}
		if len(ids) != len(batch) {
			return errors.Errorf("inserted %d stage addresses, expected %d", len(ids), len(batch))
		}
		for i, id := range ids {
			batch[i].ID = id
		}
	}

	return nil
}

// AssignNearestAddresses links the given pools to their nearest staged address.
func (repo *stageRepository) AssignNearestAddresses(ctx context.Context, poolIDs []int64) ([]*entity.Assignment, error) {
	if len(poolIDs) == 0 {
		return nil, nil
	}

	var rows []model.AssignmentModel
	if err := repo.db.WithContext(ctx).Raw(assignNearestAddressesSQL, poolIDs).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to assign nearest addresses")
	}

	assignments := make([]*entity.Assignment, 0, len(rows))
	for _, r := range rows {
		assignments = append(assignments, &entity.Assignment{
			ID:             r.ID,
			PoolID:         r.PoolID,
			AddressID:      r.AddressID,
			DistanceMeters: r.DistanceMeters,
			Uploaded:       r.Uploaded != nil && *r.Uploaded,
		})
	}

	return assignments, nil
}

// FindPendingAssignments returns assignments not uploaded yet with their address.
func (repo *stageRepository) FindPendingAssignments(ctx context.Context) ([]*entity.StagedAddress, error) {
	var rows []model.PendingAssignmentRow
	if err := repo.db.WithContext(ctx).Raw(findPendingAssignmentsSQL).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending assignments")
	}

	out := make([]*entity.StagedAddress, 0, len(rows))
	for _, r := range rows {
		out = append(out, &entity.StagedAddress{
			AssignmentID:  r.AssignmentID,
			PoolID:        r.PoolID,
			AddressNumber: r.AddressNumber,
			StreetName:    r.StreetName,
			Municipality:  r.Municipality,
			ProvinceState: r.ProvinceState,
			PostalCode:    r.PostalCode,
			Country:       r.Country,
			Coordinates:   entity.NewCoordinates(r.Lat, r.Lon),
		})
	}

	return out, nil
}

// MarkUploaded flags assignments as promoted to the master store.
func (repo *stageRepository) MarkUploaded(ctx context.Context, assignmentIDs []int64) (int, error) {
	if len(assignmentIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AssignmentModel{}).
		Where("id IN ?", assignmentIDs).
		Update("uploaded", true)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark assignments uploaded")
	}

	return int(result.RowsAffected), nil
}
