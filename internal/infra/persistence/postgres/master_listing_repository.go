package postgres

import (
	"context"

	"poolscout/internal/domain/entity"
	"poolscout/internal/domain/repository"
	"poolscout/internal/errors"
	"poolscout/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const markListingRemovedSQL = `
UPDATE listings
SET is_removed = true, removal_date = ?, updated_at = NOW()
WHERE mls_id = ?
  AND (is_removed = false OR removal_date IS NULL)`

// masterListingRepository implements the domain.MasterListingRepository interface.
type masterListingRepository struct {
	db *gorm.DB
}

// NewMasterListingRepository is the constructor for masterListingRepository.
func NewMasterListingRepository(db *gorm.DB) repository.MasterListingRepository {
	return &masterListingRepository{db: db}
}

// UpsertListings inserts listings and refreshes the mutable columns of stored ones.
func (repo *masterListingRepository) UpsertListings(ctx context.Context, listings []*entity.MasterListing) (int, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	models := make([]*model.MasterListingModel, 0, len(listings))
	for _, l := range listings {
		models = append(models, fromMasterListing(l))
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "mls_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"bathrooms", "bedrooms", "price", "size_sqft", "stories", "description", "updated_at",
			}),
		}).
		CreateInBatches(&models, masterBatchSize)
	if result.Error != nil {
		return 0, writeError(result.Error, "failed to upsert listings")
	}

	return int(result.RowsAffected), nil
}

// MarkListingsRemoved flags each listing as removed. A listing that matched no
// row is counted as already removed when it exists and as not found otherwise.
func (repo *masterListingRepository) MarkListingsRemoved(ctx context.Context, removals []entity.ListingRemoval) (entity.RemovalUpdateResult, error) {
	var res entity.RemovalUpdateResult
	db := repo.db.WithContext(ctx)

	for _, r := range removals {
		result := db.Exec(markListingRemovedSQL, r.RemovalDate, r.MLSID)
		if result.Error != nil {
			return res, errors.Wrapf(result.Error, "failed to mark listing %s removed", r.MLSID)
		}
		if result.RowsAffected > 0 {
			res.Updated++
			continue
		}

		var exists bool
		if err := db.Raw("SELECT EXISTS (SELECT 1 FROM listings WHERE mls_id = ?)", r.MLSID).Scan(&exists).Error; err != nil {
			return res, errors.Wrapf(err, "failed to look up listing %s", r.MLSID)
		}
		if exists {
			res.AlreadyRemoved++
		} else {
			res.NotFound++
		}
	}

	return res, nil
}

// --- Mapper Functions ---

func fromMasterListing(l *entity.MasterListing) *model.MasterListingModel {
	return &model.MasterListingModel{
		MLSID:                l.MLSID,
		PropertyAddressID:    l.PropertyAddressID,
		Bathrooms:            l.Bathrooms,
		Bedrooms:             l.Bedrooms,
		DateCollected:        l.DateCollected,
		Description:          l.Description,
		HouseCat:             l.HouseCategory,
		ListingAddressNumber: l.ListingAddressNumber,
		Price:                l.Price,
		SizeSqft:             l.SizeSqft,
		Stories:              l.Stories,
	}
}
