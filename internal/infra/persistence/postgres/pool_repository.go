package postgres

import (
	"context"

	"poolscout/internal/domain/entity"
	"poolscout/internal/domain/repository"
	"poolscout/internal/errors"
	"poolscout/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// poolRepository implements the domain.PoolRepository interface.
type poolRepository struct {
	db *gorm.DB
}

// NewPoolRepository is the constructor for poolRepository.
func NewPoolRepository(db *gorm.DB) repository.PoolRepository {
	return &poolRepository{db: db}
}

// InsertPools persists pools, skipping source pool ids that are already stored.
func (repo *poolRepository) InsertPools(ctx context.Context, pools []*entity.Pool) (int, error) {
	if len(pools) == 0 {
		return 0, nil
	}

	models := make([]*model.PoolModel, 0, len(pools))
	for _, p := range pools {
		m, err := fromPoolEntity(p)
		if err != nil {
			return 0, err
		}
		models = append(models, m)
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "source_pool_id"}},
			DoNothing: true,
		}).
		CreateInBatches(&models, masterBatchSize)
	if result.Error != nil {
		return 0, writeError(result.Error, "failed to insert pools")
	}

	for i, m := range models {
		pools[i].ID = m.ID.String()
	}

	return int(result.RowsAffected), nil
}

// HasPool reports whether any pool references the property.
func (repo *poolRepository) HasPool(ctx context.Context, propertyID string) (bool, error) {
	var exists bool
	err := repo.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM pools WHERE property_id = ?)", propertyID).
		Scan(&exists).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check property pool")
	}

	return exists, nil
}

// --- Mapper Functions ---

func fromPoolEntity(p *entity.Pool) (*model.PoolModel, error) {
	propertyID, err := uuid.Parse(p.PropertyID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid property id %q", p.PropertyID)
	}

	id := uuid.New()
	if p.ID != "" {
		if id, err = uuid.Parse(p.ID); err != nil {
			return nil, errors.Wrapf(err, "invalid pool id %q", p.ID)
		}
	}

	poolType := p.PoolType
	if poolType == "" {
		poolType = entity.PoolTypeNone
	}

	return &model.PoolModel{
		ID:           id,
		PropertyID:   propertyID,
		PoolType:     string(poolType),
		SourcePoolID: p.SourcePoolID,
	}, nil
}
