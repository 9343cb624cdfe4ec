package repository

import (
	"context"

	"poolscout/internal/domain/entity"
)

// StageRepository defines the operations on the staging store, where open-data
// pools wait with their nearest address until promotion to the master store.
type StageRepository interface {
	// InsertPools persists pool observations and fills in their generated ids.
	InsertPools(ctx context.Context, pools []*entity.StagePool) error

	// InsertAddresses persists reverse-geocoded addresses and fills in their generated ids.
	InsertAddresses(ctx context.Context, addresses []*entity.StageAddress) error

	// AssignNearestAddresses links each pool to its nearest staged address.
	AssignNearestAddresses(ctx context.Context, poolIDs []int64) ([]*entity.Assignment, error)

	// FindPendingAssignments returns assignments not uploaded yet, joined with
	// their pool and address.
	FindPendingAssignments(ctx context.Context) ([]*entity.StagedAddress, error)

	// MarkUploaded flags assignments as promoted and returns the number updated.
	MarkUploaded(ctx context.Context, assignmentIDs []int64) (int, error)
}
