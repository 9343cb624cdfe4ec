package impl

import (
	"context"
	"testing"
	"time"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/domain/repository"
	"poolscout/internal/errors"
	mockRepo "poolscout/internal/mocks/repository"
	"poolscout/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stagePipelineMocks struct {
	stage   *mockRepo.MockStageRepository
	tx      *mockRepo.MockTransactionManager
	factory *mockRepo.MockRepositoryFactory
	props   *mockRepo.MockPropertyRepository
	pools   *mockRepo.MockPoolRepository
}

func newTestStagePipeline(t *testing.T) (*stagePipeline, *stagePipelineMocks) {
	t.Helper()

	m := &stagePipelineMocks{
		stage:   mockRepo.NewMockStageRepository(t),
		tx:      mockRepo.NewMockTransactionManager(t),
		factory: mockRepo.NewMockRepositoryFactory(t),
		props:   mockRepo.NewMockPropertyRepository(t),
		pools:   mockRepo.NewMockPoolRepository(t),
	}

	p, ok := NewStagePipeline(StagePipelineParams{
		Stage:     m.stage,
		TxManager: m.tx,
		Config:    &config.Config{Dedup: &config.DedupConfig{BufferKm: 5}},
		Logger:    discardLogger(),
	}).(*stagePipeline)
	require.True(t, ok)
	p.now = func() time.Time { return testRunAt }

	return p, m
}

func (m *stagePipelineMocks) expectTransactions(times int) {
	m.tx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Times(times)
	m.factory.EXPECT().NewPropertyRepository().Return(m.props).Times(times)
}

func stagedRow(assignmentID, poolID int64, number, street, municipality, postal string) *entity.StagedAddress {
	return &entity.StagedAddress{
		AssignmentID:  assignmentID,
		PoolID:        poolID,
		AddressNumber: number,
		StreetName:    street,
		Municipality:  municipality,
		PostalCode:    postal,
		ProvinceState: "NB",
		Country:       "Canada",
		Coordinates:   &entity.Coordinates{Lat: 46.05, Lon: -64.75},
	}
}

func TestStagePipeline_Run(t *testing.T) {
	p, m := newTestStagePipeline(t)
	ctx := context.Background()

	m.stage.EXPECT().FindPendingAssignments(ctx).Return([]*entity.StagedAddress{
		stagedRow(1, 11, "12", "elm st", "moncton", "e1c 4b4"),
		stagedRow(2, 12, "12", "Elm St", "Moncton", ""),
		stagedRow(3, 13, "5", "Oak Ave", "Moncton", "E1C1A1"),
		stagedRow(4, 14, "", "Pine Rd", "Moncton", "E1C1A2"),
	}, nil).Once()

	m.expectTransactions(1)
	m.factory.EXPECT().NewPoolRepository().Return(m.pools).Once()
	m.props.EXPECT().
		FindPropertiesWithinBound(ctx, mock.AnythingOfType("orb.Bound")).
		Return([]*entity.Property{{ID: "p-oak", AddressID: 77, AddressNumber: "5", StreetName: "OAK AVE", Municipality: "moncton"}}, nil).
		Once()
	m.props.EXPECT().
		InsertProperties(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, props []*entity.Property) error {
			require.Len(t, props, 1)
			assert.Equal(t, "Elm St", props[0].StreetName)
			assert.Equal(t, "E1C4B4", props[0].PostalCode)
			assert.NotZero(t, props[0].AddressID)
			props[0].ID = "p-new"

			return nil
		}).
		Once()
	m.pools.EXPECT().
		InsertPools(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, pools []*entity.Pool) (int, error) {
			require.Len(t, pools, 3)
			owners := map[int64]string{}
			for _, pool := range pools {
				owners[*pool.SourcePoolID] = pool.PropertyID
				assert.Equal(t, entity.PoolTypeNone, pool.PoolType)
			}
			assert.Equal(t, map[int64]string{11: "p-new", 12: "p-new", 13: "p-oak"}, owners)

			return len(pools), nil
		}).
		Once()
	m.stage.EXPECT().MarkUploaded(ctx, []int64{1, 2, 3}).Return(3, nil).Once()

	summary, err := p.Run(ctx, usecase.RunRequest{RunID: "stage-1"})
	require.NoError(t, err)

	assert.Equal(t, 4, summary.RowsIn)
	assert.Equal(t, 3, summary.RowsOut)
	assert.Equal(t, 1, summary.Dropped[dropInvalidRecord])
	assert.Equal(t, summary.RowsIn, summary.RowsOut+summary.TotalDropped())
	assert.Equal(t, 1, summary.Counters["properties_created"])
	assert.Equal(t, 1, summary.Counters["master_duplicates"])
	assert.Equal(t, 1, summary.Counters["internal_duplicates"])
	assert.Equal(t, 3, summary.Counters["assignments_uploaded"])
	assert.Len(t, summary.Stages, 4)
}

func TestStagePipeline_Run_RetriesAddressIDCollision(t *testing.T) {
	p, m := newTestStagePipeline(t)
	ctx := context.Background()

	m.stage.EXPECT().FindPendingAssignments(ctx).Return([]*entity.StagedAddress{
		stagedRow(1, 11, "12", "Elm St", "Moncton", "E1C4B4"),
	}, nil).Once()

	m.expectTransactions(2)
	m.factory.EXPECT().NewPoolRepository().Return(m.pools).Once()
	m.props.EXPECT().FindPropertiesWithinBound(ctx, mock.Anything).Return(nil, nil).Times(2)
	m.props.EXPECT().
		InsertProperties(ctx, mock.Anything).
		Return(errors.Wrap(repository.ErrDuplicateKey, "properties_address_id_key")).
		Once()
	m.props.EXPECT().
		InsertProperties(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, props []*entity.Property) error {
			props[0].ID = "p-1"

			return nil
		}).
		Once()
	m.pools.EXPECT().InsertPools(ctx, mock.Anything).Return(1, nil).Once()
	m.stage.EXPECT().MarkUploaded(ctx, []int64{1}).Return(1, nil).Once()

	summary, err := p.Run(ctx, usecase.RunRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RowsOut)
}

func TestStagePipeline_Run_InvalidRowsStayPending(t *testing.T) {
	p, m := newTestStagePipeline(t)
	ctx := context.Background()

	invalid := stagedRow(1, 11, "12", "Elm St", "", "")
	m.stage.EXPECT().FindPendingAssignments(ctx).Return([]*entity.StagedAddress{invalid}, nil).Once()
	m.expectTransactions(1)

	summary, err := p.Run(ctx, usecase.RunRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.RowsOut)
	assert.Equal(t, 1, summary.Dropped[dropInvalidRecord])
}

func TestStagePipeline_Run_NothingPending(t *testing.T) {
	p, m := newTestStagePipeline(t)
	ctx := context.Background()

	m.stage.EXPECT().FindPendingAssignments(ctx).Return(nil, nil).Once()

	summary, err := p.Run(ctx, usecase.RunRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.RowsIn)
}

func TestStagePipeline_Run_MasterFailure(t *testing.T) {
	p, m := newTestStagePipeline(t)
	ctx := context.Background()

	m.stage.EXPECT().FindPendingAssignments(ctx).Return([]*entity.StagedAddress{
		stagedRow(1, 11, "12", "Elm St", "Moncton", "E1C4B4"),
	}, nil).Once()
	m.expectTransactions(1)
	m.props.EXPECT().FindPropertiesWithinBound(ctx, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	summary, err := p.Run(ctx, usecase.RunRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPersistFailed))
	assert.True(t, summary.Failed)
}
