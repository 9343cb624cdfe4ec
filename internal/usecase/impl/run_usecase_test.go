package impl

import (
	"context"
	"testing"
	"time"

	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/errors"
	mockService "poolscout/internal/mocks/service"
	mockUsecase "poolscout/internal/mocks/usecase"
	"poolscout/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRunUsecase(t *testing.T, pipelines ...usecase.Pipeline) (*runUsecase, *mockService.MockRunStore, *mockService.MockRunObserver) {
	t.Helper()

	store := mockService.NewMockRunStore(t)
	observer := mockService.NewMockRunObserver(t)

	u, err := newRunUsecase(pipelines, store, observer, discardLogger())
	require.NoError(t, err)
	u.newID = func() string { return "run-1" }
	u.now = func() time.Time { return testRunAt }

	return u, store, observer
}

func namedPipeline(t *testing.T, name entity.Pipeline) *mockUsecase.MockPipeline {
	t.Helper()

	p := mockUsecase.NewMockPipeline(t)
	p.EXPECT().Name().Return(name)

	return p
}

func TestRunUsecase_RunNow(t *testing.T) {
	stage := namedPipeline(t, entity.PipelineStage)
	u, store, observer := newTestRunUsecase(t, stage)
	ctx := context.Background()

	summary := entity.NewRunSummary(entity.PipelineStage, "run-1", testRunAt)
	stage.EXPECT().Run(ctx, usecase.RunRequest{RunID: "run-1"}).Return(summary, nil).Once()
	store.EXPECT().SaveSummary(mock.Anything, summary).Return(nil).Once()
	observer.EXPECT().ObserveRun(summary).Once()

	got, err := u.RunNow(ctx, entity.PipelineStage, usecase.RunRequest{})
	require.NoError(t, err)
	assert.Same(t, summary, got)
	assert.Empty(t, u.running)
}

func TestRunUsecase_RunNow_FailureStillRecorded(t *testing.T) {
	stage := namedPipeline(t, entity.PipelineStage)
	u, store, observer := newTestRunUsecase(t, stage)
	ctx := context.Background()

	runErr := errors.New("boom")
	stage.EXPECT().Run(ctx, mock.Anything).Return(nil, runErr).Once()
	store.EXPECT().
		SaveSummary(mock.Anything, mock.MatchedBy(func(s *entity.RunSummary) bool {
			return s.Failed && s.RunID == "run-1" && len(s.Errors) == 1
		})).
		Return(errors.New("bucket unavailable")).
		Once()
	observer.EXPECT().ObserveRun(mock.Anything).Once()

	summary, err := u.RunNow(ctx, entity.PipelineStage, usecase.RunRequest{})
	require.ErrorIs(t, err, runErr)
	require.NotNil(t, summary)
	assert.True(t, summary.Failed)
}

func TestRunUsecase_UnknownPipeline(t *testing.T) {
	u, _, _ := newTestRunUsecase(t)

	_, err := u.RunNow(context.Background(), entity.Pipeline("weekly"), usecase.RunRequest{})
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownPipeline))

	_, err = u.Trigger(context.Background(), entity.Pipeline("weekly"), usecase.RunRequest{})
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownPipeline))

	_, err = u.Latest(context.Background(), entity.Pipeline("weekly"))
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownPipeline))
}

func TestRunUsecase_Trigger_SingleRunPerPipeline(t *testing.T) {
	osm := namedPipeline(t, entity.PipelineOSM)
	u, store, observer := newTestRunUsecase(t, osm)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	osm.EXPECT().
		Run(mock.Anything, usecase.RunRequest{RunID: "run-1", Polygon: testPolygon}).
		RunAndReturn(func(context.Context, usecase.RunRequest) (*entity.RunSummary, error) {
			close(started)
			<-release

			return entity.NewRunSummary(entity.PipelineOSM, "run-1", testRunAt), nil
		}).
		Once()
	store.EXPECT().SaveSummary(mock.Anything, mock.Anything).Return(nil).Once()
	observer.EXPECT().ObserveRun(mock.Anything).Once()

	id, err := u.Trigger(ctx, entity.PipelineOSM, usecase.RunRequest{Polygon: testPolygon})
	require.NoError(t, err)
	assert.Equal(t, "run-1", id)
	<-started

	_, err = u.Trigger(ctx, entity.PipelineOSM, usecase.RunRequest{RunID: "run-2"})
	assert.True(t, errors.Is(err, domainerrors.ErrRunInProgress))

	_, err = u.RunNow(ctx, entity.PipelineOSM, usecase.RunRequest{RunID: "run-3"})
	assert.True(t, errors.Is(err, domainerrors.ErrRunInProgress))

	close(release)
	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, u.Wait(waitCtx))
	assert.Empty(t, u.running)
}

func TestRunUsecase_StopCancelsBackgroundRuns(t *testing.T) {
	listings := namedPipeline(t, entity.PipelineListings)
	u, store, observer := newTestRunUsecase(t, listings)

	listings.EXPECT().
		Run(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req usecase.RunRequest) (*entity.RunSummary, error) {
			<-ctx.Done()
			s := entity.NewRunSummary(entity.PipelineListings, req.RunID, testRunAt)
			s.Failed = true

			return s, ctx.Err()
		}).
		Once()
	store.EXPECT().
		SaveSummary(mock.Anything, mock.MatchedBy(func(s *entity.RunSummary) bool { return s.Failed })).
		Return(nil).
		Once()
	observer.EXPECT().ObserveRun(mock.Anything).Once()

	_, err := u.Trigger(context.Background(), entity.PipelineListings, usecase.RunRequest{})
	require.NoError(t, err)

	require.NoError(t, u.stop(context.Background()))
}

func TestRunUsecase_Latest(t *testing.T) {
	reconcile := namedPipeline(t, entity.PipelineReconcile)
	u, store, _ := newTestRunUsecase(t, reconcile)
	ctx := context.Background()

	summary := entity.NewRunSummary(entity.PipelineReconcile, "r-9", testRunAt)
	store.EXPECT().LatestSummary(ctx, entity.PipelineReconcile).Return(summary, nil).Once()

	got, err := u.Latest(ctx, entity.PipelineReconcile)
	require.NoError(t, err)
	assert.Equal(t, "r-9", got.RunID)

	store.EXPECT().LatestSummary(ctx, entity.PipelineReconcile).Return(nil, domainerrors.ErrRunNotFound).Once()
	_, err = u.Latest(ctx, entity.PipelineReconcile)
	assert.True(t, errors.Is(err, domainerrors.ErrRunNotFound))
}

func TestNewRunUsecase_RejectsDuplicateNames(t *testing.T) {
	a := namedPipeline(t, entity.PipelineStage)
	b := namedPipeline(t, entity.PipelineStage)

	_, err := newRunUsecase([]usecase.Pipeline{a, b}, mockService.NewMockRunStore(t), nil, discardLogger())
	assert.Error(t, err)
}
