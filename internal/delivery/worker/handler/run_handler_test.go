package handler

import (
	"net/http"
	"testing"
	"time"

	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/errors"
	mockUsecase "poolscout/internal/mocks/usecase"
	"poolscout/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const monctonWKT = "POLYGON((-64.8 46.0, -64.7 46.0, -64.7 46.1, -64.8 46.1, -64.8 46.0))"

func newRunHandler(t *testing.T) (*RunHandler, *mockUsecase.MockRunUsecase) {
	runUC := mockUsecase.NewMockRunUsecase(t)

	return NewRunHandler(RunHandlerParams{RunUC: runUC, Logger: discardLogger()}), runUC
}

func TestTriggerRun_Accepted(t *testing.T) {
	h, runUC := newRunHandler(t)
	runUC.EXPECT().Trigger(mock.Anything, entity.PipelineListings, usecase.RunRequest{}).
		Return("run-1", nil).Once()

	c, rec := newTestContext(http.MethodPost, "/runs/listings", "", "pipeline", "listings")
	require.NoError(t, h.TriggerRun(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	body := decode[TriggerRunResponse](t, rec)
	assert.Equal(t, TriggerRunResponse{Pipeline: entity.PipelineListings, RunID: "run-1"}, body.Data)
}

func TestTriggerRun_OSMPassesPolygon(t *testing.T) {
	h, runUC := newRunHandler(t)
	runUC.EXPECT().Trigger(mock.Anything, entity.PipelineOSM, usecase.RunRequest{Polygon: monctonWKT}).
		Return("run-2", nil).Once()

	c, rec := newTestContext(http.MethodPost, "/runs/osm", `{"polygon":"`+monctonWKT+`"}`, "pipeline", "osm")
	require.NoError(t, h.TriggerRun(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestTriggerRun_OSMRejectsBadPolygon(t *testing.T) {
	h, _ := newRunHandler(t)

	c, rec := newTestContext(http.MethodPost, "/runs/osm", `{"polygon":"POINT(1 2)"}`, "pipeline", "osm")
	require.NoError(t, h.TriggerRun(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[any](t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_POLYGON", body.Error.Code)
}

func TestTriggerRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		pipeline string
		err      error
		status   int
		code     string
	}{
		{
			name:     "run already active",
			pipeline: "stage",
			err:      domainerrors.ErrRunInProgress.WithDetails("stage run run-0"),
			status:   http.StatusConflict,
			code:     "RUN_IN_PROGRESS",
		},
		{
			name:     "unknown pipeline",
			pipeline: "bogus",
			err:      domainerrors.ErrUnknownPipeline.WithDetails("bogus"),
			status:   http.StatusNotFound,
			code:     "UNKNOWN_PIPELINE",
		},
		{
			name:     "unexpected failure",
			pipeline: "reconcile",
			err:      errors.New("boom"),
			status:   http.StatusInternalServerError,
			code:     "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, runUC := newRunHandler(t)
			runUC.EXPECT().Trigger(mock.Anything, entity.Pipeline(tt.pipeline), usecase.RunRequest{}).
				Return("", tt.err).Once()

			c, rec := newTestContext(http.MethodPost, "/runs/"+tt.pipeline, "", "pipeline", tt.pipeline)
			require.NoError(t, h.TriggerRun(c))

			assert.Equal(t, tt.status, rec.Code)
			body := decode[any](t, rec)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			if tt.status >= http.StatusInternalServerError {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestTriggerRun_WaitReturnsSummary(t *testing.T) {
	h, runUC := newRunHandler(t)
	summary := entity.NewRunSummary(entity.PipelineReconcile, "run-9", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	summary.RowsIn = 12
	summary.Failed = true
	runUC.EXPECT().RunNow(mock.Anything, entity.PipelineReconcile, usecase.RunRequest{RunID: "run-9"}).
		Return(summary, errors.New("persist failed")).Once()

	c, rec := newTestContext(http.MethodPost, "/runs/reconcile?wait=true", `{"runId":"run-9"}`, "pipeline", "reconcile")
	require.NoError(t, h.TriggerRun(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode[entity.RunSummary](t, rec)
	assert.Equal(t, "run-9", body.Data.RunID)
	assert.Equal(t, 12, body.Data.RowsIn)
	assert.True(t, body.Data.Failed)
}

func TestTriggerRun_InvalidBody(t *testing.T) {
	h, _ := newRunHandler(t)

	c, rec := newTestContext(http.MethodPost, "/runs/stage", `{"runId":`, "pipeline", "stage")
	require.NoError(t, h.TriggerRun(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLatestRun(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, runUC := newRunHandler(t)
		summary := entity.NewRunSummary(entity.PipelineStage, "run-3", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		summary.Drop("invalid", 2)
		runUC.EXPECT().Latest(mock.Anything, entity.PipelineStage).Return(summary, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/runs/stage/latest", "", "pipeline", "stage")
		require.NoError(t, h.LatestRun(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode[entity.RunSummary](t, rec)
		assert.Equal(t, map[string]int{"invalid": 2}, body.Data.Dropped)
	})

	t.Run("no run yet", func(t *testing.T) {
		h, runUC := newRunHandler(t)
		runUC.EXPECT().Latest(mock.Anything, entity.PipelineOSM).
			Return(nil, errors.Wrap(domainerrors.ErrRunNotFound.WithDetails("osm"), "failed to load latest run")).Once()

		c, rec := newTestContext(http.MethodGet, "/runs/osm/latest", "", "pipeline", "osm")
		require.NoError(t, h.LatestRun(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decode[any](t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "RUN_NOT_FOUND", body.Error.Code)
		assert.Equal(t, "osm", body.Error.Details)
	})
}
