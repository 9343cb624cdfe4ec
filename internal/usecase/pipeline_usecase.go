package usecase

import (
	"context"

	"poolscout/internal/domain/entity"
)

// RunRequest parameterizes one pipeline run.
type RunRequest struct {
	RunID string `json:"runId,omitempty"`
	// Polygon bounds the open-data pool extraction, as GeoJSON or WKT.
	Polygon string `json:"polygon,omitempty"`
}

// Pipeline is one runnable end-to-end batch job.
type Pipeline interface {
	Name() entity.Pipeline

	// Run executes the whole batch. The returned summary is never nil, even
	// when the run fails, so every dropped row stays accounted for.
	Run(ctx context.Context, req RunRequest) (*entity.RunSummary, error)
}

// RunUsecase schedules pipelines and exposes their results. At most one run
// per pipeline is active at a time.
type RunUsecase interface {
	// Trigger starts a run in the background and returns its id.
	Trigger(ctx context.Context, pipeline entity.Pipeline, req RunRequest) (string, error)

	// RunNow runs a pipeline to completion on the caller's goroutine.
	RunNow(ctx context.Context, pipeline entity.Pipeline, req RunRequest) (*entity.RunSummary, error)

	// Latest returns the summary of the last finished run.
	Latest(ctx context.Context, pipeline entity.Pipeline) (*entity.RunSummary, error)

	// Wait blocks until every background run has finished or ctx is done.
	Wait(ctx context.Context) error
}
