package service

import (
	"context"

	"poolscout/internal/domain/entity"
)

// RunStore keeps run summaries.
type RunStore interface {
	// SaveSummary stores the summary under its run id and as the latest run of its pipeline.
	SaveSummary(ctx context.Context, summary *entity.RunSummary) error

	// LatestSummary returns the most recent summary of a pipeline.
	// Returns ErrRunNotFound when the pipeline never ran.
	LatestSummary(ctx context.Context, pipeline entity.Pipeline) (*entity.RunSummary, error)
}

// RunObserver receives finished run summaries, e.g. to export metrics.
type RunObserver interface {
	ObserveRun(summary *entity.RunSummary)
}
