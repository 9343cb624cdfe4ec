package main

import (
	"context"
	"encoding/json"
	"os"

	"poolscout/internal/app"
	"poolscout/internal/domain/entity"
	"poolscout/internal/domain/lifecycle"
	"poolscout/internal/errors"
	"poolscout/internal/usecase"

	"go.uber.org/fx"
)

// runPipeline starts the graph without the HTTP server, runs one pipeline to
// completion and prints its summary.
func runPipeline(ctx context.Context, pipeline entity.Pipeline, runID, polygon string) error {
	var runUC usecase.RunUsecase
	application := fx.New(
		app.Core(),
		app.Pipelines(),
		fx.Populate(&runUC),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := application.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start pipeline graph")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.RunDrainTimeout)
		defer cancel()
		_ = application.Stop(stopCtx)
	}()

	summary, runErr := runUC.RunNow(ctx, pipeline, usecase.RunRequest{RunID: runID, Polygon: polygon})
	if summary != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return errors.Wrap(err, "failed to print run summary")
		}
	}

	return runErr
}
