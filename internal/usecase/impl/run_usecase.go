package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/domain/lifecycle"
	"poolscout/internal/domain/service"
	"poolscout/internal/errors"
	"poolscout/internal/usecase"
	"poolscout/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// RunUsecaseParams holds the dependencies of the run scheduler.
type RunUsecaseParams struct {
	fx.In

	Lc        fx.Lifecycle
	Pipelines []usecase.Pipeline `group:"pipelines"`
	Store     service.RunStore
	Observer  service.RunObserver `optional:"true"`
	Logger    *slog.Logger
}

type runUsecase struct {
	pipelines map[entity.Pipeline]usecase.Pipeline
	store     service.RunStore
	observer  service.RunObserver
	logger    *slog.Logger
	newID     func() string
	now       func() time.Time

	mu      sync.Mutex
	running map[entity.Pipeline]string
	wg      sync.WaitGroup

	// background runs outlive the request that triggered them
	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewRunUsecase creates the run scheduler. Background runs are cancelled
// when the application stops.
func NewRunUsecase(params RunUsecaseParams) (usecase.RunUsecase, error) {
	u, err := newRunUsecase(params.Pipelines, params.Store, params.Observer, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: u.stop,
	})

	return u, nil
}

func newRunUsecase(pipelines []usecase.Pipeline, store service.RunStore, observer service.RunObserver, logger *slog.Logger) (*runUsecase, error) {
	byName := make(map[entity.Pipeline]usecase.Pipeline, len(pipelines))
	for _, p := range pipelines {
		if _, dup := byName[p.Name()]; dup {
			return nil, errors.Errorf("pipeline %q registered twice", p.Name())
		}
		byName[p.Name()] = p
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &runUsecase{
		pipelines: byName,
		store:     store,
		observer:  observer,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
		running:   map[entity.Pipeline]string{},
		baseCtx:   ctx,
		cancel:    cancel,
	}, nil
}

// Trigger starts a run in the background and returns its id.
func (u *runUsecase) Trigger(ctx context.Context, name entity.Pipeline, req usecase.RunRequest) (string, error) {
	req = u.withRunID(req)
	pipeline, err := u.acquire(name, req.RunID)
	if err != nil {
		return "", err
	}

	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		defer u.release(name)

		_, _ = u.execute(u.baseCtx, pipeline, req)
	}()

	u.logger.LogAttrs(ctx, slog.LevelInfo, "Pipeline run triggered",
		slog.String("pipeline", string(name)),
		slog.String("runId", req.RunID),
	)

	return req.RunID, nil
}

// RunNow runs a pipeline on the caller's goroutine.
func (u *runUsecase) RunNow(ctx context.Context, name entity.Pipeline, req usecase.RunRequest) (*entity.RunSummary, error) {
	req = u.withRunID(req)
	pipeline, err := u.acquire(name, req.RunID)
	if err != nil {
		return nil, err
	}
	defer u.release(name)

	return u.execute(ctx, pipeline, req)
}

// Latest returns the last stored summary of a pipeline.
func (u *runUsecase) Latest(ctx context.Context, name entity.Pipeline) (*entity.RunSummary, error) {
	if _, ok := u.pipelines[name]; !ok {
		return nil, domainerrors.ErrUnknownPipeline.WithDetails(string(name))
	}

	summary, err := u.store.LatestSummary(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load latest run")
	}

	return summary, nil
}

// Wait blocks until every background run finished or ctx is done.
func (u *runUsecase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		u.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (u *runUsecase) withRunID(req usecase.RunRequest) usecase.RunRequest {
	if req.RunID == "" {
		req.RunID = u.newID()
	}

	return req
}

func (u *runUsecase) acquire(name entity.Pipeline, runID string) (usecase.Pipeline, error) {
	pipeline, ok := u.pipelines[name]
	if !ok {
		return nil, domainerrors.ErrUnknownPipeline.WithDetails(string(name))
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if active, busy := u.running[name]; busy {
		return nil, domainerrors.ErrRunInProgress.WithDetails(string(name) + " run " + active)
	}
	u.running[name] = runID

	return pipeline, nil
}

func (u *runUsecase) release(name entity.Pipeline) {
	u.mu.Lock()
	delete(u.running, name)
	u.mu.Unlock()
}

// execute runs the pipeline and records its summary whatever the outcome.
func (u *runUsecase) execute(ctx context.Context, pipeline usecase.Pipeline, req usecase.RunRequest) (*entity.RunSummary, error) {
	logger := u.logger.With(
		slog.String("pipeline", string(pipeline.Name())),
		slog.String("runId", req.RunID),
	)
	logger.LogAttrs(ctx, slog.LevelInfo, "Pipeline run started")

	summary, runErr := pipeline.Run(ctx, req)
	if summary == nil {
		summary = entity.NewRunSummary(pipeline.Name(), req.RunID, u.now().UTC())
		summary.FinishedAt = u.now().UTC()
		if runErr != nil {
			summary.Failed = true
			summary.Errors = append(summary.Errors, runErr.Error())
		}
	}

	// a cancelled run still gets its summary stored
	if err := u.store.SaveSummary(context.WithoutCancel(ctx), summary); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Failed to store run summary", slog.Any("error", err))
	}
	if u.observer != nil {
		u.observer.ObserveRun(summary)
	}

	attrs := []slog.Attr{
		slog.Int("rowsIn", summary.RowsIn),
		slog.Int("rowsOut", summary.RowsOut),
		slog.Int("dropped", summary.TotalDropped()),
		slog.Float64("dropRatio", util.Ratio(summary.TotalDropped(), summary.RowsIn)),
		slog.String("elapsed", util.FormatDuration(summary.FinishedAt.Sub(summary.StartedAt))),
	}
	if runErr != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Pipeline run failed", append(attrs, slog.Any("error", runErr))...)

		return summary, runErr
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "Pipeline run finished", attrs...)

	return summary, nil
}

// stop cancels background runs and waits for them to record their summaries.
func (u *runUsecase) stop(ctx context.Context) error {
	u.cancel()

	drainCtx, cancel := context.WithTimeout(ctx, lifecycle.RunDrainTimeout)
	defer cancel()

	if err := u.Wait(drainCtx); err != nil {
		u.logger.LogAttrs(ctx, slog.LevelWarn, "Pipeline runs still active at shutdown", slog.Any("error", err))

		return err
	}

	return nil
}
