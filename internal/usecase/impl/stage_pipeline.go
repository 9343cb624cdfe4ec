package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/domain/repository"
	"poolscout/internal/errors"
	"poolscout/internal/transform/dedup"
	"poolscout/internal/usecase"

	"go.uber.org/fx"
)

// maxPromotionAttempts bounds retries after a random address id collides
// with a stored one.
const maxPromotionAttempts = 3

// StagePipelineParams holds the dependencies of the stage promotion pipeline.
type StagePipelineParams struct {
	fx.In

	Stage     repository.StageRepository
	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

type stagePipeline struct {
	stage     repository.StageRepository
	txManager repository.TransactionManager
	cleaner   *dedup.Cleaner
	logger    *slog.Logger
	now       func() time.Time
}

// promotion is what one master transaction wrote.
type promotion struct {
	cleaned          *dedup.Result
	propertiesAdded  int
	poolsAdded       int
	processed        []int64
	orphanDuplicates int
}

// NewStagePipeline creates the pipeline that promotes staged pools to the master store.
func NewStagePipeline(params StagePipelineParams) usecase.Pipeline {
	bufferKm := config.DefaultBufferKm
	if params.Config.Dedup != nil {
		bufferKm = params.Config.Dedup.BufferKm
	}

	return &stagePipeline{
		stage:     params.Stage,
		txManager: params.TxManager,
		cleaner:   dedup.New(bufferKm),
		logger:    params.Logger.With(slog.String("pipeline", string(entity.PipelineStage))),
		now:       time.Now,
	}
}

func (p *stagePipeline) Name() entity.Pipeline {
	return entity.PipelineStage
}

// Run promotes pending assignments: new addresses become properties, every
// pool is attached to its new or existing property, and the processed
// assignments are flagged as uploaded. Invalid rows stay pending.
func (p *stagePipeline) Run(ctx context.Context, req usecase.RunRequest) (*entity.RunSummary, error) {
	summary := entity.NewRunSummary(entity.PipelineStage, req.RunID, p.now().UTC())

	pending, err := p.stage.FindPendingAssignments(ctx)
	if err != nil {
		return finishRun(summary, p.now, errors.Wrap(err, "failed to load pending assignments"))
	}
	summary.RowsIn = len(pending)
	if len(pending) == 0 {
		p.logger.LogAttrs(ctx, slog.LevelInfo, "No pending assignments")

		return finishRun(summary, p.now, nil)
	}

	rows := make([]entity.StagedAddress, len(pending))
	for i, r := range pending {
		rows[i] = *r
	}

	var promoted *promotion
	for attempt := 1; ; attempt++ {
		promoted, err = p.promote(ctx, rows)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateKey) || attempt == maxPromotionAttempts {
			return finishRun(summary, p.now, errors.Join(domainerrors.ErrPersistFailed, err))
		}
		p.logger.LogAttrs(ctx, slog.LevelWarn, "Address id collision, retrying promotion",
			slog.Int("attempt", attempt),
		)
	}

	cleaned := promoted.cleaned
	summary.Stages = append(summary.Stages, cleaned.Stages...)
	summary.Drop(dropInvalidRecord, len(cleaned.Invalid))
	summary.Drop("orphaned_duplicate", promoted.orphanDuplicates)
	summary.Count("internal_duplicates", len(cleaned.InternalDuplicates))
	summary.Count("master_duplicates", len(cleaned.ReferenceDuplicates))
	summary.Count("properties_created", promoted.propertiesAdded)
	summary.Count("pools_inserted", promoted.poolsAdded)

	if len(promoted.processed) > 0 {
		updated, err := p.stage.MarkUploaded(ctx, promoted.processed)
		if err != nil {
			return finishRun(summary, p.now, errors.Wrap(err, "failed to mark assignments uploaded"))
		}
		summary.Count("assignments_uploaded", updated)
	}
	summary.RowsOut = len(promoted.processed)

	p.logger.LogAttrs(ctx, slog.LevelInfo, "Stage promotion finished",
		slog.Int("pending", len(pending)),
		slog.Int("properties", promoted.propertiesAdded),
		slog.Int("pools", promoted.poolsAdded),
		slog.Int("invalid", len(cleaned.Invalid)),
	)

	return finishRun(summary, p.now, nil)
}

func (p *stagePipeline) promote(ctx context.Context, rows []entity.StagedAddress) (*promotion, error) {
	out := &promotion{}

	err := p.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		props := f.NewPropertyRepository()

		cleaned, err := p.cleaner.Clean(ctx, slices.Clone(rows), props.FindPropertiesWithinBound)
		if err != nil {
			return err
		}
		out.cleaned = cleaned

		newProps := make([]*entity.Property, len(cleaned.Kept))
		for i, r := range cleaned.Kept {
			coords := *r.Coordinates
			newProps[i] = &entity.Property{
				AddressID:     r.NewAddressID,
				AddressNumber: r.AddressNumber,
				StreetName:    r.StreetName,
				Municipality:  r.Municipality,
				ProvinceState: r.ProvinceState,
				PostalCode:    r.PostalCode,
				Country:       r.Country,
				Coordinates:   &coords,
			}
		}
		if len(newProps) > 0 {
			if err := props.InsertProperties(ctx, newProps); err != nil {
				return errors.Wrap(err, "failed to insert properties")
			}
		}
		out.propertiesAdded = len(newProps)

		owner := map[int64]string{}
		var owned []entity.StagedAddress
		for i, r := range cleaned.Kept {
			owner[r.AssignmentID] = newProps[i].ID
			owned = append(owned, r)
		}
		for _, d := range cleaned.ReferenceDuplicates {
			owner[d.Row.AssignmentID] = d.PropertyID
			owned = append(owned, d.Row)
		}
		for _, d := range cleaned.InternalDuplicates {
			propertyID, ok := owner[d.KeptAssignmentID]
			if !ok {
				out.orphanDuplicates++

				continue
			}
			owner[d.Row.AssignmentID] = propertyID
			owned = append(owned, d.Row)
		}

		pools := make([]*entity.Pool, 0, len(owned))
		for _, r := range owned {
			poolID := r.PoolID
			pools = append(pools, &entity.Pool{
				PropertyID:   owner[r.AssignmentID],
				PoolType:     entity.PoolTypeNone,
				SourcePoolID: &poolID,
			})
			out.processed = append(out.processed, r.AssignmentID)
		}
		if len(pools) > 0 {
			if out.poolsAdded, err = f.NewPoolRepository().InsertPools(ctx, pools); err != nil {
				return errors.Wrap(err, "failed to insert pools")
			}
		}
		slices.Sort(out.processed)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
