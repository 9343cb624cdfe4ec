// Package app assembles the dependency graph shared by the worker and the
// pipeline CLI.
package app

import (
	"context"

	"poolscout/config"
	"poolscout/internal/domain/service"
	"poolscout/internal/infra/artifact"
	"poolscout/internal/infra/geocoding"
	"poolscout/internal/infra/listingsource"
	logs "poolscout/internal/infra/log"
	"poolscout/internal/infra/metrics"
	"poolscout/internal/infra/overpass"
	"poolscout/internal/infra/persistence/postgres"
	"poolscout/internal/transform/poolinfer"
	"poolscout/internal/usecase/impl"

	"go.uber.org/fx"
	"gocloud.dev/blob"
)

// Names of the three database handles in the graph.
const (
	listingDB = `name:"listingDB"`
	masterDB  = `name:"masterDB"`
	stageDB   = `name:"stageDB"`
	pipelines = `group:"pipelines"`
)

// Core provides config, logging and the pool classifier. It opens no
// connections, so offline commands can use it alone.
func Core() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		func(cfg *config.Config) *poolinfer.Classifier {
			return poolinfer.New(cfg.Pool.WindowWords)
		},
	)
}

// Pipelines provides everything behind usecase.RunUsecase: the three stores,
// upstream clients, artifact bucket and every pipeline.
func Pipelines() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		fx.Annotate(postgres.NewListingDB, fx.ResultTags(listingDB)),
		fx.Annotate(postgres.NewMasterDB, fx.ResultTags(masterDB)),
		fx.Annotate(postgres.NewStageDB, fx.ResultTags(stageDB)),
		artifact.NewBucket,
		// Expose config sections for the upstream clients
		func(cfg *config.Config) (*config.GeocodingConfig, *config.OverpassConfig, *config.ListingSourceConfig) {
			return cfg.Geocoding, cfg.Overpass, cfg.ListingSource
		},
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		fx.Annotate(postgres.NewListingRepository, fx.ParamTags(listingDB)),
		fx.Annotate(postgres.NewListingTransactionManager, fx.ParamTags(listingDB)),
		fx.Annotate(postgres.NewPropertyRepository, fx.ParamTags(masterDB)),
		fx.Annotate(postgres.NewTransactionManager, fx.ParamTags(masterDB)),
		fx.Annotate(postgres.NewStageRepository, fx.ParamTags(stageDB)),
	)
}

func injectService() fx.Option {
	return fx.Provide(
		geocoding.New,
		overpass.New,
		listingsource.New,
		artifact.NewRunStore,
		newGeocodeCache,
		metrics.NewRunObserver,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAddressCorrector,
		impl.NewEntityMatcher,
		fx.Annotate(impl.NewListingPipeline, fx.ResultTags(pipelines)),
		fx.Annotate(impl.NewPoolCollectionPipeline, fx.ResultTags(pipelines)),
		fx.Annotate(impl.NewStagePipeline, fx.ResultTags(pipelines)),
		fx.Annotate(impl.NewReconcilePipeline, fx.ResultTags(pipelines)),
		impl.NewRunUsecase,
	)
}

// newGeocodeCache returns nil unless the cache is persisted, which leaves
// the corrector with its per-run cache only.
func newGeocodeCache(cfg *config.Config, bucket *blob.Bucket) service.GeocodeCache {
	if cfg.Geocoding == nil || !cfg.Geocoding.PersistCache {
		return nil
	}

	return artifact.NewGeocodeCache(bucket)
}
