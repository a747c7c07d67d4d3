//go:build wireinject
// +build wireinject

package main

import (
	"context"
	"net/http"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/thebartekbanach/imfilter/pkg/cache"
	"github.com/thebartekbanach/imfilter/pkg/derivative"
	"github.com/thebartekbanach/imfilter/pkg/filter"
	"go.uber.org/zap"
)

func InitializeRouter(ctx context.Context, zapLogger *zap.Logger) http.Handler {
	wire.Build(
		InitializeFiltersConfig,
		InitializeRegistry,
		InitializeKeyBuilder,

		InitializeProcessors,
		filter.NewManager,

		InitializeMinioConnection,
		InitializeLoaders,
		InitializeDataManager,

		InitializeMongoConnection,
		InitializeDerivativesRepository,
		InitializeInvalidationsRepository,
		InitializeResolvers,
		InitializeDerivativeCache,
		cache.NewInvalidationService,

		InitializeMetricsRegistry,
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
		InitializeMetrics,
		InitializeDerivativeConfig,
		derivative.NewService,

		InitializeSigner,
		InitializeHandlersConfig,
		NewRouter,
	)

	return nil
}
