package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thebartekbanach/imfilter/pkg/cache"
	"github.com/thebartekbanach/imfilter/pkg/derivative"
	"github.com/thebartekbanach/imfilter/pkg/logger"
	"github.com/thebartekbanach/imfilter/pkg/signer"
	"go.uber.org/zap"
)

func NewRouter(
	config HandlersConfig,
	derivativeService derivative.Service,
	invalidationService cache.InvalidationService,
	requestSigner signer.Signer,
	metricsGatherer prometheus.Gatherer,
	log *zap.Logger,
) http.Handler {
	log = logger.OrNop(log)
	mux := http.NewServeMux()

	mux.Handle("GET /media/cache/resolve/{filter}/{path...}", handleResolveRequest(config, derivativeService, log))
	mux.Handle("GET /media/cache/resolve/{filter}/rc/{hash}/{path...}", handleRuntimeResolveRequest(config, derivativeService, requestSigner, log))
	mux.Handle("GET /media/cache/url/{filter}/{path...}", handleURLRequest(config, derivativeService, log))
	mux.Handle("DELETE /invalidate", handleInvalidationRequest(config, invalidationService, log))
	mux.Handle("GET /invalidations/latest", handleLatestInvalidationInfoRequest(config, invalidationService, log))
	mux.Handle("GET /status", promhttp.HandlerFor(metricsGatherer, promhttp.HandlerOpts{}))

	return requestLoggingMiddleware(log, corsMiddleware(config.AllowedOrigins, mux))
}
