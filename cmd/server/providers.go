package main

import (
	"context"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/thebartekbanach/imfilter/pkg/cache"
	cacherepositories "github.com/thebartekbanach/imfilter/pkg/cache/repositories"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
	"github.com/thebartekbanach/imfilter/pkg/config"
	dbconnections "github.com/thebartekbanach/imfilter/pkg/connections"
	"github.com/thebartekbanach/imfilter/pkg/derivative"
	"github.com/thebartekbanach/imfilter/pkg/filter"
	"github.com/thebartekbanach/imfilter/pkg/loader"
	"github.com/thebartekbanach/imfilter/pkg/logger"
	"github.com/thebartekbanach/imfilter/pkg/processor"
	imaginaryprocessor "github.com/thebartekbanach/imfilter/pkg/processor/imaginary"
	vipsprocessor "github.com/thebartekbanach/imfilter/pkg/processor/vips"
	"github.com/thebartekbanach/imfilter/pkg/signer"
	"go.uber.org/zap"
)

func InitializeLogger() *zap.Logger {
	zapLogger, err := logger.New(os.Getenv("IMFILTER_LOG_LEVEL"))
	if err != nil {
		log.Panicf("Error ocurred when initializing logger: %s", err)
	}

	return zapLogger
}

func InitializeFiltersConfig() config.File {
	path := os.Getenv("IMFILTER_FILTERS_CONFIG")
	if path == "" {
		log.Panic("IMFILTER_FILTERS_CONFIG is required environment variable")
	}

	file, err := config.Load(path)
	if err != nil {
		log.Panicf("Error ocurred when loading IMFILTER_FILTERS_CONFIG: %s", err)
	}

	return file
}

func InitializeRegistry(file config.File) filter.Registry {
	return filter.NewRegistry(file.FilterSets)
}

func InitializeKeyBuilder(file config.File) cachekey.Builder {
	return cachekey.NewBuilder(file.DefaultResolver)
}

func InitializeProcessors(zapLogger *zap.Logger) map[string]processor.ProcessingService {
	vipsProcessingService := vipsprocessor.NewProcessor(vipsprocessor.Config{
		DefaultQuality: envInt("IMFILTER_VIPS_DEFAULT_QUALITY", 0),
		DefaultFormat:  os.Getenv("IMFILTER_VIPS_DEFAULT_FORMAT"),
	})

	processors := map[string]processor.ProcessingService{
		"vips": &vipsProcessingService,
	}

	imaginaryServiceURL := os.Getenv("IMFILTER_IMAGINARY_SERVICE_URL")
	if imaginaryServiceURL == "" {
		zapLogger.Info("IMFILTER_IMAGINARY_SERVICE_URL is not set, imaginary processor disabled")
		return processors
	}

	if _, err := url.Parse(imaginaryServiceURL); err != nil {
		log.Panicf("Error ocurred when parsing IMFILTER_IMAGINARY_SERVICE_URL: %s", err)
	}

	imaginaryProcessingService := imaginaryprocessor.NewProcessor(imaginaryprocessor.Config{
		ImaginaryServiceURL: imaginaryServiceURL,
		MaxResponseSize:     int64(envInt("IMFILTER_MAX_IMAGE_SIZE", 0)),
	})
	processors["imaginary"] = &imaginaryProcessingService

	return processors
}

func InitializeMinioConnectionConfig() dbconnections.MinioBlockStorageProductionConnectionConfig {
	config := dbconnections.MinioBlockStorageProductionConnectionConfig{
		Endpoint:  os.Getenv("IMFILTER_MINIO_ENDPOINT"),
		AccessKey: os.Getenv("IMFILTER_MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("IMFILTER_MINIO_SECRET_KEY"),
		Location:  os.Getenv("IMFILTER_MINIO_LOCATION"),
		Bucket:    os.Getenv("IMFILTER_MINIO_BUCKET"),
		UseSSL:    os.Getenv("IMFILTER_MINIO_SSL") == "true",
	}

	if config.Endpoint == "" {
		log.Panic("IMFILTER_MINIO_ENDPOINT is required environment variable")
	}

	if config.AccessKey == "" {
		log.Panic("IMFILTER_MINIO_ACCESS_KEY is required environment variable")
	}

	if config.SecretKey == "" {
		log.Panic("IMFILTER_MINIO_SECRET_KEY is required environment variable")
	}

	if config.Location == "" {
		config.Location = "us-east-1"
	}

	if config.Bucket == "" {
		log.Panic("IMFILTER_MINIO_BUCKET is required environment variable")
	}

	return config
}

// InitializeMinioConnection connects to minio only when a loader or resolver
// is backed by it, otherwise it returns nil.
func InitializeMinioConnection(ctx context.Context, file config.File) dbconnections.MinioBlockStorageConnection {
	if !file.UsesType(config.ResolverTypeMinio) {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	minioBlockStorageConnection, err := dbconnections.NewMinioBlockStorageProductionConnection(ctx, InitializeMinioConnectionConfig())
	if err != nil {
		log.Panicf("Error ocurred when initializing Minio connection: %s", err)
	}

	return &minioBlockStorageConnection
}

// InitializeMongoConnection returns nil when IMFILTER_MONGO_CONNECTION_STRING
// is not set; cache metadata is then kept in memory.
func InitializeMongoConnection(ctx context.Context, zapLogger *zap.Logger) dbconnections.CacheDBConnection {
	mongoConfig := dbconnections.CacheDBConfig{
		ConnectionString: os.Getenv("IMFILTER_MONGO_CONNECTION_STRING"),
		Database:         os.Getenv("IMFILTER_MONGO_DATABASE"),
	}

	if mongoConfig.ConnectionString == "" {
		zapLogger.Warn("IMFILTER_MONGO_CONNECTION_STRING is not set, cache metadata is kept in memory")
		return nil
	}

	if _, err := url.Parse(mongoConfig.ConnectionString); err != nil {
		log.Panicf("Error ocurred when parsing IMFILTER_MONGO_CONNECTION_STRING: %s", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	cacheDbConnection, err := dbconnections.NewCacheDBProductionConnection(ctx, mongoConfig)
	if err != nil {
		log.Panicf("Error ocurred when initializing MongoDB connection: %s", err)
	}

	return cacheDbConnection
}

func InitializeLoaders(file config.File, minioConnection dbconnections.MinioBlockStorageConnection) map[string]loader.Loader {
	loaders := make(map[string]loader.Loader, len(file.Loaders))
	for name, loaderConfig := range file.Loaders {
		switch loaderConfig.Type {
		case config.LoaderTypeFileSystem:
			loaders[name] = loader.NewFileSystemLoader(loaderConfig.DataRoots)
		case config.LoaderTypeHTTP:
			loaders[name] = loader.NewHTTPLoader(loader.HTTPLoaderConfig{
				BaseURL:        loaderConfig.BaseURL,
				AllowedDomains: loaderConfig.AllowedDomains,
				MaxSourceSize:  loaderConfig.MaxSourceSize,
			})
		case config.LoaderTypeMinio:
			loaders[name] = loader.NewMinioLoader(minioConnection)
		}
	}

	return loaders
}

func InitializeDataManager(file config.File, registry filter.Registry, loaders map[string]loader.Loader) loader.DataManager {
	return loader.NewManager(registry, loaders, file.DefaultLoader)
}

func InitializeResolvers(file config.File, minioConnection dbconnections.MinioBlockStorageConnection) map[string]cacherepositories.DerivativesStorage {
	resolvers := make(map[string]cacherepositories.DerivativesStorage, len(file.Resolvers))
	for name, resolverConfig := range file.Resolvers {
		switch resolverConfig.Type {
		case config.ResolverTypeWebPath:
			storage, err := cacherepositories.NewWebPathStorage(cacherepositories.WebPathStorageConfig{
				WebRoot:     resolverConfig.WebRoot,
				CachePrefix: resolverConfig.CachePrefix,
				BaseURL:     resolverConfig.BaseURL,
			})
			if err != nil {
				log.Panicf("Error ocurred when initializing resolver %q: %s", name, err)
			}

			resolvers[name] = storage
		case config.ResolverTypeMinio:
			resolvers[name] = cacherepositories.NewObjectStorage(cacherepositories.ObjectStorageConfig{
				PublicBaseURL: resolverConfig.PublicBaseURL,
			}, minioConnection)
		case config.ResolverTypeMemory:
			resolvers[name] = cacherepositories.NewMemoryStorage(name)
		}
	}

	return resolvers
}

func InitializeDerivativesRepository(conn dbconnections.CacheDBConnection) cacherepositories.CachedDerivativesRepository {
	if conn == nil {
		return cacherepositories.NewMemoryDerivativesRepository()
	}

	return cacherepositories.NewCachedDerivativesRepository(conn)
}

func InitializeInvalidationsRepository(conn dbconnections.CacheDBConnection) cacherepositories.InvalidationsRepository {
	if conn == nil {
		return cacherepositories.NewMemoryInvalidationsRepository()
	}

	return cacherepositories.NewInvalidationsRepository(conn)
}

func InitializeMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	return registry
}

func InitializeMetrics(registry *prometheus.Registry) *derivative.Metrics {
	metrics, err := derivative.NewMetrics(registry)
	if err != nil {
		log.Panicf("Error ocurred when registering metrics: %s", err)
	}

	return metrics
}

func InitializeDerivativeConfig() derivative.Config {
	return derivative.Config{
		ComputeTimeout: envDuration("IMFILTER_COMPUTE_TIMEOUT", time.Minute),
	}
}

func InitializeSigner() signer.Signer {
	requestSigner, err := signer.NewSigner(os.Getenv("IMFILTER_SECRET"))
	if err != nil {
		log.Panicf("IMFILTER_SECRET is required environment variable: %s", err)
	}

	return requestSigner
}

func InitializeHandlersConfig() HandlersConfig {
	config := HandlersConfig{
		InvalidateSecurityToken: os.Getenv("IMFILTER_INVALIDATE_SECURITY_TOKEN"),
		RequestTimeout:          envDuration("IMFILTER_REQUEST_TIMEOUT", time.Minute),
	}

	if allowedOrigins := os.Getenv("IMFILTER_ALLOWED_ORIGINS"); allowedOrigins != "" {
		config.AllowedOrigins = strings.Split(allowedOrigins, ",")
	}

	return config
}

func InitializeDerivativeCache(
	derivativesRepository cacherepositories.CachedDerivativesRepository,
	resolvers map[string]cacherepositories.DerivativesStorage,
	zapLogger *zap.Logger,
) cache.DerivativeCache {
	return cache.NewDerivativeCache(derivativesRepository, resolvers, zapLogger.Named("cache"))
}

func envInt(name string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return fallback
	}

	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(name))
	if err != nil {
		return fallback
	}

	return value
}
