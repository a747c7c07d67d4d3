package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cshum/vipsgen/vips"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	zapLogger := InitializeLogger()
	defer zapLogger.Sync()

	vips.SetLogging(func(domain string, level vips.LogLevel, message string) {
		zapLogger.Warn("vips", zap.String("domain", domain), zap.Int("level", int(level)), zap.String("message", message))
	}, vips.LogLevelWarning)

	vips.Startup(&vips.Config{
		ConcurrencyLevel: envInt("IMFILTER_VIPS_CONCURRENCY", 0),
		MaxCacheMem:      envInt("IMFILTER_VIPS_MAX_CACHE_MB", 50) * 1024 * 1024,
	})
	defer vips.Shutdown()

	zapLogger.Info("initializing derivative service")
	router := InitializeRouter(ctx, zapLogger)

	address := os.Getenv("IMFILTER_LISTEN_ADDRESS")
	if address == "" {
		address = ":80"
	}

	server := &http.Server{
		Addr:    address,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	zapLogger.Info("listening", zap.String("address", address))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
}
