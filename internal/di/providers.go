package di

import (
	"fmt"

	"SADE/internal/domain/repository"
	"SADE/internal/handler/api"
	"SADE/internal/service/banxico"
	"SADE/internal/usecase"
	"SADE/pkg/cache"
	"SADE/pkg/config"
	xhttp "SADE/pkg/http"
	applogger "SADE/pkg/logger"
	"SADE/pkg/metrics"
	"SADE/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder on the default registry.
func ProvideMetrics() repository.Metrics {
	return metrics.New(prometheus.DefaultRegisterer)
}

// ProvideSeriesSource creates the Banxico SIE client.
func ProvideSeriesSource(cfg *config.Config) repository.SeriesSource {
	return banxico.New(cfg.Banxico.BaseURL, cfg.Banxico.Token, banxico.WithTimeout(cfg.Banxico.Timeout))
}

// ProvideSnapshotStore selects the snapshot backend.
func ProvideSnapshotStore(cfg *config.Config) (repository.SnapshotStore, error) {
	switch cfg.Cache.Backend {
	case "redis":
		rs, err := cache.NewRedisStore(
			cache.WithRedisAddr(cfg.Cache.Redis.Addr),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPool(cfg.Cache.Redis.PoolSize, cfg.Cache.Redis.MinIdleConns, cfg.Cache.Redis.PoolTimeout),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
			cache.WithRedisTTL(cfg.Cache.TTL),
		)
		if err != nil {
			return nil, fmt.Errorf("redis snapshot store: %w", err)
		}
		return rs, nil
	case "file", "":
		return cache.NewFileStore(cfg.Cache.File, cache.WithFileTTL(cfg.Cache.TTL)), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// ProvideIndicatorService creates the snapshot use case.
func ProvideIndicatorService(
	source repository.SeriesSource,
	store repository.SnapshotStore,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.IndicatorService {
	return usecase.NewIndicatorService(source, store, m, l)
}

// ProvideHandler creates the HTTP route handler.
func ProvideHandler(l *applogger.Logger, svc *usecase.IndicatorService) xhttp.Handler {
	return api.NewIndicatorsEchoHandler(l, svc)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	h xhttp.Handler,
	store repository.SnapshotStore,
) *server.App {
	return server.New(cfg, l, h, store)
}

var (
	_ repository.SnapshotStore = (*cache.FileStore)(nil)
	_ repository.SnapshotStore = (*cache.RedisStore)(nil)
	_ repository.Metrics       = (*metrics.Recorder)(nil)
)
