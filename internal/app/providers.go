package app

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"transcript-control/internal/api/server"
	"transcript-control/internal/app/csvimport"
	"transcript-control/internal/app/metrics"
	"transcript-control/internal/app/repository/pg"
	"transcript-control/internal/app/workflow"
	"transcript-control/internal/config"
)

// Application is the assembled API server and the resources it owns
type Application struct {
	Server  *server.Server
	DB      *sqlx.DB
	Metrics *metrics.Registry
}

func provideDB(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*sqlx.DB, func(), error) {
	db, err := pg.Open(ctx, pg.Config{
		DSN:          cfg.Database.PostgresDSN(),
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to database", zap.String("database", cfg.Database.Redacted()))

	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

func provideServerConfig(cfg *config.Config) config.ServerConfig {
	return cfg.Server
}

func provideN8NClient(cfg *config.Config, logger *zap.Logger, m *metrics.Registry) *workflow.N8NClient {
	return workflow.NewN8NClient(workflow.Config{
		BaseURL:       cfg.N8N.URL,
		APIKey:        cfg.N8N.APIKey,
		HealthTimeout: cfg.N8N.HealthTimeout,
		StartTimeout:  cfg.N8N.StartTimeout,
	}, logger, m)
}

func provideCSVImporter(cfg *config.Config, logger *zap.Logger, m *metrics.Registry) *csvimport.Client {
	return csvimport.NewClient(cfg.CSVImport.URL, cfg.CSVImport.Timeout, logger, m)
}
