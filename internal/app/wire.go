//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"transcript-control/internal/api/server"
	"transcript-control/internal/api/v1/routes"
	"transcript-control/internal/api/v1/services"
	"transcript-control/internal/app/csvimport"
	"transcript-control/internal/app/metrics"
	"transcript-control/internal/app/repository"
	"transcript-control/internal/app/repository/pg"
	"transcript-control/internal/app/workflow"
	"transcript-control/internal/config"
)

var repositorySet = wire.NewSet(
	pg.NewTranscriptionStore,
	pg.NewCalendarStore,
	pg.NewColumnConfigStore,
	pg.NewSettingsStore,
	pg.NewHealth,
	wire.Bind(new(repository.TranscriptionRepository), new(*pg.TranscriptionStore)),
	wire.Bind(new(repository.CalendarRepository), new(*pg.CalendarStore)),
	wire.Bind(new(repository.ColumnConfigRepository), new(*pg.ColumnConfigStore)),
	wire.Bind(new(repository.SettingsRepository), new(*pg.SettingsStore)),
	wire.Bind(new(repository.HealthChecker), new(*pg.Health)),
)

var upstreamSet = wire.NewSet(
	provideN8NClient,
	provideCSVImporter,
	wire.Bind(new(services.WorkflowEngine), new(*workflow.N8NClient)),
	wire.Bind(new(services.CSVImporter), new(*csvimport.Client)),
)

var serviceSet = wire.NewSet(
	services.NewTranscriptionService,
	services.NewCalendarService,
	services.NewWorkflowService,
	services.NewHealthService,
	services.NewTableConfigService,
	services.NewSettingsService,
	wire.Struct(new(routes.ServiceContainer), "*"),
)

// InitializeApplication wires the API server against Postgres, n8n and the CSV import service
func InitializeApplication(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, func(), error) {
	wire.Build(
		provideDB,
		provideServerConfig,
		metrics.New,
		repositorySet,
		upstreamSet,
		serviceSet,
		server.NewServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
