package services

import (
	"context"

	"go.uber.org/zap"

	"transcript-control/internal/api/errors"
	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/app/repository"
)

// HealthServiceImpl implements HealthService
type HealthServiceImpl struct {
	db     repository.HealthChecker
	engine WorkflowEngine
	logger *zap.Logger
}

// NewHealthService creates a new health service
func NewHealthService(db repository.HealthChecker, engine WorkflowEngine, logger *zap.Logger) HealthService {
	return &HealthServiceImpl{
		db:     db,
		engine: engine,
		logger: logger.Named("health"),
	}
}

// Check pings the database and n8n. A database failure is an error; an
// unreachable n8n only clears the n8n flag.
func (s *HealthServiceImpl) Check(ctx context.Context) (dto.HealthResponse, error) {
	if err := s.db.Ping(ctx); err != nil {
		s.logger.Error("Health check failed", zap.Error(err))
		return dto.HealthResponse{}, errors.NewInternalError("Health check failed")
	}
	return dto.HealthResponse{
		Database: true,
		N8N:      s.engine.Healthy(ctx),
	}, nil
}
