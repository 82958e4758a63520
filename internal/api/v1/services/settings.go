package services

import (
	"context"

	"go.uber.org/zap"

	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
)

// SettingsServiceImpl implements SettingsService
type SettingsServiceImpl struct {
	repository repository.SettingsRepository
	logger     *zap.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepository, logger *zap.Logger) SettingsService {
	return &SettingsServiceImpl{
		repository: repo,
		logger:     logger.Named("settings"),
	}
}

func (s *SettingsServiceImpl) ListSettings(ctx context.Context) ([]model.Setting, error) {
	settings, err := s.repository.List(ctx)
	if err != nil {
		return nil, mapError(s.logger, "Setting", "Failed to fetch transcription settings", err)
	}
	return settings, nil
}

// GetSetting never reports not-found; an unset parameter has a nil value
func (s *SettingsServiceImpl) GetSetting(ctx context.Context, parameter string) (model.Setting, error) {
	setting, err := s.repository.Get(ctx, parameter)
	if err != nil {
		return model.Setting{}, mapError(s.logger, "Setting", "Failed to fetch transcription setting", err)
	}
	return setting, nil
}

func (s *SettingsServiceImpl) PutSetting(ctx context.Context, parameter string, value *string) (model.Setting, error) {
	setting, err := s.repository.Put(ctx, parameter, value)
	if err != nil {
		return model.Setting{}, mapError(s.logger, "Setting", "Failed to update transcription setting", err)
	}
	return setting, nil
}
