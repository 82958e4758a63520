package services

import (
	"context"

	"go.uber.org/zap"

	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
)

// TableConfigServiceImpl implements TableConfigService
type TableConfigServiceImpl struct {
	repository repository.ColumnConfigRepository
	logger     *zap.Logger
}

// NewTableConfigService creates a new column layout service
func NewTableConfigService(repo repository.ColumnConfigRepository, logger *zap.Logger) TableConfigService {
	return &TableConfigServiceImpl{
		repository: repo,
		logger:     logger.Named("table_config"),
	}
}

func (s *TableConfigServiceImpl) GetTableConfig(ctx context.Context, table string) ([]model.ColumnConfig, error) {
	cols, err := s.repository.Get(ctx, table)
	if err != nil {
		return nil, mapError(s.logger, "Column configuration", "Failed to load column configuration", err)
	}
	return cols, nil
}

func (s *TableConfigServiceImpl) PutTableConfig(ctx context.Context, table string, columns []model.ColumnConfig) ([]model.ColumnConfig, error) {
	cols, err := s.repository.Put(ctx, table, columns)
	if err != nil {
		return nil, mapError(s.logger, "Column configuration", "Failed to update column configuration", err)
	}
	return cols, nil
}
