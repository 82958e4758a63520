package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
)

// SettingsStore is the transcription_settings key/value table
type SettingsStore struct {
	db *sqlx.DB
}

func NewSettingsStore(db *sqlx.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) List(ctx context.Context) ([]model.Setting, error) {
	settings := []model.Setting{}
	if err := s.db.SelectContext(ctx, &settings,
		"SELECT parameter, value FROM transcription_settings ORDER BY parameter"); err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return settings, nil
}

// Get returns the setting with a nil Value when it was never stored
func (s *SettingsStore) Get(ctx context.Context, parameter string) (model.Setting, error) {
	if err := repository.ValidateParameter(parameter); err != nil {
		return model.Setting{}, err
	}

	var setting model.Setting
	err := s.db.GetContext(ctx, &setting,
		"SELECT parameter, value FROM transcription_settings WHERE parameter = $1", parameter)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Setting{Parameter: parameter}, nil
	}
	if err != nil {
		return model.Setting{}, fmt.Errorf("get setting %s: %w", parameter, err)
	}
	return setting, nil
}

func (s *SettingsStore) Put(ctx context.Context, parameter string, value *string) (model.Setting, error) {
	if err := repository.ValidateParameter(parameter); err != nil {
		return model.Setting{}, err
	}

	var setting model.Setting
	query := `INSERT INTO transcription_settings (parameter, value)
		VALUES ($1, $2)
		ON CONFLICT (parameter) DO UPDATE SET value = EXCLUDED.value
		RETURNING parameter, value`
	if err := s.db.GetContext(ctx, &setting, query, parameter, value); err != nil {
		return model.Setting{}, fmt.Errorf("put setting %s: %w", parameter, err)
	}
	return setting, nil
}
