package pg

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
)

const upsertColumnQuery = `INSERT INTO react_table_column_config
	(table_name, column_name, column_width, column_order, is_visible, updated_at)
	VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
	ON CONFLICT (table_name, column_name) DO UPDATE SET
		column_width = EXCLUDED.column_width,
		column_order = EXCLUDED.column_order,
		is_visible = EXCLUDED.is_visible,
		updated_at = CURRENT_TIMESTAMP`

const selectColumnsQuery = `SELECT table_name, column_name, column_width, column_order, is_visible, updated_at
	FROM react_table_column_config
	WHERE table_name = $1
	ORDER BY column_order ASC, column_name ASC`

// ColumnConfigStore persists per-table column layouts.
// Columns absent from a Put keep their stored configuration.
type ColumnConfigStore struct {
	db *sqlx.DB
}

func NewColumnConfigStore(db *sqlx.DB) *ColumnConfigStore {
	return &ColumnConfigStore{db: db}
}

// Get returns the layout ordered by column_order; empty when never saved
func (s *ColumnConfigStore) Get(ctx context.Context, table string) ([]model.ColumnConfig, error) {
	if err := repository.ValidateTableName(table); err != nil {
		return nil, err
	}
	return s.selectColumns(ctx, s.db, table)
}

// Put upserts each column and returns the stored layout
func (s *ColumnConfigStore) Put(ctx context.Context, table string, columns []model.ColumnConfig) ([]model.ColumnConfig, error) {
	if err := repository.ValidateTableName(table); err != nil {
		return nil, err
	}
	if err := repository.ValidateColumns(columns); err != nil {
		return nil, err
	}

	var stored []model.ColumnConfig
	err := WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for _, c := range columns {
			if _, err := tx.ExecContext(ctx, upsertColumnQuery,
				table, c.ColumnName, c.ColumnWidth, c.ColumnOrder, c.IsVisible); err != nil {
				return fmt.Errorf("upsert column %s.%s: %w", table, c.ColumnName, err)
			}
		}
		var err error
		stored, err = s.selectColumns(ctx, tx, table)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *ColumnConfigStore) selectColumns(ctx context.Context, q sqlx.QueryerContext, table string) ([]model.ColumnConfig, error) {
	columns := []model.ColumnConfig{}
	if err := sqlx.SelectContext(ctx, q, &columns, selectColumnsQuery, table); err != nil {
		return nil, fmt.Errorf("select columns of %s: %w", table, err)
	}
	return columns, nil
}
