package migrate

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"transcript-control/internal/app/repository/pg"
)

// Statement is one idempotent schema step
type Statement struct {
	Name string
	SQL  string
}

// Schema creates the tables the dashboard reads and writes. Every statement
// is IF NOT EXISTS so running it against a populated database is harmless.
var Schema = []Statement{
	{
		Name: "transcriptions",
		SQL: `CREATE TABLE IF NOT EXISTS transcriptions (
			id SERIAL PRIMARY KEY,
			filename TEXT NOT NULL,
			transcription_status VARCHAR(32) NOT NULL DEFAULT 'pending',
			set_language VARCHAR(16),
			meeting_title TEXT,
			meeting_start_date TIMESTAMPTZ,
			participants TEXT,
			transcription_duration INTEGER CHECK (transcription_duration >= 0),
			audio_duration INTEGER CHECK (audio_duration >= 0),
			detected_language VARCHAR(16),
			transcript_text TEXT,
			corrected_text TEXT,
			recording_date TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Name: "transcriptions_created_at_idx",
		SQL:  `CREATE INDEX IF NOT EXISTS transcriptions_created_at_idx ON transcriptions (created_at DESC, id DESC)`,
	},
	{
		Name: "calendar_entries",
		SQL: `CREATE TABLE IF NOT EXISTS calendar_entries (
			id SERIAL PRIMARY KEY,
			subject TEXT,
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ,
			location TEXT,
			attendees TEXT
		)`,
	},
	{
		Name: "calendar_data",
		SQL: `CREATE TABLE IF NOT EXISTS calendar_data (
			id SERIAL PRIMARY KEY,
			subject TEXT,
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ,
			has_picture BOOLEAN,
			display_to TEXT,
			display_cc TEXT
		)`,
	},
	{
		Name: "react_table_column_config",
		SQL: `CREATE TABLE IF NOT EXISTS react_table_column_config (
			id SERIAL PRIMARY KEY,
			table_name VARCHAR(64) NOT NULL,
			column_name VARCHAR(128) NOT NULL,
			column_width INTEGER NOT NULL CHECK (column_width > 0),
			column_order INTEGER NOT NULL DEFAULT 0,
			is_visible BOOLEAN NOT NULL DEFAULT TRUE,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (table_name, column_name)
		)`,
	},
	{
		Name: "transcription_settings",
		SQL: `CREATE TABLE IF NOT EXISTS transcription_settings (
			parameter VARCHAR(128) PRIMARY KEY,
			value TEXT
		)`,
	},
}

// Run applies Schema in one transaction
func Run(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	return pg.WithTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, st := range Schema {
			if _, err := tx.ExecContext(ctx, st.SQL); err != nil {
				return fmt.Errorf("migrate %s: %w", st.Name, err)
			}
			logger.Info("schema step applied", zap.String("step", st.Name))
		}
		return nil
	})
}
