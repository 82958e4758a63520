package model

import "time"

// ColumnConfig is the persisted layout of one column of one UI table.
// (TableName, ColumnName) is unique.
type ColumnConfig struct {
	TableName   string     `db:"table_name" json:"table_name,omitempty"`
	ColumnName  string     `db:"column_name" json:"column_name"`
	ColumnWidth int        `db:"column_width" json:"column_width"`
	ColumnOrder int        `db:"column_order" json:"column_order"`
	IsVisible   bool       `db:"is_visible" json:"is_visible"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
