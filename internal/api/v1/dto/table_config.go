package dto

import (
	"github.com/samber/lo"

	"transcript-control/internal/app/model"
)

// ColumnConfigInput is one column of PUT /api/table-config/:tableName.
// is_visible defaults to true when omitted.
type ColumnConfigInput struct {
	ColumnName  string `json:"column_name" binding:"required,max=128"`
	ColumnWidth int    `json:"column_width" binding:"required,gt=0"`
	ColumnOrder int    `json:"column_order"`
	IsVisible   *bool  `json:"is_visible"`
}

// PutTableConfigRequest is the body of PUT /api/table-config/:tableName
type PutTableConfigRequest struct {
	Columns []ColumnConfigInput `json:"columns" binding:"required,dive"`
}

// ToModel converts the request into column configs for table
func (r *PutTableConfigRequest) ToModel(table string) []model.ColumnConfig {
	return lo.Map(r.Columns, func(c ColumnConfigInput, _ int) model.ColumnConfig {
		return model.ColumnConfig{
			TableName:   table,
			ColumnName:  c.ColumnName,
			ColumnWidth: c.ColumnWidth,
			ColumnOrder: c.ColumnOrder,
			IsVisible:   c.IsVisible == nil || *c.IsVisible,
		}
	})
}
