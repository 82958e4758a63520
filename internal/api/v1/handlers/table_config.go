package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"transcript-control/internal/api/middleware"
	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/api/v1/services"
)

// TableConfigHandler stores per-table column layouts
type TableConfigHandler struct {
	service services.TableConfigService
}

func NewTableConfigHandler(service services.TableConfigService) *TableConfigHandler {
	return &TableConfigHandler{service: service}
}

// Get handles GET /api/table-config/:tableName
//
// @Summary Column layout of a table
// @Tags table-config
// @Produce json
// @Param tableName path string true "Table name"
// @Success 200 {object} dto.DataResponse{data=[]model.ColumnConfig}
// @Failure 400 {object} errors.APIError "Invalid table name"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /table-config/{tableName} [get]
func (h *TableConfigHandler) Get(c *gin.Context) {
	table := c.Param("tableName")

	cols, err := h.service.GetTableConfig(c.Request.Context(), table)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{
		Data:    cols,
		Message: fmt.Sprintf("Column configuration loaded for %s", table),
	})
}

// Put handles PUT /api/table-config/:tableName.
// Saving the same layout twice leaves the stored rows unchanged.
//
// @Summary Save the column layout of a table
// @Tags table-config
// @Accept json
// @Produce json
// @Param tableName path string true "Table name"
// @Param request body dto.PutTableConfigRequest true "Columns"
// @Success 200 {object} dto.DataResponse{data=[]model.ColumnConfig}
// @Failure 400 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /table-config/{tableName} [put]
func (h *TableConfigHandler) Put(c *gin.Context) {
	table := c.Param("tableName")

	var req dto.PutTableConfigRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	cols, err := h.service.PutTableConfig(c.Request.Context(), table, req.ToModel(table))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{
		Data:    cols,
		Message: fmt.Sprintf("Column configuration updated for %s", table),
	})
}
