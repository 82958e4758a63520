package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"transcript-control/internal/api/middleware"
	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/api/v1/services"
)

// SettingsHandler exposes the transcription_settings key/value store
type SettingsHandler struct {
	service services.SettingsService
}

func NewSettingsHandler(service services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// List handles GET /api/transcription-settings
//
// @Summary All transcription settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]model.Setting}
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcription-settings [get]
func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.service.ListSettings(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: settings, Message: "All transcription settings loaded successfully"})
}

// Get handles GET /api/transcription-settings/:parameter.
// An unset parameter answers 200 with a null value.
//
// @Summary One transcription setting
// @Tags settings
// @Produce json
// @Param parameter path string true "Setting name"
// @Success 200 {object} dto.DataResponse{data=model.Setting}
// @Failure 400 {object} errors.APIError "Invalid parameter"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcription-settings/{parameter} [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	parameter := c.Param("parameter")

	setting, err := h.service.GetSetting(c.Request.Context(), parameter)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	message := fmt.Sprintf("Setting '%s' loaded successfully", parameter)
	if setting.Value == nil {
		message = fmt.Sprintf("Setting '%s' not found", parameter)
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: setting, Message: message})
}

// Put handles PUT /api/transcription-settings/:parameter
//
// @Summary Update a transcription setting
// @Tags settings
// @Accept json
// @Produce json
// @Param parameter path string true "Setting name"
// @Param request body dto.PutSettingRequest true "Value, may be empty or null"
// @Success 200 {object} dto.DataResponse{data=model.Setting}
// @Failure 400 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcription-settings/{parameter} [put]
func (h *SettingsHandler) Put(c *gin.Context) {
	parameter := c.Param("parameter")

	var req dto.PutSettingRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	value, _ := req.SettingValue()
	setting, err := h.service.PutSetting(c.Request.Context(), parameter, value)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{
		Data:    setting,
		Message: fmt.Sprintf("Setting '%s' updated successfully", parameter),
	})
}
