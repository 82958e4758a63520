package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transcript-control/internal/api/middleware"
	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/api/v1/services"
)

// WorkflowHandler proxies the n8n transcription workflow
type WorkflowHandler struct {
	service services.WorkflowService
}

func NewWorkflowHandler(service services.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{service: service}
}

// Start handles POST /api/workflow/start
//
// @Summary Trigger the transcription workflow
// @Tags workflow
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 503 {object} errors.APIError "n8n unavailable"
// @Router /workflow/start [post]
func (h *WorkflowHandler) Start(c *gin.Context) {
	if err := h.service.Start(c.Request.Context()); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Message: "Workflow started successfully"})
}

// Status handles GET /api/workflow/status.
// An unreachable engine is reported in the body, not as an HTTP error.
//
// @Summary Workflow status
// @Tags workflow
// @Produce json
// @Success 200 {object} dto.DataResponse{data=workflow.StatusReport}
// @Router /workflow/status [get]
func (h *WorkflowHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.DataResponse{Data: h.service.Status(c.Request.Context())})
}
