package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/api/v1/services"
)

// HealthHandler reports database and n8n reachability
type HealthHandler struct {
	service services.HealthService
}

func NewHealthHandler(service services.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Check handles GET /api/health. A failed database ping answers 500 with
// both flags false; the body keeps the data shape so dashboards can render it.
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthEnvelope
// @Failure 500 {object} dto.HealthEnvelope
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status, err := h.service.Check(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.HealthEnvelope{
			Data:  dto.HealthResponse{},
			Error: "Health check failed",
		})
		return
	}
	c.JSON(http.StatusOK, dto.HealthEnvelope{Data: status, Message: "Health check completed"})
}
