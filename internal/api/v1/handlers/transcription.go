package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"transcript-control/internal/api/errors"
	"transcript-control/internal/api/middleware"
	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/api/v1/services"
)

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// parseID reads the :id path parameter as a positive int64
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.NewBadRequestError("Invalid transcription ID")
	}
	return id, nil
}

// List handles GET /api/transcriptions
// Lists transcriptions with pagination and filtering
//
// @Summary List transcriptions with pagination
// @Description Retrieves one page of transcriptions, newest first, optionally filtered by filename/title search, status and set language
// @Tags transcriptions
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Items per page" default(20) minimum(1) maximum(100)
// @Param search query string false "Case-insensitive match on filename or meeting title"
// @Param status query string false "Filter by status" Enums(pending,processing,finished,error)
// @Param language query string false "Filter by set language"
// @Success 200 {object} dto.PaginatedTranscriptionsResponse "List of transcriptions with pagination"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Header 200 {string} X-Total-Count "Total number of matching transcriptions"
// @Router /transcriptions [get]
func (h *TranscriptionHandler) List(c *gin.Context) {
	var query dto.ListTranscriptionsQuery

	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ListTranscriptions(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(response.Total))
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/transcriptions/:id
//
// @Summary Get transcription by ID
// @Tags transcriptions
// @Produce json
// @Param id path int true "Transcription ID" minimum(1)
// @Success 200 {object} dto.DataResponse "Transcription details"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions/{id} [get]
func (h *TranscriptionHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	t, err := h.service.GetTranscription(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: t})
}

// BulkDelete handles DELETE /api/transcriptions
// Deletes every listed transcription in one transaction
//
// @Summary Delete transcriptions
// @Description Deletes the given ids atomically. Unknown ids are ignored; the response carries the number actually deleted.
// @Tags transcriptions
// @Accept json
// @Produce json
// @Param request body dto.BulkDeleteRequest true "Ids to delete"
// @Success 200 {object} dto.DataResponse{data=dto.BulkDeleteResponse}
// @Failure 400 {object} errors.APIError "Validation error"
// @Failure 409 {object} errors.APIError "Row is still referenced"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions [delete]
func (h *TranscriptionHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	deleted, err := h.service.DeleteTranscriptions(c.Request.Context(), req.IDs)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{
		Data:    dto.BulkDeleteResponse{Deleted: deleted},
		Message: fmt.Sprintf("%d transcriptions deleted successfully", deleted),
	})
}

// UpdateLanguage handles PATCH /api/transcriptions/:id/language
//
// @Summary Set the transcription language
// @Tags transcriptions
// @Accept json
// @Produce json
// @Param id path int true "Transcription ID" minimum(1)
// @Param request body dto.UpdateLanguageRequest true "New language"
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} errors.APIError "Validation error"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions/{id}/language [patch]
func (h *TranscriptionHandler) UpdateLanguage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var req dto.UpdateLanguageRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	t, err := h.service.UpdateLanguage(c.Request.Context(), id, req.Language)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: t, Message: "Language updated successfully"})
}

// LinkCalendar handles POST /api/transcriptions/:id/link-calendar
// Copies the meeting subject, start and attendees onto the transcription
//
// @Summary Link a calendar entry
// @Tags transcriptions
// @Accept json
// @Produce json
// @Param id path int true "Transcription ID" minimum(1)
// @Param request body dto.LinkCalendarRequest true "Calendar entry"
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} errors.APIError "Validation error"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions/{id}/link-calendar [post]
func (h *TranscriptionHandler) LinkCalendar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var req dto.LinkCalendarRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	t, err := h.service.LinkCalendar(c.Request.Context(), id, req.Snapshot())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: t, Message: "Calendar data linked successfully"})
}
