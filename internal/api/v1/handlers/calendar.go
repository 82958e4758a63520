package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transcript-control/internal/api/errors"
	"transcript-control/internal/api/middleware"
	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/api/v1/services"
	"transcript-control/internal/app/csvimport"
)

// CalendarHandler serves imported calendar data and forwards CSV imports
type CalendarHandler struct {
	service services.CalendarService
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(service services.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// Entries handles GET /api/calendar
//
// @Summary Calendar entries for a day
// @Tags calendar
// @Produce json
// @Param start_date query string true "Day as YYYY-MM-DD or RFC 3339 timestamp"
// @Success 200 {object} dto.DataResponse{data=[]model.CalendarEntry}
// @Failure 400 {object} errors.APIError "Invalid start_date"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /calendar [get]
func (h *CalendarHandler) Entries(c *gin.Context) {
	var query dto.CalendarQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	entries, err := h.service.EntriesOn(c.Request.Context(), query.Day())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: entries})
}

// Day handles GET /api/calendar/day
//
// @Summary Meetings from the imported calendar export
// @Description Attendees merge the To and Cc recipients
// @Tags calendar
// @Produce json
// @Param date query string true "Day as YYYY-MM-DD"
// @Success 200 {object} dto.DataResponse{data=[]model.CalendarEntry}
// @Failure 400 {object} errors.APIError "Invalid date"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /calendar/day [get]
func (h *CalendarHandler) Day(c *gin.Context) {
	var query dto.CalendarDayQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	entries, err := h.service.DayEntries(c.Request.Context(), query.Day())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: entries})
}

// Import handles POST /api/calendar/import
//
// @Summary Import a calendar CSV export
// @Tags calendar
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Calendar CSV"
// @Param mode formData string false "Import mode" Enums(internal,external)
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} errors.APIError "Missing file or invalid mode"
// @Failure 503 {object} errors.APIError "Import service unavailable"
// @Router /calendar/import [post]
func (h *CalendarHandler) Import(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	modeValue := c.PostForm("mode")
	if modeValue == "" {
		modeValue = c.Query("mode")
	}
	mode, err := csvimport.ParseMode(modeValue)
	if err != nil {
		middleware.HandleError(c, errors.NewValidationError("Invalid import mode", map[string]string{
			"mode": "must be one of: internal external",
		}))
		return
	}

	if err := h.service.ImportCSV(c.Request.Context(), header.Filename, file, mode); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Message: "Calendar CSV imported successfully"})
}
