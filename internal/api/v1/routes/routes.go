package routes

import (
	"github.com/gin-gonic/gin"

	"transcript-control/internal/api/v1/handlers"
	"transcript-control/internal/api/v1/services"
)

// RegisterRoutes registers all dashboard API routes on router
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	router.GET("/health", handlers.NewHealthHandler(container.HealthService).Check)

	// Transcription routes
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	transcriptions := router.Group("/transcriptions")
	{
		transcriptions.GET("", transcriptionHandler.List)
		transcriptions.DELETE("", transcriptionHandler.BulkDelete)
		transcriptions.GET("/:id", transcriptionHandler.Get)
		transcriptions.PATCH("/:id/language", transcriptionHandler.UpdateLanguage)
		transcriptions.POST("/:id/link-calendar", transcriptionHandler.LinkCalendar)
	}

	// Calendar routes
	calendarHandler := handlers.NewCalendarHandler(container.CalendarService)
	calendar := router.Group("/calendar")
	{
		calendar.GET("", calendarHandler.Entries)
		calendar.GET("/day", calendarHandler.Day)
		calendar.POST("/import", calendarHandler.Import)
	}

	// n8n workflow proxy
	workflowHandler := handlers.NewWorkflowHandler(container.WorkflowService)
	wf := router.Group("/workflow")
	{
		wf.POST("/start", workflowHandler.Start)
		wf.GET("/status", workflowHandler.Status)
	}

	tableConfigHandler := handlers.NewTableConfigHandler(container.TableConfigService)
	router.GET("/table-config/:tableName", tableConfigHandler.Get)
	router.PUT("/table-config/:tableName", tableConfigHandler.Put)

	settingsHandler := handlers.NewSettingsHandler(container.SettingsService)
	settings := router.Group("/transcription-settings")
	{
		settings.GET("", settingsHandler.List)
		settings.GET("/:parameter", settingsHandler.Get)
		settings.PUT("/:parameter", settingsHandler.Put)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	CalendarService      services.CalendarService
	WorkflowService      services.WorkflowService
	HealthService        services.HealthService
	TableConfigService   services.TableConfigService
	SettingsService      services.SettingsService
}
