package dto

import (
	"time"

	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
)

// ListTranscriptionsQuery represents query parameters for listing transcriptions.
// Absent page and limit default to 1 and 20; invalid values are rejected.
type ListTranscriptionsQuery struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	Limit    int    `form:"limit,default=20" binding:"min=1,max=100"`
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=pending processing finished error"`
	Language string `form:"language" binding:"max=16"`
}

// ToQuery converts the binding into a repository query
func (q ListTranscriptionsQuery) ToQuery() repository.TranscriptionQuery {
	return repository.TranscriptionQuery{
		Page:     q.Page,
		Limit:    q.Limit,
		Search:   q.Search,
		Status:   model.TranscriptionStatus(q.Status),
		Language: q.Language,
	}
}

// PaginatedTranscriptionsResponse is the body of GET /api/transcriptions
type PaginatedTranscriptionsResponse struct {
	Data       []model.Transcription `json:"data"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"totalPages"`
}

// NewPaginatedTranscriptionsResponse maps a repository page
func NewPaginatedTranscriptionsResponse(p repository.Page) *PaginatedTranscriptionsResponse {
	return &PaginatedTranscriptionsResponse{
		Data:       p.Rows,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

// BulkDeleteRequest is the body of DELETE /api/transcriptions
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1,dive,gt=0"`
}

// BulkDeleteResponse reports how many rows were actually removed
type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// UpdateLanguageRequest is the body of PATCH /api/transcriptions/:id/language
type UpdateLanguageRequest struct {
	Language string `json:"language" binding:"required,max=16"`
}

// LinkCalendarRequest carries the calendar entry being linked.
// subject may be empty; end_date and location are accepted for
// compatibility and not stored.
type LinkCalendarRequest struct {
	Subject   string     `json:"subject"`
	StartDate time.Time  `json:"start_date" binding:"required"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Location  *string    `json:"location,omitempty"`
	Attendees *string    `json:"attendees,omitempty"`
}

// Snapshot returns the fields that are copied onto the transcription
func (r *LinkCalendarRequest) Snapshot() model.CalendarSnapshot {
	return model.CalendarSnapshot{
		Subject:   r.Subject,
		StartDate: r.StartDate,
		Attendees: r.Attendees,
	}
}
