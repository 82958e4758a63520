package services

import (
	"context"

	"go.uber.org/zap"

	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	repository repository.TranscriptionRepository
	logger     *zap.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(repo repository.TranscriptionRepository, logger *zap.Logger) TranscriptionService {
	return &TranscriptionServiceImpl{
		repository: repo,
		logger:     logger.Named("transcriptions"),
	}
}

// ListTranscriptions returns one filtered page, newest first
func (s *TranscriptionServiceImpl) ListTranscriptions(ctx context.Context, query dto.ListTranscriptionsQuery) (*dto.PaginatedTranscriptionsResponse, error) {
	page, err := s.repository.List(ctx, query.ToQuery())
	if err != nil {
		return nil, mapError(s.logger, "Transcription", "Failed to fetch transcriptions", err)
	}
	return dto.NewPaginatedTranscriptionsResponse(page), nil
}

func (s *TranscriptionServiceImpl) GetTranscription(ctx context.Context, id int64) (*model.Transcription, error) {
	t, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, mapError(s.logger, "Transcription", "Failed to fetch transcription", err)
	}
	return t, nil
}

// DeleteTranscriptions removes the given ids in one transaction
func (s *TranscriptionServiceImpl) DeleteTranscriptions(ctx context.Context, ids []int64) (int64, error) {
	deleted, err := s.repository.BulkDelete(ctx, ids)
	if err != nil {
		return 0, mapError(s.logger, "Transcription", "Failed to delete transcriptions", err)
	}
	s.logger.Info("transcriptions deleted", zap.Int("requested", len(ids)), zap.Int64("deleted", deleted))
	return deleted, nil
}

func (s *TranscriptionServiceImpl) UpdateLanguage(ctx context.Context, id int64, language string) (*model.Transcription, error) {
	t, err := s.repository.UpdateLanguage(ctx, id, language)
	if err != nil {
		return nil, mapError(s.logger, "Transcription", "Failed to update language", err)
	}
	return t, nil
}

// LinkCalendar copies a calendar snapshot onto the transcription
func (s *TranscriptionServiceImpl) LinkCalendar(ctx context.Context, id int64, snapshot model.CalendarSnapshot) (*model.Transcription, error) {
	t, err := s.repository.LinkCalendar(ctx, id, snapshot)
	if err != nil {
		return nil, mapError(s.logger, "Transcription", "Failed to link calendar data", err)
	}
	return t, nil
}
