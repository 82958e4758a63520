package services

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"transcript-control/internal/api/errors"
	"transcript-control/internal/app/csvimport"
	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
)

// CalendarServiceImpl implements CalendarService
type CalendarServiceImpl struct {
	repository repository.CalendarRepository
	importer   CSVImporter
	logger     *zap.Logger
}

// NewCalendarService creates a new calendar service
func NewCalendarService(repo repository.CalendarRepository, importer CSVImporter, logger *zap.Logger) CalendarService {
	return &CalendarServiceImpl{
		repository: repo,
		importer:   importer,
		logger:     logger.Named("calendar"),
	}
}

func (s *CalendarServiceImpl) EntriesOn(ctx context.Context, day time.Time) ([]model.CalendarEntry, error) {
	entries, err := s.repository.EntriesOn(ctx, day)
	if err != nil {
		return nil, mapError(s.logger, "Calendar entry", "Failed to fetch calendar data", err)
	}
	return entries, nil
}

func (s *CalendarServiceImpl) DayEntries(ctx context.Context, day time.Time) ([]model.CalendarEntry, error) {
	entries, err := s.repository.DayEntries(ctx, day)
	if err != nil {
		return nil, mapError(s.logger, "Calendar entry", "Failed to fetch calendar data by day", err)
	}
	s.logger.Debug("calendar day loaded", zap.String("date", repository.DateParam(day)), zap.Int("meetings", len(entries)))
	return entries, nil
}

// ImportCSV hands the upload to the import service
func (s *CalendarServiceImpl) ImportCSV(ctx context.Context, filename string, content io.Reader, mode csvimport.Mode) error {
	if err := s.importer.Import(ctx, filename, content, mode); err != nil {
		s.logger.Error("calendar import failed", zap.String("filename", filename), zap.Error(err))
		return errors.NewServiceUnavailableError("Failed to import calendar CSV")
	}
	return nil
}
