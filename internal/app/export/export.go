// Package export writes transcription records to an Excel workbook,
// reading every page of a filtered list from the API.
package export

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/app/model"
)

// MaxPageSize is the largest page the list endpoint serves
const MaxPageSize = 100

// Lister is satisfied by the REST client
type Lister interface {
	ListTranscriptions(ctx context.Context, q dto.ListTranscriptionsQuery) (*dto.PaginatedTranscriptionsResponse, error)
}

type Exporter struct {
	lister   Lister
	progress *Progress
	logger   *zap.Logger
}

func NewExporter(lister Lister, progress *Progress, logger *zap.Logger) *Exporter {
	if progress == nil {
		progress = NewProgress(ProgressConfig{})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{lister: lister, progress: progress, logger: logger.Named("export")}
}

// Collect reads every page matching q. Page and Limit of q are ignored.
// Rows inserted while paging may shift pages; duplicates are dropped by id.
func (e *Exporter) Collect(ctx context.Context, q dto.ListTranscriptionsQuery) ([]model.Transcription, error) {
	q.Page = 1
	q.Limit = MaxPageSize

	var (
		rows []model.Transcription
		seen = make(map[int64]struct{})
		bar  *ProgressBar
	)
	for {
		page, err := e.lister.ListTranscriptions(ctx, q)
		if err != nil {
			if bar != nil {
				bar.Abort()
				e.progress.Wait()
			}
			return nil, fmt.Errorf("fetch page %d: %w", q.Page, err)
		}
		if bar == nil {
			bar = e.progress.CreateBar(page.Total, "Fetching transcriptions")
		}
		bar.SetTotal(int64(page.Total))

		for _, t := range page.Data {
			if _, dup := seen[t.ID]; dup {
				continue
			}
			seen[t.ID] = struct{}{}
			rows = append(rows, t)
		}
		bar.IncrBy(len(page.Data))
		e.logger.Debug("Fetched page", zap.Int("page", q.Page), zap.Int("rows", len(page.Data)), zap.Int("total", page.Total))

		if len(page.Data) == 0 || q.Page >= page.TotalPages {
			break
		}
		q.Page++
	}

	bar.Complete()
	e.progress.Wait()
	return rows, nil
}

// ToFile collects every matching row and writes the workbook
func (e *Exporter) ToFile(ctx context.Context, q dto.ListTranscriptionsQuery, path string) (int, error) {
	rows, err := e.Collect(ctx, q)
	if err != nil {
		return 0, err
	}
	if err := ToExcel(rows, path); err != nil {
		return 0, err
	}
	e.logger.Info("Exported transcriptions", zap.Int("rows", len(rows)), zap.String("path", path))
	return len(rows), nil
}
