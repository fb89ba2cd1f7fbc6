package content

import (
	"context"
	"fmt"
	"io"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/search"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

// ContentUsecase exposes content search, listing and bulk import on top of
// the external content store.
type ContentUsecase struct {
	store  ContentStore
	engine SearchEngine
	logger *zap.Logger
}

// NewUsecase creates a new content use case
func NewUsecase(store ContentStore, engine SearchEngine, logger *zap.Logger) *ContentUsecase {
	return &ContentUsecase{
		store:  store,
		engine: engine,
		logger: logger,
	}
}

// SearchContent runs a plain relevance search over a content type. The limit
// is clamped to [1, 100]; zero or negative falls back to the default.
func (uc *ContentUsecase) SearchContent(ctx context.Context, contentType, query string, limit int) ([]search.Result, error) {
	if contentType == "" {
		return nil, fmt.Errorf("%w: type", entity.ErrMissingField)
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	results, err := uc.engine.Search(ctx, contentType, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search content: %w", err)
	}

	return results, nil
}

// ListEntries returns the raw entries of a content type without scoring.
func (uc *ContentUsecase) ListEntries(ctx context.Context, contentType string) ([]search.Entry, error) {
	if contentType == "" {
		return nil, fmt.Errorf("%w: content_type", entity.ErrMissingField)
	}

	entries, err := uc.store.FetchEntries(ctx, contentType, search.DefaultFetchLimit)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// ImportSpreadsheet bulk-creates entries of a content type from an uploaded
// xlsx file. The first row provides field names; every data row with a title
// becomes one entry. Row failures are collected, not fatal.
func (uc *ContentUsecase) ImportSpreadsheet(ctx context.Context, contentType string, file io.ReaderAt, size int64) (*entity.ImportReport, error) {
	if contentType == "" {
		return nil, fmt.Errorf("%w: content_type", entity.ErrMissingField)
	}

	rows, err := parseSpreadsheet(file, size)
	if err != nil {
		return nil, err
	}

	report := &entity.ImportReport{
		ContentType: contentType,
		Total:       len(rows),
	}

	for _, row := range rows {
		title, _ := row.fields["title"].(string)
		if title == "" {
			report.Failed++
			report.Errors = append(report.Errors, entity.ImportRowError{
				Row:     row.number,
				Message: "missing title",
			})
			continue
		}

		if _, err := uc.store.CreateEntry(ctx, contentType, row.fields); err != nil {
			ctxzap.Warn(ctx, "import row failed",
				zap.Int("row", row.number),
				zap.Error(err),
			)
			report.Failed++
			report.Errors = append(report.Errors, entity.ImportRowError{
				Row:     row.number,
				Message: err.Error(),
			})
			continue
		}

		report.Created++
	}

	ctxzap.Info(ctx, "spreadsheet import finished",
		zap.String("content_type", contentType),
		zap.Int("total", report.Total),
		zap.Int("created", report.Created),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}
