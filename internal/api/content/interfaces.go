package content

import (
	"context"
	"io"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/search"
)

type ContentUsecase interface {
	SearchContent(ctx context.Context, contentType, query string, limit int) ([]search.Result, error)
	ListEntries(ctx context.Context, contentType string) ([]search.Entry, error)
	ImportSpreadsheet(ctx context.Context, contentType string, file io.ReaderAt, size int64) (*entity.ImportReport, error)
}
