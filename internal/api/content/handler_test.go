package content

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/config"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/integration/contentstore"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/pkg/validator"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/search"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsecase struct {
	results []search.Result
	entries []search.Entry
	err     error
}

func (s *stubUsecase) SearchContent(_ context.Context, _, _ string, _ int) ([]search.Result, error) {
	return s.results, s.err
}

func (s *stubUsecase) ListEntries(_ context.Context, _ string) ([]search.Entry, error) {
	return s.entries, s.err
}

func (s *stubUsecase) ImportSpreadsheet(_ context.Context, _ string, _ io.ReaderAt, _ int64) (*entity.ImportReport, error) {
	return nil, s.err
}

func newRouter(uc ContentUsecase) http.Handler {
	cfg := config.FileUploadConfig{MaxFileSize: 1 << 20, MaxUploadSize: 4 << 20}
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc, cfg, validator.NewFileValidator(cfg)))
	return r
}

func TestSearch(t *testing.T) {
	router := newRouter(&stubUsecase{results: []search.Result{
		{Entry: search.Entry{"title": "Paris Getaway"}, Score: 6, Relevance: 6},
	}})

	req := httptest.NewRequest(http.MethodGet, "/content/search?type=tour&q=paris", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, 6, resp.Results[0].Score)
}

func TestSearchStoreDownMapsToBadGateway(t *testing.T) {
	router := newRouter(&stubUsecase{
		err: &contentstore.FetchError{ContentType: "tour", Err: errors.New("timeout")},
	})

	req := httptest.NewRequest(http.MethodGet, "/content/search?type=tour&q=paris", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSearchMissingType(t *testing.T) {
	router := newRouter(&stubUsecase{err: entity.ErrMissingField})

	req := httptest.NewRequest(http.MethodGet, "/content/search?q=paris", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEntries(t *testing.T) {
	router := newRouter(&stubUsecase{entries: []search.Entry{
		{"title": "Paris Getaway"},
		{"title": "Tokyo Nights"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/content/tour/entries", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.ListEntriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestImportRequiresFile(t *testing.T) {
	router := newRouter(&stubUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/content/import", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
