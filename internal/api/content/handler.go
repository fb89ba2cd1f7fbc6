package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/config"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/integration/contentstore"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/pkg/logger"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   ContentUsecase
	cfg       config.FileUploadConfig
	validator *validator.Validator
}

func NewHandler(usecase ContentUsecase, cfg config.FileUploadConfig, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		cfg:       cfg,
		validator: validator,
	}
}

// Search handles GET /content/search
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SearchContent")

	contentType := r.URL.Query().Get("type")
	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	ctxzap.Debug(ctx, "searching content",
		zap.String("content_type", contentType),
		zap.String("query", query),
		zap.Int("limit", limit),
	)

	results, err := h.usecase.SearchContent(ctx, contentType, query, limit)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	items := make([]entity.SearchResultItem, 0, len(results))
	for _, res := range results {
		items = append(items, entity.SearchResultItem{
			Entry:     res.Entry,
			Score:     res.Score,
			Relevance: res.Relevance,
		})
	}

	ctxzap.Info(ctx, "content searched successfully", zap.Int("count", len(items)))
	h.respondJSON(w, http.StatusOK, &entity.SearchResponse{
		Results: items,
		Count:   len(items),
	})
}

// ListEntries handles GET /content/{content_type}/entries
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contentType := chi.URLParam(r, "content_type")

	ctx = logger.AddFields(ctx,
		zap.String("content_type", contentType),
		zap.String("action", "ListEntries"),
	)

	entries, err := h.usecase.ListEntries(ctx, contentType)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	raw := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		raw = append(raw, e)
	}

	ctxzap.Info(ctx, "entries listed successfully", zap.Int("count", len(raw)))
	h.respondJSON(w, http.StatusOK, &entity.ListEntriesResponse{
		Entries: raw,
		Count:   len(raw),
	})
}

// Import handles POST /content/import
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ImportContent")

	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid form data or size too large", err)
		return
	}

	contentType := r.FormValue("content_type")
	if contentType == "" {
		h.respondError(ctx, w, http.StatusBadRequest, "content_type is required", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "spreadsheet file is required", err)
		return
	}
	defer file.Close()

	if err := h.validator.ValidateUpload(header); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid file", err)
		return
	}

	ctxzap.Info(ctx, "importing spreadsheet",
		zap.String("content_type", contentType),
		zap.String("filename", header.Filename),
		zap.Int64("size", header.Size),
	)

	report, err := h.usecase.ImportSpreadsheet(ctx, contentType, file, header.Size)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, report)
}

// Helper methods
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	h.respondJSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var fetchErr *contentstore.FetchError
	if errors.As(err, &fetchErr) {
		h.respondError(ctx, w, http.StatusBadGateway, "content store unavailable", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else if errors.Is(err, entity.ErrInvalidFile) || errors.Is(err, entity.ErrEmptySpreadsheet) ||
		errors.Is(err, entity.ErrInvalidExtension) || errors.Is(err, entity.ErrFileTooLarge) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid file", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
