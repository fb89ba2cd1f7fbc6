package bot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase BotUsecase
}

func NewHandler(usecase BotUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// CreateBot handles POST /bots
func (h *Handler) CreateBot(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateBot")

	var req entity.CreateBotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	created, err := h.usecase.CreateBot(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "bot created successfully", zap.String("bot_id", created.ID))
	h.respondJSON(w, http.StatusCreated, toBotDetail(created))
}

// ListBots handles GET /bots
func (h *Handler) ListBots(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListBots")

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	req := entity.ListBotsRequest{
		Skip:  skip,
		Limit: limit,
	}

	req.Normalize()

	bots, err := h.usecase.ListBots(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	details := make([]*entity.BotDetail, 0, len(bots))
	for _, b := range bots {
		details = append(details, toBotDetail(b))
	}

	ctxzap.Info(ctx, "bots listed successfully", zap.Int("count", len(details)))
	h.respondJSON(w, http.StatusOK, &entity.ListBotsResponse{
		Bots: details,
	})
}

// GetBot handles GET /bots/{bot_id}
func (h *Handler) GetBot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	botID := chi.URLParam(r, "bot_id")

	ctx = logger.AddFields(ctx,
		zap.String("bot_id", botID),
		zap.String("action", "GetBot"),
	)

	bot, err := h.usecase.GetBot(ctx, botID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toBotDetail(bot))
}

// UpdateBot handles PUT /bots/{bot_id}
func (h *Handler) UpdateBot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	botID := chi.URLParam(r, "bot_id")

	ctx = logger.AddFields(ctx,
		zap.String("bot_id", botID),
		zap.String("action", "UpdateBot"),
	)

	var req entity.UpdateBotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := h.usecase.UpdateBot(ctx, botID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "bot updated successfully")
	h.respondJSON(w, http.StatusOK, toBotDetail(updated))
}

// DeleteBot handles DELETE /bots/{bot_id}
func (h *Handler) DeleteBot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	botID := chi.URLParam(r, "bot_id")

	ctx = logger.AddFields(ctx,
		zap.String("bot_id", botID),
		zap.String("action", "DeleteBot"),
	)

	if err := h.usecase.DeleteBot(ctx, botID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "bot deleted successfully")
	h.respondJSON(w, http.StatusOK, &entity.DeleteBotResponse{
		Status: "deleted",
	})
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
	if errors.Is(err, entity.ErrBotNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidBot) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
