package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-copilot/internal/intent"
	"github.com/BuzzLyutic/todo-copilot/internal/model"
	"github.com/BuzzLyutic/todo-copilot/internal/service"
	"github.com/BuzzLyutic/todo-copilot/internal/worker"
	"github.com/BuzzLyutic/todo-copilot/pkg/respond"
)

// AssistantHandler is the boundary for the conversational assistant: it exposes
// the action catalog, a readable view of the todos, and runs actions through the pool.
type AssistantHandler struct {
	service *service.TaskService
	pool    *worker.Pool
	logger  *zap.Logger
}

func NewAssistantHandler(srv *service.TaskService, pool *worker.Pool, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		service: srv,
		pool:    pool,
		logger:  logger,
	}
}

func (h *AssistantHandler) Actions(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, intent.Actions())
}

func (h *AssistantHandler) Context(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context(), model.TaskFilter{})
	if err != nil {
		h.logger.Error("failed to list tasks", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	respond.JSON(w, r, http.StatusOK, map[string]interface{}{
		"description": "The current list of todos",
		"todos":       intent.Readable(tasks),
	})
}

func (h *AssistantHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")

	args := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("failed to decode action arguments", zap.String("action", action), zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, "arguments must be a json object")
		return
	}

	in, err := intent.Decode(action, args)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, err.Error())
		return
	}

	reply, err := h.pool.Submit(r.Context(), in)
	switch {
	case err == nil:
		respond.Result(w, r, reply)
	case errors.Is(err, worker.ErrStopped), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.Error(w, r, http.StatusServiceUnavailable, "assistant actions unavailable")
	default:
		h.logger.Error("action failed", zap.String("action", action), zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
