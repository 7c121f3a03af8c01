package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gsushant/task-reminder-api/internal/model"
	"github.com/gsushant/task-reminder-api/internal/repo"
	"github.com/gsushant/task-reminder-api/internal/service"
	"github.com/gsushant/task-reminder-api/pkg/respond"
)

// Notifier is the slice of the mailer the handler needs for the manual
// reminder endpoint.
type Notifier interface {
	Notify(ctx context.Context, t model.Task) error
}

type TaskHandler struct {
	service  *service.TaskService
	notifier Notifier
	logger   *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, notifier Notifier, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service:  srv,
		notifier: notifier,
		logger:   logger,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	var req model.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	task, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	var req []model.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	if inserted, err := h.service.CreateBatch(r.Context(), req); err != nil {
		h.logger.Warn("batch create stopped early",
			zap.Int("inserted", inserted),
			zap.Error(err),
		)
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, "done")
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "task_id"), 10, 64)

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context())
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

// Mail sends the reminder for one task on demand. Delivery failures
// are logged, never surfaced: the mail contract is fire-and-forget.
func (h *TaskHandler) Mail(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "task_id"), 10, 64)

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	if err := h.notifier.Notify(r.Context(), task); err != nil {
		h.logger.Error("failed to send reminder",
			zap.Int64("task_id", task.ID),
			zap.Error(err),
		)
	}

	respond.JSON(w, r, http.StatusOK, "mailed user")
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "task_id"), 10, 64)

	var req model.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "task_id"), 10, 64)

	status := r.URL.Query().Get("status")
	task, err := h.service.UpdateStatus(r.Context(), id, status)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) UpdateDueDate(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "task_id"), 10, 64)

	due, err := time.Parse(time.RFC3339, r.URL.Query().Get("duedate"))
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid duedate, want RFC3339")
		return
	}

	task, err := h.service.UpdateDueDate(r.Context(), id, due)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

// Delete removes the task and echoes the record as it was right before
// deletion.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "task_id"), 10, 64)

	task, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, "Task not found")
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, "validation error")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
