package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gsushant/task-reminder-api/internal/report"
	"github.com/gsushant/task-reminder-api/internal/service"
	"github.com/gsushant/task-reminder-api/pkg/respond"
)

type ReportHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewReportHandler(srv *service.TaskService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *ReportHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("failed to load tasks for report", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, tasks); err != nil {
		h.logger.Error("failed to build csv report", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	respond.Attachment(w, r, "report.csv", "text/csv", buf.Bytes())
}

func (h *ReportHandler) Chart(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "plot")

	tasks, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("failed to load tasks for chart", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	var buf bytes.Buffer
	if err := report.RenderChart(&buf, kind, tasks); err != nil {
		if errors.Is(err, report.ErrNoData) {
			respond.Error(w, r, http.StatusBadRequest, "no data to plot")
			return
		}
		h.logger.Error("failed to render chart",
			zap.String("plot", kind),
			zap.Error(err),
		)
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	respond.Inline(w, r, "out.png", "image/png", buf.Bytes())
}
