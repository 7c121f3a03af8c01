package report

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gsushant/task-reminder-api/internal/model"
)

// ErrNoData means the current task set has nothing to plot.
var ErrNoData = errors.New("no data to plot")

var csvHeader = []string{
	"task_id", "name", "description", "status",
	"creation_date", "due_date", "completed_date",
	"assigned_to", "priority",
}

// Preprocess drops rows that are unusable downstream (missing
// creation or due date). Bad rows never abort a report.
func Preprocess(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.CreationDate.IsZero() || t.DueDate.IsZero() {
			continue
		}
		out = append(out, t)
	}
	return out
}

// CompletionHours is the elapsed time between creation and completion,
// defined only for completed tasks.
func CompletionHours(t model.Task) (float64, bool) {
	if t.CompletedDate == nil {
		return 0, false
	}
	return t.CompletedDate.Sub(t.CreationDate).Hours(), true
}

// WriteCSV serializes the preprocessed task set, one row per task.
func WriteCSV(w io.Writer, tasks []model.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range Preprocess(tasks) {
		completed := ""
		if t.CompletedDate != nil {
			completed = t.CompletedDate.Format(time.RFC3339)
		}
		rec := []string{
			strconv.FormatInt(t.ID, 10),
			t.Name,
			t.Description,
			t.Status,
			t.CreationDate.Format(time.RFC3339),
			t.DueDate.Format(time.RFC3339),
			completed,
			t.AssignedTo,
			t.Priority,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
