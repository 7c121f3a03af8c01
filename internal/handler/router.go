package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts every route the API serves. The /visulaise spelling
// is part of the public surface and stays as-is.
func NewRouter(tasks *TaskHandler, reports *ReportHandler) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	r.Post("/addTasks", tasks.Create)
	r.Post("/addTasks/multiple", tasks.CreateBatch)

	r.Get("/tasks", tasks.List)
	r.Get("/tasks/mail/{task_id}", tasks.Mail)
	r.Get("/tasks/{task_id}", tasks.Get)
	r.Put("/tasks/Status/{task_id}", tasks.UpdateStatus)
	r.Put("/tasks/duedate/{task_id}", tasks.UpdateDueDate)
	r.Put("/tasks/{task_id}", tasks.Update)
	r.Delete("/tasks/{task_id}", tasks.Delete)

	r.Get("/download-report", reports.DownloadCSV)
	r.Get("/visulaise/{plot}", reports.Chart)

	return r
}
