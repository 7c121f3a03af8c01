package repo

import (
	"context"
	"time"

	"github.com/gsushant/task-reminder-api/internal/model"
)

// TaskRepository is the persistence contract for tasks.
type TaskRepository interface {
	Create(ctx context.Context, in model.TaskInput) (model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Task, error)
	Update(ctx context.Context, id int64, in model.TaskInput) (model.Task, error)
	UpdateStatus(ctx context.Context, id int64, status string) (model.Task, error)
	UpdateDueDate(ctx context.Context, id int64, due time.Time) (model.Task, error)
	Delete(ctx context.Context, id int64) (model.Task, error)
}
