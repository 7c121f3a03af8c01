package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gsushant/task-reminder-api/internal/model"
	"github.com/gsushant/task-reminder-api/internal/repo"
)

var ErrValidation = errors.New("validation error")

type TaskService struct {
	repo repo.TaskRepository
	now  func() time.Time
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *TaskService) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	if err := s.validate(in); err != nil {
		return model.Task{}, err
	}

	// Defaults the store does not own: status and creation_date.
	if in.Status == "" {
		in.Status = model.StatusPending
	}
	if in.CreationDate.IsZero() {
		in.CreationDate = s.now()
	}

	return s.repo.Create(ctx, in)
}

// CreateBatch inserts tasks one at a time, committing each row on its
// own. The first failure stops the batch; rows already inserted stay.
// Returns how many rows were inserted.
func (s *TaskService) CreateBatch(ctx context.Context, ins []model.TaskInput) (int, error) {
	for i, in := range ins {
		if _, err := s.Create(ctx, in); err != nil {
			return i, fmt.Errorf("task %d: %w", i, err)
		}
	}
	return len(ins), nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Update(ctx context.Context, id int64, in model.TaskInput) (model.Task, error) {
	if err := s.validate(in); err != nil {
		return model.Task{}, err
	}
	if in.Status == "" {
		in.Status = model.StatusPending
	}
	return s.repo.Update(ctx, id, in)
}

func (s *TaskService) UpdateStatus(ctx context.Context, id int64, status string) (model.Task, error) {
	if strings.TrimSpace(status) == "" {
		return model.Task{}, ErrValidation
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *TaskService) UpdateDueDate(ctx context.Context, id int64, due time.Time) (model.Task, error) {
	if due.IsZero() {
		return model.Task{}, ErrValidation
	}
	return s.repo.UpdateDueDate(ctx, id, due)
}

func (s *TaskService) Delete(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) validate(in model.TaskInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrValidation
	}
	if strings.TrimSpace(in.AssignedTo) == "" {
		return ErrValidation
	}
	if strings.TrimSpace(in.Priority) == "" {
		return ErrValidation
	}
	if in.DueDate.IsZero() {
		return ErrValidation
	}
	return nil
}
