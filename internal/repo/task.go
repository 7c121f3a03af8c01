package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gsushant/task-reminder-api/internal/model"
)

var ErrorNotFound = errors.New("not found")

const taskColumns = `task_id, name, description, status, creation_date, due_date, completed_date, assigned_to, priority`

type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{
		pool: pool,
	}
}

func (r *TaskRepo) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (name, description, status, creation_date, due_date, completed_date, assigned_to, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+taskColumns,
		in.Name, in.Description, in.Status, in.CreationDate, in.DueDate, in.CompletedDate, in.AssignedTo, in.Priority,
	)
	return scanTask(row)
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE task_id = $1
	`, id)
	return scanTask(row)
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		ORDER BY task_id
	`)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

func (r *TaskRepo) ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE due_date >= $1 AND due_date <= $2
		ORDER BY due_date, task_id
	`, from, to)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

// Update overwrites every mutable field. task_id and creation_date stay
// as assigned at creation.
func (r *TaskRepo) Update(ctx context.Context, id int64, in model.TaskInput) (model.Task, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET name = $2, description = $3, status = $4, due_date = $5,
		    completed_date = $6, assigned_to = $7, priority = $8
		WHERE task_id = $1
		RETURNING `+taskColumns,
		id, in.Name, in.Description, in.Status, in.DueDate, in.CompletedDate, in.AssignedTo, in.Priority,
	)
	return scanTask(row)
}

func (r *TaskRepo) UpdateStatus(ctx context.Context, id int64, status string) (model.Task, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET status = $2
		WHERE task_id = $1
		RETURNING `+taskColumns,
		id, status,
	)
	return scanTask(row)
}

func (r *TaskRepo) UpdateDueDate(ctx context.Context, id int64, due time.Time) (model.Task, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET due_date = $2
		WHERE task_id = $1
		RETURNING `+taskColumns,
		id, due,
	)
	return scanTask(row)
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) (model.Task, error) {
	row := r.pool.QueryRow(ctx, `
		DELETE FROM tasks
		WHERE task_id = $1
		RETURNING `+taskColumns,
		id,
	)
	return scanTask(row)
}

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.Status,
		&t.CreationDate, &t.DueDate, &t.CompletedDate,
		&t.AssignedTo, &t.Priority,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrorNotFound
	}
	return t, err
}

func collectTasks(rows pgx.Rows) ([]model.Task, error) {
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
