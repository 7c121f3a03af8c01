package model

import "time"

const StatusPending = "Pending"

type Task struct {
	ID            int64      `json:"task_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	CreationDate  time.Time  `json:"creation_date"`
	DueDate       time.Time  `json:"due_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	AssignedTo    string     `json:"assigned_to"`
	Priority      string     `json:"priority"`
}

// TaskInput is the create/update payload: every Task field except the
// store-assigned id.
type TaskInput struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	CreationDate  time.Time  `json:"creation_date"`
	DueDate       time.Time  `json:"due_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	AssignedTo    string     `json:"assigned_to"`
	Priority      string     `json:"priority"`
}
