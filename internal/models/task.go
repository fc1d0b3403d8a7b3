package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// Valid reports whether the status is one of the known workflow states
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskPriority represents how urgent a task is
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Valid reports whether the priority is one of the known levels
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task represents a unit of work inside a project.
// Tasks are always owned by a single user and reference exactly one project.
type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID primitive.ObjectID `bson:"projectId" json:"projectId"`
	UserID    string             `bson:"userId" json:"userId"`

	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Status      TaskStatus   `bson:"status" json:"status"`
	Priority    TaskPriority `bson:"priority" json:"priority"`

	// Time tracking, in minutes
	EstimatedTime int `bson:"estimatedTime" json:"estimatedTime"`
	TimeSpent     int `bson:"timeSpent" json:"timeSpent"`

	// Progress percentage, 0-100
	Progress int `bson:"progress" json:"progress"`

	DueDate     *time.Time `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// TaskPatch is a partial update to a task. Nil fields are left untouched.
type TaskPatch struct {
	Title         *string       `json:"title,omitempty"`
	Description   *string       `json:"description,omitempty"`
	Status        *TaskStatus   `json:"status,omitempty"`
	Priority      *TaskPriority `json:"priority,omitempty"`
	EstimatedTime *int          `json:"estimatedTime,omitempty"`
	TimeSpent     *int          `json:"timeSpent,omitempty"`
	Progress      *int          `json:"progress,omitempty"`
	DueDate       *time.Time    `json:"dueDate,omitempty"`
}

// TaskSummary aggregates a user's full task set for the dashboard.
// Completed tasks count as 100% toward TotalProgress regardless of their
// stored progress value; everything else contributes its stored progress.
type TaskSummary struct {
	Total         int `json:"total"`
	Completed     int `json:"completed"`
	InProgress    int `json:"inProgress"`
	Todo          int `json:"todo"`
	TotalProgress int `json:"totalProgress"`
}
