package services

import (
	"testing"

	"trineo/internal/models"
)

func tasksWithStatuses(statuses ...models.TaskStatus) []models.Task {
	tasks := make([]models.Task, 0, len(statuses))
	for _, s := range statuses {
		tasks = append(tasks, models.Task{Status: s})
	}
	return tasks
}

func TestComputeRollup(t *testing.T) {
	tests := []struct {
		name          string
		tasks         []models.Task
		wantTotal     int
		wantCompleted int
		wantProgress  int
	}{
		{
			name:  "empty task set",
			tasks: nil,
		},
		{
			name:          "no completed tasks",
			tasks:         tasksWithStatuses(models.TaskStatusTodo, models.TaskStatusInProgress),
			wantTotal:     2,
			wantCompleted: 0,
			wantProgress:  0,
		},
		{
			name:          "all completed",
			tasks:         tasksWithStatuses(models.TaskStatusCompleted, models.TaskStatusCompleted),
			wantTotal:     2,
			wantCompleted: 2,
			wantProgress:  100,
		},
		{
			name:          "one of three completed rounds to 33",
			tasks:         tasksWithStatuses(models.TaskStatusCompleted, models.TaskStatusTodo, models.TaskStatusTodo),
			wantTotal:     3,
			wantCompleted: 1,
			wantProgress:  33,
		},
		{
			name:          "two of three completed rounds to 67",
			tasks:         tasksWithStatuses(models.TaskStatusCompleted, models.TaskStatusCompleted, models.TaskStatusTodo),
			wantTotal:     3,
			wantCompleted: 2,
			wantProgress:  67,
		},
		{
			name:          "cancelled tasks count toward total only",
			tasks:         tasksWithStatuses(models.TaskStatusCompleted, models.TaskStatusCancelled),
			wantTotal:     2,
			wantCompleted: 1,
			wantProgress:  50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, completed, progress := computeRollup(tt.tasks)
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if completed != tt.wantCompleted {
				t.Errorf("completed = %d, want %d", completed, tt.wantCompleted)
			}
			if progress != tt.wantProgress {
				t.Errorf("progress = %d, want %d", progress, tt.wantProgress)
			}
		})
	}
}

func TestComputeRollup_Idempotent(t *testing.T) {
	tasks := tasksWithStatuses(
		models.TaskStatusCompleted,
		models.TaskStatusInProgress,
		models.TaskStatusTodo,
	)

	t1, c1, p1 := computeRollup(tasks)
	t2, c2, p2 := computeRollup(tasks)

	if t1 != t2 || c1 != c2 || p1 != p2 {
		t.Errorf("recomputation diverged: (%d,%d,%d) vs (%d,%d,%d)", t1, c1, p1, t2, c2, p2)
	}
}
