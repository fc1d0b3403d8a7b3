package services

import (
	"testing"
	"time"

	"trineo/internal/models"
)

func task(status models.TaskStatus, progress int) models.Task {
	return models.Task{Status: status, Progress: progress}
}

func TestSummarizeTasks(t *testing.T) {
	tests := []struct {
		name  string
		tasks []models.Task
		want  models.TaskSummary
	}{
		{
			name:  "empty set yields all zeroes",
			tasks: nil,
			want:  models.TaskSummary{},
		},
		{
			name: "completed counts as 100 regardless of stored progress",
			tasks: []models.Task{
				task(models.TaskStatusCompleted, 40),
				task(models.TaskStatusTodo, 20),
			},
			want: models.TaskSummary{
				Total:         2,
				Completed:     1,
				Todo:          1,
				TotalProgress: 60, // round((100+20)/2)
			},
		},
		{
			name: "in-progress contributes stored progress",
			tasks: []models.Task{
				task(models.TaskStatusInProgress, 50),
				task(models.TaskStatusInProgress, 25),
			},
			want: models.TaskSummary{
				Total:         2,
				InProgress:    2,
				TotalProgress: 38, // round(75/2)
			},
		},
		{
			name: "cancelled tasks count toward total but no status bucket",
			tasks: []models.Task{
				task(models.TaskStatusCancelled, 10),
				task(models.TaskStatusCompleted, 0),
			},
			want: models.TaskSummary{
				Total:         2,
				Completed:     1,
				TotalProgress: 55, // round((10+100)/2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeTasks(tt.tasks)
			if got != tt.want {
				t.Errorf("SummarizeTasks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMemberStatsFor(t *testing.T) {
	// Unlike the summary, the roster average uses literal stored progress
	// values even for completed tasks.
	tasks := []models.Task{
		task(models.TaskStatusCompleted, 40),
		task(models.TaskStatusTodo, 20),
	}

	got := MemberStatsFor(tasks)
	want := models.MemberStats{
		TotalTasks:            2,
		CompletedTasks:        1,
		TodoTasks:             1,
		TotalProgress:         30, // round((40+20)/2), not (100+20)/2
		AverageCompletionTime: 3,  // round(1 * 2.5)
	}
	if got != want {
		t.Errorf("MemberStatsFor() = %+v, want %+v", got, want)
	}
}

func TestMemberStatsFor_Empty(t *testing.T) {
	got := MemberStatsFor(nil)
	if got != (models.MemberStats{}) {
		t.Errorf("MemberStatsFor(nil) = %+v, want zero value", got)
	}
}

func TestMemberStatsFor_CompletionTime(t *testing.T) {
	tests := []struct {
		completed int
		want      int
	}{
		{0, 0},
		{1, 3},  // round(2.5)
		{2, 5},  // round(5.0)
		{4, 10}, // round(10.0)
	}

	for _, tt := range tests {
		statuses := make([]models.TaskStatus, tt.completed)
		for i := range statuses {
			statuses[i] = models.TaskStatusCompleted
		}
		got := MemberStatsFor(tasksWithStatuses(statuses...))
		if got.AverageCompletionTime != tt.want {
			t.Errorf("completed=%d: AverageCompletionTime = %d, want %d",
				tt.completed, got.AverageCompletionTime, tt.want)
		}
	}
}

func TestTeamStatsFrom_Efficiency(t *testing.T) {
	// 10 tasks in window, 3 completed -> 30% efficiency
	var all []models.Task
	for i := 0; i < 10; i++ {
		status := models.TaskStatusTodo
		if i < 3 {
			status = models.TaskStatusCompleted
		}
		all = append(all, models.Task{Status: status})
	}

	stats := teamStatsFrom([]memberWindow{{name: "Anal", tasks: all}}, all)
	if stats.TeamEfficiency != 30 {
		t.Errorf("TeamEfficiency = %d, want 30", stats.TeamEfficiency)
	}
	if stats.TotalTasks != 10 || stats.CompletedTasks != 3 {
		t.Errorf("TotalTasks=%d CompletedTasks=%d, want 10 and 3", stats.TotalTasks, stats.CompletedTasks)
	}
}

func TestTeamStatsFrom_TopPerformerTieBreak(t *testing.T) {
	// Both members have no tasks in the window: the first-encountered
	// member wins the tie.
	stats := teamStatsFrom([]memberWindow{
		{name: "Anal"},
		{name: "Fayiz"},
	}, nil)
	if stats.TopPerformer != "Anal" {
		t.Errorf("TopPerformer = %q, want first-encountered %q", stats.TopPerformer, "Anal")
	}
}

func TestTeamStatsFrom_TopPerformerHighestRatio(t *testing.T) {
	anal := []models.Task{
		task(models.TaskStatusCompleted, 100),
		task(models.TaskStatusTodo, 0),
	}
	fayiz := []models.Task{
		task(models.TaskStatusCompleted, 100),
	}
	all := append(append([]models.Task{}, anal...), fayiz...)

	stats := teamStatsFrom([]memberWindow{
		{name: "Anal", tasks: anal},
		{name: "Fayiz", tasks: fayiz},
	}, all)
	if stats.TopPerformer != "Fayiz" {
		t.Errorf("TopPerformer = %q, want %q", stats.TopPerformer, "Fayiz")
	}
}

func TestTeamStatsFrom_AverageProgressPerMember(t *testing.T) {
	// Each member contributes one value to the mean regardless of task
	// count; a member with no tasks contributes 0.
	anal := []models.Task{
		task(models.TaskStatusTodo, 80),
		task(models.TaskStatusTodo, 40),
	}
	stats := teamStatsFrom([]memberWindow{
		{name: "Anal", tasks: anal}, // mean 60
		{name: "Fayiz"},             // no tasks -> 0
	}, anal)
	if stats.AverageProgress != 30 {
		t.Errorf("AverageProgress = %d, want 30", stats.AverageProgress)
	}
}

func TestTeamStatsFrom_Empty(t *testing.T) {
	stats := teamStatsFrom(nil, nil)
	if stats.TopPerformer != "N/A" {
		t.Errorf("TopPerformer = %q, want N/A", stats.TopPerformer)
	}
	if stats.TeamEfficiency != 0 || stats.AverageProgress != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		r           TimeRange
		wantStart   time.Time
		wantBounded bool
	}{
		{"week", RangeWeek, now.AddDate(0, 0, -7), true},
		{"month", RangeMonth, now.AddDate(0, 0, -30), true},
		{"empty defaults to month", TimeRange(""), now.AddDate(0, 0, -30), true},
		{"all is unbounded", RangeAll, time.Time{}, false},
		{"unknown falls through to unbounded", TimeRange("year"), time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, bounded := WindowStart(tt.r, now)
			if bounded != tt.wantBounded {
				t.Fatalf("bounded = %v, want %v", bounded, tt.wantBounded)
			}
			if bounded && !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
		})
	}
}
