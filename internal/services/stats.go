package services

import (
	"math"
	"time"

	"trineo/internal/models"
)

// TimeRange selects the window for team statistics
type TimeRange string

const (
	RangeWeek  TimeRange = "week"  // last 7 days
	RangeMonth TimeRange = "month" // last 30 days
	RangeAll   TimeRange = "all"   // unbounded
)

// WindowStart resolves a range to its inclusive lower bound. The second
// return is false for an unbounded window. An empty range defaults to
// month; unrecognized values fall through to unbounded.
func WindowStart(r TimeRange, now time.Time) (time.Time, bool) {
	switch r {
	case RangeWeek:
		return now.AddDate(0, 0, -7), true
	case RangeMonth, "":
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

// Synthetic hours-per-completed-task used for the roster's average
// completion time. A placeholder: the model carries no real elapsed-time
// data, so the metric is just completed count scaled by a constant.
const completionHoursPerTask = 2.5

// SummarizeTasks computes the dashboard summary over a user's task set.
// Completed tasks contribute 100 to the average regardless of their
// stored progress; everything else contributes its stored value.
// An empty set yields all zeroes.
func SummarizeTasks(tasks []models.Task) models.TaskSummary {
	summary := models.TaskSummary{Total: len(tasks)}

	sum := 0
	for _, t := range tasks {
		switch t.Status {
		case models.TaskStatusCompleted:
			summary.Completed++
			sum += 100
		case models.TaskStatusInProgress:
			summary.InProgress++
			sum += t.Progress
		case models.TaskStatusTodo:
			summary.Todo++
			sum += t.Progress
		default:
			sum += t.Progress
		}
	}
	if summary.Total > 0 {
		summary.TotalProgress = roundDiv(sum, summary.Total)
	}
	return summary
}

// MemberStatsFor computes a roster entry's stats. Unlike SummarizeTasks,
// the progress average uses the literal stored values even for completed
// tasks; the two formulas are deliberately kept separate.
func MemberStatsFor(tasks []models.Task) models.MemberStats {
	w := windowStatsFor(tasks)
	stats := models.MemberStats{
		TotalTasks:      w.TotalTasks,
		CompletedTasks:  w.CompletedTasks,
		InProgressTasks: w.InProgressTasks,
		TodoTasks:       w.TodoTasks,
		TotalProgress:   w.TotalProgress,
	}
	if stats.CompletedTasks > 0 {
		stats.AverageCompletionTime = int(math.Round(float64(stats.CompletedTasks) * completionHoursPerTask))
	}
	return stats
}

// windowStatsFor computes per-status counts and the unweighted average of
// stored progress values over an already-windowed task set.
func windowStatsFor(tasks []models.Task) models.WindowStats {
	stats := models.WindowStats{TotalTasks: len(tasks)}

	sum := 0
	for _, t := range tasks {
		switch t.Status {
		case models.TaskStatusCompleted:
			stats.CompletedTasks++
		case models.TaskStatusInProgress:
			stats.InProgressTasks++
		case models.TaskStatusTodo:
			stats.TodoTasks++
		}
		sum += t.Progress
	}
	if stats.TotalTasks > 0 {
		stats.TotalProgress = roundDiv(sum, stats.TotalTasks)
	}
	return stats
}

// memberWindow pairs a user with their tasks inside the active window
type memberWindow struct {
	name  string
	tasks []models.Task
}

// teamStatsFrom derives team-wide statistics. Members are evaluated in
// the order given: the top performer is the member with the strictly
// highest completion ratio, so ties keep the first-encountered member.
// Each member contributes one value to the average progress regardless of
// task count; a member with no tasks in the window contributes 0.
func teamStatsFrom(members []memberWindow, allTasks []models.Task) models.TeamStats {
	stats := models.TeamStats{
		TotalMembers: len(members),
		TotalTasks:   len(allTasks),
		TopPerformer: "N/A",
	}
	for _, t := range allTasks {
		if t.Status == models.TaskStatusCompleted {
			stats.CompletedTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.TeamEfficiency = int(math.Round(float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100))
	}

	progressSum := 0.0
	topRatio := -1.0
	for _, m := range members {
		progressSum += meanStoredProgress(m.tasks)

		ratio := completionRatio(m.tasks)
		if ratio > topRatio {
			topRatio = ratio
			stats.TopPerformer = m.name
		}
	}
	if len(members) > 0 {
		stats.AverageProgress = int(math.Round(progressSum / float64(len(members))))
	}
	return stats
}

// meanStoredProgress averages stored progress values, 0 for an empty set
func meanStoredProgress(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	sum := 0
	for _, t := range tasks {
		sum += t.Progress
	}
	return float64(sum) / float64(len(tasks))
}

// completionRatio is completed/total in [0,1], 0 for an empty set
func completionRatio(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == models.TaskStatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks))
}

// roundDiv rounds sum/count to the nearest integer
func roundDiv(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
