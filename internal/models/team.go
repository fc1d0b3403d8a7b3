package models

// MemberStats holds the per-member rollups shown on the team roster.
// TotalProgress averages the literal stored progress values, unlike
// TaskSummary where completed tasks count as 100.
// AverageCompletionTime is a synthetic placeholder (completed
// count times a fixed constant, in hours); no real time-tracking data
// source exists in the model.
type MemberStats struct {
	TotalTasks            int `json:"totalTasks"`
	CompletedTasks        int `json:"completedTasks"`
	InProgressTasks       int `json:"inProgressTasks"`
	TodoTasks             int `json:"todoTasks"`
	TotalProgress         int `json:"totalProgress"`
	AverageCompletionTime int `json:"averageCompletionTime"`
}

// TeamMember is a roster entry with that user's stats
type TeamMember struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Avatar string      `json:"avatar,omitempty"`
	Stats  MemberStats `json:"stats"`
}

// WindowStats holds a member's rollups restricted to a time window
type WindowStats struct {
	TotalTasks      int `json:"totalTasks"`
	CompletedTasks  int `json:"completedTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	TodoTasks       int `json:"todoTasks"`
	TotalProgress   int `json:"totalProgress"`
}

// MemberWindowStats is the response for a single member's windowed stats
type MemberWindowStats struct {
	UserID string      `json:"userId"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Stats  WindowStats `json:"stats"`
}

// TeamStats summarizes the whole team over a time window
type TeamStats struct {
	TotalMembers    int    `json:"totalMembers"`
	TotalTasks      int    `json:"totalTasks"`
	CompletedTasks  int    `json:"completedTasks"`
	AverageProgress int    `json:"averageProgress"`
	TopPerformer    string `json:"topPerformer"`
	TeamEfficiency  int    `json:"teamEfficiency"`
}
