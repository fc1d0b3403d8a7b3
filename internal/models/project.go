package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultProjectColor is applied when a project is created without one
const DefaultProjectColor = "#1E40AF"

// Project groups a user's tasks under a named category.
// TasksCompleted, TotalTasks and Progress are derived from the live task
// set and recomputed on every task write; they are never authoritative on
// their own and never incremented in place.
type Project struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID string             `bson:"userId" json:"userId"`

	Name  string `bson:"name" json:"name"`
	Type  string `bson:"type" json:"type"`
	Color string `bson:"color" json:"color"`

	TasksCompleted int `bson:"tasksCompleted" json:"tasksCompleted"`
	TotalTasks     int `bson:"totalTasks" json:"totalTasks"`
	Progress       int `bson:"progress" json:"progress"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProjectPatch is a partial update to a project's user-owned fields
type ProjectPatch struct {
	Name  *string `json:"name,omitempty"`
	Type  *string `json:"type,omitempty"`
	Color *string `json:"color,omitempty"`
}
