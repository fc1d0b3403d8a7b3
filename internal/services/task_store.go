package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"trineo/internal/database"
	"trineo/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskStore handles MongoDB CRUD for tasks. Every write calls back into
// the project store to recompute the owning project's rollup, so the
// denormalized counters never drift from the live task set. The rollup
// write is sequential with, not transactional with, the task write;
// a stale read in between self-corrects on the next recomputation.
type TaskStore struct {
	collection *mongo.Collection
	projects   *ProjectStore
}

// NewTaskStore creates a new task store
func NewTaskStore(mongodb *database.MongoDB, projects *ProjectStore) *TaskStore {
	return &TaskStore{
		collection: mongodb.Collection(database.CollectionTasks),
		projects:   projects,
	}
}

// Create inserts a new task after verifying the target project is owned
// by the same user. Returns ErrProjectNotFound otherwise.
func (s *TaskStore) Create(ctx context.Context, task *models.Task) error {
	if _, err := s.projects.GetByID(ctx, task.UserID, task.ProjectID); err != nil {
		return err
	}

	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}
	if task.Status == models.TaskStatusCompleted && task.CompletedAt == nil {
		task.CompletedAt = &now
	}

	result, err := s.collection.InsertOne(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	task.ID = result.InsertedID.(primitive.ObjectID)

	s.recomputeProject(ctx, task.ProjectID)
	return nil
}

// GetByID retrieves a task by ID, scoped to user
func (s *TaskStore) GetByID(ctx context.Context, userID string, taskID primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := s.collection.FindOne(ctx, bson.M{
		"_id":    taskID,
		"userId": userID,
	}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

// TaskFilters defines filter options for listing tasks
type TaskFilters struct {
	Status    models.TaskStatus
	ProjectID *primitive.ObjectID
}

// List returns a user's tasks with optional filters, newest first
func (s *TaskStore) List(ctx context.Context, userID string, filters TaskFilters) ([]models.Task, error) {
	filter := bson.M{"userId": userID}
	if filters.Status != "" {
		filter["status"] = filters.Status
	}
	if filters.ProjectID != nil {
		filter["projectId"] = *filters.ProjectID
	}

	cursor, err := s.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update to a task and stamps updatedAt.
// When the patch moves status to "completed" and completedAt is still
// unset, completedAt is set to now as a second write; repeating the same
// update leaves the original completedAt untouched.
func (s *TaskStore) Update(ctx context.Context, userID string, taskID primitive.ObjectID, patch models.TaskPatch) (*models.Task, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.EstimatedTime != nil {
		set["estimatedTime"] = *patch.EstimatedTime
	}
	if patch.TimeSpent != nil {
		set["timeSpent"] = *patch.TimeSpent
	}
	if patch.Progress != nil {
		set["progress"] = *patch.Progress
	}
	if patch.DueDate != nil {
		set["dueDate"] = *patch.DueDate
	}

	var task models.Task
	err := s.collection.FindOneAndUpdate(ctx, bson.M{
		"_id":    taskID,
		"userId": userID,
	}, bson.M{"$set": set}, options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if patch.Status != nil && *patch.Status == models.TaskStatusCompleted && task.CompletedAt == nil {
		now := time.Now()
		if _, err := s.collection.UpdateOne(ctx, bson.M{"_id": task.ID}, bson.M{
			"$set": bson.M{"completedAt": now},
		}); err != nil {
			return nil, fmt.Errorf("failed to stamp completion time: %w", err)
		}
		task.CompletedAt = &now
	}

	// Recompute after every successful write, not just status changes
	s.recomputeProject(ctx, task.ProjectID)
	return &task, nil
}

// Delete removes a task, scoped to user. The owning project's rollup is
// recomputed afterwards so totalTasks/tasksCompleted do not go stale.
func (s *TaskStore) Delete(ctx context.Context, userID string, taskID primitive.ObjectID) error {
	var task models.Task
	err := s.collection.FindOneAndDelete(ctx, bson.M{
		"_id":    taskID,
		"userId": userID,
	}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.recomputeProject(ctx, task.ProjectID)
	return nil
}

// recomputeProject triggers the owning project's rollup recomputation.
// A failed recount is logged, not surfaced: the task write already
// succeeded and the next write under the project will recount anyway.
func (s *TaskStore) recomputeProject(ctx context.Context, projectID primitive.ObjectID) {
	if _, err := s.projects.RecomputeRollup(ctx, projectID); err != nil {
		log.Printf("⚠️  Failed to recompute rollup for project %s: %v", projectID.Hex(), err)
	}
}
