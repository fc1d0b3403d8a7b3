package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"trineo/internal/database"
	"trineo/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectStore handles MongoDB CRUD for projects and owns the derived
// rollup fields (totalTasks, tasksCompleted, progress). Rollups are always
// recomputed from a full recount of the project's live task set; there is
// no incremental path, so recomputation is idempotent and self-correcting.
type ProjectStore struct {
	collection *mongo.Collection
	tasks      *mongo.Collection
}

// NewProjectStore creates a new project store
func NewProjectStore(mongodb *database.MongoDB) *ProjectStore {
	return &ProjectStore{
		collection: mongodb.Collection(database.CollectionProjects),
		tasks:      mongodb.Collection(database.CollectionTasks),
	}
}

// Create inserts a new project with zeroed rollup fields
func (s *ProjectStore) Create(ctx context.Context, project *models.Project) error {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	project.TotalTasks = 0
	project.TasksCompleted = 0
	project.Progress = 0
	if project.Color == "" {
		project.Color = models.DefaultProjectColor
	}

	result, err := s.collection.InsertOne(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	project.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID returns a project by ID, scoped to user
func (s *ProjectStore) GetByID(ctx context.Context, userID string, projectID primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := s.collection.FindOne(ctx, bson.M{
		"_id":    projectID,
		"userId": userID,
	}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// List returns all projects for a user, newest first
func (s *ProjectStore) List(ctx context.Context, userID string) ([]models.Project, error) {
	cursor, err := s.collection.Find(ctx, bson.M{
		"userId": userID,
	}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

// Update applies a partial update to a project's user-owned fields.
// Rollup fields are not touched here; only RecomputeRollup writes them.
func (s *ProjectStore) Update(ctx context.Context, userID string, projectID primitive.ObjectID, patch models.ProjectPatch) (*models.Project, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Color != nil {
		set["color"] = *patch.Color
	}

	var project models.Project
	err := s.collection.FindOneAndUpdate(ctx, bson.M{
		"_id":    projectID,
		"userId": userID,
	}, bson.M{"$set": set}, options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &project, nil
}

// Delete removes a project and cascades to its tasks. Tasks are removed
// first so no task is ever left referencing a deleted project.
func (s *ProjectStore) Delete(ctx context.Context, userID string, projectID primitive.ObjectID) error {
	if _, err := s.tasks.DeleteMany(ctx, bson.M{
		"userId":    userID,
		"projectId": projectID,
	}); err != nil {
		return fmt.Errorf("failed to delete project tasks: %w", err)
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{
		"_id":    projectID,
		"userId": userID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// RecomputeRollup recounts a project's task set and persists the derived
// fields. Called from the task write path after every create, update and
// delete. Not user-scoped: the trigger already operates on an owned task,
// and a task's project always belongs to the same user.
func (s *ProjectStore) RecomputeRollup(ctx context.Context, projectID primitive.ObjectID) (*models.Project, error) {
	cursor, err := s.tasks.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode project tasks: %w", err)
	}

	total, completed, progress := computeRollup(tasks)

	var project models.Project
	err = s.collection.FindOneAndUpdate(ctx, bson.M{
		"_id": projectID,
	}, bson.M{
		"$set": bson.M{
			"totalTasks":     total,
			"tasksCompleted": completed,
			"progress":       progress,
			"updatedAt":      time.Now(),
		},
	}, options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to persist project rollup: %w", err)
	}
	return &project, nil
}

// computeRollup derives a project's rollup fields from its task set.
// progress = round(100 * completed / total) when total > 0, else 0.
func computeRollup(tasks []models.Task) (total, completed, progress int) {
	total = len(tasks)
	for _, t := range tasks {
		if t.Status == models.TaskStatusCompleted {
			completed++
		}
	}
	if total > 0 {
		progress = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return total, completed, progress
}
