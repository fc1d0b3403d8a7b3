package handlers

import (
	"errors"
	"time"

	"trineo/internal/models"
	"trineo/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskHandler handles REST endpoints for tasks
type TaskHandler struct {
	taskStore   *services.TaskStore
	teamService *services.TeamService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskStore *services.TaskStore, teamService *services.TeamService) *TaskHandler {
	return &TaskHandler{
		taskStore:   taskStore,
		teamService: teamService,
	}
}

// ListTasks returns the current user's tasks, optionally filtered by
// status and project
// GET /api/tasks?status=&projectId=
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	filters := services.TaskFilters{}
	if status := c.Query("status"); status != "" {
		s := models.TaskStatus(status)
		if !s.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status filter"})
		}
		filters.Status = s
	}
	if projectID := c.Query("projectId"); projectID != "" {
		oid, err := primitive.ObjectIDFromHex(projectID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid project ID"})
		}
		filters.ProjectID = &oid
	}

	tasks, err := h.taskStore.List(c.Context(), userID, filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return c.JSON(tasks)
}

// GetTask returns a single task
// GET /api/tasks/:id
func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	taskID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid task ID"})
	}

	task, err := h.taskStore.GetByID(c.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(task)
}

// CreateTaskRequest is the request body for creating a task
type CreateTaskRequest struct {
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	ProjectID     string              `json:"projectId"`
	Status        models.TaskStatus   `json:"status"`
	Priority      models.TaskPriority `json:"priority"`
	EstimatedTime int                 `json:"estimatedTime"`
	DueDate       *time.Time          `json:"dueDate"`
}

// CreateTask creates a new task under an owned project
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}
	if req.Status != "" && !req.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid priority"})
	}
	if req.EstimatedTime < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "estimatedTime must be >= 0"})
	}
	projectID, err := primitive.ObjectIDFromHex(req.ProjectID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid project ID"})
	}

	task := models.Task{
		ProjectID:     projectID,
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		Priority:      req.Priority,
		EstimatedTime: req.EstimatedTime,
		DueDate:       req.DueDate,
	}
	if err := h.taskStore.Create(c.Context(), &task); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask applies a partial update to a task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	taskID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid task ID"})
	}

	var patch models.TaskPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if patch.Title != nil && *patch.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title cannot be empty"})
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid priority"})
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "progress must be between 0 and 100"})
	}
	if patch.EstimatedTime != nil && *patch.EstimatedTime < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "estimatedTime must be >= 0"})
	}

	task, err := h.taskStore.Update(c.Context(), userID, taskID, patch)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(task)
}

// DeleteTask removes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	taskID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid task ID"})
	}

	if err := h.taskStore.Delete(c.Context(), userID, taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}

// GetSummary returns the current user's task summary
// GET /api/tasks/stats/summary
func (h *TaskHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	summary, err := h.teamService.SummarizeUserTasks(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}
