package handlers

import (
	"time"

	"trineo/internal/database"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db          *database.MongoDB
	environment string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.MongoDB, environment string) *HealthHandler {
	return &HealthHandler{db: db, environment: environment}
}

// Handle responds with server health status
// GET /api/health
func (h *HealthHandler) Handle(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.db.Ping(c.Context()); err != nil {
		dbStatus = "unreachable"
	}

	return c.JSON(fiber.Map{
		"status":      "ok",
		"message":     "Trineo Tasks API is running",
		"environment": h.environment,
		"database":    dbStatus,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}
