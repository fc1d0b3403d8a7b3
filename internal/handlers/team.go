package handlers

import (
	"errors"

	"trineo/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TeamHandler handles REST endpoints for the team roster and statistics
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// ListMembers returns every user with their all-time stats
// GET /api/team/members
func (h *TeamHandler) ListMembers(c *fiber.Ctx) error {
	members, err := h.teamService.ListMembersWithStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(members)
}

// GetTeamStats returns team-wide statistics for a time window
// GET /api/team/stats?timeRange=week|month|all
func (h *TeamHandler) GetTeamStats(c *fiber.Ctx) error {
	timeRange := services.TimeRange(c.Query("timeRange", string(services.RangeMonth)))

	stats, err := h.teamService.ComputeTeamStats(c.Context(), timeRange)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

// GetMemberStats returns one member's stats within a time window
// GET /api/team/members/:memberId/stats?timeRange=week|month|all
func (h *TeamHandler) GetMemberStats(c *fiber.Ctx) error {
	memberID := c.Params("memberId")
	timeRange := services.TimeRange(c.Query("timeRange", string(services.RangeMonth)))

	stats, err := h.teamService.ComputeMemberStats(c.Context(), memberID, timeRange)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}
