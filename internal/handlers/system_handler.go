package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"scene-service/internal/models"
	"scene-service/internal/services"
)

// Version is reported by the root endpoint and the version command.
var Version = "1.0.0"

type BannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp"`
}

// SystemHandler serves the banner, health, status check and analytics endpoints.
type SystemHandler struct {
	statusService    *services.StatusService
	analyticsService *services.AnalyticsService
}

func NewSystemHandler(statusService *services.StatusService, analyticsService *services.AnalyticsService) *SystemHandler {
	return &SystemHandler{statusService: statusService, analyticsService: analyticsService}
}

// Root returns the service banner
// @Summary Service banner
// @Tags system
// @Produce json
// @Success 200 {object} BannerResponse
// @Router / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(BannerResponse{Message: "Astris 3D API - Next-Generation Holographic 3D Design Platform", Version: Version})
}

// Health reports liveness
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "healthy", Timestamp: time.Now().UTC()})
}

// CreateStatusCheck records a client ping
// @Summary Record a status check
// @Tags system
// @Accept json
// @Produce json
// @Param check body models.StatusCheckCreate true "Client name"
// @Success 200 {object} models.StatusCheck
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /status [post]
func (h *SystemHandler) CreateStatusCheck(c *fiber.Ctx) error {
	var in models.StatusCheckCreate
	if err := parseBody(c, &in); err != nil {
		return fail(c, err, "record status check")
	}
	check, err := h.statusService.CreateStatusCheck(c.UserContext(), in)
	if err != nil {
		return fail(c, err, "record status check")
	}
	return c.JSON(check)
}

// ListStatusChecks returns recorded pings
// @Summary List status checks
// @Tags system
// @Produce json
// @Success 200 {array} models.StatusCheck
// @Failure 500 {object} ErrorResponse
// @Router /status [get]
func (h *SystemHandler) ListStatusChecks(c *fiber.Ctx) error {
	checks, err := h.statusService.ListStatusChecks(c.UserContext())
	if err != nil {
		return fail(c, err, "list status checks")
	}
	return c.JSON(checks)
}

// UsageAnalytics returns collection totals
// @Summary Usage analytics
// @Tags analytics
// @Produce json
// @Success 200 {object} models.UsageAnalytics
// @Failure 500 {object} ErrorResponse
// @Router /analytics/usage [get]
func (h *SystemHandler) UsageAnalytics(c *fiber.Ctx) error {
	usage, err := h.analyticsService.UsageAnalytics(c.UserContext())
	if err != nil {
		return fail(c, err, "compute analytics")
	}
	return c.JSON(usage)
}
