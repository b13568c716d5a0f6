package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"scene-service/internal/models"
	"scene-service/internal/services"
)

type GestureHandler struct {
	gestureService *services.GestureService
}

func NewGestureHandler(gestureService *services.GestureService) *GestureHandler {
	return &GestureHandler{gestureService: gestureService}
}

// CreateGesture records a gesture sample
// @Summary Record a gesture
// @Tags gestures
// @Accept json
// @Produce json
// @Param gesture body models.GestureCreate true "Gesture sample"
// @Success 200 {object} models.Gesture
// @Failure 400 {object} ErrorResponse "Invalid gesture data"
// @Failure 500 {object} ErrorResponse
// @Router /gestures [post]
func (h *GestureHandler) CreateGesture(c *fiber.Ctx) error {
	var in models.GestureCreate
	if err := parseBody(c, &in); err != nil {
		return fail(c, err, "save gesture")
	}
	gesture, err := h.gestureService.CreateGesture(c.UserContext(), in)
	if err != nil {
		return fail(c, err, "save gesture")
	}
	return c.JSON(gesture)
}

// RecentGestures returns the newest gesture samples
// @Summary Recent gestures
// @Tags gestures
// @Produce json
// @Param limit query int false "Maximum number of samples" default(100)
// @Success 200 {array} models.Gesture
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 500 {object} ErrorResponse
// @Router /gestures/recent [get]
func (h *GestureHandler) RecentGestures(c *fiber.Ctx) error {
	limit := services.DefaultRecentGestures
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fail(c, services.NewInputError("limit must be an integer, got %q", raw), "fetch gestures")
		}
		limit = n
	}
	gestures, err := h.gestureService.RecentGestures(c.UserContext(), limit)
	if err != nil {
		return fail(c, err, "fetch gestures")
	}
	return c.JSON(gestures)
}

// GestureStats summarizes recorded gestures
// @Summary Gesture statistics
// @Tags gestures
// @Produce json
// @Success 200 {object} models.GestureStats
// @Failure 500 {object} ErrorResponse
// @Router /gestures/stats [get]
func (h *GestureHandler) GestureStats(c *fiber.Ctx) error {
	stats, err := h.gestureService.GestureStats(c.UserContext())
	if err != nil {
		return fail(c, err, "compute gesture stats")
	}
	return c.JSON(stats)
}
