package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"scene-service/internal/models"
	"scene-service/internal/services"
)

// SceneObjectsResponse is the whole scene plus its size.
type SceneObjectsResponse struct {
	Objects   []models.Shape `json:"objects"`
	Count     int            `json:"count"`
	Timestamp time.Time      `json:"timestamp"`
}

type ClearSceneResponse struct {
	Message      string `json:"message" example:"Scene cleared. Deleted 3 objects."`
	DeletedCount int64  `json:"deleted_count" example:"3"`
}

type SceneHandler struct {
	shapeService *services.ShapeService
	now          func() time.Time
}

func NewSceneHandler(shapeService *services.ShapeService) *SceneHandler {
	return &SceneHandler{shapeService: shapeService, now: func() time.Time { return time.Now().UTC() }}
}

// SceneObjects returns every shape in the scene
// @Summary Scene objects
// @Tags scene
// @Produce json
// @Success 200 {object} SceneObjectsResponse
// @Failure 500 {object} ErrorResponse
// @Router /scene/objects [get]
func (h *SceneHandler) SceneObjects(c *fiber.Ctx) error {
	shapes, err := h.shapeService.ListShapes(c.UserContext())
	if err != nil {
		return fail(c, err, "load scene")
	}
	return c.JSON(SceneObjectsResponse{Objects: shapes, Count: len(shapes), Timestamp: h.now()})
}

// ClearScene deletes every shape
// @Summary Clear the scene
// @Description Deletes all shapes. Projects keep their shape references.
// @Tags scene
// @Produce json
// @Success 200 {object} ClearSceneResponse
// @Failure 500 {object} ErrorResponse
// @Router /scene/clear [delete]
func (h *SceneHandler) ClearScene(c *fiber.Ctx) error {
	deleted, err := h.shapeService.ClearShapes(c.UserContext())
	if err != nil {
		return fail(c, err, "clear scene")
	}
	return c.JSON(ClearSceneResponse{
		Message:      fmt.Sprintf("Scene cleared. Deleted %d objects.", deleted),
		DeletedCount: deleted,
	})
}
