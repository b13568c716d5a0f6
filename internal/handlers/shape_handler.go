package handlers

import (
	"github.com/gofiber/fiber/v2"

	"scene-service/internal/models"
	"scene-service/internal/services"
)

type ShapeHandler struct {
	shapeService *services.ShapeService
}

func NewShapeHandler(shapeService *services.ShapeService) *ShapeHandler {
	return &ShapeHandler{shapeService: shapeService}
}

// CreateShape creates a new shape
// @Summary Create a shape
// @Description Add a 3D primitive to the scene. Rotation, scale and material fall back to defaults.
// @Tags shapes
// @Accept json
// @Produce json
// @Param shape body models.ShapeCreate true "Shape data"
// @Success 200 {object} models.Shape
// @Failure 400 {object} ErrorResponse "Invalid shape data"
// @Failure 500 {object} ErrorResponse
// @Router /shapes [post]
func (h *ShapeHandler) CreateShape(c *fiber.Ctx) error {
	var in models.ShapeCreate
	if err := parseBody(c, &in); err != nil {
		return fail(c, err, "create shape")
	}
	shape, err := h.shapeService.CreateShape(c.UserContext(), in)
	if err != nil {
		return fail(c, err, "create shape")
	}
	return c.JSON(shape)
}

// ListShapes returns all shapes
// @Summary List shapes
// @Tags shapes
// @Produce json
// @Success 200 {array} models.Shape
// @Failure 500 {object} ErrorResponse
// @Router /shapes [get]
func (h *ShapeHandler) ListShapes(c *fiber.Ctx) error {
	shapes, err := h.shapeService.ListShapes(c.UserContext())
	if err != nil {
		return fail(c, err, "list shapes")
	}
	return c.JSON(shapes)
}

// GetShape returns a shape by ID
// @Summary Get a shape
// @Tags shapes
// @Produce json
// @Param id path string true "Shape ID"
// @Success 200 {object} models.Shape
// @Failure 404 {object} ErrorResponse "Shape not found"
// @Failure 500 {object} ErrorResponse
// @Router /shapes/{id} [get]
func (h *ShapeHandler) GetShape(c *fiber.Ctx) error {
	shape, err := h.shapeService.GetShape(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "fetch shape")
	}
	return c.JSON(shape)
}

// UpdateShape applies a partial update
// @Summary Update a shape
// @Description Only the fields present in the body are changed. updated_at is always refreshed.
// @Tags shapes
// @Accept json
// @Produce json
// @Param id path string true "Shape ID"
// @Param shape body models.ShapeUpdate true "Fields to change"
// @Success 200 {object} models.Shape
// @Failure 400 {object} ErrorResponse "Invalid shape data"
// @Failure 404 {object} ErrorResponse "Shape not found"
// @Failure 500 {object} ErrorResponse
// @Router /shapes/{id} [put]
func (h *ShapeHandler) UpdateShape(c *fiber.Ctx) error {
	var update models.ShapeUpdate
	if err := parseBody(c, &update); err != nil {
		return fail(c, err, "update shape")
	}
	shape, err := h.shapeService.UpdateShape(c.UserContext(), c.Params("id"), update)
	if err != nil {
		return fail(c, err, "update shape")
	}
	return c.JSON(shape)
}

// DeleteShape removes a shape
// @Summary Delete a shape
// @Tags shapes
// @Produce json
// @Param id path string true "Shape ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Shape not found"
// @Failure 500 {object} ErrorResponse
// @Router /shapes/{id} [delete]
func (h *ShapeHandler) DeleteShape(c *fiber.Ctx) error {
	if err := h.shapeService.DeleteShape(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err, "delete shape")
	}
	return c.JSON(MessageResponse{Message: "Shape deleted successfully"})
}
