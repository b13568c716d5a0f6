package handlers

import (
	"github.com/gofiber/fiber/v2"

	"scene-service/internal/services"
)

type SnapshotHandler struct {
	snapshotService *services.SnapshotService
}

func NewSnapshotHandler(snapshotService *services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// CreateSnapshot archives the current scene
// @Summary Snapshot the scene
// @Description Stores the current scene as gzip compressed JSON in object storage.
// @Tags snapshots
// @Produce json
// @Success 200 {object} models.SnapshotInfo
// @Failure 500 {object} ErrorResponse
// @Router /scene/snapshots [post]
func (h *SnapshotHandler) CreateSnapshot(c *fiber.Ctx) error {
	info, err := h.snapshotService.CreateSnapshot(c.UserContext())
	if err != nil {
		return fail(c, err, "create snapshot")
	}
	return c.JSON(info)
}

// ListSnapshots lists stored snapshots
// @Summary List snapshots
// @Tags snapshots
// @Produce json
// @Success 200 {array} models.SnapshotListing
// @Failure 500 {object} ErrorResponse
// @Router /scene/snapshots [get]
func (h *SnapshotHandler) ListSnapshots(c *fiber.Ctx) error {
	infos, err := h.snapshotService.ListSnapshots(c.UserContext())
	if err != nil {
		return fail(c, err, "list snapshots")
	}
	return c.JSON(infos)
}

// GetSnapshot returns one snapshot with its shapes
// @Summary Get a snapshot
// @Tags snapshots
// @Produce json
// @Param id path string true "Snapshot ID" Format(uuid)
// @Success 200 {object} models.SceneSnapshot
// @Failure 404 {object} ErrorResponse "Snapshot not found"
// @Failure 500 {object} ErrorResponse
// @Router /scene/snapshots/{id} [get]
func (h *SnapshotHandler) GetSnapshot(c *fiber.Ctx) error {
	snap, err := h.snapshotService.GetSnapshot(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "fetch snapshot")
	}
	return c.JSON(snap)
}
