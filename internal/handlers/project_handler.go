package handlers

import (
	"github.com/gofiber/fiber/v2"

	"scene-service/internal/models"
	"scene-service/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProject creates a new project
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body models.ProjectCreate true "Project data"
// @Success 200 {object} models.Project
// @Failure 400 {object} ErrorResponse "Invalid project data"
// @Failure 500 {object} ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var in models.ProjectCreate
	if err := parseBody(c, &in); err != nil {
		return fail(c, err, "create project")
	}
	project, err := h.projectService.CreateProject(c.UserContext(), in)
	if err != nil {
		return fail(c, err, "create project")
	}
	return c.JSON(project)
}

// ListProjects returns all projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 {object} ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.projectService.ListProjects(c.UserContext())
	if err != nil {
		return fail(c, err, "list projects")
	}
	return c.JSON(projects)
}

// GetProject returns a project by ID
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	project, err := h.projectService.GetProject(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "fetch project")
	}
	return c.JSON(project)
}

// DeleteProject removes a project
// @Summary Delete a project
// @Description Shapes referenced by the project are left in place.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	if err := h.projectService.DeleteProject(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err, "delete project")
	}
	return c.JSON(MessageResponse{Message: "Project deleted successfully"})
}
