package handlers

import (
	"github.com/gofiber/fiber/v2"

	"trs-service/internal/apperrors"
	"trs-service/internal/middleware"
	"trs-service/internal/models"
	"trs-service/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects returns all projects owned by the caller
// @Summary List projects
// @Description Get all projects owned by the authenticated user
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Projects"
// @Failure 400 {object} map[string]interface{} "Invalid token"
// @Router /projects/ [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.projectService.GetProjects(middleware.UserID(c))
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return c.JSON(fiber.Map{"projects": projects})
}

// GetProject returns one project by ID
// @Summary Get a project
// @Description Get a single project owned by the authenticated user
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{} "Project"
// @Failure 403 {object} map[string]interface{} "Owned by another user"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	id, err := projectID(c)
	if err != nil {
		return err
	}
	project, err := h.projectService.GetProject(middleware.UserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"project": project})
}

// CreateProject creates a new project
// @Summary Create a project
// @Description Create a project with a per-owner unique name
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body models.CreateProjectRequest true "Project data"
// @Success 201 {object} map[string]interface{} "Created project"
// @Failure 400 {object} map[string]interface{} "Invalid or duplicate project data"
// @Router /projects/create [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req models.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request format")
	}

	project, err := h.projectService.CreateProject(middleware.UserID(c), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Project created successfully.",
		"project": project,
	})
}

// UpdateProject updates the whitelisted fields of a project
// @Summary Update a project
// @Description Update name, description and/or category of an owned project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param project body models.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated project"
// @Failure 400 {object} map[string]interface{} "Nothing to update or invalid data"
// @Failure 403 {object} map[string]interface{} "Owned by another user"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id}/update [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := projectID(c)
	if err != nil {
		return err
	}

	var req models.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request format")
	}

	project, err := h.projectService.UpdateProject(middleware.UserID(c), id, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Project updated successfully.",
		"project": project,
	})
}

// DeleteProject deletes a project and its charges
// @Summary Delete a project
// @Description Delete an owned project; its charges are removed in the same transaction
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{} "Project deleted"
// @Failure 403 {object} map[string]interface{} "Owned by another user"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id}/delete [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := projectID(c)
	if err != nil {
		return err
	}
	if err := h.projectService.DeleteProject(middleware.UserID(c), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Project deleted successfully."})
}

func projectID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("Invalid project ID")
	}
	return uint(id), nil
}
