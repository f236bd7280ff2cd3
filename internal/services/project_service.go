package services

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"trs-service/internal/apperrors"
	"trs-service/internal/models"
	"trs-service/internal/repository"
)

// ProjectService implements owner-scoped project CRUD.
type ProjectService struct {
	projects *repository.ProjectRepository
}

func NewProjectService(projects *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetProjects returns all projects owned by the user.
func (s *ProjectService) GetProjects(owner uint) ([]models.Project, error) {
	projects, err := s.projects.ListProjects(owner)
	if err != nil {
		return nil, errors.Wrap(err, "listing projects")
	}
	return projects, nil
}

// GetProject returns one project if it exists and belongs to the user.
func (s *ProjectService) GetProject(user, id uint) (*models.Project, error) {
	project, err := s.projects.GetProject(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Project not found")
		}
		return nil, errors.Wrap(err, "loading project")
	}
	if project.Owner != user {
		return nil, apperrors.Forbidden("Forbidden")
	}
	return project, nil
}

// CreateProject creates a project owned by the user. Names are unique per
// owner.
func (s *ProjectService) CreateProject(owner uint, req models.CreateProjectRequest) (*models.Project, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("Project name is required")
	}
	if req.Category != nil && *req.Category < 0 {
		return nil, apperrors.Validation("Invalid category")
	}

	project := &models.Project{
		Owner:       owner,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := s.projects.CreateProject(project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict(fmt.Sprintf("Project %q already exists.", req.Name))
		}
		return nil, errors.Wrap(err, "creating project")
	}
	return project, nil
}

// UpdateProject applies the whitelisted fields (name, description,
// category) that are present in the request. At least one field must
// qualify.
func (s *ProjectService) UpdateProject(user, id uint, req models.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.GetProject(user, id)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil && *req.Name != "" {
		project.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		project.Description = *req.Description
		updated = true
	}
	if req.Category != nil {
		if *req.Category < 0 {
			return nil, apperrors.Validation("Invalid category")
		}
		project.Category = req.Category
		updated = true
	}
	if !updated {
		return nil, apperrors.Validation("Nothing to update")
	}

	if err := s.projects.UpdateProject(project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict(fmt.Sprintf("Project %q already exists.", project.Name))
		}
		return nil, errors.Wrap(err, "updating project")
	}
	return project, nil
}

// DeleteProject removes the project and all of its charges in one
// transaction.
func (s *ProjectService) DeleteProject(user, id uint) error {
	if _, err := s.GetProject(user, id); err != nil {
		return err
	}
	if err := s.projects.DeleteProjectWithCharges(id); err != nil {
		return errors.Wrap(err, "deleting project")
	}
	return nil
}
