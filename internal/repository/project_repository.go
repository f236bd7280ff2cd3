package repository

import (
	"gorm.io/gorm"

	"trs-service/internal/models"
)

// ProjectRepository provides methods to interact with the Project model in the database.
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository instance with the provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *ProjectRepository) WithTx(tx *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

// CreateProject creates a new Project in the database.
func (r *ProjectRepository) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetProject retrieves a Project by its ID from the database.
func (r *ProjectRepository) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	return &project, err
}

// GetProjectsByIDs retrieves all Projects matching the given IDs.
func (r *ProjectRepository) GetProjectsByIDs(ids []uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("id IN ?", ids).Find(&projects).Error
	return projects, err
}

// ListProjects retrieves all Projects owned by the given user, ordered by ID.
func (r *ProjectRepository) ListProjects(owner uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where(map[string]interface{}{"owner": owner}).Order("id").Find(&projects).Error
	return projects, err
}

// UpdateProject updates an existing Project in the database.
func (r *ProjectRepository) UpdateProject(project *models.Project) error {
	return r.db.Save(project).Error
}

// DeleteProjectWithCharges deletes a Project and all of its Charges in a
// single transaction.
func (r *ProjectRepository) DeleteProjectWithCharges(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(map[string]interface{}{"project": id}).Delete(&models.Charge{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
