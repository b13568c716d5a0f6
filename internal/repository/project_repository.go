package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"scene-service/internal/models"
)

// ProjectRepository defines the storage operations for projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	CountProjects(ctx context.Context) (int64, error)
}

// ProjectRepositoryImpl provides methods to interact with the Project model in the database.
type ProjectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepositoryImpl instance with the provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepositoryImpl {
	return &ProjectRepositoryImpl{db: db}
}

// CreateProject creates a new Project in the database.
func (r *ProjectRepositoryImpl) CreateProject(ctx context.Context, project *models.Project) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(project).Error, "insert project")
}

// GetProject retrieves a Project by its ID from the database.
func (r *ProjectRepositoryImpl) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, errors.Wrapf(err, "find project %s", id)
	}
	return &project, nil
}

// DeleteProject deletes a Project by its ID. Referenced shapes are left alone.
func (r *ProjectRepositoryImpl) DeleteProject(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "delete project %s", id)
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "delete project %s", id)
	}
	return nil
}

// ListProjects retrieves up to MaxListSize Projects from the database.
func (r *ProjectRepositoryImpl) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.WithContext(ctx).Order("created_at").Limit(MaxListSize).Find(&projects).Error
	return projects, errors.Wrap(err, "list projects")
}

func (r *ProjectRepositoryImpl) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&count).Error
	return count, errors.Wrap(err, "count projects")
}
