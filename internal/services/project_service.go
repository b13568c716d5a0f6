package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"scene-service/internal/metrics"
	"scene-service/internal/models"
	"scene-service/internal/repository"
)

type ProjectService struct {
	repo repository.ProjectRepository
	now  func() time.Time
}

func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo, now: utcNow}
}

// CreateProject stores a new, empty project.
func (s *ProjectService) CreateProject(ctx context.Context, in models.ProjectCreate) (*models.Project, error) {
	if err := validate(&in); err != nil {
		return nil, err
	}

	now := s.now()
	project := &models.Project{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Shapes:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	metrics.RecordEntityCreated("project")
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Project", id)
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.repo.ListProjects(ctx)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return notFoundOr(err, "Project", id)
	}
	return nil
}
