package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"scene-service/internal/metrics"
	"scene-service/internal/models"
	"scene-service/internal/repository"
)

// ShapeService owns creation defaults and partial updates for scene shapes.
type ShapeService struct {
	repo repository.ShapeRepository
	now  func() time.Time
}

// NewShapeService creates a new ShapeService backed by repo.
func NewShapeService(repo repository.ShapeRepository) *ShapeService {
	return &ShapeService{repo: repo, now: utcNow}
}

// CreateShape validates the input, fills in defaults and stores the new shape.
func (s *ShapeService) CreateShape(ctx context.Context, in models.ShapeCreate) (*models.Shape, error) {
	if err := validate(&in); err != nil {
		return nil, err
	}

	now := s.now()
	shape := &models.Shape{
		ID:        uuid.NewString(),
		ShapeType: in.ShapeType,
		Position:  *in.Position,
		Rotation:  models.DefaultRotation(),
		Scale:     models.DefaultScale(),
		Material:  models.DefaultMaterial(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Rotation != nil {
		shape.Rotation = *in.Rotation
	}
	if in.Scale != nil {
		shape.Scale = *in.Scale
	}
	if in.Material != nil {
		shape.Material = datatypes.JSONMap(in.Material)
	}

	if err := s.repo.CreateShape(ctx, shape); err != nil {
		return nil, err
	}
	metrics.RecordEntityCreated("shape")
	return shape, nil
}

// ListShapes returns the current scene, capped at repository.MaxListSize.
func (s *ShapeService) ListShapes(ctx context.Context) ([]models.Shape, error) {
	return s.repo.ListShapes(ctx)
}

// GetShape returns the shape with the given id.
func (s *ShapeService) GetShape(ctx context.Context, id string) (*models.Shape, error) {
	shape, err := s.repo.GetShape(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Shape", id)
	}
	return shape, nil
}

// UpdateShape applies the fields present in update and refreshes updated_at.
func (s *ShapeService) UpdateShape(ctx context.Context, id string, update models.ShapeUpdate) (*models.Shape, error) {
	if err := s.repo.UpdateShape(ctx, id, update, s.now()); err != nil {
		return nil, notFoundOr(err, "Shape", id)
	}
	return s.GetShape(ctx, id)
}

// DeleteShape removes one shape.
func (s *ShapeService) DeleteShape(ctx context.Context, id string) error {
	if err := s.repo.DeleteShape(ctx, id); err != nil {
		return notFoundOr(err, "Shape", id)
	}
	return nil
}

// ClearShapes deletes the whole scene and returns how many shapes were removed.
func (s *ShapeService) ClearShapes(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteAllShapes(ctx)
	if err != nil {
		return 0, err
	}
	metrics.RecordShapesCleared(deleted)
	return deleted, nil
}
