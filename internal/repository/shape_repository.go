package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"scene-service/internal/models"
)

// ShapeRepository defines the storage operations for shapes.
type ShapeRepository interface {
	CreateShape(ctx context.Context, shape *models.Shape) error
	GetShape(ctx context.Context, id string) (*models.Shape, error)
	ListShapes(ctx context.Context) ([]models.Shape, error)
	UpdateShape(ctx context.Context, id string, update models.ShapeUpdate, updatedAt time.Time) error
	DeleteShape(ctx context.Context, id string) error
	DeleteAllShapes(ctx context.Context) (int64, error)
	CountShapes(ctx context.Context) (int64, error)
	CountShapesByType(ctx context.Context) ([]models.ShapeTypeCount, error)
}

// ShapeRepositoryImpl provides methods to interact with the Shape model in the database.
type ShapeRepositoryImpl struct {
	db *gorm.DB
}

// NewShapeRepository creates a new ShapeRepositoryImpl with the provided GORM database connection.
func NewShapeRepository(db *gorm.DB) *ShapeRepositoryImpl {
	return &ShapeRepositoryImpl{db: db}
}

// CreateShape inserts a new Shape.
func (r *ShapeRepositoryImpl) CreateShape(ctx context.Context, shape *models.Shape) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(shape).Error, "insert shape")
}

// GetShape retrieves a Shape by its ID. It returns ErrNotFound when no row matches.
func (r *ShapeRepositoryImpl) GetShape(ctx context.Context, id string) (*models.Shape, error) {
	var shape models.Shape
	if err := r.db.WithContext(ctx).First(&shape, "id = ?", id).Error; err != nil {
		return nil, errors.Wrapf(err, "find shape %s", id)
	}
	return &shape, nil
}

// ListShapes retrieves shapes in insertion order, at most MaxListSize of them.
func (r *ShapeRepositoryImpl) ListShapes(ctx context.Context) ([]models.Shape, error) {
	shapes := make([]models.Shape, 0)
	err := r.db.WithContext(ctx).Order("created_at").Limit(MaxListSize).Find(&shapes).Error
	return shapes, errors.Wrap(err, "list shapes")
}

// UpdateShape writes only the fields present in update, plus updated_at.
func (r *ShapeRepositoryImpl) UpdateShape(ctx context.Context, id string, update models.ShapeUpdate, updatedAt time.Time) error {
	columns := map[string]interface{}{"updated_at": updatedAt}
	if update.Position != nil {
		setVec3(columns, "position_", *update.Position)
	}
	if update.Rotation != nil {
		setVec3(columns, "rotation_", *update.Rotation)
	}
	if update.Scale != nil {
		setVec3(columns, "scale_", *update.Scale)
	}
	if update.Material != nil {
		columns["material"] = datatypes.JSONMap(update.Material)
	}

	result := r.db.WithContext(ctx).Model(&models.Shape{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "update shape %s", id)
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "update shape %s", id)
	}
	return nil
}

// DeleteShape deletes a Shape by its ID. It returns ErrNotFound when nothing was deleted.
func (r *ShapeRepositoryImpl) DeleteShape(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Shape{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "delete shape %s", id)
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "delete shape %s", id)
	}
	return nil
}

// DeleteAllShapes removes every shape and reports how many rows went away.
func (r *ShapeRepositoryImpl) DeleteAllShapes(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Shape{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "delete all shapes")
	}
	return result.RowsAffected, nil
}

func (r *ShapeRepositoryImpl) CountShapes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Shape{}).Count(&count).Error
	return count, errors.Wrap(err, "count shapes")
}

// CountShapesByType groups all shapes by shape_type.
func (r *ShapeRepositoryImpl) CountShapesByType(ctx context.Context) ([]models.ShapeTypeCount, error) {
	var rows []models.ShapeTypeCount
	err := r.db.WithContext(ctx).
		Model(&models.Shape{}).
		Select("shape_type, COUNT(*) AS count").
		Group("shape_type").
		Scan(&rows).Error
	return rows, errors.Wrap(err, "aggregate shape types")
}

func setVec3(columns map[string]interface{}, prefix string, v models.Vec3) {
	columns[prefix+"x"] = v.X
	columns[prefix+"y"] = v.Y
	columns[prefix+"z"] = v.Z
}
