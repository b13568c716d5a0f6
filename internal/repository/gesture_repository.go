package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scene-service/internal/models"
)

// GestureRepository defines the storage operations for gesture telemetry.
type GestureRepository interface {
	CreateGesture(ctx context.Context, gesture *models.Gesture) error
	RecentGestures(ctx context.Context, limit int) ([]models.Gesture, error)
	CountGestures(ctx context.Context) (int64, error)
	AggregateGestures(ctx context.Context) (*GestureAggregate, error)
}

// GestureAggregate is the raw result of the gesture statistics query.
// Averages are invalid when the collection is empty.
type GestureAggregate struct {
	AvgPinch      sql.NullFloat64
	AvgGrab       sql.NullFloat64
	TotalSessions int64
}

// GestureRepositoryImpl provides methods to interact with the Gesture model in the database.
type GestureRepositoryImpl struct {
	db *gorm.DB
}

// NewGestureRepository creates a new GestureRepositoryImpl with the provided GORM database connection.
func NewGestureRepository(db *gorm.DB) *GestureRepositoryImpl {
	return &GestureRepositoryImpl{db: db}
}

// CreateGesture appends a gesture sample.
func (r *GestureRepositoryImpl) CreateGesture(ctx context.Context, gesture *models.Gesture) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(gesture).Error, "insert gesture")
}

// RecentGestures returns up to limit gestures, newest first.
func (r *GestureRepositoryImpl) RecentGestures(ctx context.Context, limit int) ([]models.Gesture, error) {
	gestures := make([]models.Gesture, 0, limit)
	err := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).Limit(limit).Find(&gestures).Error
	return gestures, errors.Wrap(err, "list recent gestures")
}

func (r *GestureRepositoryImpl) CountGestures(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Gesture{}).Count(&count).Error
	return count, errors.Wrap(err, "count gestures")
}

// AggregateGestures averages pinch and grab strength over the whole collection.
func (r *GestureRepositoryImpl) AggregateGestures(ctx context.Context) (*GestureAggregate, error) {
	var agg GestureAggregate
	err := r.db.WithContext(ctx).
		Model(&models.Gesture{}).
		Select("AVG(pinch_strength) AS avg_pinch, AVG(grab_strength) AS avg_grab, COUNT(*) AS total_sessions").
		Scan(&agg).Error
	if err != nil {
		return nil, errors.Wrap(err, "aggregate gestures")
	}
	return &agg, nil
}
