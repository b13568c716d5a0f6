package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scene-service/internal/models"
)

// StatusCheckRepository stores diagnostic status checks.
type StatusCheckRepository interface {
	CreateStatusCheck(ctx context.Context, check *models.StatusCheck) error
	ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error)
}

type StatusCheckRepositoryImpl struct {
	db *gorm.DB
}

func NewStatusCheckRepository(db *gorm.DB) *StatusCheckRepositoryImpl {
	return &StatusCheckRepositoryImpl{db: db}
}

func (r *StatusCheckRepositoryImpl) CreateStatusCheck(ctx context.Context, check *models.StatusCheck) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(check).Error, "insert status check")
}

func (r *StatusCheckRepositoryImpl) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	checks := make([]models.StatusCheck, 0)
	err := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}}).Limit(MaxListSize).Find(&checks).Error
	return checks, errors.Wrap(err, "list status checks")
}
