package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"scene-service/internal/metrics"
	"scene-service/internal/models"
	"scene-service/internal/repository"
)

type StatusService struct {
	repo repository.StatusCheckRepository
	now  func() time.Time
}

func NewStatusService(repo repository.StatusCheckRepository) *StatusService {
	return &StatusService{repo: repo, now: utcNow}
}

func (s *StatusService) CreateStatusCheck(ctx context.Context, in models.StatusCheckCreate) (*models.StatusCheck, error) {
	if err := validate(&in); err != nil {
		return nil, err
	}
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: in.ClientName,
		Timestamp:  s.now(),
	}
	if err := s.repo.CreateStatusCheck(ctx, check); err != nil {
		return nil, err
	}
	metrics.RecordEntityCreated("status_check")
	return check, nil
}

func (s *StatusService) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	return s.repo.ListStatusChecks(ctx)
}
