package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"scene-service/internal/metrics"
	"scene-service/internal/models"
	"scene-service/internal/repository"
)

// DefaultRecentGestures is used when a caller does not ask for a specific limit.
const DefaultRecentGestures = 100

// GestureService records hand tracking telemetry and summarizes it.
type GestureService struct {
	repo repository.GestureRepository
	now  func() time.Time
}

func NewGestureService(repo repository.GestureRepository) *GestureService {
	return &GestureService{repo: repo, now: utcNow}
}

// CreateGesture appends one gesture sample.
func (s *GestureService) CreateGesture(ctx context.Context, in models.GestureCreate) (*models.Gesture, error) {
	if err := validate(&in); err != nil {
		return nil, err
	}

	gesture := &models.Gesture{
		ID:            uuid.NewString(),
		PinchStrength: *in.PinchStrength,
		GrabStrength:  *in.GrabStrength,
		HandPresent:   *in.HandPresent,
		Confidence:    *in.Confidence,
		HandLandmarks: in.HandLandmarks,
		Timestamp:     s.now(),
	}
	if err := s.repo.CreateGesture(ctx, gesture); err != nil {
		return nil, err
	}
	metrics.RecordEntityCreated("gesture")
	return gesture, nil
}

// RecentGestures returns up to limit samples, newest first. A non-positive
// limit falls back to DefaultRecentGestures; larger limits are capped.
func (s *GestureService) RecentGestures(ctx context.Context, limit int) ([]models.Gesture, error) {
	if limit <= 0 {
		limit = DefaultRecentGestures
	}
	if limit > repository.MaxListSize {
		limit = repository.MaxListSize
	}
	return s.repo.RecentGestures(ctx, limit)
}

// GestureStats reports totals and average strengths. An empty collection yields zeros.
func (s *GestureService) GestureStats(ctx context.Context) (*models.GestureStats, error) {
	total, err := s.repo.CountGestures(ctx)
	if err != nil {
		return nil, err
	}
	agg, err := s.repo.AggregateGestures(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.GestureStats{TotalGestures: total}
	if agg.TotalSessions == 0 {
		return stats, nil
	}
	stats.AveragePinchStrength = round2(agg.AvgPinch.Float64)
	stats.AverageGrabStrength = round2(agg.AvgGrab.Float64)
	stats.TotalSessions = agg.TotalSessions
	return stats, nil
}

// round2 rounds to two decimals, halves to even.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
