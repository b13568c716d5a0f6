package services

import (
	"context"
	"time"

	"scene-service/internal/models"
	"scene-service/internal/repository"
)

// AnalyticsService reads totals across collections. The reads are independent,
// so the result is not a consistent snapshot under concurrent writes.
type AnalyticsService struct {
	shapes   repository.ShapeRepository
	projects repository.ProjectRepository
	gestures repository.GestureRepository
	now      func() time.Time
}

func NewAnalyticsService(shapes repository.ShapeRepository, projects repository.ProjectRepository, gestures repository.GestureRepository) *AnalyticsService {
	return &AnalyticsService{shapes: shapes, projects: projects, gestures: gestures, now: utcNow}
}

// UsageAnalytics counts every collection and groups shapes by type.
func (s *AnalyticsService) UsageAnalytics(ctx context.Context) (*models.UsageAnalytics, error) {
	shapes, err := s.shapes.CountShapes(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.CountProjects(ctx)
	if err != nil {
		return nil, err
	}
	gestures, err := s.gestures.CountGestures(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.shapes.CountShapesByType(ctx)
	if err != nil {
		return nil, err
	}

	dist := make(map[string]int64, len(byType))
	for _, row := range byType {
		dist[row.ShapeType] = row.Count
	}
	return &models.UsageAnalytics{
		TotalShapes:       shapes,
		TotalProjects:     projects,
		TotalGestures:     gestures,
		ShapeDistribution: dist,
		Timestamp:         s.now(),
	}, nil
}
