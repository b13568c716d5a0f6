package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-service/internal/models"
	"scene-service/internal/repository"
	"scene-service/internal/testutil"
)

func TestUsageAnalytics(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	shapeRepo := repository.NewShapeRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	gestureRepo := repository.NewGestureRepository(db)

	shapes := NewShapeService(shapeRepo)
	for _, kind := range []string{"cube", "cube", "sphere"} {
		_, err := shapes.CreateShape(ctx, models.ShapeCreate{ShapeType: kind, Position: &models.Vec3{}})
		require.NoError(t, err)
	}
	_, err := NewProjectService(projectRepo).CreateProject(ctx, models.ProjectCreate{Name: "p"})
	require.NoError(t, err)

	usage, err := NewAnalyticsService(shapeRepo, projectRepo, gestureRepo).UsageAnalytics(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, usage.TotalShapes)
	assert.EqualValues(t, 1, usage.TotalProjects)
	assert.Zero(t, usage.TotalGestures)
	assert.Equal(t, map[string]int64{"cube": 2, "sphere": 1}, usage.ShapeDistribution)
	assert.False(t, usage.Timestamp.IsZero())
}

func TestStatusChecks(t *testing.T) {
	ctx := context.Background()
	svc := NewStatusService(repository.NewStatusCheckRepository(testutil.NewTestDB(t)))

	check, err := svc.CreateStatusCheck(ctx, models.StatusCheckCreate{ClientName: "editor"})
	require.NoError(t, err)
	assert.NotEmpty(t, check.ID)

	_, err = svc.CreateStatusCheck(ctx, models.StatusCheckCreate{})
	assert.IsType(t, &InputError{}, err)

	checks, err := svc.ListStatusChecks(ctx)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, "editor", checks[0].ClientName)
}
