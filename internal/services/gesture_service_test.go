package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-service/internal/models"
	"scene-service/internal/repository"
	"scene-service/internal/testutil"
)

func gestureInput(pinch, grab float64) models.GestureCreate {
	present := true
	conf := 0.9
	return models.GestureCreate{PinchStrength: &pinch, GrabStrength: &grab, HandPresent: &present, Confidence: &conf}
}

func TestGestureStats_Empty(t *testing.T) {
	svc := NewGestureService(repository.NewGestureRepository(testutil.NewTestDB(t)))

	stats, err := svc.GestureStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.GestureStats{}, *stats)
}

func TestGestureStats_Averages(t *testing.T) {
	ctx := context.Background()
	svc := NewGestureService(repository.NewGestureRepository(testutil.NewTestDB(t)))

	for _, v := range [][2]float64{{10, 1}, {20, 2}, {30, 2}} {
		_, err := svc.CreateGesture(ctx, gestureInput(v[0], v[1]))
		require.NoError(t, err)
	}

	stats, err := svc.GestureStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalGestures)
	assert.EqualValues(t, 3, stats.TotalSessions)
	assert.Equal(t, 20.0, stats.AveragePinchStrength)
	assert.Equal(t, 1.67, stats.AverageGrabStrength)
}

func TestGestureStats_RoundsHalfToEven(t *testing.T) {
	ctx := context.Background()
	svc := NewGestureService(repository.NewGestureRepository(testutil.NewTestDB(t)))

	// pinch averages 0.125, grab averages 0.375; both are exact in binary
	for _, v := range [][2]float64{{0.25, 0.75}, {0, 0}} {
		_, err := svc.CreateGesture(ctx, gestureInput(v[0], v[1]))
		require.NoError(t, err)
	}

	stats, err := svc.GestureStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.12, stats.AveragePinchStrength)
	assert.Equal(t, 0.38, stats.AverageGrabStrength)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.12, round2(0.125))
	assert.Equal(t, 0.38, round2(0.375))
	assert.Equal(t, 1.67, round2(5.0/3))
	assert.Equal(t, 20.0, round2(20))
}

func TestCreateGesture_ZeroValuesAreValid(t *testing.T) {
	svc := NewGestureService(repository.NewGestureRepository(testutil.NewTestDB(t)))

	g, err := svc.CreateGesture(context.Background(), gestureInput(0, 0))
	require.NoError(t, err)
	assert.Zero(t, g.PinchStrength)

	_, err = svc.CreateGesture(context.Background(), models.GestureCreate{})
	assert.IsType(t, &InputError{}, err)
}

func TestRecentGestures_LimitAndOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewGestureService(repository.NewGestureRepository(testutil.NewTestDB(t)))
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		at := base.Add(time.Duration(i) * time.Second)
		svc.now = func() time.Time { return at }
		_, err := svc.CreateGesture(ctx, gestureInput(float64(i), 0))
		require.NoError(t, err)
	}

	recent, err := svc.RecentGestures(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 4.0, recent[0].PinchStrength)
	assert.Equal(t, 3.0, recent[1].PinchStrength)

	all, err := svc.RecentGestures(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
