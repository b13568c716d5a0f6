package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-service/internal/models"
	"scene-service/internal/repository"
	"scene-service/internal/services"
	"scene-service/internal/testutil"
)

func newTestApp(t *testing.T, withSnapshots bool) *fiber.App {
	t.Helper()
	db := testutil.NewTestDB(t)

	shapeRepo := repository.NewShapeRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	gestureRepo := repository.NewGestureRepository(db)

	shapeService := services.NewShapeService(shapeRepo)
	h := Handlers{
		Shapes:   NewShapeHandler(shapeService),
		Projects: NewProjectHandler(services.NewProjectService(projectRepo)),
		Gestures: NewGestureHandler(services.NewGestureService(gestureRepo)),
		Scene:    NewSceneHandler(shapeService),
		System: NewSystemHandler(
			services.NewStatusService(repository.NewStatusCheckRepository(db)),
			services.NewAnalyticsService(shapeRepo, projectRepo, gestureRepo),
		),
	}
	if withSnapshots {
		h.Snapshots = NewSnapshotHandler(services.NewSnapshotService(shapeService, testutil.NewMemoryStore()))
	}

	app := NewApp("*")
	RegisterRoutes(app, "/api", h)
	return app
}

// call sends a request and decodes a JSON response into out when out is non-nil.
func call(t *testing.T, app *fiber.App, method, path string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func createShape(t *testing.T, app *fiber.App, shapeType string) models.Shape {
	t.Helper()
	var shape models.Shape
	resp := call(t, app, "POST", "/api/shapes", map[string]interface{}{
		"shape_type": shapeType,
		"position":   map[string]float64{"x": 0, "y": 0, "z": 0},
	}, &shape)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return shape
}

func TestCubeLifecycle(t *testing.T) {
	app := newTestApp(t, false)

	cube := createShape(t, app, "cube")
	assert.NotEmpty(t, cube.ID)
	assert.Equal(t, "#00ffff", cube.Material["color"])
	assert.Equal(t, 0.8, cube.Material["opacity"])
	assert.Equal(t, models.Vec3{}, cube.Rotation)
	assert.Equal(t, models.Vec3{X: 1, Y: 1, Z: 1}, cube.Scale)

	var fetched models.Shape
	resp := call(t, app, "GET", "/api/shapes/"+cube.ID, nil, &fetched)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, cube.ID, fetched.ID)

	var updated models.Shape
	resp = call(t, app, "PUT", "/api/shapes/"+cube.ID, map[string]interface{}{
		"position": map[string]float64{"x": 2, "y": 3, "z": 4},
	}, &updated)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.Vec3{X: 2, Y: 3, Z: 4}, updated.Position)
	assert.Equal(t, cube.Scale, updated.Scale)
	assert.Equal(t, cube.Rotation, updated.Rotation)
	assert.Equal(t, "#00ffff", updated.Material["color"])
	assert.False(t, updated.UpdatedAt.Before(cube.UpdatedAt))

	var msg MessageResponse
	resp = call(t, app, "DELETE", "/api/shapes/"+cube.ID, nil, &msg)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Shape deleted successfully", msg.Message)

	var errBody ErrorResponse
	resp = call(t, app, "GET", "/api/shapes/"+cube.ID, nil, &errBody)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.True(t, errBody.Error)
	assert.Equal(t, "Shape not found", errBody.Message)
}

func TestGetShape_MaterialNumbersStayNumbers(t *testing.T) {
	app := newTestApp(t, false)
	cube := createShape(t, app, "cube")

	var body map[string]interface{}
	resp := call(t, app, "GET", "/api/shapes/"+cube.ID, nil, &body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	material, ok := body["material"].(map[string]interface{})
	require.True(t, ok, "material should be an object, got %T", body["material"])
	assert.Equal(t, "#00ffff", material["color"])
	opacity, ok := material["opacity"].(float64)
	require.True(t, ok, "opacity should be a JSON number, got %T", material["opacity"])
	assert.InDelta(t, 0.8, opacity, 1e-9)
}

func TestShapeMissingIDs(t *testing.T) {
	app := newTestApp(t, false)

	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/shapes/not-a-uuid"},
		{"PUT", "/api/shapes/not-a-uuid"},
		{"DELETE", "/api/shapes/00000000-0000-0000-0000-000000000000"},
		{"GET", "/api/projects/missing"},
		{"DELETE", "/api/projects/missing"},
	} {
		var body interface{}
		if tc.method == "PUT" {
			body = map[string]interface{}{"scale": map[string]float64{"x": 2, "y": 2, "z": 2}}
		}
		resp := call(t, app, tc.method, tc.path, body, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestCreateShape_BadInput(t *testing.T) {
	app := newTestApp(t, false)

	resp := call(t, app, "POST", "/api/shapes", `{"shape_type": "cube",`, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errBody ErrorResponse
	resp = call(t, app, "POST", "/api/shapes", map[string]interface{}{"shape_type": "cube"}, &errBody)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, errBody.Message, "position")
	assert.NotNil(t, errBody.Details)
}

func TestClearScene(t *testing.T) {
	app := newTestApp(t, false)
	for _, kind := range []string{"cube", "sphere", "cube"} {
		createShape(t, app, kind)
	}

	var scene SceneObjectsResponse
	call(t, app, "GET", "/api/scene/objects", nil, &scene)
	assert.Equal(t, 3, scene.Count)
	assert.Len(t, scene.Objects, 3)

	var cleared ClearSceneResponse
	resp := call(t, app, "DELETE", "/api/scene/clear", nil, &cleared)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, cleared.DeletedCount)
	assert.Equal(t, "Scene cleared. Deleted 3 objects.", cleared.Message)

	var shapes []models.Shape
	call(t, app, "GET", "/api/shapes", nil, &shapes)
	assert.Empty(t, shapes)
}

func TestGestureEndpoints(t *testing.T) {
	app := newTestApp(t, false)

	var empty models.GestureStats
	resp := call(t, app, "GET", "/api/gestures/stats", nil, &empty)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.GestureStats{}, empty)

	for _, pinch := range []float64{10, 20, 30} {
		resp := call(t, app, "POST", "/api/gestures", map[string]interface{}{
			"pinch_strength": pinch,
			"grab_strength":  0.5,
			"hand_present":   true,
			"confidence":     0.9,
		}, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	var stats models.GestureStats
	call(t, app, "GET", "/api/gestures/stats", nil, &stats)
	assert.EqualValues(t, 3, stats.TotalGestures)
	assert.Equal(t, 20.0, stats.AveragePinchStrength)
	assert.Equal(t, 0.5, stats.AverageGrabStrength)

	var recent []models.Gesture
	resp = call(t, app, "GET", "/api/gestures/recent?limit=2", nil, &recent)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, recent, 2)

	resp = call(t, app, "GET", "/api/gestures/recent?limit=abc", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, "POST", "/api/gestures", map[string]interface{}{"pinch_strength": 1}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProjectEndpoints(t *testing.T) {
	app := newTestApp(t, false)

	var project models.Project
	resp := call(t, app, "POST", "/api/projects", map[string]interface{}{"name": "Demo"}, &project)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{}, project.Shapes)
	assert.Nil(t, project.Description)

	var list []models.Project
	call(t, app, "GET", "/api/projects", nil, &list)
	assert.Len(t, list, 1)

	resp = call(t, app, "POST", "/api/projects", map[string]interface{}{"description": "no name"}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, "DELETE", "/api/projects/"+project.ID, nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSystemEndpoints(t *testing.T) {
	app := newTestApp(t, false)

	var banner BannerResponse
	call(t, app, "GET", "/api/", nil, &banner)
	assert.Equal(t, Version, banner.Version)
	assert.Equal(t, "Astris 3D API - Next-Generation Holographic 3D Design Platform", banner.Message)

	var health HealthResponse
	call(t, app, "GET", "/api/health", nil, &health)
	assert.Equal(t, "healthy", health.Status)

	var check models.StatusCheck
	resp := call(t, app, "POST", "/api/status", map[string]string{"client_name": "editor"}, &check)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "editor", check.ClientName)

	createShape(t, app, "cube")
	var usage models.UsageAnalytics
	call(t, app, "GET", "/api/analytics/usage", nil, &usage)
	assert.EqualValues(t, 1, usage.TotalShapes)
	assert.Equal(t, map[string]int64{"cube": 1}, usage.ShapeDistribution)

	resp = call(t, app, "GET", "/metrics", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSnapshots(t *testing.T) {
	disabled := newTestApp(t, false)
	resp := call(t, disabled, "POST", "/api/scene/snapshots", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	app := newTestApp(t, true)
	createShape(t, app, "cone")

	var info models.SnapshotInfo
	resp = call(t, app, "POST", "/api/scene/snapshots", nil, &info)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, info.Count)

	var snap models.SceneSnapshot
	resp = call(t, app, "GET", "/api/scene/snapshots/"+info.ID, nil, &snap)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, snap.Objects, 1)
	assert.Equal(t, "cone", snap.Objects[0].ShapeType)

	var list []models.SnapshotListing
	call(t, app, "GET", "/api/scene/snapshots", nil, &list)
	assert.Len(t, list, 1)

	resp = call(t, app, "GET", "/api/scene/snapshots/nope", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
