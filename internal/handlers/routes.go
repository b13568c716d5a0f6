package handlers

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"scene-service/internal/logging"
	"scene-service/internal/metrics"
)

// Handlers groups everything RegisterRoutes mounts. Snapshots is nil when
// object storage is not configured.
type Handlers struct {
	Shapes    *ShapeHandler
	Projects  *ProjectHandler
	Gestures  *GestureHandler
	Scene     *SceneHandler
	Snapshots *SnapshotHandler
	System    *SystemHandler
}

// NewApp builds the fiber app with the shared middleware stack and /metrics.
func NewApp(corsOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:     "scene-service",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(ErrorResponse{Error: true, Message: err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logging.RequestLogger())
	app.Use(metrics.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	return app
}

// RegisterRoutes mounts the API under prefix.
func RegisterRoutes(app *fiber.App, prefix string, h Handlers) {
	api := app.Group(prefix)

	api.Get("/", h.System.Root)
	api.Get("/health", h.System.Health)
	api.Post("/status", h.System.CreateStatusCheck)
	api.Get("/status", h.System.ListStatusChecks)
	api.Get("/analytics/usage", h.System.UsageAnalytics)

	api.Post("/shapes", h.Shapes.CreateShape)
	api.Get("/shapes", h.Shapes.ListShapes)
	api.Get("/shapes/:id", h.Shapes.GetShape)
	api.Put("/shapes/:id", h.Shapes.UpdateShape)
	api.Delete("/shapes/:id", h.Shapes.DeleteShape)

	api.Post("/projects", h.Projects.CreateProject)
	api.Get("/projects", h.Projects.ListProjects)
	api.Get("/projects/:id", h.Projects.GetProject)
	api.Delete("/projects/:id", h.Projects.DeleteProject)

	api.Post("/gestures", h.Gestures.CreateGesture)
	api.Get("/gestures/recent", h.Gestures.RecentGestures)
	api.Get("/gestures/stats", h.Gestures.GestureStats)

	api.Get("/scene/objects", h.Scene.SceneObjects)
	api.Delete("/scene/clear", h.Scene.ClearScene)
	if h.Snapshots != nil {
		api.Post("/scene/snapshots", h.Snapshots.CreateSnapshot)
		api.Get("/scene/snapshots", h.Snapshots.ListSnapshots)
		api.Get("/scene/snapshots/:id", h.Snapshots.GetSnapshot)
	}

	api.Get("/swagger/*", swagger.HandlerDefault)
}
