package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	EntitiesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scene_entities_created_total",
			Help: "Total number of entities created, by kind",
		},
		[]string{"kind"},
	)

	ShapesCleared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scene_shapes_cleared_total",
			Help: "Total number of shapes removed by scene clears",
		},
	)

	Snapshots = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scene_snapshots_total",
			Help: "Scene snapshot attempts by result",
		},
		[]string{"result"},
	)

	SnapshotBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scene_snapshot_bytes_total",
			Help: "Compressed snapshot bytes moved to and from object storage",
		},
		[]string{"direction"},
	)
)

// RecordEntityCreated increments the created counter for kind.
func RecordEntityCreated(kind string) {
	EntitiesCreated.WithLabelValues(kind).Inc()
}

// RecordShapesCleared adds the number of shapes removed by a scene clear.
func RecordShapesCleared(n int64) {
	ShapesCleared.Add(float64(n))
}

// RecordSnapshot counts a snapshot attempt as "success" or "error".
func RecordSnapshot(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	Snapshots.WithLabelValues(result).Inc()
}

// RecordSnapshotBytes adds n bytes for direction ("upload" or "download").
func RecordSnapshotBytes(direction string, n int64) {
	SnapshotBytes.WithLabelValues(direction).Add(float64(n))
}

// Middleware records request count and latency per matched route. The route
// pattern is used instead of the raw path to keep label cardinality bounded.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		route := c.Route().Path
		method := c.Method()
		HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}
