package metrics

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/things/:id", "200"))

	for _, id := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/things/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/things/:id", "200"))
	assert.Equal(t, 2.0, after-before)
}

func TestRecordSnapshot(t *testing.T) {
	ok := testutil.ToFloat64(Snapshots.WithLabelValues("success"))
	failed := testutil.ToFloat64(Snapshots.WithLabelValues("error"))

	RecordSnapshot(nil)
	RecordSnapshot(errors.New("boom"))

	assert.Equal(t, ok+1, testutil.ToFloat64(Snapshots.WithLabelValues("success")))
	assert.Equal(t, failed+1, testutil.ToFloat64(Snapshots.WithLabelValues("error")))
}
