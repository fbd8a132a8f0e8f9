package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// One collector per test binary: promauto registers with the default
// registry, so every test shares this instance.
var metrics = NewMetrics()

func TestWindowLifecycleCounters(t *testing.T) {
	createdBefore := testutil.ToFloat64(metrics.WindowsCreated)
	closedBefore := testutil.ToFloat64(metrics.WindowsClosed)

	metrics.WindowOpened()
	metrics.WindowOpened()
	metrics.WindowClosed()

	assert.Equal(t, createdBefore+2, testutil.ToFloat64(metrics.WindowsCreated))
	assert.Equal(t, closedBefore+1, testutil.ToFloat64(metrics.WindowsClosed))
}

func TestInteractionAndSnapLabels(t *testing.T) {
	metrics.InteractionStarted("drag-window")
	metrics.InteractionStarted("drag-window")
	metrics.WindowSnapped("left-half")

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Interactions.WithLabelValues("drag-window")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Snaps.WithLabelValues("left-half")))
}

func TestWSConnectionGauge(t *testing.T) {
	before := testutil.ToFloat64(metrics.WSConnections)

	metrics.WSConnected()
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.WSConnections))

	metrics.WSDisconnected()
	assert.Equal(t, before, testutil.ToFloat64(metrics.WSConnections))

	metrics.WSMessage("pointer_move")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WSMessages.WithLabelValues("pointer_move")))
}

func TestMiddlewareRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(metrics))
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/health", "200"))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/health", "200")))
	assert.Positive(t, testutil.ToFloat64(metrics.Uptime))
}
