package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Window manager metrics
	WindowsOpen    prometheus.Gauge
	WindowsCreated prometheus.Counter
	WindowsClosed  prometheus.Counter
	Interactions   *prometheus.CounterVec
	Snaps          *prometheus.CounterVec

	// Session metrics
	Logins  prometheus.Counter
	Logouts prometheus.Counter

	// Renderer stream metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shell_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),

		WindowsOpen: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "shell_windows_open",
				Help: "Number of open windows",
			},
		),
		WindowsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "shell_windows_created_total",
				Help: "Total number of windows created",
			},
		),
		WindowsClosed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "shell_windows_closed_total",
				Help: "Total number of windows closed",
			},
		),
		Interactions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_interactions_total",
				Help: "Pointer gestures started, by kind",
			},
			[]string{"kind"},
		),
		Snaps: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_snaps_total",
				Help: "Windows snapped, by zone",
			},
			[]string{"zone"},
		),

		Logins: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "shell_logins_total",
				Help: "Total number of logins",
			},
		),
		Logouts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "shell_logouts_total",
				Help: "Total number of logouts",
			},
		),

		WSConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "shell_ws_connections",
				Help: "Active renderer stream connections",
			},
		),
		WSMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_ws_messages_total",
				Help: "Renderer stream messages, by type",
			},
			[]string{"type"},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "shell_uptime_seconds",
				Help: "Engine uptime in seconds",
			},
		),
	}
}

// RecordHTTPRequest records metrics for a completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// WindowOpened implements wm.Recorder.
func (m *Metrics) WindowOpened() {
	m.WindowsCreated.Inc()
	m.WindowsOpen.Inc()
}

// WindowClosed implements wm.Recorder.
func (m *Metrics) WindowClosed() {
	m.WindowsClosed.Inc()
	m.WindowsOpen.Dec()
}

// InteractionStarted implements wm.Recorder.
func (m *Metrics) InteractionStarted(kind string) {
	m.Interactions.WithLabelValues(kind).Inc()
}

// WindowSnapped implements wm.Recorder.
func (m *Metrics) WindowSnapped(zone string) {
	m.Snaps.WithLabelValues(zone).Inc()
}

// RecordLogin records a successful login.
func (m *Metrics) RecordLogin() { m.Logins.Inc() }

// RecordLogout records a logout.
func (m *Metrics) RecordLogout() { m.Logouts.Inc() }

// WSConnected records a renderer stream connecting.
func (m *Metrics) WSConnected() { m.WSConnections.Inc() }

// WSDisconnected records a renderer stream closing.
func (m *Metrics) WSDisconnected() { m.WSConnections.Dec() }

// WSMessage records an inbound renderer stream message.
func (m *Metrics) WSMessage(msgType string) {
	m.WSMessages.WithLabelValues(msgType).Inc()
}
