// Package monitoring provides Prometheus metrics for the shell engine.
//
// Components:
//   - Metrics: counters and gauges for windows, gestures, snaps, the
//     renderer stream, and the HTTP surface
//   - Middleware: gin middleware recording per-request metrics
//
// The Metrics type satisfies the window manager's Recorder interface so
// domain packages stay free of prometheus imports.
package monitoring
