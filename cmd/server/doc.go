// Package main is the entry point for the MominOS shell engine.
//
// The engine is the authoritative half of a browser-rendered desktop:
// the browser draws chrome and forwards input, the engine owns every
// piece of state that survives a frame.
//
// Architecture:
//
//	Browser renderer → WebSocket /stream (gestures, state snapshots)
//	                 → REST API (session, windows, dock, launcher)
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8080
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: graceful shutdown
package main
