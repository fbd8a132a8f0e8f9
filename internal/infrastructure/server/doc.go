// Package server assembles the shell engine: configuration, logging,
// metrics, the domain managers, and the HTTP and WebSocket surfaces.
//
// Dependency order matters: the registry seeds before the dock pins its
// entries, and the dock exists before the window manager so dock drag
// gestures have somewhere to commit.
package server
