// Package types defines the shared data model for the desktop shell engine.
//
// The types here are transport-neutral: domain packages operate on them
// directly and the API layer serializes them to the browser renderer as-is.
//
// Core model:
//   - Rect/Point/Size: pixel geometry, top-left origin
//   - Window: a managed desktop window with geometry and state flags
//   - SnapZone: target regions for drag-to-snap
//   - DockAnchor: the eight discrete dock positions
//   - ResizeHandle: the eight resize grips of a window
//   - Identity: a selectable user on the login screen
//   - AppEntry: a launchable catalog entry resolved through the registry
package types
