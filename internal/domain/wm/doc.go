// Package wm implements the desktop window manager.
//
// The manager owns the window list, the active-window pointer, and the
// pointer interaction state machine. All state transitions happen
// synchronously on an event (pointer move/up, open, close); the mutex
// exists only because transport handlers may run on different goroutines.
//
// Components:
//   - Manager: window lifecycle (open/close/minimize/maximize/snap/focus)
//     plus the drag, resize, and dock-drag gestures
//   - Interaction: explicit tagged states (Idle, DraggingWindow,
//     ResizingWindow, DraggingDock), exactly one active at a time
//   - Pure geometry: snap targets, snap-zone classification, resize
//     transforms, viewport clamping, all testable without any transport
//
// Guarantees held across all operations:
//   - window x >= 0 and y >= the top bar after any drag
//   - width >= 300 and height >= 200 after any resize
//   - at most one window per title; reopening raises instead
//   - pointer-up always commits and returns the machine to Idle
package wm
