// Package ws streams the desktop to the browser renderer.
//
// A single WebSocket at /stream carries everything continuous: pointer
// events inbound, desktop state snapshots and clock ticks outbound. The
// renderer sends small typed JSON messages; after every gesture event
// the handler pushes a fresh snapshot so the renderer never interpolates
// authoritative state.
//
// Gesture protocol:
//   - pointer_down names a target (window title bar, resize handle, or
//     the dock grab area) and begins the matching interaction
//   - pointer_move advances whichever interaction is active
//   - pointer_up commits and always returns the engine to idle
package ws
