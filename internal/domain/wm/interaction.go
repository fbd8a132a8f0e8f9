package wm

import "github.com/Momin010/MominOS-9u/internal/shared/types"

// InteractionKind labels the active gesture for observability.
type InteractionKind string

const (
	KindIdle         InteractionKind = "idle"
	KindDragWindow   InteractionKind = "drag-window"
	KindResizeWindow InteractionKind = "resize-window"
	KindDragDock     InteractionKind = "drag-dock"
)

// Interaction is the pointer gesture state machine, expressed as a
// tagged variant rather than a bundle of nullable fields. Exactly one
// state is active at a time: a gesture begins on pointer-down over a
// draggable surface and ends on pointer-up, which always commits
// whatever partial state has accumulated.
type Interaction interface {
	Kind() InteractionKind
}

// Idle means no gesture is in progress.
type Idle struct{}

// DraggingWindow tracks a title-bar drag. LastPointer is re-armed on
// every move so deltas are incremental, not absolute-from-start.
type DraggingWindow struct {
	WindowID    string
	LastPointer types.Point
}

// ResizingWindow tracks a handle drag. The frame and pointer at gesture
// start are snapshotted; each move recomputes from the snapshot.
type ResizingWindow struct {
	WindowID     string
	Handle       types.ResizeHandle
	StartFrame   types.Rect
	StartPointer types.Point
}

// DraggingDock tracks a dock relocation gesture. Only the release point
// matters; the anchor is classified on pointer-up.
type DraggingDock struct{}

func (Idle) Kind() InteractionKind           { return KindIdle }
func (DraggingWindow) Kind() InteractionKind { return KindDragWindow }
func (ResizingWindow) Kind() InteractionKind { return KindResizeWindow }
func (DraggingDock) Kind() InteractionKind   { return KindDragDock }
