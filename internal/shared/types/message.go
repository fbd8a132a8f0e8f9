package types

// PointerTarget describes what surface a pointer-down landed on. The
// target determines which interaction begins; at most one interaction is
// active at a time.
type PointerTarget struct {
	Kind     string       `json:"kind"` // "window", "handle", "dock"
	WindowID string       `json:"window_id,omitempty"`
	Handle   ResizeHandle `json:"handle,omitempty"`
}

// Pointer target kinds.
const (
	TargetWindow = "window"
	TargetHandle = "handle"
	TargetDock   = "dock"
)

// WSMessage is the envelope for messages on the renderer stream.
type WSMessage struct {
	Type     string         `json:"type"`
	Pointer  *Point         `json:"pointer,omitempty"`
	Target   *PointerTarget `json:"target,omitempty"`
	Viewport *Size          `json:"viewport,omitempty"`
	AppID    string         `json:"app_id,omitempty"`
	WindowID string         `json:"window_id,omitempty"`
	Zone     SnapZone       `json:"zone,omitempty"`
	Query    string         `json:"query,omitempty"`
}
