package types

// DockAnchor is one of the eight discrete screen positions the dock can
// occupy. Mutated only by completing a dock drag gesture.
type DockAnchor string

const (
	AnchorBottom      DockAnchor = "bottom"
	AnchorTop         DockAnchor = "top"
	AnchorLeft        DockAnchor = "left"
	AnchorRight       DockAnchor = "right"
	AnchorTopLeft     DockAnchor = "top-left"
	AnchorTopRight    DockAnchor = "top-right"
	AnchorBottomLeft  DockAnchor = "bottom-left"
	AnchorBottomRight DockAnchor = "bottom-right"
)

// DockEntry is a single icon in the dock: either a pinned catalog entry
// or a dynamically appended entry for an open window.
type DockEntry struct {
	AppID    string `json:"app_id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Color    string `json:"color,omitempty"`
	Pinned   bool   `json:"pinned"`
	WindowID string `json:"window_id,omitempty"`
}

// DockState is the renderable dock snapshot sent to the browser.
type DockState struct {
	Anchor  DockAnchor  `json:"anchor"`
	Entries []DockEntry `json:"entries"`
}
