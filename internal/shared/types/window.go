package types

import "time"

// SnapZone identifies a target region for drag-to-snap.
type SnapZone string

const (
	SnapLeftHalf    SnapZone = "left-half"
	SnapRightHalf   SnapZone = "right-half"
	SnapTopLeft     SnapZone = "top-left"
	SnapTopRight    SnapZone = "top-right"
	SnapBottomLeft  SnapZone = "bottom-left"
	SnapBottomRight SnapZone = "bottom-right"
	SnapMaximize    SnapZone = "maximize"
)

// ResizeHandle identifies which grip a resize gesture started from.
type ResizeHandle string

const (
	HandleTop         ResizeHandle = "top"
	HandleBottom      ResizeHandle = "bottom"
	HandleLeft        ResizeHandle = "left"
	HandleRight       ResizeHandle = "right"
	HandleTopLeft     ResizeHandle = "top-left"
	HandleTopRight    ResizeHandle = "top-right"
	HandleBottomLeft  ResizeHandle = "bottom-left"
	HandleBottomRight ResizeHandle = "bottom-right"
)

// Valid reports whether the handle is one of the eight known grips.
func (h ResizeHandle) Valid() bool {
	switch h {
	case HandleTop, HandleBottom, HandleLeft, HandleRight,
		HandleTopLeft, HandleTopRight, HandleBottomLeft, HandleBottomRight:
		return true
	}
	return false
}

// Window is a managed desktop window.
//
// The window list owned by the manager is the single source of truth;
// copies are handed out on read. Restore holds the frame prior to
// maximizing so the toggle returns to the original geometry even after
// intervening drags.
type Window struct {
	ID        string    `json:"id"`
	AppID     string    `json:"app_id"`
	Title     string    `json:"title"`
	Icon      string    `json:"icon"`
	Frame     Rect      `json:"frame"`
	Minimized bool      `json:"minimized"`
	Maximized bool      `json:"maximized"`
	Restore   *Rect     `json:"restore,omitempty"`
	SnapZone  *SnapZone `json:"snap_zone,omitempty"`
	Resizing  bool      `json:"resizing,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// WMStats contains window manager statistics.
type WMStats struct {
	TotalWindows     int     `json:"total_windows"`
	VisibleWindows   int     `json:"visible_windows"`
	MinimizedWindows int     `json:"minimized_windows"`
	ActiveWindowID   *string `json:"active_window_id,omitempty"`
}
