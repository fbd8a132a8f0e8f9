package wm

import "github.com/Momin010/MominOS-9u/internal/shared/types"

// SnapTarget returns the frame a window assumes when snapped to zone.
// The work area is the viewport minus the top bar.
func SnapTarget(zone types.SnapZone, viewport types.Size, l Layout) types.Rect {
	w := viewport.Width
	h := viewport.Height - l.TopBar
	top := l.TopBar

	switch zone {
	case types.SnapLeftHalf:
		return types.Rect{X: 0, Y: top, Width: w / 2, Height: h}
	case types.SnapRightHalf:
		return types.Rect{X: w / 2, Y: top, Width: w / 2, Height: h}
	case types.SnapTopLeft:
		return types.Rect{X: 0, Y: top, Width: w / 2, Height: h / 2}
	case types.SnapTopRight:
		return types.Rect{X: w / 2, Y: top, Width: w / 2, Height: h / 2}
	case types.SnapBottomLeft:
		return types.Rect{X: 0, Y: top + h/2, Width: w / 2, Height: h / 2}
	case types.SnapBottomRight:
		return types.Rect{X: w / 2, Y: top + h/2, Width: w / 2, Height: h / 2}
	case types.SnapMaximize:
		return types.Rect{X: 0, Y: top, Width: w, Height: h}
	}
	return types.Rect{X: 0, Y: top, Width: w, Height: h}
}

// NearEdge reports whether the pointer is within the snap margin of any
// screen edge. While a window drag is near an edge the shell shows the
// snap-zone overlay.
func NearEdge(p types.Point, viewport types.Size, l Layout) bool {
	m := l.SnapMargin
	return p.X < m || p.Y < m ||
		p.X > viewport.Width-m || p.Y > viewport.Height-m
}

// ClassifySnapZone maps a drag release point to a snap zone. Top and
// bottom edges are checked before left and right; within the top or
// bottom edge the horizontal half of the screen picks the corner. A
// release away from every edge snaps nothing.
func ClassifySnapZone(p types.Point, viewport types.Size, l Layout) (types.SnapZone, bool) {
	m := l.SnapMargin
	leftHalf := p.X < viewport.Width/2

	switch {
	case p.Y < m:
		if leftHalf {
			return types.SnapTopLeft, true
		}
		return types.SnapTopRight, true
	case p.Y > viewport.Height-m:
		if leftHalf {
			return types.SnapBottomLeft, true
		}
		return types.SnapBottomRight, true
	case p.X < m:
		return types.SnapLeftHalf, true
	case p.X > viewport.Width-m:
		return types.SnapRightHalf, true
	}
	return "", false
}

// ApplyResize derives a window frame from the gesture start snapshot and
// the current pointer position. Deltas are measured from the original
// start point, not the previous event. Dragging a left or top edge moves
// the origin so the opposite edge stays fixed; when a dimension hits its
// floor, or growth reaches a viewport edge, the fixed edge is pinned so
// it does not drift.
func ApplyResize(start types.Rect, handle types.ResizeHandle, startPtr, cur types.Point, viewport types.Size, l Layout) types.Rect {
	dx := cur.X - startPtr.X
	dy := cur.Y - startPtr.Y

	r := start

	switch handle {
	case types.HandleRight, types.HandleTopRight, types.HandleBottomRight:
		r.Width = start.Width + dx
	case types.HandleLeft, types.HandleTopLeft, types.HandleBottomLeft:
		r.Width = start.Width - dx
		r.X = start.X + dx
	}

	switch handle {
	case types.HandleBottom, types.HandleBottomLeft, types.HandleBottomRight:
		r.Height = start.Height + dy
	case types.HandleTop, types.HandleTopLeft, types.HandleTopRight:
		r.Height = start.Height - dy
		r.Y = start.Y + dy
	}

	if r.Width < l.MinWidth {
		if movesLeftEdge(handle) {
			r.X = start.X + start.Width - l.MinWidth
		}
		r.Width = l.MinWidth
	}
	if r.Height < l.MinHeight {
		if movesTopEdge(handle) {
			r.Y = start.Y + start.Height - l.MinHeight
		}
		r.Height = l.MinHeight
	}

	if r.Y < l.TopBar {
		if movesTopEdge(handle) {
			// Keep the bottom edge where the gesture started.
			r.Height = start.Y + start.Height - l.TopBar
		}
		r.Y = l.TopBar
	}

	// Growth stops at a viewport edge; the opposite edge stays fixed.
	if movesLeftEdge(handle) {
		if r.X < 0 {
			r.Width = start.X + start.Width
			r.X = 0
		}
	} else if r.X+r.Width > viewport.Width {
		r.Width = viewport.Width - r.X
	}
	if !movesTopEdge(handle) && r.Y+r.Height > viewport.Height {
		r.Height = viewport.Height - r.Y
	}

	return ClampFrame(r, viewport, l)
}

// ClampFrame keeps the frame's bounding box inside the viewport work
// area. Out-of-bounds results are silently clamped, never rejected.
func ClampFrame(r types.Rect, viewport types.Size, l Layout) types.Rect {
	work := viewport.Height - l.TopBar

	if r.Width > viewport.Width {
		r.Width = viewport.Width
	}
	if r.Height > work {
		r.Height = work
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < l.TopBar {
		r.Y = l.TopBar
	}
	if r.X+r.Width > viewport.Width {
		r.X = viewport.Width - r.Width
	}
	if r.Y+r.Height > viewport.Height {
		r.Y = viewport.Height - r.Height
	}
	return r
}

func movesLeftEdge(h types.ResizeHandle) bool {
	return h == types.HandleLeft || h == types.HandleTopLeft || h == types.HandleBottomLeft
}

func movesTopEdge(h types.ResizeHandle) bool {
	return h == types.HandleTop || h == types.HandleTopLeft || h == types.HandleTopRight
}
