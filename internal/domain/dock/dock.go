// Package dock implements the anchored application dock.
//
// The dock holds a fixed ordered set of pinned catalog entries plus a
// dynamic tail for open windows whose app is not pinned. A drag gesture
// relocates the dock to one of eight screen anchors; only the discrete
// anchor choice on release is part of the contract, never animation.
package dock

import (
	"sync"

	"github.com/Momin010/MominOS-9u/internal/shared/types"
)

// Dock owns the anchor and the pinned entry list.
type Dock struct {
	mu     sync.RWMutex
	anchor types.DockAnchor
	pinned []types.AppEntry
	margin int
}

// New creates a dock pinned with the first maxPinned catalog entries,
// anchored at the bottom of the screen.
func New(catalog []types.AppEntry, maxPinned, margin int) *Dock {
	if maxPinned > len(catalog) {
		maxPinned = len(catalog)
	}
	pinned := make([]types.AppEntry, maxPinned)
	copy(pinned, catalog[:maxPinned])

	return &Dock{
		anchor: types.AnchorBottom,
		pinned: pinned,
		margin: margin,
	}
}

// Anchor returns the current dock anchor.
func (d *Dock) Anchor() types.DockAnchor {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.anchor
}

// SetAnchor moves the dock to an explicit anchor.
func (d *Dock) SetAnchor(a types.DockAnchor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.anchor = a
}

// CommitDrag classifies the release point and commits the new anchor.
// Implements the window manager's DockPositioner.
func (d *Dock) CommitDrag(p types.Point, viewport types.Size) types.DockAnchor {
	a := ClassifyAnchor(p, viewport, d.margin)

	d.mu.Lock()
	d.anchor = a
	d.mu.Unlock()

	return a
}

// Entries merges the pinned list with dynamic entries for open windows
// whose app is not pinned. Minimized windows keep their dock entry so
// they can be re-activated from it.
func (d *Dock) Entries(windows []*types.Window) []types.DockEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entries := make([]types.DockEntry, 0, len(d.pinned)+len(windows))
	pinnedApps := make(map[string]bool, len(d.pinned))

	for _, e := range d.pinned {
		pinnedApps[e.ID] = true
		entries = append(entries, types.DockEntry{
			AppID:  e.ID,
			Name:   e.Name,
			Icon:   e.Icon,
			Color:  e.Color,
			Pinned: true,
		})
	}

	for _, w := range windows {
		if pinnedApps[w.AppID] {
			continue
		}
		entries = append(entries, types.DockEntry{
			AppID:    w.AppID,
			Name:     w.Title,
			Icon:     w.Icon,
			WindowID: w.ID,
		})
	}

	return entries
}

// State returns the renderable dock snapshot.
func (d *Dock) State(windows []*types.Window) types.DockState {
	return types.DockState{
		Anchor:  d.Anchor(),
		Entries: d.Entries(windows),
	}
}

// ClassifyAnchor maps a release point to the nearest of the eight
// anchors using the margin test. Corner tests run before single-edge
// tests; a release away from every edge keeps the dock at the bottom.
func ClassifyAnchor(p types.Point, viewport types.Size, margin int) types.DockAnchor {
	nearLeft := p.X < margin
	nearRight := p.X > viewport.Width-margin
	nearTop := p.Y < margin
	nearBottom := p.Y > viewport.Height-margin

	switch {
	case nearTop && nearLeft:
		return types.AnchorTopLeft
	case nearTop && nearRight:
		return types.AnchorTopRight
	case nearBottom && nearLeft:
		return types.AnchorBottomLeft
	case nearBottom && nearRight:
		return types.AnchorBottomRight
	case nearTop:
		return types.AnchorTop
	case nearBottom:
		return types.AnchorBottom
	case nearLeft:
		return types.AnchorLeft
	case nearRight:
		return types.AnchorRight
	}
	return types.AnchorBottom
}
