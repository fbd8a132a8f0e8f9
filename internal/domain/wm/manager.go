package wm

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Momin010/MominOS-9u/internal/shared/id"
	"github.com/Momin010/MominOS-9u/internal/shared/types"
)

// DockPositioner commits a dock drag release to a discrete anchor.
type DockPositioner interface {
	CommitDrag(p types.Point, viewport types.Size) types.DockAnchor
}

// Recorder receives window manager events for metrics export.
type Recorder interface {
	WindowOpened()
	WindowClosed()
	InteractionStarted(kind string)
	WindowSnapped(zone string)
}

// Manager orchestrates window lifecycle and pointer gestures.
//
// The slice order is the z-order: the back of the slice renders on top.
// Raising a window moves it to the back and marks it active.
type Manager struct {
	mu          sync.RWMutex
	layout      Layout
	viewport    types.Size
	windows     []*types.Window // protected by mu; back = top of z-order
	activeID    *string         // protected by mu
	interaction Interaction     // protected by mu
	snapVisible bool            // protected by mu
	dock        DockPositioner
	metrics     Recorder
	rng         *rand.Rand
}

// NewManager creates a window manager for the given viewport.
func NewManager(viewport types.Size, layout Layout) *Manager {
	return &Manager{
		layout:      layout,
		viewport:    viewport,
		interaction: Idle{},
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithDock attaches the dock positioner used by dock drag gestures.
func (m *Manager) WithDock(dock DockPositioner) *Manager {
	m.dock = dock
	return m
}

// WithMetrics adds metrics tracking to the manager.
func (m *Manager) WithMetrics(metrics Recorder) *Manager {
	m.metrics = metrics
	return m
}

// SetViewport updates the viewport size used for snap targets and clamps.
func (m *Manager) SetViewport(s types.Size) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viewport = s
}

// Viewport returns the current viewport size.
func (m *Manager) Viewport() types.Size {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viewport
}

// Open launches a catalog entry. If a window with the entry's name
// already exists it is unminimized and raised instead of duplicated;
// the second return value reports whether a window was created.
func (m *Manager) Open(entry types.AppEntry) (*types.Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, w := range m.windows {
		if w.Title == entry.Name {
			w.Minimized = false
			m.raise(w.ID)
			wc := *w
			return &wc, false
		}
	}

	size := m.layout.DefaultWindowSize
	win := &types.Window{
		ID:    id.NewWindowID().String(),
		AppID: entry.ID,
		Title: entry.Name,
		Icon:  entry.Icon,
		Frame: types.Rect{
			X:      120 + m.rng.Intn(240),
			Y:      m.layout.TopBar + 40 + m.rng.Intn(160),
			Width:  size.Width,
			Height: size.Height,
		},
		CreatedAt: time.Now(),
	}

	m.windows = append(m.windows, win)
	m.activeID = &win.ID

	if m.metrics != nil {
		m.metrics.WindowOpened()
	}

	wc := *win
	return &wc, true
}

// Close removes a window. Closing an unknown id is a no-op; closing the
// active window clears the active pointer.
func (m *Manager) Close(windowID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.windows[:0]
	removed := false
	for _, w := range m.windows {
		if w.ID == windowID {
			removed = true
			continue
		}
		kept = append(kept, w)
	}
	m.windows = kept

	if !removed {
		return false
	}

	if m.activeID != nil && *m.activeID == windowID {
		m.activeID = nil
	}

	// A gesture referencing the closed window cannot commit anything.
	switch st := m.interaction.(type) {
	case DraggingWindow:
		if st.WindowID == windowID {
			m.interaction = Idle{}
			m.snapVisible = false
		}
	case ResizingWindow:
		if st.WindowID == windowID {
			m.interaction = Idle{}
		}
	}

	if m.metrics != nil {
		m.metrics.WindowClosed()
	}
	return true
}

// Minimize hides a window from rendering while keeping it in the list.
func (m *Manager) Minimize(windowID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.find(windowID)
	if w == nil {
		return false
	}

	w.Minimized = true
	if m.activeID != nil && *m.activeID == windowID {
		m.activeID = nil
	}
	return true
}

// Maximize toggles the maximized flag. Entering maximize snapshots the
// frame into the restore slot; leaving it puts the snapshot back, so
// rapid toggles return to the original geometry even after intervening
// drags. Any snap anchor is cleared either way.
func (m *Manager) Maximize(windowID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.find(windowID)
	if w == nil {
		return false
	}

	if w.Maximized {
		w.Maximized = false
		if w.Restore != nil {
			w.Frame = *w.Restore
			w.Restore = nil
		}
	} else {
		prior := w.Frame
		w.Restore = &prior
		w.Frame = SnapTarget(types.SnapMaximize, m.viewport, m.layout)
		w.Maximized = true
	}
	w.SnapZone = nil
	m.raise(windowID)
	return true
}

// Snap moves a window to the zone's target geometry and records the
// anchor. Zone maximize additionally sets the maximized flag.
func (m *Manager) Snap(windowID string, zone types.SnapZone) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap(windowID, zone)
}

// snap applies zone geometry; must hold mu.
func (m *Manager) snap(windowID string, zone types.SnapZone) bool {
	w := m.find(windowID)
	if w == nil {
		return false
	}

	prior := w.Frame
	w.Frame = SnapTarget(zone, m.viewport, m.layout)
	z := zone
	w.SnapZone = &z

	if zone == types.SnapMaximize {
		if !w.Maximized {
			w.Restore = &prior
		}
		w.Maximized = true
	}

	if m.metrics != nil {
		m.metrics.WindowSnapped(string(zone))
	}
	return true
}

// Focus raises a window and marks it active.
func (m *Manager) Focus(windowID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.find(windowID) == nil {
		return false
	}
	m.raise(windowID)
	return true
}

// Get retrieves a window copy by id.
func (m *Manager) Get(windowID string) (*types.Window, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w := m.find(windowID)
	if w == nil {
		return nil, false
	}
	wc := *w
	return &wc, true
}

// List returns copies of all windows in z-order, bottom first.
func (m *Manager) List() []*types.Window {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*types.Window, 0, len(m.windows))
	for _, w := range m.windows {
		wc := *w
		out = append(out, &wc)
	}
	return out
}

// ActiveID returns the active window id, or nil.
func (m *Manager) ActiveID() *string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.activeID == nil {
		return nil
	}
	idCopy := *m.activeID
	return &idCopy
}

// Stats returns manager statistics.
func (m *Manager) Stats() types.WMStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var minimized int
	for _, w := range m.windows {
		if w.Minimized {
			minimized++
		}
	}

	var active *string
	if m.activeID != nil {
		idCopy := *m.activeID
		active = &idCopy
	}

	return types.WMStats{
		TotalWindows:     len(m.windows),
		VisibleWindows:   len(m.windows) - minimized,
		MinimizedWindows: minimized,
		ActiveWindowID:   active,
	}
}

// InteractionKind reports which gesture is currently active.
func (m *Manager) InteractionKind() InteractionKind {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.interaction.Kind()
}

// SnapZonesVisible reports whether the snap overlay should render.
func (m *Manager) SnapZonesVisible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapVisible
}

// BeginDrag starts a title-bar drag. Refused while another gesture is
// active and for maximized or minimized windows.
func (m *Manager) BeginDrag(windowID string, p types.Point) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.interaction.Kind() != KindIdle {
		return false
	}
	w := m.find(windowID)
	if w == nil || w.Maximized || w.Minimized {
		return false
	}

	m.raise(windowID)
	m.interaction = DraggingWindow{WindowID: windowID, LastPointer: p}
	if m.metrics != nil {
		m.metrics.InteractionStarted(string(KindDragWindow))
	}
	return true
}

// BeginResize starts a handle drag, snapshotting the frame and pointer.
func (m *Manager) BeginResize(windowID string, handle types.ResizeHandle, p types.Point) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.interaction.Kind() != KindIdle || !handle.Valid() {
		return false
	}
	w := m.find(windowID)
	if w == nil || w.Maximized || w.Minimized {
		return false
	}

	m.raise(windowID)
	w.Resizing = true
	m.interaction = ResizingWindow{
		WindowID:     windowID,
		Handle:       handle,
		StartFrame:   w.Frame,
		StartPointer: p,
	}
	if m.metrics != nil {
		m.metrics.InteractionStarted(string(KindResizeWindow))
	}
	return true
}

// BeginDockDrag starts a dock relocation gesture.
func (m *Manager) BeginDockDrag() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.interaction.Kind() != KindIdle {
		return false
	}
	m.interaction = DraggingDock{}
	if m.metrics != nil {
		m.metrics.InteractionStarted(string(KindDragDock))
	}
	return true
}

// PointerMove advances whichever gesture is active. A move while idle
// is a no-op: every operation here is total.
func (m *Manager) PointerMove(p types.Point) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch st := m.interaction.(type) {
	case DraggingWindow:
		m.updateDrag(st, p)
	case ResizingWindow:
		m.updateResize(st, p)
	}
}

// PointerUp ends the active gesture, committing its partial state.
// There is no abort: release always commits.
func (m *Manager) PointerUp(p types.Point) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch st := m.interaction.(type) {
	case DraggingWindow:
		if m.snapVisible {
			if zone, ok := ClassifySnapZone(p, m.viewport, m.layout); ok {
				m.snap(st.WindowID, zone)
			}
		}
	case ResizingWindow:
		if w := m.find(st.WindowID); w != nil {
			w.Resizing = false
		}
	case DraggingDock:
		if m.dock != nil {
			m.dock.CommitDrag(p, m.viewport)
		}
	}

	m.interaction = Idle{}
	m.snapVisible = false
}

// updateDrag applies the incremental pointer delta; must hold mu.
func (m *Manager) updateDrag(st DraggingWindow, p types.Point) {
	w := m.find(st.WindowID)
	if w == nil {
		m.interaction = Idle{}
		m.snapVisible = false
		return
	}

	dx := p.X - st.LastPointer.X
	dy := p.Y - st.LastPointer.Y

	w.Frame.X += dx
	w.Frame.Y += dy
	if w.Frame.X < 0 {
		w.Frame.X = 0
	}
	if w.Frame.Y < m.layout.TopBar {
		w.Frame.Y = m.layout.TopBar
	}

	// Re-arm the baseline so the next delta is relative to this event.
	st.LastPointer = p
	m.interaction = st

	m.snapVisible = NearEdge(p, m.viewport, m.layout)
}

// updateResize recomputes the frame from the gesture snapshot; must hold mu.
func (m *Manager) updateResize(st ResizingWindow, p types.Point) {
	w := m.find(st.WindowID)
	if w == nil {
		m.interaction = Idle{}
		return
	}
	w.Frame = ApplyResize(st.StartFrame, st.Handle, st.StartPointer, p, m.viewport, m.layout)
}

// find returns the live window or nil; must hold mu.
func (m *Manager) find(windowID string) *types.Window {
	for _, w := range m.windows {
		if w.ID == windowID {
			return w
		}
	}
	return nil
}

// raise moves a window to the top of the z-order and activates it; must
// hold mu.
func (m *Manager) raise(windowID string) {
	for i, w := range m.windows {
		if w.ID == windowID {
			m.windows = append(append(m.windows[:i], m.windows[i+1:]...), w)
			m.activeID = &w.ID
			return
		}
	}
}
