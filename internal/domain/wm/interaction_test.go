package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Momin010/MominOS-9u/internal/shared/types"
)

type fakeDock struct {
	committed *types.Point
	anchor    types.DockAnchor
}

func (d *fakeDock) CommitDrag(p types.Point, _ types.Size) types.DockAnchor {
	d.committed = &p
	return d.anchor
}

func TestDragClampsToTopBarAndLeftEdge(t *testing.T) {
	m := newTestManager()
	win, _ := m.Open(terminalEntry())

	require.True(t, m.BeginDrag(win.ID, types.Point{X: 500, Y: 500}))

	// Drag far past the top-left corner in several steps.
	m.PointerMove(types.Point{X: 100, Y: 100})
	m.PointerMove(types.Point{X: -500, Y: -500})
	m.PointerMove(types.Point{X: -2000, Y: -2000})
	m.PointerUp(types.Point{X: 960, Y: 540})

	got, _ := m.Get(win.ID)
	assert.GreaterOrEqual(t, got.Frame.X, 0)
	assert.GreaterOrEqual(t, got.Frame.Y, DefaultLayout().TopBar)
}

func TestDragDeltasAreIncremental(t *testing.T) {
	m := newTestManager()
	win, _ := m.Open(terminalEntry())
	start, _ := m.Get(win.ID)

	require.True(t, m.BeginDrag(win.ID, types.Point{X: 500, Y: 500}))
	m.PointerMove(types.Point{X: 510, Y: 500})
	m.PointerMove(types.Point{X: 520, Y: 510})
	m.PointerUp(types.Point{X: 520, Y: 510})

	got, _ := m.Get(win.ID)
	assert.Equal(t, start.Frame.X+20, got.Frame.X)
	assert.Equal(t, start.Frame.Y+10, got.Frame.Y)
}

func TestDragNearEdgeArmsSnapZones(t *testing.T) {
	m := newTestManager()
	win, _ := m.Open(terminalEntry())

	require.True(t, m.BeginDrag(win.ID, types.Point{X: 500, Y: 500}))
	assert.False(t, m.SnapZonesVisible())

	m.PointerMove(types.Point{X: 500, Y: 30})
	assert.True(t, m.SnapZonesVisible())

	m.PointerMove(types.Point{X: 500, Y: 500})
	assert.False(t, m.SnapZonesVisible(), "leaving the margin hides the zones")
}

func TestDragReleaseNearTopLeftSnapsTopLeft(t *testing.T) {
	m := newTestManager()
	win, _ := m.Open(terminalEntry())

	require.True(t, m.BeginDrag(win.ID, types.Point{X: 500, Y: 500}))
	m.PointerMove(types.Point{X: 300, Y: 20})
	require.True(t, m.SnapZonesVisible())
	m.PointerUp(types.Point{X: 300, Y: 20})

	got, _ := m.Get(win.ID)
	require.NotNil(t, got.SnapZone)
	assert.Equal(t, types.SnapTopLeft, *got.SnapZone)
	assert.Equal(t, types.Rect{X: 0, Y: 40, Width: 960, Height: 520}, got.Frame)
	assert.Equal(t, KindIdle, m.InteractionKind())
}

func TestDragReleaseAwayFromEdgesKeepsPosition(t *testing.T) {
	m := newTestManager()
	win, _ := m.Open(terminalEntry())

	require.True(t, m.BeginDrag(win.ID, types.Point{X: 500, Y: 500}))
	m.PointerMove(types.Point{X: 600, Y: 600})
	m.PointerUp(types.Point{X: 600, Y: 600})

	got, _ := m.Get(win.ID)
	assert.Nil(t, got.SnapZone)
}

func TestMaximizedWindowNeverDrags(t *testing.T) {
	m := newTestManager()
	win, _ := m.Open(terminalEntry())
	require.True(t, m.Maximize(win.ID))

	assert.False(t, m.BeginDrag(win.ID, types.Point{X: 500, Y: 500}))
	assert.Equal(t, KindIdle, m.InteractionKind())
}

func TestOneInteractionAtATime(t *testing.T) {
	m := newTestManager()
	first, _ := m.Open(terminalEntry())
	second, _ := m.Open(filesEntry())

	require.True(t, m.BeginDrag(first.ID, types.Point{X: 500, Y: 500}))

	assert.False(t, m.BeginDrag(second.ID, types.Point{X: 600, Y: 600}))
	assert.False(t, m.BeginResize(second.ID, types.HandleRight, types.Point{X: 600, Y: 600}))
	assert.False(t, m.BeginDockDrag())

	m.PointerUp(types.Point{X: 500, Y: 500})
	assert.Equal(t, KindIdle, m.InteractionKind())
	assert.True(t, m.BeginDockDrag())
}

func TestResizeGestureEnforcesFloors(t *testing.T) {
	m := newTestManager()
	win, _ := m.Open(terminalEntry())
	start, _ := m.Get(win.ID)

	corner := types.Point{
		X: start.Frame.X + start.Frame.Width,
		Y: start.Frame.Y + start.Frame.Height,
	}
	require.True(t, m.BeginResize(win.ID, types.HandleBottomRight, corner))

	during, _ := m.Get(win.ID)
	assert.True(t, during.Resizing)

	// Collapse the window well past both floors.
	m.PointerMove(types.Point{X: start.Frame.X - 500, Y: start.Frame.Y - 500})
	m.PointerUp(types.Point{X: start.Frame.X - 500, Y: start.Frame.Y - 500})

	got, _ := m.Get(win.ID)
	assert.Equal(t, DefaultLayout().MinWidth, got.Frame.Width)
	assert.Equal(t, DefaultLayout().MinHeight, got.Frame.Height)
	assert.False(t, got.Resizing)
}

func TestResizeFromStartSnapshotNotIncremental(t *testing.T) {
	m := newTestManager()
	win, _ := m.Open(terminalEntry())
	start, _ := m.Get(win.ID)

	edge := types.Point{X: start.Frame.X + start.Frame.Width, Y: start.Frame.Y + 100}
	require.True(t, m.BeginResize(win.ID, types.HandleRight, edge))

	// Two moves to the same final point must land on the same width as
	// one move there directly.
	m.PointerMove(types.Point{X: edge.X + 200, Y: edge.Y})
	m.PointerMove(types.Point{X: edge.X + 50, Y: edge.Y})
	m.PointerUp(types.Point{X: edge.X + 50, Y: edge.Y})

	got, _ := m.Get(win.ID)
	assert.Equal(t, start.Frame.Width+50, got.Frame.Width)
}

func TestDockDragCommitsOnRelease(t *testing.T) {
	m := newTestManager()
	dock := &fakeDock{anchor: types.AnchorTopLeft}
	m.WithDock(dock)

	require.True(t, m.BeginDockDrag())
	m.PointerMove(types.Point{X: 10, Y: 10})
	m.PointerUp(types.Point{X: 5, Y: 5})

	require.NotNil(t, dock.committed)
	assert.Equal(t, types.Point{X: 5, Y: 5}, *dock.committed)
	assert.Equal(t, KindIdle, m.InteractionKind())
}

func TestCloseDuringDragResetsInteraction(t *testing.T) {
	m := newTestManager()
	win, _ := m.Open(terminalEntry())

	require.True(t, m.BeginDrag(win.ID, types.Point{X: 500, Y: 500}))
	require.True(t, m.Close(win.ID))

	assert.Equal(t, KindIdle, m.InteractionKind())
	assert.False(t, m.SnapZonesVisible())
}
