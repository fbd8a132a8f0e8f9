package wm

import "github.com/Momin010/MominOS-9u/internal/shared/types"

// Layout holds the chrome dimensions and gesture margins of the desktop
// surface. Values are pixels.
type Layout struct {
	TopBar     int // reserved strip at the top; windows never go under it
	MinWidth   int // resize floor
	MinHeight  int
	SnapMargin int // edge distance that arms snap zones while dragging
	DockMargin int // edge distance that claims a dock anchor on release

	DefaultWindowSize types.Size
}

// DefaultLayout returns the standard shell layout.
func DefaultLayout() Layout {
	return Layout{
		TopBar:            40,
		MinWidth:          300,
		MinHeight:         200,
		SnapMargin:        50,
		DockMargin:        100,
		DefaultWindowSize: types.Size{Width: 900, Height: 600},
	}
}
