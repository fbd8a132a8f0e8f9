// Package launcher implements the full-screen app launcher overlay.
//
// The overlay is a modal list of the app catalog filterable by a
// case-insensitive substring match on the app name. Selecting an entry
// opens it through the window manager and dismisses the overlay;
// dismissing without a selection has no side effects.
package launcher

import (
	"strings"
	"sync"

	"github.com/Momin010/MominOS-9u/internal/shared/types"
)

// Catalog supplies the launchable entries, in stable order.
type Catalog interface {
	Entries() []types.AppEntry
	Get(appID string) (types.AppEntry, bool)
}

// Opener opens a catalog entry as a window.
type Opener interface {
	Open(entry types.AppEntry) (*types.Window, bool)
}

// Launcher owns the overlay visibility state.
type Launcher struct {
	mu      sync.RWMutex
	visible bool
	catalog Catalog
	opener  Opener
}

// New creates a launcher over the given catalog and opener.
func New(catalog Catalog, opener Opener) *Launcher {
	return &Launcher{catalog: catalog, opener: opener}
}

// Show opens the overlay.
func (l *Launcher) Show() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.visible = true
}

// Dismiss closes the overlay without side effects.
func (l *Launcher) Dismiss() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.visible = false
}

// Visible reports whether the overlay is showing.
func (l *Launcher) Visible() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.visible
}

// Filter returns the catalog entries whose name contains the query,
// case-insensitively. An empty query returns the full catalog.
func (l *Launcher) Filter(query string) []types.AppEntry {
	entries := l.catalog.Entries()
	if query == "" {
		return entries
	}

	q := strings.ToLower(query)
	matched := make([]types.AppEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), q) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Select opens the entry and dismisses the overlay. Selecting an
// unknown id just dismisses.
func (l *Launcher) Select(appID string) (*types.Window, bool) {
	defer l.Dismiss()

	entry, ok := l.catalog.Get(appID)
	if !ok {
		return nil, false
	}

	win, _ := l.opener.Open(entry)
	return win, true
}
