package types

import "time"

// AppEntry is a launchable catalog entry. The Provider field names a
// content provider registered with the registry; the shell only renders
// chrome around whatever that provider describes.
type AppEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Color    string `json:"color,omitempty"`
	Provider string `json:"provider"`
}

// ContentProvider describes a renderable unit the browser can mount
// inside a window. The engine never executes provider content.
type ContentProvider struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"` // "panel", "terminal", "grid", ...
	Description string `json:"description,omitempty"`
}

// Identity is a selectable user on the login screen.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Session is an authenticated shell session. The credential is never
// stored; login accepts any non-empty string.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Identity  Identity  `json:"identity"`
	StartedAt time.Time `json:"started_at"`
}

// RegistryStats contains catalog statistics.
type RegistryStats struct {
	TotalEntries   int `json:"total_entries"`
	TotalProviders int `json:"total_providers"`
}
