package registry

import (
	"fmt"
	"sync"

	"github.com/Momin010/MominOS-9u/internal/shared/types"
)

// Manager holds the app catalog and the content provider registry.
type Manager struct {
	mu        sync.RWMutex
	entries   map[string]types.AppEntry       // protected by mu
	order     []string                        // registration order
	providers map[string]types.ContentProvider // protected by mu
}

// NewManager creates an empty catalog.
func NewManager() *Manager {
	return &Manager{
		entries:   make(map[string]types.AppEntry),
		providers: make(map[string]types.ContentProvider),
	}
}

// RegisterProvider adds a content provider.
func (m *Manager) RegisterProvider(p types.ContentProvider) error {
	if p.ID == "" {
		return fmt.Errorf("provider ID is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.providers[p.ID] = p
	return nil
}

// Register adds a catalog entry. The entry's provider must already be
// registered so a launched window always resolves to renderable content.
func (m *Manager) Register(entry types.AppEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("app ID is required")
	}
	if entry.Name == "" {
		return fmt.Errorf("app name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.providers[entry.Provider]; !ok {
		return fmt.Errorf("unknown content provider %q for app %q", entry.Provider, entry.ID)
	}

	if _, exists := m.entries[entry.ID]; !exists {
		m.order = append(m.order, entry.ID)
	}
	m.entries[entry.ID] = entry
	return nil
}

// Get retrieves a catalog entry by id.
func (m *Manager) Get(appID string) (types.AppEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[appID]
	return entry, ok
}

// Entries returns the catalog in registration order.
func (m *Manager) Entries() []types.AppEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.AppEntry, 0, len(m.order))
	for _, appID := range m.order {
		out = append(out, m.entries[appID])
	}
	return out
}

// Resolve maps a provider id to its renderable descriptor.
func (m *Manager) Resolve(providerID string) (types.ContentProvider, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.providers[providerID]
	return p, ok
}

// ResolveApp resolves the provider for a catalog entry in one step.
func (m *Manager) ResolveApp(appID string) (types.ContentProvider, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[appID]
	if !ok {
		return types.ContentProvider{}, false
	}
	p, ok := m.providers[entry.Provider]
	return p, ok
}

// Stats returns catalog statistics.
func (m *Manager) Stats() types.RegistryStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return types.RegistryStats{
		TotalEntries:   len(m.entries),
		TotalProviders: len(m.providers),
	}
}
