package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/Momin010/MominOS-9u/internal/shared/id"
	"github.com/Momin010/MominOS-9u/internal/shared/types"
)

// Manifest is the on-disk form of a catalog entry. YAML and JSON are
// both accepted (YAML is a superset of JSON flow syntax).
type Manifest struct {
	App struct {
		ID    string `yaml:"id" json:"id"`
		Name  string `yaml:"name" json:"name"`
		Icon  string `yaml:"icon" json:"icon"`
		Color string `yaml:"color" json:"color"`
	} `yaml:"app" json:"app"`
	Provider struct {
		ID          string `yaml:"id" json:"id"`
		Kind        string `yaml:"kind" json:"kind"`
		Description string `yaml:"description" json:"description"`
	} `yaml:"provider" json:"provider"`
}

// Seeder loads catalog entries into a manager on startup.
type Seeder struct {
	manager     *Manager
	manifestDir string
}

// NewSeeder creates a seeder. manifestDir may be empty to skip disk
// loading entirely.
func NewSeeder(manager *Manager, manifestDir string) *Seeder {
	return &Seeder{manager: manager, manifestDir: manifestDir}
}

// SeedDefaults registers the built-in providers and catalog. The shell
// always ships these even when no manifest directory is configured.
func (s *Seeder) SeedDefaults() error {
	providers := []types.ContentProvider{
		{ID: "terminal", Kind: "terminal", Description: "Command prompt panel"},
		{ID: "files", Kind: "grid", Description: "File browser panel"},
		{ID: "browser", Kind: "panel", Description: "Web view panel"},
		{ID: "editor", Kind: "panel", Description: "Text editor panel"},
		{ID: "settings", Kind: "panel", Description: "Preferences panel"},
		{ID: "calculator", Kind: "panel", Description: "Calculator panel"},
		{ID: "music", Kind: "panel", Description: "Media player panel"},
		{ID: "photos", Kind: "grid", Description: "Image gallery panel"},
	}
	for _, p := range providers {
		if err := s.manager.RegisterProvider(p); err != nil {
			return fmt.Errorf("failed to register provider %s: %w", p.ID, err)
		}
	}

	entries := []types.AppEntry{
		{ID: "terminal", Name: "Terminal", Icon: "terminal", Color: "#1e1e2e", Provider: "terminal"},
		{ID: "files", Name: "Files", Icon: "folder", Color: "#f9e2af", Provider: "files"},
		{ID: "browser", Name: "Browser", Icon: "globe", Color: "#89b4fa", Provider: "browser"},
		{ID: "editor", Name: "Editor", Icon: "pencil", Color: "#a6e3a1", Provider: "editor"},
		{ID: "settings", Name: "Settings", Icon: "gear", Color: "#9399b2", Provider: "settings"},
		{ID: "calculator", Name: "Calculator", Icon: "abacus", Color: "#fab387", Provider: "calculator"},
		{ID: "music", Name: "Music", Icon: "note", Color: "#cba6f7", Provider: "music"},
		{ID: "photos", Name: "Photos", Icon: "image", Color: "#f38ba8", Provider: "photos"},
	}
	for _, e := range entries {
		if err := s.manager.Register(e); err != nil {
			return fmt.Errorf("failed to register app %s: %w", e.ID, err)
		}
	}

	return nil
}

// SeedManifests loads *.yaml, *.yml, and *.json manifests from the
// manifest directory. A missing directory is not an error; a broken
// manifest skips that file only.
func (s *Seeder) SeedManifests() (loaded int, err error) {
	if s.manifestDir == "" {
		return 0, nil
	}
	if _, statErr := os.Stat(s.manifestDir); os.IsNotExist(statErr) {
		return 0, nil
	}

	walkErr := filepath.Walk(s.manifestDir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() || !isManifestFile(info.Name()) {
			return nil
		}
		if loadErr := s.loadManifest(path); loadErr != nil {
			// Skip broken manifests; the rest of the catalog still loads.
			return nil
		}
		loaded++
		return nil
	})
	if walkErr != nil {
		return loaded, fmt.Errorf("failed to scan manifest dir: %w", walkErr)
	}
	return loaded, nil
}

// loadManifest parses and registers a single manifest file.
func (s *Seeder) loadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	var man Manifest
	if err := yaml.Unmarshal(data, &man); err != nil {
		return fmt.Errorf("failed to parse manifest %s: %w", filepath.Base(path), err)
	}

	if man.App.Name == "" {
		return fmt.Errorf("manifest %s: app.name is required", filepath.Base(path))
	}

	// A manifest without an explicit id gets a minted one.
	appID := man.App.ID
	if appID == "" {
		appID = id.NewAppID().String()
	}

	providerID := man.Provider.ID
	if providerID == "" {
		providerID = appID
	}
	kind := man.Provider.Kind
	if kind == "" {
		kind = "panel"
	}

	if err := s.manager.RegisterProvider(types.ContentProvider{
		ID:          providerID,
		Kind:        kind,
		Description: man.Provider.Description,
	}); err != nil {
		return err
	}

	return s.manager.Register(types.AppEntry{
		ID:       appID,
		Name:     man.App.Name,
		Icon:     man.App.Icon,
		Color:    man.App.Color,
		Provider: providerID,
	})
}

func isManifestFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
