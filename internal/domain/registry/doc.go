// Package registry provides the app catalog for the desktop shell.
//
// Catalog entries name a content provider rather than carrying app code:
// the shell resolves the provider id to a renderable descriptor through
// this registry, keeping window chrome decoupled from app content.
//
// Components:
//   - Manager: catalog entries + content providers, stable order
//   - Seeder: registers the built-in catalog and loads optional
//     YAML/JSON manifests from a directory on startup
//
// The catalog is static after seeding; nothing here persists or
// executes. Providers are purely descriptive.
package registry
