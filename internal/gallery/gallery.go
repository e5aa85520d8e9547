// Package gallery defines the package-manager collaborator used by the
// reconcile, installer, and status packages. The real implementation drives
// PowerShellGet through a PowerShell subprocess; everything above it depends
// only on the Client interface.
package gallery

import "context"

// Source identifies which discovery mechanism produced a module record.
type Source string

const (
	// SourceGallery marks a module tracked by the PowerShellGet registry.
	SourceGallery Source = "gallery"
	// SourcePathOnly marks a module found on the module path but untracked
	// by the registry.
	SourcePathOnly Source = "path-only"
)

// Module is one installed-module record from either discovery mechanism.
type Module struct {
	Name     string
	Version  string
	Location string
	Source   Source
}

// Scope selects the installation target for Install.
type Scope string

const (
	// ScopeAllUsers installs into the machine-wide module root.
	ScopeAllUsers Scope = "AllUsers"
	// ScopeCurrentUser installs into the invoking user's module root.
	ScopeCurrentUser Scope = "CurrentUser"
)

// Client exposes the package-manager primitives the core needs. Every method
// may fail; callers never assume success.
type Client interface {
	// ListInstalled returns gallery-tracked modules whose names match pattern.
	ListInstalled(ctx context.Context, pattern string) ([]Module, error)
	// ListAvailable returns modules visible on the module path (the
	// filesystem view, distinct from the gallery registry) matching pattern.
	ListAvailable(ctx context.Context, pattern string) ([]Module, error)
	// Uninstall removes one exact (name, version) from the gallery registry.
	Uninstall(ctx context.Context, name string, version string) error
	// UninstallAll removes every registered version of name.
	UninstallAll(ctx context.Context, name string) error
	// Install installs the latest version of name into scope, overwriting
	// any clashing commands from already-loaded modules.
	Install(ctx context.Context, name string, scope Scope) error
	// FindLatest returns the newest version of name published to the gallery.
	FindLatest(ctx context.Context, name string) (string, error)
	// RemoveFromSession unloads matching modules from the current session.
	// Best-effort; a module that is not loaded is not an error.
	RemoveFromSession(ctx context.Context, pattern string) error
}

// DedupeByName keeps the first record seen for each module name, preserving
// input order. Records from both discovery mechanisms share one namespace, so
// a gallery record shadows a later path-only record of the same name.
func DedupeByName(modules []Module) []Module {
	seen := make(map[string]bool, len(modules))
	out := make([]Module, 0, len(modules))
	for _, m := range modules {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		out = append(out, m)
	}
	return out
}
