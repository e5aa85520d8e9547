// Package status compares installed module versions against the gallery and
// classifies each tracked module. It is designed to run on shell startup, so
// every failure degrades to "unknown" instead of surfacing an error.
package status

import (
	"context"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
	"github.com/markorr321/GraphModuleStatus/internal/version"
)

// ModuleStatus classifies one tracked module.
type ModuleStatus struct {
	Name             string
	Installed        bool
	InstalledVersion string
	// AvailableVersion is empty when the gallery query failed; the status
	// is then reported as current rather than guessed.
	AvailableVersion string
	UpdateAvailable  bool
}

// Reporter computes module statuses through the gallery client.
type Reporter struct {
	Client gallery.Client
}

// GetStatus returns one status per tracked name, in input order. A remote
// query failure leaves AvailableVersion empty and UpdateAvailable false;
// offline shells still get a usable installed-module listing.
func (r *Reporter) GetStatus(ctx context.Context, trackedNames []string) []ModuleStatus {
	statuses := make([]ModuleStatus, 0, len(trackedNames))
	for _, name := range trackedNames {
		statuses = append(statuses, r.statusFor(ctx, name))
	}
	return statuses
}

func (r *Reporter) statusFor(ctx context.Context, name string) ModuleStatus {
	status := ModuleStatus{Name: name}

	installed := r.installedVersion(ctx, name)
	if installed == "" {
		return status
	}
	status.Installed = true
	status.InstalledVersion = installed

	latest, err := r.Client.FindLatest(ctx, name)
	if err != nil {
		return status
	}
	status.AvailableVersion = latest
	status.UpdateAvailable = version.Newer(latest, installed)
	return status
}

// installedVersion returns the highest installed version of name, checking
// the module-path view first (cheap) and the gallery registry second.
func (r *Reporter) installedVersion(ctx context.Context, name string) string {
	if v := highestFor(ctx, r.Client.ListAvailable, name); v != "" {
		return v
	}
	return highestFor(ctx, r.Client.ListInstalled, name)
}

func highestFor(ctx context.Context, query func(context.Context, string) ([]gallery.Module, error), name string) string {
	modules, err := query(ctx, name)
	if err != nil {
		return ""
	}
	var versions []string
	for _, m := range modules {
		if m.Name == name {
			versions = append(versions, m.Version)
		}
	}
	return version.Highest(versions)
}

// AnyUpdate reports whether any status has an update available.
func AnyUpdate(statuses []ModuleStatus) bool {
	for _, s := range statuses {
		if s.UpdateAvailable {
			return true
		}
	}
	return false
}
