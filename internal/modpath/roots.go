// Package modpath resolves the module-root directories that PowerShell
// consults and scans them for module directories by name pattern. This is the
// filesystem half of module discovery; the registry half lives in gallery.
package modpath

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// EnvVar is the search-path environment variable PowerShell maintains.
const EnvVar = "PSModulePath"

// legacyMarker identifies Windows PowerShell 5.x module roots. Modules under
// the legacy edition are incompatible with the SDK and are never touched.
const legacyMarker = "windowspowershell"

var (
	getenvFunc  = os.Getenv
	homedirFunc = homedir.Dir
)

// Roots returns the deduplicated list of module roots to operate on:
// the well-known per-OS locations plus every usable entry of PSModulePath.
// Non-existent directories are skipped.
func Roots() []string {
	candidates := wellKnownRoots()
	candidates = append(candidates, FromEnv(getenvFunc(EnvVar))...)

	seen := make(map[string]bool, len(candidates))
	roots := make([]string, 0, len(candidates))
	for _, c := range candidates {
		cleaned := filepath.Clean(c)
		key := normalizeKey(cleaned)
		if seen[key] {
			continue
		}
		seen[key] = true
		info, err := os.Stat(cleaned)
		if err != nil || !info.IsDir() {
			continue
		}
		roots = append(roots, cleaned)
	}
	return roots
}

// FromEnv splits a PSModulePath-style value into usable roots, dropping
// empty entries and anything under a legacy Windows PowerShell subtree.
func FromEnv(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	entries := strings.Split(value, string(os.PathListSeparator))
	roots := make([]string, 0, len(entries))
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		if IsLegacyRoot(trimmed) {
			continue
		}
		roots = append(roots, trimmed)
	}
	return roots
}

// IsLegacyRoot reports whether p belongs to a Windows PowerShell 5.x subtree.
func IsLegacyRoot(p string) bool {
	lowered := strings.ToLower(filepath.ToSlash(p))
	for _, segment := range strings.Split(lowered, "/") {
		if segment == legacyMarker {
			return true
		}
	}
	return false
}

// wellKnownRoots returns the fixed per-OS module locations.
func wellKnownRoots() []string {
	if runtime.GOOS == "windows" {
		var roots []string
		if programFiles := getenvFunc("ProgramFiles"); programFiles != "" {
			roots = append(roots, filepath.Join(programFiles, "PowerShell", "Modules"))
			roots = append(roots, filepath.Join(programFiles, "PowerShell", "7", "Modules"))
		}
		if home, err := homedirFunc(); err == nil {
			roots = append(roots, filepath.Join(home, "Documents", "PowerShell", "Modules"))
			roots = append(roots, filepath.Join(home, "OneDrive", "Documents", "PowerShell", "Modules"))
		}
		return roots
	}

	roots := []string{"/usr/local/share/powershell/Modules"}
	if home, err := homedirFunc(); err == nil {
		roots = append(roots, filepath.Join(home, ".local", "share", "powershell", "Modules"))
	}
	return roots
}

// normalizeKey folds case on systems with case-insensitive module paths.
func normalizeKey(p string) string {
	if runtime.GOOS == "windows" {
		return strings.ToLower(p)
	}
	return p
}
