package modpath

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
	"github.com/markorr321/GraphModuleStatus/internal/version"
)

// Scan walks roots and returns a path-only module record for every directory
// whose name satisfies match. A module directory holds one subdirectory per
// installed version; the highest is reported. Unreadable roots are skipped.
func Scan(roots []string, match func(string) bool) []gallery.Module {
	var modules []gallery.Module
	for _, dir := range MatchingDirs(roots, match) {
		modules = append(modules, gallery.Module{
			Name:     filepath.Base(dir),
			Version:  highestVersionDir(dir),
			Location: dir,
			Source:   gallery.SourcePathOnly,
		})
	}
	return modules
}

// MatchingDirs returns the full path of every directory directly under roots
// whose name satisfies match, in root order then name order.
func MatchingDirs(roots []string, match func(string) bool) []string {
	var dirs []string
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if match(entry.Name()) {
				names = append(names, entry.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			dirs = append(dirs, filepath.Join(root, name))
		}
	}
	return dirs
}

// highestVersionDir returns the highest version-named subdirectory of dir.
func highestVersionDir(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			candidates = append(candidates, entry.Name())
		}
	}
	return version.Highest(candidates)
}
