// Package version wraps semantic-version parsing and comparison for module
// version strings reported by the gallery and the local module path.
package version

import (
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Normalize strips a leading "v" and validates the version string.
// It returns the canonical string form.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if trimmed == "" {
		return "", fmt.Errorf("empty version")
	}
	v, err := goversion.NewVersion(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", raw, err)
	}
	return v.String(), nil
}

// Compare compares two version strings using semantic ordering.
// It returns -1 if a < b, 0 if a == b, and 1 if a > b.
func Compare(a string, b string) (int, error) {
	av, err := goversion.NewVersion(strings.TrimPrefix(strings.TrimSpace(a), "v"))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", a, err)
	}
	bv, err := goversion.NewVersion(strings.TrimPrefix(strings.TrimSpace(b), "v"))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// Newer reports whether candidate is strictly newer than current.
// Either side failing to parse reports false so version checks degrade
// instead of failing a status run.
func Newer(candidate string, current string) bool {
	cmp, err := Compare(candidate, current)
	if err != nil {
		return false
	}
	return cmp > 0
}

// Highest returns the highest version in vs by semantic ordering.
// Unparseable entries are skipped; an empty or fully unparseable input
// returns "".
func Highest(vs []string) string {
	var best *goversion.Version
	var bestRaw string
	for _, raw := range vs {
		v, err := goversion.NewVersion(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestRaw = raw
		}
	}
	return bestRaw
}
