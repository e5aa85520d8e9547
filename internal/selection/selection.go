// Package selection models the operator's choice of module families and
// installation scope. A Selection is built once from the menu flow and
// threaded as a value through reconcile, install, and validate.
package selection

import (
	"path"
	"strings"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
)

// Family is one module family: an installable root module plus the wildcard
// pattern covering its sub-modules on disk and in the gallery registry.
type Family struct {
	// Name is the installable meta-module ("Microsoft.Graph").
	Name string
	// Pattern matches every module belonging to the family.
	Pattern string
	// Exclude lists patterns carved out of Pattern. The stable family's
	// pattern would otherwise swallow the beta family.
	Exclude []string
	// Preview marks the preview/beta variant of a product line.
	Preview bool
}

// The two sibling families this tool exists to keep version-aligned.
var (
	Stable = Family{
		Name:    "Microsoft.Graph",
		Pattern: "Microsoft.Graph*",
		Exclude: []string{"Microsoft.Graph.Beta*"},
	}
	Beta = Family{
		Name:    "Microsoft.Graph.Beta",
		Pattern: "Microsoft.Graph.Beta*",
		Preview: true,
	}
)

// Matches reports whether a module name belongs to this family.
// Matching is case-insensitive, as PowerShell module names are.
func (f Family) Matches(name string) bool {
	if !matchPattern(f.Pattern, name) {
		return false
	}
	for _, ex := range f.Exclude {
		if matchPattern(ex, name) {
			return false
		}
	}
	return true
}

func matchPattern(pattern string, name string) bool {
	ok, err := path.Match(strings.ToLower(pattern), strings.ToLower(name))
	return err == nil && ok
}

// Selection is the immutable set of families targeted by one run.
type Selection struct {
	Families []Family
	Scope    gallery.Scope
}

// New returns a Selection over families at scope.
func New(families []Family, scope gallery.Scope) Selection {
	copied := make([]Family, len(families))
	copy(copied, families)
	return Selection{Families: copied, Scope: scope}
}

// Patterns returns the discovery patterns for every selected family,
// deduplicated and in selection order.
func (s Selection) Patterns() []string {
	seen := make(map[string]bool, len(s.Families))
	patterns := make([]string, 0, len(s.Families))
	for _, f := range s.Families {
		if seen[f.Pattern] {
			continue
		}
		seen[f.Pattern] = true
		patterns = append(patterns, f.Pattern)
	}
	return patterns
}

// Matches reports whether name belongs to any selected family.
func (s Selection) Matches(name string) bool {
	for _, f := range s.Families {
		if f.Matches(name) {
			return true
		}
	}
	return false
}

// Names returns the installable module name of every selected family.
func (s Selection) Names() []string {
	names := make([]string, 0, len(s.Families))
	for _, f := range s.Families {
		names = append(names, f.Name)
	}
	return names
}

// SiblingPair returns the stable and preview variants when the selection
// targets both halves of a product line, and reports whether it does.
func (s Selection) SiblingPair() (Family, Family, bool) {
	var stable, preview *Family
	for i := range s.Families {
		f := s.Families[i]
		if f.Preview {
			preview = &f
		} else {
			stable = &f
		}
	}
	if stable == nil || preview == nil {
		return Family{}, Family{}, false
	}
	return *stable, *preview, true
}
