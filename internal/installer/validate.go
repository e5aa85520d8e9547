package installer

import (
	"context"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
	"github.com/markorr321/GraphModuleStatus/internal/selection"
	"github.com/markorr321/GraphModuleStatus/internal/version"
)

// VerdictKind classifies a validation result.
type VerdictKind string

const (
	// VerdictSuccess means every targeted family resolved to an installed
	// version and no sibling skew was detected.
	VerdictSuccess VerdictKind = "success"
	// VerdictVersionMismatch means both sibling variants resolved but at
	// different versions. Version skew between the stable and preview
	// lines is the root cause this tool exists to prevent, so it is
	// surfaced even on an otherwise successful run.
	VerdictVersionMismatch VerdictKind = "version-mismatch"
	// VerdictIncomplete means at least one targeted family did not resolve.
	VerdictIncomplete VerdictKind = "incomplete"
)

// Verdict is the validation outcome plus the resolved version per family.
type Verdict struct {
	Kind     VerdictKind
	Resolved map[string]string
	Missing  []string
}

// Validate re-queries the installed version of every targeted family and
// cross-checks sibling alignment.
func (i *Installer) Validate(ctx context.Context, sel selection.Selection) Verdict {
	verdict := Verdict{Kind: VerdictSuccess, Resolved: make(map[string]string, len(sel.Families))}
	for _, family := range sel.Families {
		installed := i.resolveVersion(ctx, family.Name)
		if installed == "" {
			verdict.Missing = append(verdict.Missing, family.Name)
			continue
		}
		verdict.Resolved[family.Name] = installed
	}
	if len(verdict.Missing) > 0 {
		verdict.Kind = VerdictIncomplete
		return verdict
	}

	if stable, preview, ok := sel.SiblingPair(); ok {
		stableVersion := verdict.Resolved[stable.Name]
		previewVersion := verdict.Resolved[preview.Name]
		if cmp, err := version.Compare(stableVersion, previewVersion); err == nil && cmp != 0 {
			verdict.Kind = VerdictVersionMismatch
		}
	}
	return verdict
}

// resolveVersion returns the highest installed version of name, preferring
// the gallery registry and falling back to the module-path view.
func (i *Installer) resolveVersion(ctx context.Context, name string) string {
	if v := highestFor(i.list(ctx, i.Client.ListInstalled, name), name); v != "" {
		return v
	}
	return highestFor(i.list(ctx, i.Client.ListAvailable, name), name)
}

func (i *Installer) list(ctx context.Context, query func(context.Context, string) ([]gallery.Module, error), name string) []gallery.Module {
	modules, err := query(ctx, name)
	if err != nil {
		return nil
	}
	return modules
}

func highestFor(modules []gallery.Module, name string) string {
	var versions []string
	for _, m := range modules {
		if m.Name == name {
			versions = append(versions, m.Version)
		}
	}
	return version.Highest(versions)
}
