// Package installer reinstalls the selected module families and validates
// the end state. Install failures are isolated per family; validation is the
// read-only cross-check that the run actually left aligned versions behind.
package installer

import (
	"context"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
	"github.com/markorr321/GraphModuleStatus/internal/progress"
	"github.com/markorr321/GraphModuleStatus/internal/selection"
)

// FamilyOutcome records the install result for one family.
type FamilyOutcome struct {
	Installed bool
	Err       error
}

// Report summarizes one Install run.
type Report struct {
	Succeeded int
	Failed    int
	PerFamily map[string]FamilyOutcome
}

// Installer installs module families through the gallery client.
type Installer struct {
	Client   gallery.Client
	Reporter *progress.Reporter
}

// Install installs every selected family at the selection's scope with
// force and allow-overwrite semantics. One family's failure never aborts
// the others; each outcome is recorded per family.
func (i *Installer) Install(ctx context.Context, sel selection.Selection) Report {
	report := Report{PerFamily: make(map[string]FamilyOutcome, len(sel.Families))}
	for _, family := range sel.Families {
		i.publish(family.Name)
		if err := i.Client.Install(ctx, family.Name, sel.Scope); err != nil {
			report.Failed++
			report.PerFamily[family.Name] = FamilyOutcome{Err: err}
			continue
		}
		report.Succeeded++
		report.PerFamily[family.Name] = FamilyOutcome{Installed: true}
	}
	return report
}

func (i *Installer) publish(name string) {
	if i.Reporter == nil {
		return
	}
	i.Reporter.Publish(progress.Status{Phase: "Installing modules", Detail: name})
}
