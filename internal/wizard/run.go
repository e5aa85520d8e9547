// Package wizard drives the interactive menu flow that builds the run's
// package selection: which families to remove, which to reinstall, and at
// what scope. Esc steps back one menu; Ctrl+C aborts the flow.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
	"github.com/markorr321/GraphModuleStatus/internal/messages"
	"github.com/markorr321/GraphModuleStatus/internal/selection"
)

// Choices is the outcome of a completed menu flow.
type Choices struct {
	// Uninstall selects the families to remove.
	Uninstall selection.Selection
	// Install selects the families to reinstall; nil when skipped.
	Install *selection.Selection
}

// step indices for the back-navigation state machine.
const (
	stepUninstall = iota
	stepInstall
	stepScope
	stepConfirm
	stepDone
)

// Run walks the operator through the menus and returns the completed
// choices. defaultScope preselects the scope menu.
func Run(ui UI, defaultScope gallery.Scope) (Choices, error) {
	uninstallLabel := messages.MenuBothFamilies
	installLabel := messages.MenuBothFamilies
	scopeChoice := scopeLabel(defaultScope)
	confirmed := true

	step := stepUninstall
	for step < stepDone {
		var err error
		switch step {
		case stepUninstall:
			err = ui.Select(messages.MenuUninstallTitle, uninstallOptions, &uninstallLabel)
		case stepInstall:
			err = ui.Select(messages.MenuInstallTitle, installOptions, &installLabel)
		case stepScope:
			err = ui.Select(messages.MenuScopeTitle, scopeOptions, &scopeChoice)
		case stepConfirm:
			confirmed = true
			err = ui.Confirm(summaryPrompt(uninstallLabel, installLabel, scopeChoice), &confirmed)
			if err == nil && !confirmed {
				err = errBack
			}
		}
		if err != nil {
			if errors.Is(err, errBack) {
				if step == stepUninstall {
					return Choices{}, ErrCancelled
				}
				step--
				continue
			}
			return Choices{}, err
		}
		step++
	}

	scope := scopeFor(scopeChoice)
	choices := Choices{Uninstall: selection.New(familiesFor(uninstallLabel), scope)}
	if installLabel != messages.MenuSkipInstall {
		install := selection.New(familiesFor(installLabel), scope)
		choices.Install = &install
	}
	return choices, nil
}

func summaryPrompt(uninstallLabel string, installLabel string, scopeChoice string) string {
	lines := []string{
		fmt.Sprintf(messages.MenuSummaryUninstallFmt, uninstallLabel),
		fmt.Sprintf(messages.MenuSummaryInstallFmt, installLabel),
		fmt.Sprintf(messages.MenuSummaryScopeFmt, scopeChoice),
		messages.MenuSummaryConfirm,
	}
	return strings.Join(lines, "\n")
}
