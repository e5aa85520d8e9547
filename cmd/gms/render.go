package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/markorr321/GraphModuleStatus/internal/installer"
	"github.com/markorr321/GraphModuleStatus/internal/messages"
	"github.com/markorr321/GraphModuleStatus/internal/reconcile"
)

func printReconcileReport(out io.Writer, report reconcile.Report) {
	_, _ = fmt.Fprintf(out, messages.ReconcileSummaryFmt,
		report.Iterations, report.TotalUninstalled, report.TotalOrphansRemoved, report.SweptItems)
	for _, warning := range report.UnloadWarnings {
		_, _ = fmt.Fprintln(out, color.YellowString(messages.UnloadWarningFmt, warning))
	}
	for _, name := range report.PendingManualCleanup {
		_, _ = fmt.Fprintln(out, color.YellowString(messages.PendingCleanupFmt, name))
	}
	for _, item := range report.ResidualItems {
		_, _ = fmt.Fprintln(out, color.YellowString(messages.ResidualItemFmt, item))
	}
}

func printInstallReport(out io.Writer, report installer.Report) {
	names := make([]string, 0, len(report.PerFamily))
	for name := range report.PerFamily {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		outcome := report.PerFamily[name]
		if outcome.Installed {
			_, _ = fmt.Fprintln(out, color.GreenString(messages.InstallOKFmt, name))
			continue
		}
		_, _ = fmt.Fprintln(out, color.RedString(messages.InstallFailedFmt, name, outcome.Err))
	}
}

// printFinalStatus reduces the whole run to one colored line. Warning states
// still count as normal completion.
func printFinalStatus(out io.Writer, report reconcile.Report, install *installer.Report, verdict *installer.Verdict) {
	if install != nil && install.Failed > 0 {
		_, _ = fmt.Fprintln(out, color.RedString(messages.StatusFailedFmt, install.Failed))
		return
	}

	var reason string
	switch {
	case report.Outcome == reconcile.OutcomeMaxIterations:
		reason = messages.WarnIterationCap
	case !report.Clean():
		reason = messages.WarnResidualItems
	case verdict != nil && verdict.Kind == installer.VerdictVersionMismatch:
		reason = messages.WarnVersionMismatch
	case verdict != nil && verdict.Kind == installer.VerdictIncomplete:
		reason = messages.WarnIncompleteInstall
	}
	if reason != "" {
		_, _ = fmt.Fprintln(out, color.YellowString(messages.StatusWarningFmt, reason))
		return
	}

	if verdict != nil {
		names := make([]string, 0, len(verdict.Resolved))
		for name := range verdict.Resolved {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			_, _ = fmt.Fprintln(out, color.GreenString(messages.ValidatedFmt, name, verdict.Resolved[name]))
		}
	}
	_, _ = fmt.Fprintln(out, color.GreenString(messages.StatusSuccess))
}
