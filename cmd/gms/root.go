package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/markorr321/GraphModuleStatus/internal/config"
	"github.com/markorr321/GraphModuleStatus/internal/elevate"
	"github.com/markorr321/GraphModuleStatus/internal/gallery"
	"github.com/markorr321/GraphModuleStatus/internal/installer"
	"github.com/markorr321/GraphModuleStatus/internal/messages"
	"github.com/markorr321/GraphModuleStatus/internal/progress"
	"github.com/markorr321/GraphModuleStatus/internal/reconcile"
	"github.com/markorr321/GraphModuleStatus/internal/terminal"
	"github.com/markorr321/GraphModuleStatus/internal/wizard"
)

// Seams for tests.
var (
	isTerminal    = terminal.IsInteractive
	newClientFunc = func() (gallery.Client, error) { return gallery.NewPowerShellClient() }
	runWizardFunc = wizard.Run
	ensureFunc    = elevate.Ensure

	newReconcilerFunc = reconcile.New
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReinstall(cmd, nil)
		},
	}
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newProfileCmd())
	return cmd
}

// runReinstall drives the full maintenance cycle: menu flow, elevation,
// reconcile, reinstall, validate. When choices is nil the interactive menus
// collect them.
func runReinstall(cmd *cobra.Command, choices *wizard.Choices) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	cfg := loadConfigLenient(errOut)

	if choices == nil {
		collected, err := runWizardFunc(wizard.NewHuhUI(), cfg.Scope())
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				return &SilentExitError{Code: 1}
			}
			return err
		}
		choices = &collected
	}

	if err := ensureFunc(choices.Uninstall.Scope); err != nil {
		if errors.Is(err, elevate.ErrRelaunched) {
			return nil
		}
		if errors.Is(err, elevate.ErrInsufficientPrivilege) {
			_, _ = fmt.Fprintln(errOut, color.RedString(messages.ElevationFailedFmt, err))
			return &SilentExitError{Code: 2}
		}
		return err
	}

	client, err := newClientFunc()
	if err != nil {
		return err
	}

	reporter := progress.NewReporter(errOut, isTerminal())
	reporter.Start()
	defer reporter.Stop()

	rec := newReconcilerFunc(client, reporter)
	report, err := rec.Reconcile(cmd.Context(), choices.Uninstall)
	if err != nil {
		reporter.Stop()
		return err
	}

	var installReport *installer.Report
	var verdict *installer.Verdict
	if choices.Install != nil {
		inst := &installer.Installer{Client: client, Reporter: reporter}
		r := inst.Install(cmd.Context(), *choices.Install)
		installReport = &r
		v := inst.Validate(cmd.Context(), *choices.Install)
		verdict = &v
	}
	reporter.Stop()

	printReconcileReport(out, report)
	if installReport != nil {
		printInstallReport(out, *installReport)
	}
	printFinalStatus(out, report, installReport, verdict)

	// Residual items, pending cleanup, sibling skew, and the iteration cap
	// are warning outcomes; the run still completed.
	return nil
}

// loadConfigLenient loads the user config, warning instead of failing when
// the file is broken.
func loadConfigLenient(errOut io.Writer) config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		_, _ = color.New(color.FgYellow).Fprintf(errOut, messages.ConfigLoadWarningFmt, err)
	}
	return cfg
}
