package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/markorr321/GraphModuleStatus/internal/messages"
	"github.com/markorr321/GraphModuleStatus/internal/status"
	"github.com/markorr321/GraphModuleStatus/internal/wizard"
)

func newStatusCmd() *cobra.Command {
	var silent bool
	var noPrompt bool

	cmd := &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		Long:  messages.StatusLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, silent, noPrompt)
		},
	}
	cmd.Flags().BoolVar(&silent, "silent", false, messages.StatusSilentFlag)
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, messages.StatusNoPromptFlag)
	return cmd
}

// runStatus reports the update state of every tracked module. It is wired
// into shell startup, so it never fails the shell: client setup errors and
// offline galleries degrade to whatever can still be reported.
func runStatus(cmd *cobra.Command, silent, noPrompt bool) error {
	out := cmd.OutOrStdout()
	cfg := loadConfigLenient(cmd.ErrOrStderr())

	client, err := newClientFunc()
	if err != nil {
		if silent {
			return nil
		}
		_, _ = fmt.Fprintln(out, color.YellowString(messages.StatusUnavailableFmt, err))
		return nil
	}

	reporter := &status.Reporter{Client: client}
	statuses := reporter.GetStatus(cmd.Context(), cfg.TrackedModules)

	if silent {
		return json.NewEncoder(out).Encode(statuses)
	}

	for _, s := range statuses {
		_, _ = fmt.Fprintln(out, renderModuleStatus(s))
	}

	if !status.AnyUpdate(statuses) || noPrompt || cfg.Quiet || !isTerminal() {
		return nil
	}

	run := false
	if err := wizard.NewHuhUI().Confirm(messages.UpdatePromptTitle, &run); err != nil || !run {
		return nil
	}
	return runReinstall(cmd, nil)
}

func renderModuleStatus(s status.ModuleStatus) string {
	switch {
	case !s.Installed:
		return color.RedString(messages.ModuleNotInstalledFmt, s.Name)
	case s.UpdateAvailable:
		return color.YellowString(messages.ModuleUpdateFmt, s.Name, s.InstalledVersion, s.AvailableVersion)
	case s.AvailableVersion == "":
		return color.CyanString(messages.ModuleOfflineFmt, s.Name, s.InstalledVersion)
	default:
		return color.GreenString(messages.ModuleCurrentFmt, s.Name, s.InstalledVersion)
	}
}
