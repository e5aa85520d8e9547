package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/markorr321/GraphModuleStatus/internal/messages"
	"github.com/markorr321/GraphModuleStatus/internal/profile"
)

// Seam for tests.
var profilePathFunc = profile.Path

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ProfileUse,
		Short: messages.ProfileShort,
	}
	cmd.AddCommand(newProfileInstallCmd())
	cmd.AddCommand(newProfileRemoveCmd())
	return cmd
}

func newProfileInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ProfileInstallUse,
		Short: messages.ProfileInstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := profilePathFunc()
			if err != nil {
				return err
			}
			changed, err := profile.Install(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if changed {
				_, _ = fmt.Fprintln(out, color.GreenString(messages.ProfileInstalledFmt, path))
				return nil
			}
			_, _ = fmt.Fprintln(out, messages.ProfileAlreadyInstalled)
			return nil
		},
	}
}

func newProfileRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ProfileRemoveUse,
		Short: messages.ProfileRemoveShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := profilePathFunc()
			if err != nil {
				return err
			}
			changed, err := profile.Remove(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if changed {
				_, _ = fmt.Fprintln(out, color.GreenString(messages.ProfileRemovedFmt, path))
				return nil
			}
			_, _ = fmt.Fprintln(out, messages.ProfileNotInstalled)
			return nil
		},
	}
}
