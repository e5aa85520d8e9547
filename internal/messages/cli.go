package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "gms"
	// RootShort is the short description for the root command.
	RootShort = "Microsoft Graph PowerShell module maintenance"
	RootLong  = "gms removes broken or duplicated Microsoft Graph PowerShell modules and reinstalls a clean, version-aligned set.\nRun with no arguments for the interactive maintenance flow."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	ElevationFailedFmt   = "AllUsers scope requires an elevated session: %v"
	ConfigLoadWarningFmt = "Warning: using default configuration: %v\n"

	// ProfileUse is the profile command group name.
	ProfileUse          = "profile"
	ProfileShort        = "Manage the PowerShell profile startup hook"
	ProfileInstallUse   = "install"
	ProfileInstallShort = "Add the startup status check to the PowerShell profile"
	ProfileRemoveUse    = "remove"
	ProfileRemoveShort  = "Remove the startup status check from the PowerShell profile"

	ProfileInstalledFmt     = "Added startup status check to %s"
	ProfileAlreadyInstalled = "Startup status check is already installed."
	ProfileRemovedFmt       = "Removed startup status check from %s"
	ProfileNotInstalled     = "Startup status check is not installed."
)
