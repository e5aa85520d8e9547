package messages

// Status messages for the shell-startup status check.
const (
	// StatusUse is the status command name.
	StatusUse   = "status"
	StatusShort = "Report tracked module versions against the PowerShell Gallery"
	StatusLong  = "status compares the installed version of every tracked module against the latest PowerShell Gallery release.\nIt is safe to run from a profile: gallery failures degrade to the installed view instead of erroring."

	StatusSilentFlag   = "Emit machine-readable JSON and suppress all presentation"
	StatusNoPromptFlag = "Never offer to run the maintenance flow"

	StatusUnavailableFmt = "Module status unavailable: %v"
	UpdatePromptTitle    = "Updates are available. Run the maintenance flow now?"

	ModuleNotInstalledFmt = "%s is not installed"
	ModuleUpdateFmt       = "%s %s -> %s available"
	ModuleOfflineFmt      = "%s %s (gallery unreachable)"
	ModuleCurrentFmt      = "%s %s is up to date"
)
