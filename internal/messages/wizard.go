package messages

// Wizard messages for the interactive menu flow.
const (
	WizardRequiresTerminal = "the interactive flow requires a terminal; run 'gms status --silent' for scripted use"

	MenuUninstallTitle = "Which module families should be removed?"
	MenuInstallTitle   = "Which module families should be reinstalled?"
	MenuScopeTitle     = "Install for which users?"

	MenuBothFamilies = "Microsoft.Graph and Microsoft.Graph.Beta"
	MenuStableOnly   = "Microsoft.Graph only"
	MenuBetaOnly     = "Microsoft.Graph.Beta only"
	MenuSkipInstall  = "Skip reinstall (cleanup only)"

	MenuScopeAllUsers    = "All users (requires elevation)"
	MenuScopeCurrentUser = "Current user only"

	// MenuSummary*Fmt format the confirmation summary shown before work starts.
	MenuSummaryUninstallFmt = "Remove: %s"
	MenuSummaryInstallFmt   = "Reinstall: %s"
	MenuSummaryScopeFmt     = "Scope: %s"
	MenuSummaryConfirm      = "Proceed?"
)
