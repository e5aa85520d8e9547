package messages

// Maintenance-run summary messages.
const (
	// ReconcileSummaryFmt formats the cleanup totals after the loop finishes.
	ReconcileSummaryFmt = "Cleanup finished: %d passes, %d modules uninstalled, %d orphan folders removed, %d leftover items swept\n"

	UnloadWarningFmt  = "Warning: could not unload %s from the current session"
	PendingCleanupFmt = "Warning: %s could not be removed; manual cleanup required"
	ResidualItemFmt   = "Warning: leftover item remains: %s"

	InstallOKFmt     = "Installed %s"
	InstallFailedFmt = "Failed to install %s: %v"
	ValidatedFmt     = "%s validated at %s"

	StatusSuccess    = "Success: Microsoft Graph modules are clean and aligned."
	StatusWarningFmt = "Completed with warnings: %s"
	StatusFailedFmt  = "Failed: %d module family install(s) did not complete."

	WarnIterationCap      = "cleanup did not converge within the pass limit"
	WarnResidualItems     = "some items could not be removed"
	WarnVersionMismatch   = "Microsoft.Graph and Microsoft.Graph.Beta versions differ"
	WarnIncompleteInstall = "a reinstalled family could not be validated"
)
