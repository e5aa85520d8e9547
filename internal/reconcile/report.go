package reconcile

// Outcome is the terminal state of the convergence loop.
type Outcome string

const (
	// OutcomeConverged means a discovery pass found nothing left to remove.
	OutcomeConverged Outcome = "converged"
	// OutcomeMaxIterations means the pass cap was reached with removable
	// modules still present. This is a warning state, not an error.
	OutcomeMaxIterations Outcome = "max-iterations-exceeded"
)

// Report summarizes one Reconcile run.
type Report struct {
	Outcome             Outcome
	Iterations          int
	TotalUninstalled    int
	TotalOrphansRemoved int
	SweptItems          int

	// ResidualItems lists full paths still present after the verification
	// pass. Partial manual cleanup is an expected terminal state, so this
	// is report data rather than an error.
	ResidualItems []string

	// PendingManualCleanup lists module names whose removal failed twice.
	PendingManualCleanup []string

	// UnloadWarnings carries best-effort session-unload failures.
	UnloadWarnings []string
}

// Clean reports whether the verification pass found nothing left behind.
func (r Report) Clean() bool {
	return len(r.ResidualItems) == 0 && len(r.PendingManualCleanup) == 0
}

// appendPending records name once, preserving first-seen order across passes.
func appendPending(pending []string, name string) []string {
	for _, existing := range pending {
		if existing == name {
			return pending
		}
	}
	return append(pending, name)
}
