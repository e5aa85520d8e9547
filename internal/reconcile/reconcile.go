// Package reconcile removes every trace of the selected module families and
// verifies the result. Removal is iterative: uninstalling one module can
// expose another (dependencies, multiple versions, path-only leftovers), so
// discovery and removal repeat until a pass finds nothing, bounded by a fixed
// pass cap.
package reconcile

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
	"github.com/markorr321/GraphModuleStatus/internal/modpath"
	"github.com/markorr321/GraphModuleStatus/internal/progress"
	"github.com/markorr321/GraphModuleStatus/internal/selection"
)

// MaxPasses caps the convergence loop. The cap is deliberate: the failure
// mode this tool exists for (orphaned locked files) would otherwise loop
// forever. Do not raise or remove it.
const MaxPasses = 10

// settleDelay follows each reclamation yield so the OS can release file
// handles held by just-unloaded modules before the next pass races them.
const settleDelay = 2 * time.Second

// Reconciler drives the removal workflow.
type Reconciler struct {
	Client   gallery.Client
	System   System
	Roots    []string
	Reporter *progress.Reporter

	// Seams for tests; nil values use the real implementations.
	Sleep    func(time.Duration)
	Reclaim  func()
	ScanPath func(roots []string, match func(string) bool) []gallery.Module
}

// New returns a Reconciler over client using the real filesystem and the
// standard module roots.
func New(client gallery.Client, reporter *progress.Reporter) *Reconciler {
	return &Reconciler{
		Client:   client,
		System:   RealSystem{},
		Roots:    modpath.Roots(),
		Reporter: reporter,
	}
}

// Reconcile removes every module matching sel, sweeps the module roots, and
// verifies the end state. Per-item failures accumulate into the report; only
// discovery failures propagate as errors.
func (r *Reconciler) Reconcile(ctx context.Context, sel selection.Selection) (Report, error) {
	report := Report{Outcome: OutcomeMaxIterations}

	r.unloadSession(ctx, sel, &report)

	converged := false
	for pass := 1; pass <= MaxPasses; pass++ {
		installed, pathOnly, err := r.discover(ctx, sel)
		if err != nil {
			return report, err
		}
		if len(installed)+len(pathOnly) == 0 {
			converged = true
			break
		}
		report.Iterations = pass

		r.publish("Removing installed modules", fmt.Sprintf("pass %d: %d registered, %d path-only", pass, len(installed), len(pathOnly)))
		r.uninstallPass(ctx, installed, &report)
		r.removeOrphans(installed, pathOnly, &report)

		// Yield so finalizers run and lingering handles on removed module
		// files are released before the next pass touches the same trees.
		r.reclaim()
		r.sleep(settleDelay)
	}
	if converged {
		report.Outcome = OutcomeConverged
	}

	r.publish("Sweeping module folders", "")
	r.sweep(sel, &report)

	r.publish("Verifying removal", "")
	report.ResidualItems = r.verify(sel)

	return report, nil
}

// unloadSession unloads matching modules from the current session. Failures
// do not block the file-level uninstall, so they are recorded as warnings.
func (r *Reconciler) unloadSession(ctx context.Context, sel selection.Selection, report *Report) {
	r.publish("Unloading modules from session", "")
	for _, pattern := range sel.Patterns() {
		if err := r.Client.RemoveFromSession(ctx, pattern); err != nil {
			report.UnloadWarnings = append(report.UnloadWarnings, err.Error())
		}
	}
}

// discover runs both discovery mechanisms: the gallery registry view and the
// module-path filesystem scan. Results are deduplicated by name with the
// registry view taking precedence.
func (r *Reconciler) discover(ctx context.Context, sel selection.Selection) ([]gallery.Module, []gallery.Module, error) {
	var installed []gallery.Module
	for _, pattern := range sel.Patterns() {
		found, err := r.Client.ListInstalled(ctx, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("discover installed modules: %w", err)
		}
		for _, m := range found {
			if sel.Matches(m.Name) {
				installed = append(installed, m)
			}
		}
	}
	installed = gallery.DedupeByName(installed)

	pathOnly := gallery.DedupeByName(r.scanPath(sel))
	return installed, pathOnly, nil
}

// uninstallPass uninstalls each registry-known module: exact version first,
// then an all-versions retry. A second failure marks the module for manual
// cleanup and the pass continues.
func (r *Reconciler) uninstallPass(ctx context.Context, installed []gallery.Module, report *Report) {
	for _, m := range installed {
		r.publish("Removing installed modules", m.Name)
		if err := r.Client.Uninstall(ctx, m.Name, m.Version); err != nil {
			if retryErr := r.Client.UninstallAll(ctx, m.Name); retryErr != nil {
				report.PendingManualCleanup = appendPending(report.PendingManualCleanup, m.Name)
				continue
			}
		}
		report.TotalUninstalled++
	}
}

// removeOrphans deletes the backing directory of every path-only module with
// no registry record. Registry uninstall does not apply to them; they were
// never registry-installed.
func (r *Reconciler) removeOrphans(installed []gallery.Module, pathOnly []gallery.Module, report *Report) {
	for _, orphan := range Orphans(installed, pathOnly) {
		r.publish("Removing orphaned module folders", orphan.Name)
		if orphan.Location == "" {
			report.PendingManualCleanup = appendPending(report.PendingManualCleanup, orphan.Name)
			continue
		}
		if err := r.System.RemoveAll(orphan.Location); err != nil {
			report.PendingManualCleanup = appendPending(report.PendingManualCleanup, orphan.Name)
			continue
		}
		report.TotalOrphansRemoved++
	}
}

// Orphans returns the path-only records whose name has no registry record.
func Orphans(installed []gallery.Module, pathOnly []gallery.Module) []gallery.Module {
	registered := make(map[string]bool, len(installed))
	for _, m := range installed {
		registered[m.Name] = true
	}
	var orphans []gallery.Module
	for _, m := range pathOnly {
		if !registered[m.Name] {
			orphans = append(orphans, m)
		}
	}
	return orphans
}

func (r *Reconciler) scanPath(sel selection.Selection) []gallery.Module {
	scan := r.ScanPath
	if scan == nil {
		scan = modpath.Scan
	}
	return scan(r.Roots, sel.Matches)
}

func (r *Reconciler) publish(phase string, detail string) {
	if r.Reporter == nil {
		return
	}
	r.Reporter.Publish(progress.Status{Phase: phase, Detail: detail})
}

func (r *Reconciler) sleep(d time.Duration) {
	if r.Sleep != nil {
		r.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (r *Reconciler) reclaim() {
	if r.Reclaim != nil {
		r.Reclaim()
		return
	}
	runtime.GC()
}
