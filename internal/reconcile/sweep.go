package reconcile

import (
	"path/filepath"
	"sort"

	"github.com/markorr321/GraphModuleStatus/internal/selection"
)

// sweep deletes the contents of every module directory matching sel under the
// configured roots. Contents go item-by-item rather than the directory in one
// shot so a partial failure is attributable to the item that caused it.
// The sweep runs strictly after the convergence loop; both mutate the same
// subtrees and must never overlap.
func (r *Reconciler) sweep(sel selection.Selection, report *Report) {
	for _, dir := range r.matchingDirs(sel) {
		entries, err := r.System.ReadDir(dir)
		if err != nil {
			report.PendingManualCleanup = appendPending(report.PendingManualCleanup, dir)
			continue
		}
		for _, entry := range entries {
			item := filepath.Join(dir, entry.Name())
			r.publish("Sweeping module folders", item)
			if err := r.System.RemoveAll(item); err != nil {
				report.PendingManualCleanup = appendPending(report.PendingManualCleanup, item)
				continue
			}
			report.SweptItems++
		}
	}
}

// verify re-scans the swept locations and returns the full path of every
// entry still present. A non-empty result is an expected terminal state when
// another process holds files open; it is reported, never thrown.
func (r *Reconciler) verify(sel selection.Selection) []string {
	var residual []string
	for _, dir := range r.matchingDirs(sel) {
		entries, err := r.System.ReadDir(dir)
		if err != nil {
			residual = append(residual, dir)
			continue
		}
		for _, entry := range entries {
			residual = append(residual, filepath.Join(dir, entry.Name()))
		}
	}
	return residual
}

// matchingDirs lists the module directories under every root whose base name
// belongs to the selection, in root order then name order.
func (r *Reconciler) matchingDirs(sel selection.Selection) []string {
	var dirs []string
	for _, root := range r.Roots {
		entries, err := r.System.ReadDir(root)
		if err != nil {
			continue
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() && sel.Matches(entry.Name()) {
				names = append(names, entry.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			dirs = append(dirs, filepath.Join(root, name))
		}
	}
	return dirs
}
