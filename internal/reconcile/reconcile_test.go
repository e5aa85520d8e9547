package reconcile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
	"github.com/markorr321/GraphModuleStatus/internal/selection"
)

// fakeClient scripts the gallery collaborator.
type fakeClient struct {
	installed      []gallery.Module
	listErr        error
	uninstallErr   map[string]error
	uninstallAll   map[string]error
	listCalls      int
	uninstallCalls []string
	removeAll      func(name string)
	sessionErr     error
}

func (f *fakeClient) ListInstalled(_ context.Context, _ string) ([]gallery.Module, error) {
	f.listCalls++
	return f.installed, f.listErr
}

func (f *fakeClient) ListAvailable(_ context.Context, _ string) ([]gallery.Module, error) {
	return nil, nil
}

func (f *fakeClient) Uninstall(_ context.Context, name string, _ string) error {
	f.uninstallCalls = append(f.uninstallCalls, name)
	if err := f.uninstallErr[name]; err != nil {
		return err
	}
	f.remove(name)
	return nil
}

func (f *fakeClient) UninstallAll(_ context.Context, name string) error {
	if err := f.uninstallAll[name]; err != nil {
		return err
	}
	f.remove(name)
	return nil
}

func (f *fakeClient) remove(name string) {
	if f.removeAll != nil {
		f.removeAll(name)
		return
	}
	kept := f.installed[:0]
	for _, m := range f.installed {
		if m.Name != name {
			kept = append(kept, m)
		}
	}
	f.installed = kept
}

func (f *fakeClient) Install(_ context.Context, _ string, _ gallery.Scope) error { return nil }

func (f *fakeClient) FindLatest(_ context.Context, _ string) (string, error) { return "", nil }

func (f *fakeClient) RemoveFromSession(_ context.Context, _ string) error { return f.sessionErr }

// failingSystem delegates to the real filesystem but fails RemoveAll for the
// configured paths.
type failingSystem struct {
	fail map[string]bool
}

func (s failingSystem) ReadDir(name string) ([]os.DirEntry, error) { return os.ReadDir(name) }

func (s failingSystem) RemoveAll(path string) error {
	if s.fail[path] {
		return errors.New("file in use")
	}
	return os.RemoveAll(path)
}

func newTestReconciler(client *fakeClient, roots []string) *Reconciler {
	return &Reconciler{
		Client:   client,
		System:   RealSystem{},
		Roots:    roots,
		Sleep:    func(time.Duration) {},
		Reclaim:  func() {},
		ScanPath: func([]string, func(string) bool) []gallery.Module { return nil },
	}
}

func bothFamilies() selection.Selection {
	return selection.New([]selection.Family{selection.Stable, selection.Beta}, gallery.ScopeAllUsers)
}

func TestReconcileCleanSelectionIsIdempotent(t *testing.T) {
	client := &fakeClient{}
	r := newTestReconciler(client, nil)

	for run := 0; run < 2; run++ {
		report, err := r.Reconcile(context.Background(), bothFamilies())
		require.NoError(t, err)
		assert.Equal(t, OutcomeConverged, report.Outcome)
		assert.Equal(t, 0, report.Iterations)
		assert.Equal(t, 0, report.TotalUninstalled)
		assert.Equal(t, 0, report.TotalOrphansRemoved)
		assert.True(t, report.Clean())
	}
}

func TestReconcileStopsAtPassCap(t *testing.T) {
	// A client that never converges: the module stays installed no matter
	// how many times it is uninstalled.
	client := &fakeClient{
		installed: []gallery.Module{{Name: "Microsoft.Graph.Users", Version: "2.25.0", Source: gallery.SourceGallery}},
		removeAll: func(string) {},
	}
	r := newTestReconciler(client, nil)

	report, err := r.Reconcile(context.Background(), bothFamilies())
	require.NoError(t, err)
	assert.Equal(t, OutcomeMaxIterations, report.Outcome)
	assert.Equal(t, MaxPasses, report.Iterations)
	// One discovery per pass, never an eleventh.
	assert.Equal(t, MaxPasses, client.listCalls)
}

func TestReconcileUninstallsAndConverges(t *testing.T) {
	client := &fakeClient{
		installed: []gallery.Module{
			{Name: "Microsoft.Graph.Users", Version: "2.25.0", Source: gallery.SourceGallery},
			{Name: "Microsoft.Graph.Authentication", Version: "2.25.0", Source: gallery.SourceGallery},
		},
	}
	r := newTestReconciler(client, nil)

	report, err := r.Reconcile(context.Background(), bothFamilies())
	require.NoError(t, err)
	assert.Equal(t, OutcomeConverged, report.Outcome)
	assert.Equal(t, 1, report.Iterations)
	assert.Equal(t, 2, report.TotalUninstalled)
	assert.True(t, report.Clean())
}

func TestReconcileRetriesWithAllVersions(t *testing.T) {
	client := &fakeClient{
		installed:    []gallery.Module{{Name: "Microsoft.Graph.Users", Version: "2.25.0", Source: gallery.SourceGallery}},
		uninstallErr: map[string]error{"Microsoft.Graph.Users": errors.New("version pinned")},
	}
	r := newTestReconciler(client, nil)

	report, err := r.Reconcile(context.Background(), bothFamilies())
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalUninstalled)
	assert.Empty(t, report.PendingManualCleanup)
}

func TestReconcileMarksPendingAfterSecondFailure(t *testing.T) {
	locked := errors.New("file locked")
	client := &fakeClient{
		installed:    []gallery.Module{{Name: "Microsoft.Graph.Users", Version: "2.25.0", Source: gallery.SourceGallery}},
		uninstallErr: map[string]error{"Microsoft.Graph.Users": locked},
		uninstallAll: map[string]error{"Microsoft.Graph.Users": locked},
	}
	r := newTestReconciler(client, nil)

	report, err := r.Reconcile(context.Background(), bothFamilies())
	require.NoError(t, err)
	assert.Equal(t, OutcomeMaxIterations, report.Outcome)
	assert.Equal(t, []string{"Microsoft.Graph.Users"}, report.PendingManualCleanup)
	assert.Equal(t, 0, report.TotalUninstalled)
}

func TestOrphanSet(t *testing.T) {
	installed := []gallery.Module{{Name: "Microsoft.Graph.Users", Source: gallery.SourceGallery}}
	pathOnly := []gallery.Module{
		{Name: "Microsoft.Graph.Users", Source: gallery.SourcePathOnly},
		{Name: "Microsoft.Graph.Groups", Source: gallery.SourcePathOnly},
	}
	orphans := Orphans(installed, pathOnly)
	require.Len(t, orphans, 1)
	assert.Equal(t, "Microsoft.Graph.Groups", orphans[0].Name)
}

func TestReconcileRemovesOrphanDirectories(t *testing.T) {
	root := t.TempDir()
	orphanDir := filepath.Join(root, "Microsoft.Graph.Groups")
	require.NoError(t, os.MkdirAll(filepath.Join(orphanDir, "2.25.0"), 0o755))

	client := &fakeClient{}
	r := newTestReconciler(client, []string{root})
	scans := 0
	r.ScanPath = func([]string, func(string) bool) []gallery.Module {
		scans++
		if scans == 1 {
			return []gallery.Module{{Name: "Microsoft.Graph.Groups", Location: orphanDir, Source: gallery.SourcePathOnly}}
		}
		return nil
	}

	report, err := r.Reconcile(context.Background(), bothFamilies())
	require.NoError(t, err)
	assert.Equal(t, OutcomeConverged, report.Outcome)
	assert.Equal(t, 1, report.TotalOrphansRemoved)
	assert.NoDirExists(t, orphanDir)
	assert.True(t, report.Clean())
}

func TestReconcileDiscoveryErrorPropagates(t *testing.T) {
	boom := errors.New("gallery offline")
	client := &fakeClient{listErr: boom}
	r := newTestReconciler(client, nil)

	_, err := r.Reconcile(context.Background(), bothFamilies())
	assert.ErrorIs(t, err, boom)
}

func TestReconcileSessionUnloadFailureIsNonFatal(t *testing.T) {
	client := &fakeClient{sessionErr: errors.New("module busy")}
	r := newTestReconciler(client, nil)

	report, err := r.Reconcile(context.Background(), bothFamilies())
	require.NoError(t, err)
	assert.Equal(t, OutcomeConverged, report.Outcome)
	assert.NotEmpty(t, report.UnloadWarnings)
}

func TestSweepRemovesContentsItemByItem(t *testing.T) {
	root := t.TempDir()
	moduleDir := filepath.Join(root, "Microsoft.Graph.Users")
	require.NoError(t, os.MkdirAll(filepath.Join(moduleDir, "2.25.0"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(moduleDir, "2.26.0"), 0o755))

	client := &fakeClient{}
	r := newTestReconciler(client, []string{root})

	report, err := r.Reconcile(context.Background(), bothFamilies())
	require.NoError(t, err)
	assert.Equal(t, 2, report.SweptItems)
	assert.Empty(t, report.ResidualItems)
	// The module directory itself stays; only its contents are swept.
	assert.DirExists(t, moduleDir)
}

func TestVerifyReportsExactResidualPath(t *testing.T) {
	root := t.TempDir()
	moduleDir := filepath.Join(root, "Microsoft.Graph.Users")
	lockedItem := filepath.Join(moduleDir, "2.25.0")
	require.NoError(t, os.MkdirAll(lockedItem, 0o755))

	client := &fakeClient{}
	r := newTestReconciler(client, []string{root})
	r.System = failingSystem{fail: map[string]bool{lockedItem: true}}

	report, err := r.Reconcile(context.Background(), bothFamilies())
	require.NoError(t, err)
	assert.Equal(t, []string{lockedItem}, report.ResidualItems)
	assert.False(t, report.Clean())
}

func TestSweepIgnoresUnrelatedModules(t *testing.T) {
	root := t.TempDir()
	azDir := filepath.Join(root, "Az.Accounts")
	require.NoError(t, os.MkdirAll(filepath.Join(azDir, "3.0.0"), 0o755))

	client := &fakeClient{}
	r := newTestReconciler(client, []string{root})

	report, err := r.Reconcile(context.Background(), bothFamilies())
	require.NoError(t, err)
	assert.Equal(t, 0, report.SweptItems)
	assert.DirExists(t, filepath.Join(azDir, "3.0.0"))
}
