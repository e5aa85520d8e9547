package main

import (
	"context"
	"testing"
	"time"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
	"github.com/markorr321/GraphModuleStatus/internal/progress"
	"github.com/markorr321/GraphModuleStatus/internal/reconcile"
)

// fakeClient is a scriptable gallery.Client. Nil funcs default to empty
// success responses.
type fakeClient struct {
	listInstalled     func(pattern string) ([]gallery.Module, error)
	listAvailable     func(pattern string) ([]gallery.Module, error)
	uninstall         func(name string, version string) error
	uninstallAll      func(name string) error
	install           func(name string, scope gallery.Scope) error
	findLatest        func(name string) (string, error)
	removeFromSession func(pattern string) error
}

func (f *fakeClient) ListInstalled(_ context.Context, pattern string) ([]gallery.Module, error) {
	if f.listInstalled == nil {
		return nil, nil
	}
	return f.listInstalled(pattern)
}

func (f *fakeClient) ListAvailable(_ context.Context, pattern string) ([]gallery.Module, error) {
	if f.listAvailable == nil {
		return nil, nil
	}
	return f.listAvailable(pattern)
}

func (f *fakeClient) Uninstall(_ context.Context, name string, version string) error {
	if f.uninstall == nil {
		return nil
	}
	return f.uninstall(name, version)
}

func (f *fakeClient) UninstallAll(_ context.Context, name string) error {
	if f.uninstallAll == nil {
		return nil
	}
	return f.uninstallAll(name)
}

func (f *fakeClient) Install(_ context.Context, name string, scope gallery.Scope) error {
	if f.install == nil {
		return nil
	}
	return f.install(name, scope)
}

func (f *fakeClient) FindLatest(_ context.Context, name string) (string, error) {
	if f.findLatest == nil {
		return "", nil
	}
	return f.findLatest(name)
}

func (f *fakeClient) RemoveFromSession(_ context.Context, pattern string) error {
	if f.removeFromSession == nil {
		return nil
	}
	return f.removeFromSession(pattern)
}

// stubReconciler returns a Reconciler that never touches the real filesystem
// or sleeps between passes.
func stubReconciler(t *testing.T) func(gallery.Client, *progress.Reporter) *reconcile.Reconciler {
	t.Helper()
	return func(client gallery.Client, reporter *progress.Reporter) *reconcile.Reconciler {
		return &reconcile.Reconciler{
			Client:   client,
			System:   reconcile.RealSystem{},
			Roots:    []string{t.TempDir()},
			Reporter: reporter,
			Sleep:    func(time.Duration) {},
			Reclaim:  func() {},
			ScanPath: func([]string, func(string) bool) []gallery.Module { return nil },
		}
	}
}
