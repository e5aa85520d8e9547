// Package testutil holds helpers shared by tests that exercise the
// PowerShell subprocess boundary.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WritePwshStub writes an executable stub named pwsh that prints output and
// exits successfully. dir should be prepended to PATH by the caller.
func WritePwshStub(t *testing.T, dir string, output string) {
	t.Helper()
	WritePwshStubWithExit(t, dir, output, 0)
}

// WritePwshStubWithExit writes an executable pwsh stub that prints output
// and exits with the provided code.
func WritePwshStubWithExit(t *testing.T, dir string, output string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, "pwsh")
	content := fmt.Sprintf("#!/bin/sh\ncat <<'EOF'\n%s\nEOF\nexit %d\n", output, exitCode)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write pwsh stub: %v", err)
	}
}
