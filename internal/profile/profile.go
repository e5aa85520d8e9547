// Package profile manages the startup-status block in the user's PowerShell
// profile script. The block is keyed by a marker comment so insertion is
// idempotent and removal never touches user-authored lines.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// Marker tags every line this tool owns inside the profile script.
const Marker = "#GraphModuleStatus"

// block is the startup snippet inserted into the profile. Each line carries
// the marker so removal can match line-by-line.
var block = strings.Join([]string{
	Marker,
	"if (Get-Command gms -ErrorAction SilentlyContinue) { gms status --no-prompt } " + Marker,
}, "\n")

var homedirFunc = homedir.Dir

// Path returns the PowerShell profile path for the current user.
func Path() (string, error) {
	home, err := homedirFunc()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(home, "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1"), nil
	}
	return filepath.Join(home, ".config", "powershell", "Microsoft.PowerShell_profile.ps1"), nil
}

// Install inserts the startup block into the profile at path, creating the
// file when missing. It reports whether the file changed; a profile already
// carrying the marker is left untouched.
func Install(path string) (bool, error) {
	content, err := readProfile(path)
	if err != nil {
		return false, err
	}
	updated, changed := EnsureBlock(content)
	if !changed {
		return false, nil
	}
	if err := writeProfile(path, updated); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes every marker-tagged line from the profile at path. A
// missing profile is not an error.
func Remove(path string) (bool, error) {
	content, err := readProfile(path)
	if err != nil {
		return false, err
	}
	updated, changed := RemoveBlock(content)
	if !changed {
		return false, nil
	}
	if err := writeProfile(path, updated); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureBlock appends the startup block unless the marker is already
// present. It returns the updated content and whether it changed.
func EnsureBlock(content string) (string, bool) {
	if strings.Contains(content, Marker) {
		return content, false
	}
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return block + "\n", true
	}
	return trimmed + "\n\n" + block + "\n", true
}

// RemoveBlock drops every line containing the marker. It returns the updated
// content and whether it changed.
func RemoveBlock(content string) (string, bool) {
	if !strings.Contains(content, Marker) {
		return content, false
	}
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, Marker) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), true
}

func readProfile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read profile %s: %w", path, err)
	}
	return string(data), nil
}

func writeProfile(path string, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write profile %s: %w", path, err)
	}
	return nil
}
