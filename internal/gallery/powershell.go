package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a PowerShell command line and returns its stdout.
type Runner interface {
	Run(ctx context.Context, command string) ([]byte, error)
}

var lookPathFunc = exec.LookPath

// shellNames lists the PowerShell executables probed in preference order.
var shellNames = []string{"pwsh", "powershell"}

// execRunner runs commands through a resolved PowerShell binary.
type execRunner struct {
	shell string
}

func (r execRunner) Run(ctx context.Context, command string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.shell, "-NoProfile", "-NonInteractive", "-Command", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", err, detail)
	}
	return stdout.Bytes(), nil
}

// PowerShellClient implements Client by shelling out to PowerShellGet.
type PowerShellClient struct {
	runner Runner
}

// NewPowerShellClient resolves a PowerShell binary from PATH and returns a
// client bound to it. It fails when neither pwsh nor powershell is available.
func NewPowerShellClient() (*PowerShellClient, error) {
	for _, name := range shellNames {
		if _, err := lookPathFunc(name); err == nil {
			return &PowerShellClient{runner: execRunner{shell: name}}, nil
		}
	}
	return nil, fmt.Errorf("no PowerShell executable found on PATH (tried %s)", strings.Join(shellNames, ", "))
}

// NewPowerShellClientWithRunner returns a client using the provided runner.
func NewPowerShellClientWithRunner(runner Runner) *PowerShellClient {
	return &PowerShellClient{runner: runner}
}

// moduleRecord mirrors the JSON shape emitted by the discovery commands.
// Version is raw because Windows PowerShell serializes System.Version values
// as objects while pwsh and PowerShellGet emit plain strings.
type moduleRecord struct {
	Name              string          `json:"Name"`
	Version           json.RawMessage `json:"Version"`
	InstalledLocation string          `json:"InstalledLocation"`
	ModuleBase        string          `json:"ModuleBase"`
}

// ListInstalled returns gallery-tracked modules matching pattern.
func (c *PowerShellClient) ListInstalled(ctx context.Context, pattern string) ([]Module, error) {
	command := fmt.Sprintf(
		"Get-InstalledModule -Name %s -ErrorAction SilentlyContinue | Select-Object Name,Version,InstalledLocation | ConvertTo-Json -Depth 3",
		quote(pattern))
	records, err := c.runRecords(ctx, command)
	if err != nil {
		return nil, fmt.Errorf("list installed %q: %w", pattern, err)
	}
	return recordsToModules(records, SourceGallery), nil
}

// ListAvailable returns module-path modules matching pattern.
func (c *PowerShellClient) ListAvailable(ctx context.Context, pattern string) ([]Module, error) {
	command := fmt.Sprintf(
		"Get-Module -ListAvailable -Name %s | Select-Object Name,Version,ModuleBase | ConvertTo-Json -Depth 3",
		quote(pattern))
	records, err := c.runRecords(ctx, command)
	if err != nil {
		return nil, fmt.Errorf("list available %q: %w", pattern, err)
	}
	return recordsToModules(records, SourcePathOnly), nil
}

// Uninstall removes one exact (name, version) registration.
func (c *PowerShellClient) Uninstall(ctx context.Context, name string, version string) error {
	command := fmt.Sprintf(
		"Uninstall-Module -Name %s -RequiredVersion %s -Force -ErrorAction Stop",
		quote(name), quote(version))
	if _, err := c.runner.Run(ctx, command); err != nil {
		return fmt.Errorf("uninstall %s %s: %w", name, version, err)
	}
	return nil
}

// UninstallAll removes every registered version of name.
func (c *PowerShellClient) UninstallAll(ctx context.Context, name string) error {
	command := fmt.Sprintf(
		"Uninstall-Module -Name %s -AllVersions -Force -ErrorAction Stop",
		quote(name))
	if _, err := c.runner.Run(ctx, command); err != nil {
		return fmt.Errorf("uninstall all versions of %s: %w", name, err)
	}
	return nil
}

// Install installs the latest gallery version of name into scope.
func (c *PowerShellClient) Install(ctx context.Context, name string, scope Scope) error {
	command := fmt.Sprintf(
		"Install-Module -Name %s -Scope %s -Force -AllowClobber -ErrorAction Stop",
		quote(name), scope)
	if _, err := c.runner.Run(ctx, command); err != nil {
		return fmt.Errorf("install %s (%s): %w", name, scope, err)
	}
	return nil
}

// FindLatest returns the newest gallery version of name.
func (c *PowerShellClient) FindLatest(ctx context.Context, name string) (string, error) {
	command := fmt.Sprintf(
		"(Find-Module -Name %s -ErrorAction Stop | Select-Object -First 1).Version.ToString()",
		quote(name))
	out, err := c.runner.Run(ctx, command)
	if err != nil {
		return "", fmt.Errorf("find latest %s: %w", name, err)
	}
	latest := strings.TrimSpace(string(out))
	if latest == "" {
		return "", fmt.Errorf("find latest %s: gallery returned no version", name)
	}
	return latest, nil
}

// RemoveFromSession unloads matching modules from the current session.
func (c *PowerShellClient) RemoveFromSession(ctx context.Context, pattern string) error {
	command := fmt.Sprintf(
		"Get-Module -Name %s | Remove-Module -Force -ErrorAction SilentlyContinue",
		quote(pattern))
	if _, err := c.runner.Run(ctx, command); err != nil {
		return fmt.Errorf("remove %q from session: %w", pattern, err)
	}
	return nil
}

// runRecords executes command and decodes its JSON output, tolerating the
// empty, single-object, and array shapes ConvertTo-Json produces.
func (c *PowerShellClient) runRecords(ctx context.Context, command string) ([]moduleRecord, error) {
	out, err := c.runner.Run(ctx, command)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return nil, nil
	}
	var records []moduleRecord
	if err := json.Unmarshal(trimmed, &records); err == nil {
		return records, nil
	}
	var single moduleRecord
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("decode module records: %w", err)
	}
	return []moduleRecord{single}, nil
}

func recordsToModules(records []moduleRecord, source Source) []Module {
	modules := make([]Module, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		location := r.InstalledLocation
		if location == "" {
			location = r.ModuleBase
		}
		modules = append(modules, Module{
			Name:     r.Name,
			Version:  decodeVersion(r.Version),
			Location: location,
			Source:   source,
		})
	}
	return modules
}

// decodeVersion accepts both the string form and the System.Version object
// form ({Major, Minor, Build, Revision}) of a serialized version.
func decodeVersion(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	v := struct {
		Major    int `json:"Major"`
		Minor    int `json:"Minor"`
		Build    int `json:"Build"`
		Revision int `json:"Revision"`
	}{Build: -1, Revision: -1}
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	text := fmt.Sprintf("%d.%d", v.Major, v.Minor)
	if v.Build >= 0 {
		text = fmt.Sprintf("%s.%d", text, v.Build)
	}
	if v.Revision >= 0 {
		text = fmt.Sprintf("%s.%d", text, v.Revision)
	}
	return text
}

// quote wraps s in PowerShell single quotes, doubling embedded quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
