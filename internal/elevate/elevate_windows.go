//go:build windows

package elevate

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// isElevated reports whether the process token carries elevation.
func isElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// relaunch starts an elevated copy of the current invocation via the UAC
// "runas" verb. The child runs in a new console; the caller should exit.
func relaunch(args []string) error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	verb, err := syscall.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	exe, err := syscall.UTF16PtrFromString(executable)
	if err != nil {
		return err
	}
	params, err := syscall.UTF16PtrFromString(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	if err := windows.ShellExecute(0, verb, exe, params, nil, windows.SW_NORMAL); err != nil {
		return fmt.Errorf("elevated relaunch refused: %w", err)
	}
	return nil
}
