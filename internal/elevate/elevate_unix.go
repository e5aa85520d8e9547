//go:build !windows

package elevate

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// isElevated reports whether the effective user is root.
func isElevated() bool {
	return unix.Geteuid() == 0
}

// relaunch replaces the current process with the same invocation under sudo.
// It only returns on failure.
func relaunch(args []string) error {
	sudo, err := exec.LookPath("sudo")
	if err != nil {
		return fmt.Errorf("sudo not found on PATH: %w", err)
	}
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	argv := append([]string{sudo, executable}, args[1:]...)
	if err := syscall.Exec(sudo, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec sudo: %w", err)
	}
	return nil
}
