// Package elevate checks for the privileges system-wide module operations
// need and relaunches the process elevated when they are missing.
package elevate

import (
	"errors"
	"os"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
)

// ErrInsufficientPrivilege is returned when elevation is required and the
// relaunch attempt failed. It is the only fatal error class in the workflow.
var ErrInsufficientPrivilege = errors.New("administrative privileges are required for AllUsers scope")

// ErrRelaunched signals that an elevated child process was started and this
// process should exit successfully without doing further work.
var ErrRelaunched = errors.New("relaunched elevated")

var (
	isElevatedFunc = isElevated
	relaunchFunc   = relaunch
)

// Required reports whether scope needs elevated privileges.
func Required(scope gallery.Scope) bool {
	return scope == gallery.ScopeAllUsers
}

// Ensure verifies the process can operate at scope, attempting one elevated
// relaunch when it cannot. On Unix a successful relaunch replaces the
// process; on Windows it starts an elevated child and Ensure returns
// ErrRelaunched.
func Ensure(scope gallery.Scope) error {
	if !Required(scope) || isElevatedFunc() {
		return nil
	}
	if err := relaunchFunc(os.Args); err != nil {
		return errors.Join(ErrInsufficientPrivilege, err)
	}
	return ErrRelaunched
}

// IsElevated reports whether the process already holds elevated privileges.
func IsElevated() bool {
	return isElevatedFunc()
}
