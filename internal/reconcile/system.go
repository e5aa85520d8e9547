package reconcile

import "os"

// System abstracts the filesystem operations the reconciler performs so tests
// can inject failures for individual paths.
type System interface {
	ReadDir(name string) ([]os.DirEntry, error)
	RemoveAll(path string) error
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// ReadDir reads the named directory and returns all directory entries.
func (RealSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
