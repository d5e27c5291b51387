// Package filesystem wraps every disk access of the application behind afero,
// so tests can swap the OS for an in-memory backend.
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Size sums the sizes of all regular files under path.
// A missing path has size zero.
func Size(path string) (int64, error) {
	var total int64
	err := backend.Walk(path, func(_ string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.Mode().IsRegular() {
			total += info.Size()
		}

		return nil
	})

	if os.IsNotExist(err) {
		return 0, nil
	}

	return total, err
}

// Clear removes everything inside dir, keeping dir itself.
func Clear(dir string) error {
	entries, err := backend.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if err = backend.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}
