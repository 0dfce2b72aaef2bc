// Package testutil provides shared helpers for building in-memory
// source and target trees in tests.
package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/autofiler/autofiler/pkg/filesystem"
	"github.com/autofiler/autofiler/pkg/types"
)

// NewMemoryFS returns a types.FS backed by an in-memory afero
// filesystem, along with the raw afero handle for seeding trees
func NewMemoryFS() (types.FS, afero.Fs) {
	mem := afero.NewMemMapFs()
	return filesystem.NewAferoFS(mem), mem
}

// MkDirs creates each directory (and parents) in the given afero fs
func MkDirs(t *testing.T, fs afero.Fs, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(dir, 0755), "mkdir %s", dir)
	}
}

// MkFiles creates each file with placeholder content, creating parent
// directories as needed
func MkFiles(t *testing.T, fs afero.Fs, paths ...string) {
	t.Helper()
	for _, path := range paths {
		require.NoError(t, afero.WriteFile(fs, path, []byte("x"), 0644), "write %s", path)
	}
}

// FileExists reports whether a regular file exists in the afero fs
func FileExists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}
