package types

import "io/fs"

// FS is the filesystem abstraction used throughout autofiler.
// Production code uses the OS implementation; tests substitute an
// in-memory one.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Rename(oldpath, newpath string) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
}
