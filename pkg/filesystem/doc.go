// Package filesystem provides implementations of the types.FS
// interface: a thin wrapper over the os package for production use and
// an afero-backed one used by tests.
package filesystem
