package filesystem

import (
	"io/fs"
	"os"

	"github.com/autofiler/autofiler/pkg/types"
)

// osFS implements types.FS using the os package directly
type osFS struct{}

// NewOSFS creates a filesystem backed by the real OS
func NewOSFS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}
