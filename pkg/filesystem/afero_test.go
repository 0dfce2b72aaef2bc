package filesystem

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS_ReadDir(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/data/sub", 0755))
	require.NoError(t, afero.WriteFile(mem, "/data/file.txt", []byte("x"), 0644))

	fsys := NewAferoFS(mem)
	entries, err := fsys.ReadDir("/data")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	names := map[string]bool{}
	for _, entry := range entries {
		names[entry.Name()] = entry.IsDir()
	}
	assert.True(t, names["sub"])
	assert.False(t, names["file.txt"])
}

func TestAferoFS_RenameAndStat(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/a", 0755))
	require.NoError(t, afero.WriteFile(mem, "/a/x.txt", []byte("x"), 0644))

	fsys := NewAferoFS(mem)
	require.NoError(t, fsys.MkdirAll("/b", 0755))
	require.NoError(t, fsys.Rename("/a/x.txt", "/b/x.txt"))

	info, err := fsys.Stat("/b/x.txt")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = fsys.Stat("/a/x.txt")
	assert.Error(t, err)
}
