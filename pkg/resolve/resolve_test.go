package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofiler/autofiler/pkg/errors"
	"github.com/autofiler/autofiler/pkg/index"
	"github.com/autofiler/autofiler/pkg/testutil"
	"github.com/autofiler/autofiler/pkg/types"
)

func buildIndex(t *testing.T, fsys types.FS) *index.TargetIndex {
	t.Helper()
	idx, err := index.Build(fsys, "/target", nil)
	require.NoError(t, err)
	return idx
}

func TestResolveParent(t *testing.T) {
	tests := []struct {
		name     string
		dirs     []string
		value    string
		wantPath string
		wantCode errors.ErrorCode
	}{
		{
			name:     "unique substring match",
			dirs:     []string{"/target/Acme Corp", "/target/Globex"},
			value:    "ACME",
			wantPath: "/target/Acme Corp",
		},
		{
			name:     "normalization strips spaces and case",
			dirs:     []string{"/target/Acme Corp"},
			value:    "acme corp",
			wantPath: "/target/Acme Corp",
		},
		{
			name:     "no match",
			dirs:     []string{"/target/Globex"},
			value:    "ACME",
			wantCode: errors.ErrNoParentMatch,
		},
		{
			name:     "ambiguous match",
			dirs:     []string{"/target/acme-east", "/target/acme-west"},
			value:    "acme",
			wantCode: errors.ErrAmbiguousParentMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys, mem := testutil.NewMemoryFS()
			testutil.MkDirs(t, mem, tt.dirs...)
			resolver := NewResolver(fsys)
			record := types.Record{"client": tt.value}

			path, err := resolver.ResolveParent(record, "client", buildIndex(t, fsys))

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode),
					"want %s, got %v", tt.wantCode, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestResolveParent_AmbiguousListsCandidates(t *testing.T) {
	fsys, mem := testutil.NewMemoryFS()
	testutil.MkDirs(t, mem, "/target/acme-east", "/target/acme-west")
	resolver := NewResolver(fsys)

	_, err := resolver.ResolveParent(types.Record{"client": "acme"}, "client", buildIndex(t, fsys))
	require.Error(t, err)

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, []string{"acme-east", "acme-west"}, details["candidates"])
}

func TestResolveSub(t *testing.T) {
	tests := []struct {
		name     string
		tree     []string
		files    []string
		value    string
		fileName string
		wantPath string
		wantCode errors.ErrorCode
	}{
		{
			name:     "unique case-insensitive substring match",
			tree:     []string{"/target/Acme Corp/2023-intake", "/target/Acme Corp/2022-intake"},
			value:    "2023",
			fileName: "ACME-2023-report.pdf",
			wantPath: "/target/Acme Corp/2023-intake",
		},
		{
			name:     "no sub match",
			tree:     []string{"/target/Acme Corp/2022-intake"},
			value:    "23",
			fileName: "acme-23.pdf",
			wantCode: errors.ErrNoSubMatch,
		},
		{
			name:     "ambiguous sub match",
			tree:     []string{"/target/Acme Corp/2023-intake", "/target/Acme Corp/2023-review"},
			value:    "2023",
			fileName: "ACME-2023.pdf",
			wantCode: errors.ErrAmbiguousSubMatch,
		},
		{
			name:     "collision with existing same-named file",
			tree:     []string{"/target/Acme Corp/2023-intake"},
			files:    []string{"/target/Acme Corp/2023-intake/ACME-2023-report.pdf"},
			value:    "2023",
			fileName: "ACME-2023-report.pdf",
			wantCode: errors.ErrDestCollision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys, mem := testutil.NewMemoryFS()
			testutil.MkDirs(t, mem, tt.tree...)
			testutil.MkFiles(t, mem, tt.files...)
			resolver := NewResolver(fsys)
			record := types.Record{"year": tt.value}

			path, err := resolver.ResolveSub(record, "year", "/target/Acme Corp", tt.fileName)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode),
					"want %s, got %v", tt.wantCode, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestResolveSub_MatchingFileCountsAsCandidate(t *testing.T) {
	// sub-folder matching looks at every entry of the parent, so a
	// matching file alongside a matching directory is an ambiguity
	fsys, mem := testutil.NewMemoryFS()
	testutil.MkDirs(t, mem, "/target/Acme Corp/2023-intake")
	testutil.MkFiles(t, mem, "/target/Acme Corp/summary-2023.txt")
	resolver := NewResolver(fsys)

	_, err := resolver.ResolveSub(types.Record{"year": "2023"}, "year", "/target/Acme Corp", "ACME-2023.pdf")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAmbiguousSubMatch))
}

func TestResolveSub_MissingParentPropagates(t *testing.T) {
	fsys, _ := testutil.NewMemoryFS()
	resolver := NewResolver(fsys)

	_, err := resolver.ResolveSub(types.Record{"year": "2023"}, "year", "/target/nope", "a-b.pdf")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
