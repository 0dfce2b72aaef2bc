// Package index builds the lookup table of target folders that
// destination resolution matches against. The target tree is scanned
// exactly one level deep: only its immediate subdirectories become
// candidates.
package index

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/autofiler/autofiler/pkg/errors"
	"github.com/autofiler/autofiler/pkg/logging"
	"github.com/autofiler/autofiler/pkg/types"
)

// TargetIndex maps normalized top-level target folder names to their
// filesystem paths. Built once before a run, read-only afterwards.
type TargetIndex struct {
	entries map[string]string
}

// Normalize lowercases a folder name and strips all spaces. Index keys
// and parent-field values are normalized the same way before matching.
func Normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// Build scans the target directory's immediate subdirectories. A
// directory whose path contains any of the ignore substrings is left
// out of the index.
func Build(fsys types.FS, targetPath string, ignore []string) (*TargetIndex, error) {
	logger := logging.GetLogger("index")

	dirEntries, err := fsys.ReadDir(targetPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTargetInvalid,
			"cannot list target directory %q", targetPath)
	}

	idx := &TargetIndex{entries: make(map[string]string)}
	for _, entry := range dirEntries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(targetPath, entry.Name())
		if containsAny(path, ignore) {
			logger.Debug().Str("path", path).Msg("target folder ignored")
			continue
		}
		idx.entries[Normalize(entry.Name())] = path
	}

	logger.Debug().
		Str("target", targetPath).
		Int("folders", len(idx.entries)).
		Msg("target index built")

	return idx, nil
}

// Len returns the number of indexed folders
func (idx *TargetIndex) Len() int {
	return len(idx.entries)
}

// Candidates returns the paths of every indexed folder whose
// normalized name contains the given normalized value, in a
// deterministic (key-sorted) order.
func (idx *TargetIndex) Candidates(normalized string) []string {
	keys := make([]string, 0, len(idx.entries))
	for key := range idx.entries {
		if strings.Contains(key, normalized) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	paths := make([]string, len(keys))
	for i, key := range keys {
		paths[i] = idx.entries[key]
	}
	return paths
}

func containsAny(path string, substrings []string) bool {
	for _, s := range substrings {
		if s != "" && strings.Contains(path, s) {
			return true
		}
	}
	return false
}
