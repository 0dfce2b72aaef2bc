// Package resolve locates the destination folder for a parsed file:
// first the unique parent folder in the target index, then the unique
// sub-folder within it. Matching is substring containment on both
// stages, a deliberate fuzzy policy; ties are never auto-resolved,
// they surface as errors.
package resolve

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/autofiler/autofiler/pkg/errors"
	"github.com/autofiler/autofiler/pkg/index"
	"github.com/autofiler/autofiler/pkg/logging"
	"github.com/autofiler/autofiler/pkg/types"
)

// Resolver performs the two-stage destination lookup
type Resolver struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewResolver creates a resolver reading the target tree through fsys
func NewResolver(fsys types.FS) *Resolver {
	return &Resolver{
		fs:     fsys,
		logger: logging.GetLogger("resolve"),
	}
}

// ResolveParent finds the single target top-level folder whose
// normalized name contains the record's parent-field value.
func (r *Resolver) ResolveParent(record types.Record, parentField string, idx *index.TargetIndex) (string, error) {
	value := record[parentField]
	candidates := idx.Candidates(index.Normalize(value))

	switch len(candidates) {
	case 1:
		r.logger.Debug().
			Str("field", parentField).
			Str("value", value).
			Str("folder", candidates[0]).
			Msg("parent folder resolved")
		return candidates[0], nil
	case 0:
		return "", errors.Newf(errors.ErrNoParentMatch,
			"could not find folder for %s: %q", parentField, value).
			WithDetail("field", parentField).
			WithDetail("value", value)
	default:
		names := baseNames(candidates)
		return "", errors.Newf(errors.ErrAmbiguousParentMatch,
			"found multiple matching %s folders: %v, file name may need more detail",
			parentField, names).
			WithDetail("field", parentField).
			WithDetail("candidates", names)
	}
}

// ResolveSub finds the single entry of the parent folder whose name
// contains the record's sub-field value (case-insensitive). Even with
// exactly one candidate, a file named fileName already present inside
// it is a collision.
func (r *Resolver) ResolveSub(record types.Record, subField, parentPath, fileName string) (string, error) {
	dirEntries, err := r.fs.ReadDir(parentPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess,
			"cannot list parent folder %q", parentPath)
	}

	value := record[subField]
	needle := strings.ToLower(value)
	parentName := filepath.Base(parentPath)

	var candidates []string
	for _, entry := range dirEntries {
		if strings.Contains(strings.ToLower(entry.Name()), needle) {
			candidates = append(candidates, filepath.Join(parentPath, entry.Name()))
		}
	}
	sort.Strings(candidates)

	if len(candidates) == 0 {
		return "", errors.Newf(errors.ErrNoSubMatch,
			"%q folder not found in %s folder: %s", value, subField, displayPath(parentName)).
			WithDetail("field", subField).
			WithDetail("parent", parentName)
	}
	if len(candidates) > 1 {
		names := baseNames(candidates)
		return "", errors.Newf(errors.ErrAmbiguousSubMatch,
			"found multiple matching sub folders for %q in %s: %v",
			value, displayPath(parentName), names).
			WithDetail("field", subField).
			WithDetail("parent", parentName).
			WithDetail("candidates", names)
	}

	subPath := candidates[0]
	if r.fileExists(filepath.Join(subPath, fileName)) {
		return "", errors.Newf(errors.ErrDestCollision,
			"same filename already exists in %s", displayPath(parentName, filepath.Base(subPath))).
			WithDetail("parent", parentName).
			WithDetail("sub", filepath.Base(subPath))
	}

	r.logger.Debug().
		Str("field", subField).
		Str("value", value).
		Str("folder", subPath).
		Msg("sub folder resolved")

	return subPath, nil
}

// fileExists reports whether a regular file exists at path
func (r *Resolver) fileExists(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && !info.IsDir()
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

// displayPath renders a target-relative location like "../acme corp/2023"
func displayPath(parts ...string) string {
	return filepath.Join(append([]string{".."}, parts...)...)
}
