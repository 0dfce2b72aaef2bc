// Package paths holds small path helpers shared by the engine and the
// console report: validation of the configured trees and the shortened
// source/destination forms shown for matched files.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/autofiler/autofiler/pkg/errors"
	"github.com/autofiler/autofiler/pkg/types"
)

// ValidateDir fails with the given code unless path is an existing
// directory
func ValidateDir(fsys types.FS, path string, code errors.ErrorCode) error {
	if strings.TrimSpace(path) == "" {
		return errors.New(code, "path is not set")
	}
	info, err := fsys.Stat(path)
	if err != nil {
		return errors.Wrapf(err, code, "path %q is invalid", path)
	}
	if !info.IsDir() {
		return errors.Newf(code, "path %q is not a directory", path)
	}
	return nil
}

// CommonAncestor returns the longest shared path prefix of a and b,
// element-wise
func CommonAncestor(a, b string) string {
	sep := string(filepath.Separator)
	aParts := strings.Split(filepath.Clean(a), sep)
	bParts := strings.Split(filepath.Clean(b), sep)

	var common []string
	for i := 0; i < len(aParts) && i < len(bParts); i++ {
		if aParts[i] != bParts[i] {
			break
		}
		common = append(common, aParts[i])
	}
	if len(common) == 1 && common[0] == "" {
		// shared root only
		return sep
	}
	return strings.Join(common, sep)
}

// ShortenPair renders a source directory and a target path relative to
// their common ancestor, as "../<ancestor base>/<rest>". Used in the
// matched-file report so deep absolute paths stay readable.
func ShortenPair(sourcePath, targetPath string) (string, string) {
	common := CommonAncestor(sourcePath, targetPath)
	base := filepath.Base(common)

	sourceDir := filepath.Dir(sourcePath)
	relSource, err := filepath.Rel(common, sourceDir)
	if err != nil {
		relSource = sourceDir
	}
	relTarget, err := filepath.Rel(common, targetPath)
	if err != nil {
		relTarget = targetPath
	}

	return filepath.Join("..", base, relSource), filepath.Join("..", base, relTarget)
}
