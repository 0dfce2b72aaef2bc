// Package engine orchestrates one matching run: it walks the source
// tree, pushes every discovered file through the parse and resolve
// stages, and partitions the results into matched, failed and skipped
// buckets. Per-file errors classify that file and never abort the
// walk; anything unexpected (an unreadable directory, a broken
// filesystem) aborts the run with no partial summary.
package engine

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/autofiler/autofiler/pkg/errors"
	"github.com/autofiler/autofiler/pkg/fields"
	"github.com/autofiler/autofiler/pkg/index"
	"github.com/autofiler/autofiler/pkg/logging"
	"github.com/autofiler/autofiler/pkg/paths"
	"github.com/autofiler/autofiler/pkg/resolve"
	"github.com/autofiler/autofiler/pkg/types"
)

// Options configures one matching run
type Options struct {
	SourcePath  string   // root of the source tree to scan
	Recursive   bool     // false limits the scan to SourcePath's own files
	Ignore      []string // directories whose path contains any entry are pruned
	ParentField string   // field used for parent folder resolution
	SubField    string   // field used for sub-folder resolution
}

// Engine runs the matching pipeline over a source tree
type Engine struct {
	fs       types.FS
	rules    fields.Rules
	resolver *resolve.Resolver
	opts     Options
	logger   zerolog.Logger
}

// New creates an engine. The rules and options are assumed validated
// by the config layer.
func New(fsys types.FS, rules fields.Rules, opts Options) *Engine {
	return &Engine{
		fs:       fsys,
		rules:    rules,
		resolver: resolve.NewResolver(fsys),
		opts:     opts,
		logger:   logging.GetLogger("engine"),
	}
}

// Run walks the source tree and classifies every file against the
// target index. The returned summary is complete: matching never stops
// at an individual file's parse or resolve error.
func (e *Engine) Run(idx *index.TargetIndex) (*types.RunSummary, error) {
	defer logging.LogDuration(time.Now(), "match run")

	e.logger.Debug().
		Str("source", e.opts.SourcePath).
		Stringer("rules", e.rules).
		Msg("starting matching run")

	summary := &types.RunSummary{}

	if err := e.walk(e.opts.SourcePath, idx, summary); err != nil {
		return nil, err
	}

	e.logger.Info().
		Int("scanned", summary.TotalScanned).
		Int("matched", len(summary.Matched)).
		Int("failed", len(summary.Failed)).
		Int("skipped", summary.SkippedCount).
		Msg("matching run complete")

	return summary, nil
}

// walk recurses through dir, pruning ignored directories entirely
func (e *Engine) walk(dir string, idx *index.TargetIndex, summary *types.RunSummary) error {
	if e.isIgnored(dir) {
		e.logger.Debug().Str("dir", dir).Msg("source directory ignored")
		return nil
	}

	dirEntries, err := e.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSourceInvalid, "cannot list source directory %q", dir)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			if e.opts.Recursive {
				if err := e.walk(filepath.Join(dir, entry.Name()), idx, summary); err != nil {
					return err
				}
			}
			continue
		}

		summary.TotalScanned++
		file := types.NewFile(dir, entry.Name())
		if err := e.process(file, idx); err != nil {
			return err
		}

		switch file.Status {
		case types.StatusMatched:
			summary.Matched = append(summary.Matched, file)
		case types.StatusFailed:
			summary.Failed = append(summary.Failed, file)
		case types.StatusSkipped:
			summary.SkippedCount++
		}
	}

	return nil
}

// process advances a single file through the pipeline stages until it
// reaches a terminal status. A non-nil return means the run itself
// cannot continue.
func (e *Engine) process(file *types.File, idx *index.TargetIndex) error {
	record, err := e.rules.Parse(file.Name)
	if err != nil {
		return e.classify(file, err)
	}
	file.Fields = record
	file.Status = types.StatusNameChecked

	parent, err := e.resolver.ResolveParent(record, e.opts.ParentField, idx)
	if err != nil {
		return e.classify(file, err)
	}
	file.TargetParentDir = parent
	file.Status = types.StatusParentResolved

	sub, err := e.resolver.ResolveSub(record, e.opts.SubField, parent, file.Name)
	if err != nil {
		return e.classify(file, err)
	}
	file.TargetSubDir = sub
	file.TargetPath = filepath.Join(sub, file.Name)
	file.Status = types.StatusSubResolved

	fromShort, toShort := paths.ShortenPair(file.Path, file.TargetPath)
	file.Status = types.StatusMatched
	file.Message = matchedMessage(file.Name, fromShort, toShort)

	e.logger.Debug().
		Str("file", file.Name).
		Str("target", file.TargetPath).
		Msg("file matched")

	return nil
}

// classify converts a stage error into the file's terminal status.
// Unknown error codes are unexpected and propagate, aborting the run.
func (e *Engine) classify(file *types.File, err error) error {
	switch errors.GetErrorCode(err) {
	case errors.ErrInsufficientFields:
		file.Status = types.StatusSkipped
		return nil
	case errors.ErrInvalidFieldValue:
		e.fail(file, types.FailureInvalidFileName, err)
		return nil
	case errors.ErrNoParentMatch, errors.ErrAmbiguousParentMatch,
		errors.ErrNoSubMatch, errors.ErrAmbiguousSubMatch, errors.ErrDestCollision:
		e.fail(file, types.FailureInvalidMatch, err)
		return nil
	default:
		return err
	}
}

func (e *Engine) fail(file *types.File, category types.FailureCategory, err error) {
	file.Status = types.StatusFailed
	file.Category = category
	file.Message = failedMessage(file.Name, category, reason(err))

	e.logger.Debug().
		Str("file", file.Name).
		Str("category", string(category)).
		Str("reason", reason(err)).
		Msg("file failed to match")
}

func (e *Engine) isIgnored(dir string) bool {
	for _, s := range e.opts.Ignore {
		if s != "" && strings.Contains(dir, s) {
			return true
		}
	}
	return false
}

// reason strips the error code prefix, leaving the human-readable part
func reason(err error) string {
	var filerErr *errors.FilerError
	if stderrors.As(err, &filerErr) {
		return filerErr.Message
	}
	return err.Error()
}

func matchedMessage(name, from, to string) string {
	return fmt.Sprintf("%-15s%q\n%-15s%s\n%-15s%s\n",
		"[[ MATCHED ]]", name,
		"   From:", from,
		"   To:", to)
}

func failedMessage(name string, category types.FailureCategory, why string) string {
	return fmt.Sprintf("%-15s%q\n%-15s%s: %s\n",
		"-- FAILED  --", name,
		"   Reason:", category, why)
}
