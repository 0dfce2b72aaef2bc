// Package transfer moves matched files into their resolved
// destinations. Moves are independent, best-effort operations: a
// failure is recorded and the batch carries on; nothing is rolled
// back.
package transfer

import (
	"github.com/rs/zerolog"

	"github.com/autofiler/autofiler/pkg/errors"
	"github.com/autofiler/autofiler/pkg/logging"
	"github.com/autofiler/autofiler/pkg/types"
)

// Result is the outcome of one attempted move
type Result struct {
	File *types.File
	Err  error // nil on success
}

// Summary aggregates a transfer batch
type Summary struct {
	Results []Result
	Moved   int
	Failed  int
	DryRun  bool
}

// Executor performs the moves through a types.FS
type Executor struct {
	fs     types.FS
	dryRun bool
	logger zerolog.Logger
}

// NewExecutor creates an executor. With dryRun set, Move reports what
// would happen without touching the filesystem.
func NewExecutor(fsys types.FS, dryRun bool) *Executor {
	return &Executor{
		fs:     fsys,
		dryRun: dryRun,
		logger: logging.GetLogger("transfer"),
	}
}

// Move renames every matched file to its target path in order,
// recording per-file success or failure
func (x *Executor) Move(files []*types.File) *Summary {
	summary := &Summary{DryRun: x.dryRun}

	for _, file := range files {
		result := Result{File: file}

		if x.dryRun {
			summary.Moved++
			x.logger.Info().
				Str("file", file.Name).
				Str("from", file.Dir).
				Str("to", file.TargetSubDir).
				Msg("dry run, move skipped")
			summary.Results = append(summary.Results, result)
			continue
		}

		if err := x.fs.Rename(file.Path, file.TargetPath); err != nil {
			result.Err = errors.Wrapf(err, errors.ErrFileMove,
				"failed to move %q to %q", file.Path, file.TargetPath)
			summary.Failed++
			x.logger.Error().
				Err(err).
				Str("file", file.Name).
				Str("target", file.TargetPath).
				Msg("file transfer failed")
		} else {
			summary.Moved++
			x.logger.Info().
				Str("file", file.Name).
				Str("from", file.Dir).
				Str("to", file.TargetSubDir).
				Msg("transferred successfully")
		}

		summary.Results = append(summary.Results, result)
	}

	x.logger.Info().
		Int("moved", summary.Moved).
		Int("failed", summary.Failed).
		Bool("dryRun", x.dryRun).
		Msg("transfer batch complete")

	return summary
}
