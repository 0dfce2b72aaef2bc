package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/autofiler/autofiler/pkg/config"
	"github.com/autofiler/autofiler/pkg/engine"
	"github.com/autofiler/autofiler/pkg/filesystem"
	"github.com/autofiler/autofiler/pkg/index"
	"github.com/autofiler/autofiler/pkg/logging"
	"github.com/autofiler/autofiler/pkg/report"
	"github.com/autofiler/autofiler/pkg/transfer"
)

// runRoot executes the full pipeline: load config, build the target
// index, match, report, confirm, transfer
func runRoot(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cli")
	fsys := filesystem.NewOSFS()
	console := report.NewConsole(os.Stdout, os.Stdin)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(fsys); err != nil {
		return err
	}

	idx, err := index.Build(fsys, cfg.Target.Path, cfg.Target.Ignore)
	if err != nil {
		return err
	}

	console.Println("\nStarting scan...")
	eng := engine.New(fsys, cfg.Fields, engine.Options{
		SourcePath:  cfg.Source.Path,
		Recursive:   cfg.Source.Recursive,
		Ignore:      cfg.Source.Ignore,
		ParentField: cfg.Target.ParentDir,
		SubField:    cfg.Target.SubDir,
	})
	summary, err := eng.Run(idx)
	if err != nil {
		return err
	}

	console.RenderMatches(summary, cfg.Fields.Format())

	if len(summary.Matched) == 0 {
		console.Println("\nNo files to transfer. Stopping operation.")
		return nil
	}

	proceed := assumeYes
	if !proceed {
		proceed, err = console.Confirm(fmt.Sprintf(
			"Proceed with transferring the %d file(s)?", len(summary.Matched)))
		if err != nil {
			return err
		}
	}
	if !proceed {
		logger.Info().Msg("transfer declined by user")
		console.Println("\nStopping operation.")
		return nil
	}

	console.Println("\nStarting file transfer...")
	executor := transfer.NewExecutor(fsys, dryRun)
	transfers := executor.Move(summary.Matched)
	console.RenderTransfers(transfers)

	return nil
}
