package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/autofiler/autofiler/internal/version"
	"github.com/autofiler/autofiler/pkg/logging"
)

var (
	cfgFile   string
	verbosity int
	dryRun    bool
	assumeYes bool
)

// NewRootCmd builds the autofiler command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "autofiler",
		Short: "Files dash-named documents into matching target folders",
		Long: `autofiler scans a source directory for files whose names encode
metadata fields (for example "ACME-2023-report.pdf"), validates those
fields against configured rules, finds the matching folder in a target
tree by fuzzy name matching, and moves each matched file into place
after you confirm.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Config file (default autofiler.yaml, autofiler.toml, then XDG config dir)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Match and report without moving any files")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false,
		"Skip the confirmation prompt")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("autofiler version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
