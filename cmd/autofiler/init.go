package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/autofiler/autofiler/pkg/config"
	"github.com/autofiler/autofiler/pkg/errors"
)

// newInitCmd writes a starter configuration file to get going
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter configuration file",
		Long: `Writes an example autofiler configuration to the given path
(default autofiler.yaml in the current directory). A .toml path gets
TOML output, anything else YAML. Edit the field rules and the
source/target paths before running autofiler.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "autofiler.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrConfigLoad,
					"%q already exists, use --force to overwrite", path)
			}

			var data []byte
			var err error
			if strings.EqualFold(filepath.Ext(path), ".toml") {
				data, err = toml.Marshal(config.Starter())
			} else {
				data, err = yaml.Marshal(config.Starter())
			}
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render starter config")
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %q", path)
			}

			fmt.Printf("Wrote starter configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
