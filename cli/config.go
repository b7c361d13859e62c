// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errConfigExists = errors.New("configuration file already exists")

func newConfigCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the chart configuration",
		Long: `Manage the chart configuration file.

Subcommands:
  show - Print the effective configuration
  init - Write a configuration file with default settings`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.config.Copy()
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(&c)
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", o.config.Path(), out)
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(o.config.Path()); err == nil && !force {
				return fmt.Errorf("%w: %s", errConfigExists, o.config.Path())
			}
			if force {
				if err := os.Remove(o.config.Path()); err != nil && !os.IsNotExist(err) {
					return err
				}
			}
			if err := o.config.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", o.config.Path())
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	cmd.AddCommand(showCmd, initCmd)
	return cmd
}
