package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Config prints the configuration calcpad would run with, after defaults,
the config file and flags are combined.

With --write the result is saved to the --config path, which creates a
starting file to edit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if write {
				if err := cfg.Save(opts.configFile); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "wrote", opts.configFile)
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Save the configuration to the --config path")
	return cmd
}
