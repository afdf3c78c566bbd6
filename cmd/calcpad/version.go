package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/calcpad"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the calcpad version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), calcpad.VersionTag())
			return err
		},
	}
}
