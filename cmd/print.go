// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPrintCmd(bundled_dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the generated font cache entries to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := generateEntries(*bundled_dir)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}
}
