// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kovidgoyal/fontcache/cache"
)

func newWriteCmd(bundled_dir *string) *cobra.Command {
	var metadata_path, output string
	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write the updated font cache to disk",
		Long: `Regenerates the font cache and atomically replaces the on disk artifact.
Nothing is written if any stage of the generation fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := generateEntries(*bundled_dir)
			if err != nil {
				return err
			}
			metadata, err := cache.LoadMetadata(metadata_path)
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				if path, err = cache.DefaultPath(); err != nil {
					return err
				}
			}
			doc := cache.Document{Entries: entries, Metadata: metadata}
			if err := doc.Write(path); err != nil {
				return fmt.Errorf("writing font cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Font cache written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&metadata_path, "metadata", "",
		"YAML file with companion metadata (e.g. default family substitution rules) stored in the cache unchanged")
	cmd.Flags().StringVar(&output, "output", "",
		"Path to write the cache to, defaults to the platform cache directory")
	return cmd
}
