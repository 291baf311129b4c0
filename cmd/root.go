// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kovidgoyal/fontcache/fontconfig"
)

func NewRootCmd() *cobra.Command {
	var bundled_dir string
	cmd := &cobra.Command{
		Use:   "fontcache",
		Short: "Generate a font cache from the system fontconfig database",
		Long: `fontcache scans the bundled and system font catalogs with the fontconfig
utilities, normalizes the reported style attributes into a portable schema
and produces a cache consumed by the text rendering layer.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&bundled_dir, "bundled-dir", "",
		"Directory of font files bundled with the application, scanned in addition to the system catalog")
	cmd.AddCommand(newPrintCmd(&bundled_dir))
	cmd.AddCommand(newWriteCmd(&bundled_dir))
	return cmd
}

func generateEntries(bundled_dir string) ([]fontconfig.FontEntry, error) {
	bundled, err := fontconfig.BundledFonts(bundled_dir)
	if err != nil {
		return nil, err
	}
	return fontconfig.Entries(fontconfig.NewMatcher(), bundled)
}
