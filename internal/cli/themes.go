package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lumenlabs/lumen/internal/theme"
)

func init() {
	rootCmd.AddCommand(themesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the themes the manifest declares",
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, themes, err := theme.Load(cfg.ThemesDir, cfg.Manifest)
		if err != nil {
			return err
		}
		selected, err := theme.SelectDefault(themes)
		if err != nil {
			return err
		}

		list := newTable("THEME", "FILE", "DEFAULT", "COLORS")
		for i, t := range themes {
			colors := 0
			for _, tokens := range t.Semantic.Color {
				colors += len(tokens)
			}
			marker := ""
			if t.Metadata.ID == selected.Metadata.ID {
				marker = "yes"
			}
			list.addRow(t.Metadata.ID, manifest.Themes[i].File, marker, strconv.Itoa(colors))
		}

		return list.write(os.Stdout)
	},
}
