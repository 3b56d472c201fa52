package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lumenlabs/lumen/internal/theme"
	"github.com/lumenlabs/lumen/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview theme palettes in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hasTTY() {
			return errors.New("preview requires an interactive terminal")
		}

		_, themes, err := theme.Load(cfg.ThemesDir, cfg.Manifest)
		if err != nil {
			return err
		}
		return tui.Run(themes)
	},
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
