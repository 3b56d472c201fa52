package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenlabs/lumen/internal/styling"
	"github.com/lumenlabs/lumen/internal/theme"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the theme manifest, token files and styling references",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, themes, err := theme.Load(cfg.ThemesDir, cfg.Manifest)
		if err != nil {
			return err
		}

		// Every theme must be able to back the styling configuration, not
		// just the default, or switching themes at runtime would dangle.
		for _, t := range themes {
			stylingCfg, err := styling.Emit(t)
			if err != nil {
				return fmt.Errorf("theme %q: %w", t.Metadata.ID, err)
			}
			if err := stylingCfg.Validate(t); err != nil {
				return fmt.Errorf("theme %q: %w", t.Metadata.ID, err)
			}
		}

		selected, err := theme.SelectDefault(themes)
		if err != nil {
			return err
		}

		fmt.Printf("OK: %d themes valid, default is %q\n", len(themes), selected.Metadata.ID)
		return nil
	},
}
