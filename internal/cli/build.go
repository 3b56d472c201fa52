package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenlabs/lumen/internal/build"
	"github.com/lumenlabs/lumen/internal/db"
)

var flagNoHistory bool

func init() {
	buildCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "do not record the build in history")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site into the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := build.Options{Config: cfg, Logger: logger}

		if !flagNoHistory {
			database, err := openDatabase()
			if err != nil {
				return err
			}
			defer database.Close()
			opts.Builds = db.NewBuildRepository(database)
		}

		result, err := build.Run(cmd.Context(), opts)
		if err != nil {
			return err
		}

		fmt.Printf("Built %d pages with theme %q into %s\n",
			result.PageCount, result.ThemeID, result.OutputDir)
		return nil
	},
}
