package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumenlabs/lumen/internal/db"
)

var (
	flagStatusLimit int
	flagStatusPrune int
)

func init() {
	statusCmd.Flags().IntVar(&flagStatusLimit, "limit", 10, "number of builds to show")
	statusCmd.Flags().IntVar(&flagStatusPrune, "prune", 0, "keep only this many builds and drop the rest")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show recent build history",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()
		repo := db.NewBuildRepository(database)

		if flagStatusPrune > 0 {
			removed, err := repo.Prune(cmd.Context(), flagStatusPrune)
			if err != nil {
				return err
			}
			fmt.Printf("Pruned %d builds\n", removed)
		}

		records, err := repo.List(cmd.Context(), flagStatusLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No builds recorded yet. Run lumen build.")
			return nil
		}

		history := newTable("WHEN", "THEME", "PAGES", "TOOK", "HASH")
		for _, record := range records {
			history.addRow(
				record.CreatedAt.Local().Format(time.DateTime),
				record.ThemeID,
				strconv.Itoa(record.PageCount),
				record.Duration.Round(time.Millisecond).String(),
				shortHash(record.OutputHash),
			)
		}
		return history.write(os.Stdout)
	},
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
