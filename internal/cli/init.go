package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenlabs/lumen/internal/scaffold"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter site workspace",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		written, err := scaffold.Create(dir)
		if err != nil {
			return err
		}

		for _, rel := range written {
			fmt.Println("created", rel)
		}
		fmt.Println("\nNext: edit content/site.yaml, then run lumen build && lumen serve")
		return nil
	},
}
