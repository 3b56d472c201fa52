package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenlabs/lumen/internal/config"
	"github.com/lumenlabs/lumen/internal/publish"
	"github.com/lumenlabs/lumen/internal/vault"
)

var flagPublishSite string

func init() {
	publishCmd.Flags().StringVar(&flagPublishSite, "site", "", "site name at the hosting service (overrides config)")
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the built site to the hosting service",
	RunE: func(cmd *cobra.Command, args []string) error {
		site := cfg.Publish.Site
		if flagPublishSite != "" {
			site = flagPublishSite
		}

		dir, err := config.DataDir()
		if err != nil {
			return err
		}
		cred, err := vault.Load(dir)
		if err != nil {
			return err
		}

		endpoint := cfg.Publish.Endpoint
		if endpoint == "" {
			endpoint = cred.Endpoint
		}

		client, err := publish.NewClient(endpoint, cred.Token, logger)
		if err != nil {
			return err
		}

		archive, err := publish.Archive(cfg.OutputDir)
		if err != nil {
			return err
		}

		result, err := client.Deploy(cmd.Context(), site, archive)
		if err != nil {
			return err
		}

		fmt.Printf("Deployed %s: %s\n", result.DeployID, result.URL)
		return nil
	},
}
