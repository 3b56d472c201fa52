package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumenlabs/lumen/internal/config"
	"github.com/lumenlabs/lumen/internal/publish"
	"github.com/lumenlabs/lumen/internal/vault"
)

var flagLoginToken string

func init() {
	loginCmd.Flags().StringVar(&flagLoginToken, "token", "", "access token (read from stdin when omitted)")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save the hosting service access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := strings.TrimSpace(flagLoginToken)
		if token == "" {
			fmt.Fprint(os.Stderr, "Token: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read token: %w", err)
			}
			token = strings.TrimSpace(line)
		}
		if token == "" {
			return errors.New("a token is required")
		}

		// Verify against the hosting service when an endpoint is configured,
		// so a bad token fails here instead of at publish time.
		if cfg.Publish.Endpoint != "" {
			client, err := publish.NewClient(cfg.Publish.Endpoint, token, logger)
			if err != nil {
				return err
			}
			user, err := client.WhoAmI(cmd.Context())
			if err != nil {
				return err
			}
			sessions.Set(user)
			fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
		}

		dir, err := config.DataDir()
		if err != nil {
			return err
		}
		if err := vault.Save(dir, vault.Credential{Token: token, Endpoint: cfg.Publish.Endpoint}); err != nil {
			return err
		}
		fmt.Println("Token saved.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.DataDir()
		if err != nil {
			return err
		}
		if err := vault.Clear(dir); err != nil {
			return err
		}
		sessions.Reset()
		fmt.Println("Signed out.")
		return nil
	},
}
