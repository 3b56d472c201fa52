// Package cli implements the lumen command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lumenlabs/lumen/internal/config"
	"github.com/lumenlabs/lumen/internal/db"
	"github.com/lumenlabs/lumen/internal/session"
)

var (
	flagConfig   string
	flagVerbose  bool
	flagJSONLogs bool

	cfg      *config.Config
	logger   zerolog.Logger
	sessions *session.Store
)

var rootCmd = &cobra.Command{
	Use:           "lumen",
	Short:         "Build, preview and publish themed portfolio sites",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger()

		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded

		// One session store per process, owned here and handed to the
		// commands that need it.
		sessions = session.NewStore()
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default lumen.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "emit logs as JSON")
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	if flagJSONLogs {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// openDatabase opens the per-user build history database.
func openDatabase() (*db.DB, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	database, err := db.Open(filepath.Join(dir, "lumen.db"))
	if err != nil {
		return nil, fmt.Errorf("open build history: %w", err)
	}
	return database, nil
}
