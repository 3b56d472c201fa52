// Package config loads the lumen workspace configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the workspace settings for a site.
type Config struct {
	// ThemesDir is the directory containing manifest and theme token files.
	ThemesDir string `mapstructure:"themes_dir"`
	// Manifest is the manifest file name within ThemesDir.
	Manifest string `mapstructure:"manifest"`
	// ContentPath is the YAML document describing the site's content.
	ContentPath string `mapstructure:"content"`
	// OutputDir is where the built site is written.
	OutputDir string `mapstructure:"output_dir"`

	Server  ServerConfig  `mapstructure:"server"`
	Publish PublishConfig `mapstructure:"publish"`
}

// ServerConfig configures the dev server.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// PublishConfig configures the hosting endpoint uploads go to.
type PublishConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Site     string `mapstructure:"site"`
}

// Load reads configuration from the given file, or from lumen.yaml in the
// working directory when path is empty. Environment variables prefixed with
// LUMEN_ override file values. A missing config file is not an error; the
// defaults describe a conventional workspace layout.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("themes_dir", "themes")
	v.SetDefault("manifest", "manifest.json")
	v.SetDefault("content", "content/site.yaml")
	v.SetDefault("output_dir", "dist")
	v.SetDefault("server.addr", "127.0.0.1:8787")
	v.SetDefault("publish.endpoint", "")
	v.SetDefault("publish.site", "")

	v.SetEnvPrefix("LUMEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("lumen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// DataDir returns the per-user lumen data directory, creating it on demand.
func DataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	dir := filepath.Join(base, "lumen")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return dir, nil
}
