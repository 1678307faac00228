// Package config loads CLI configuration from config files, environment
// variables and .env files.
package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem used for all file access. Tests swap it for an
// in-memory filesystem.
var AppFs = afero.NewOsFs()

// Config holds the CLI configuration.
type Config struct {
	SchemaPath      string
	Provider        string
	ProviderVersion string
	OutputPath      string
	Debug           bool
}

// Load reads configuration from .sqlkit.yaml (cwd, home, ~/.config/sqlkit),
// SQLKIT_* environment variables, and .env/.env.local files.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".sqlkit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "sqlkit"))

	viper.SetEnvPrefix("SQLKIT")
	viper.AutomaticEnv()

	viper.SetDefault("schema_path", "schema.sqlkit")
	viper.SetDefault("provider", "default")
	viper.SetDefault("output_path", "")
	viper.SetDefault("debug", false)

	// Missing config files are fine; defaults and env cover it.
	_ = viper.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	return &Config{
		SchemaPath:      viper.GetString("schema_path"),
		Provider:        viper.GetString("provider"),
		ProviderVersion: viper.GetString("provider_version"),
		OutputPath:      viper.GetString("output_path"),
		Debug:           viper.GetBool("debug"),
	}, nil
}
