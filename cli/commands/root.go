// Package commands implements the sqlkit CLI commands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/sqlkit/cli/internal/config"
	"github.com/satishbabariya/sqlkit/internal/debug"
)

// Version is the CLI version, overridable at build time.
var Version = "0.1.0"

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var debugFlag bool

	root := &cobra.Command{
		Use:           "sqlkit",
		Short:         "Type-aware SQL expression and DDL toolkit",
		Long:          "sqlkit builds dialect-portable SQL predicates and DDL from typed schema definitions.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.Init(debugFlag)
		},
	}

	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	root.AddCommand(NewDDLCommand())
	root.AddCommand(NewValidateCommand())
	root.AddCommand(NewWatchCommand())
	root.AddCommand(NewVersionCommand())

	return root
}

// loadConfig loads CLI configuration and applies flag overrides.
func loadConfig(schemaPath, provider string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if schemaPath != "" {
		cfg.SchemaPath = schemaPath
	}
	if provider != "" {
		cfg.Provider = provider
	}
	if cfg.Debug {
		debug.Init(true)
	}
	return cfg, nil
}
