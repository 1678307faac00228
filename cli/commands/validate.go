package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/sqlkit/cli/internal/config"
	"github.com/satishbabariya/sqlkit/cli/internal/ui"
	"github.com/satishbabariya/sqlkit/dialect"
	"github.com/satishbabariya/sqlkit/schema"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var schemaPath string
	var provider string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a schema definition",
		Long:  "Parse a schema definition file and check it against the chosen provider, including the provider's minimum server version when configured.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(schemaPath, provider)
			if err != nil {
				return err
			}
			return runValidate(cfg)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to schema definition file")
	cmd.Flags().StringVar(&provider, "provider", "", "Target provider (postgres, mysql, sqlite, default)")

	return cmd
}

func runValidate(cfg *config.Config) error {
	d, err := dialect.ForProvider(cfg.Provider)
	if err != nil {
		return err
	}

	if err := d.CheckServerVersion(cfg.ProviderVersion); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	file, err := schema.ParseFile(config.AppFs, cfg.SchemaPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	rows := make([][]string, 0, len(file.Tables)+1)
	rows = append(rows, []string{"TABLE", "COLUMNS"})
	for _, t := range file.Tables {
		desc := t.Describe(d)
		rows = append(rows, []string{d.TableName(desc.Schema, desc.Name), fmt.Sprint(len(desc.Columns))})
	}

	ui.Success("Schema %s is valid for %s", cfg.SchemaPath, d.Name())
	ui.Summary(rows)
	return nil
}
