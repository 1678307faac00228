package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/sqlkit/cli/internal/config"
	"github.com/satishbabariya/sqlkit/cli/internal/ui"
	"github.com/satishbabariya/sqlkit/dialect"
	"github.com/satishbabariya/sqlkit/internal/debug"
	"github.com/satishbabariya/sqlkit/schema"
)

// NewDDLCommand creates the ddl command.
func NewDDLCommand() *cobra.Command {
	var schemaPath string
	var provider string
	var outPath string

	cmd := &cobra.Command{
		Use:   "ddl",
		Short: "Generate DDL from a schema definition",
		Long:  "Parse a schema definition file and print CREATE TABLE and constraint statements for the chosen provider.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(schemaPath, provider)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = cfg.OutputPath
			}
			return runDDL(cfg, outPath)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to schema definition file")
	cmd.Flags().StringVar(&provider, "provider", "", "Target provider (postgres, mysql, sqlite, default)")
	cmd.Flags().StringVar(&outPath, "out", "", "Write statements to a file instead of stdout")

	return cmd
}

func runDDL(cfg *config.Config, outPath string) error {
	d, err := dialect.ForProvider(cfg.Provider)
	if err != nil {
		return err
	}

	file, err := schema.ParseFile(config.AppFs, cfg.SchemaPath)
	if err != nil {
		return err
	}

	stmts := file.DDL(d)
	debug.Debug("generated ddl", "tables", len(file.Tables), "statements", len(stmts))

	out := strings.Join(stmts, ";\n\n") + ";\n"
	if outPath != "" {
		if err := afero.WriteFile(config.AppFs, outPath, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		ui.Success("Wrote %d statements to %s", len(stmts), outPath)
		return nil
	}

	ui.Header("sqlkit ddl", fmt.Sprintf("%s → %s", cfg.SchemaPath, d.Name()))
	fmt.Print(out)
	return nil
}
