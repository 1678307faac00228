package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/sqlkit/cli/internal/ui"
	"github.com/satishbabariya/sqlkit/cli/internal/watch"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var schemaPath string
	var provider string
	var outPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate DDL when the schema changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(schemaPath, provider)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = cfg.OutputPath
			}

			w, err := watch.New(cfg.SchemaPath, func() error {
				if err := runDDL(cfg, outPath); err != nil {
					ui.Error("%v", err)
				}
				return nil
			})
			if err != nil {
				return err
			}
			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop()

			ui.Info("Watching %s (ctrl-c to stop)", cfg.SchemaPath)
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to schema definition file")
	cmd.Flags().StringVar(&provider, "provider", "", "Target provider (postgres, mysql, sqlite, default)")
	cmd.Flags().StringVar(&outPath, "out", "", "Write statements to a file instead of stdout")

	return cmd
}
