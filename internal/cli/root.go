package cli

import (
	"alcyxob/football-training/internal/app"
	"alcyxob/football-training/internal/config"
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Maintenance commands for the football training catalog",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "Directory holding config.yaml and .env")
	cmd.AddCommand(seedCmd(&configPath))
	cmd.AddCommand(checkCmd(&configPath))
	return cmd
}

// openApp loads configuration from configPath and wires the catalog service.
func openApp(configPath string) (*app.App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return app.New(cfg)
}
