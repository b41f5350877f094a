package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/pharmalab/internal/pkg/logger"
)

// @title PharmaLab API
// @version 1.0
// @description JSON endpoints of the PharmaLab teaching pharmacy. Pages are server-rendered; the calculators and health check are documented here.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name pharmalab_session

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "pharmalab",
		Short:         "Teaching pharmacy: patients, medications and the prescription approval workflow",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default configs/config.yaml)")

	root.AddCommand(serveCmd(&configPath))
	root.AddCommand(migrateCmd(&configPath))
	root.AddCommand(seedCmd(&configPath))
	root.AddCommand(userCmd(&configPath))
	return root
}
