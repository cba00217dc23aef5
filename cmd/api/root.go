package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weddingsite/internal/config"
	"weddingsite/internal/logger"
)

var (
	cfg *config.Config
	log *zap.Logger
)

// rootCmd runs the server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "weddingsite",
	Short:         "Wedding invitation site backend",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// setting up config
		cfg = config.LoadConfig()

		var err error
		log, err = logger.New(cfg.LogLevel, cfg.LogDev)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync(log)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(adminCmd)
}
