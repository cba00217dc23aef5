package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weddingsite/cmd/app"
	"weddingsite/internal/database"
	"weddingsite/internal/service"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply, roll back or show database migrations",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := "up"
		if len(args) == 1 {
			direction = args[0]
		}

		db, err := database.ConnectDB(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer db.CloseDB()

		return db.Migrate(cmd.Context(), direction)
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove gallery photos soft-deleted longer than PURGE_AFTER",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := service.PurgeOnce(cmd.Context(), a.Services.Gallery, cfg.Purge.After, log)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "purged %d photo(s)\n", result.Removed)
		return nil
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var (
	adminUsername string
	adminPassword string
)

var setPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Create an admin account or replace its password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		admin, err := a.Services.Auth.SetPassword(cmd.Context(), adminUsername, adminPassword)
		if err != nil {
			return err
		}

		log.Info("admin account saved", zap.Int64("id", admin.ID), zap.String("username", admin.Username))
		return nil
	},
}

func init() {
	setPasswordCmd.Flags().StringVar(&adminUsername, "username", "", "Admin username (required)")
	setPasswordCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (required)")
	setPasswordCmd.MarkFlagRequired("username")
	setPasswordCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(setPasswordCmd)
}
