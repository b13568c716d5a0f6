package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"scene-service/internal/handlers"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the service version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "scene-service", handlers.Version)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := InitConfig()
		db := ConnectDatabase(cfg)
		defer CloseDatabase(db)
		MigrateDatabase(db)
		log.Info().Msg("tables migrated")
		return nil
	},
}
