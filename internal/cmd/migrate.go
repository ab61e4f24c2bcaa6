package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/URTS404/UMKM-AWP-UAS/internal/config"
	"github.com/URTS404/UMKM-AWP-UAS/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema and seed initial data",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatal("Failed to load config: ", err)
		}

		database.Connect(cfg)
		database.Migrate(cfg)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
