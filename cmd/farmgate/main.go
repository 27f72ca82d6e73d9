package main

import (
	"os"

	"github.com/spf13/cobra"

	"farmgate/internal/interfaces/cli/migrate"
	"farmgate/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "farmgate",
		Short: "Farmgate - agricultural land rental and produce marketplace",
		Long:  `Farmgate is the marketplace backend for agricultural land rentals and produce orders, with passcode-confirmed handovers and deliveries.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
