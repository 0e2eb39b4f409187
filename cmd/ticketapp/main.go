package main

import (
	"os"

	"github.com/spf13/cobra"

	"ticketapp/internal/interfaces/cli/migrate"
	"ticketapp/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketapp",
		Short: "Ticket service backend",
		Long:  `A ticket management service with JWT-based access control and cached reads.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
