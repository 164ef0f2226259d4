package main

import (
	"os"

	"github.com/spf13/cobra"

	"inkwell/internal/interfaces/cli/seed"
	"inkwell/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "inkwell",
		Short: "Inkwell - blog backend with feedback intake",
		Long:  `Inkwell serves the article CRUD/search API and forwards feedback tickets to the automation webhook.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
