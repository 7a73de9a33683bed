package main

import (
	"os"

	"github.com/spf13/cobra"

	"templar/internal/interfaces/cli/migrate"
	"templar/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "templar",
		Short: "Templar - template content service",
		Long:  `Templar manages versioned multilingual templates and renders their active content.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
