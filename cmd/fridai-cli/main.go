// Package main is the entry point for the fridai-cli application.
// It initializes the root command, registers the database maintenance
// sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/DarkestAbed/fridai-backend/cmd/fridai-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "fridai-cli",
		Short: "Maintenance CLI for the fridai task backend",
		Long: `fridai-cli is a command-line tool for maintaining the fridai task backend.
It migrates the database schema and seeds sample categories, tags and tasks
for a fresh installation. Both commands honor the same configuration file
and FRIDAI_ environment overrides as the REST server.`,
	}

	if err := commands.InitDatabaseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
