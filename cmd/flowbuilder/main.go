package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flowbuilder",
		Short: "Workflow builder backend",
		Long:  "flowbuilder stores, validates and exports node-graph workflow definitions.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			//you may do your own logger setup here or use this default one with slog
			flowbuilder.SetupLogger()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newScaffoldCommand())
	rootCmd.AddCommand(newUserCommand())
	return rootCmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flowbuilder.Start(nil); err != nil {
				return fmt.Errorf("server exited: %w", err)
			}
			return nil
		},
	}
}
