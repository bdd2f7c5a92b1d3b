package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RealZimboGuy/flowbuilder/internal/engine"
	"github.com/RealZimboGuy/flowbuilder/internal/repository"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/core"
)

func newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage API users",
	}
	cmd.AddCommand(newUserAddCommand())
	return cmd
}

func newUserAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Create a user with a password and optional API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			apiKey, _ := cmd.Flags().GetString("api-key")

			db, err := repository.OpenDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			clock := core.NewRealClock()
			users := engine.NewUserManager(repository.NewUserRepository(db, clock), clock)
			u, err := users.CreateUser(cmd.Context(), args[0], password, apiKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %q (id %d)\n", u.Username, u.ID)
			return nil
		},
	}
	cmd.Flags().StringP("password", "p", "", "Password (required)")
	cmd.Flags().String("api-key", "", "API key accepted in the X-API-Key header")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
