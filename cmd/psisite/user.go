package main

import (
	"errors"
	"fmt"

	"github.com/psisite/internal/config"
	"github.com/psisite/internal/db"
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Admin account commands",
	}

	cmd.AddCommand(newUserEnsureCmd())
	return cmd
}

func newUserEnsureCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Create the admin account if it does not exist",
		Long:  "Creates a bcrypt-hashed admin account. Falls back to ADMIN_USERNAME and ADMIN_PASSWORD when flags are omitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if username == "" {
				username = cfg.AdminUserName
			}
			if password == "" {
				password = cfg.AdminPassword
			}
			if username == "" || password == "" {
				return errors.New("username and password are required")
			}

			gdb, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			created, err := db.EnsureUser(gdb, username, password)
			if err != nil {
				return fmt.Errorf("ensure user: %w", err)
			}

			out := cmd.OutOrStdout()
			if created {
				fmt.Fprintf(out, "Created admin user %q\n", username)
			} else {
				fmt.Fprintf(out, "Admin user %q already exists\n", username)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password")
	return cmd
}
