package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joaomsilva/fintrack/internal/cli"
	"github.com/joaomsilva/fintrack/internal/tracker"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <name>",
		Short: "Log in as a user, creating the account on first use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			t := tracker.New(store)
			profile, err := t.Login(ctx, args[0], password)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s", profile.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "account password, if one is set")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := tracker.New(store).Logout(ctx); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List known users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			t := tracker.New(store)
			users, err := t.ListUsers(ctx)
			if err != nil {
				return err
			}
			active, err := t.ActiveUser(ctx)
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No users yet. Run 'fintrack login <name>' to create one."))
				return nil
			}
			for _, u := range users {
				if u == active {
					fmt.Println(cli.BoldStyle.Render("* " + u))
					continue
				}
				fmt.Println("  " + u)
			}
			return nil
		},
	}
}
