package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joaomsilva/fintrack/internal/cli"
	"github.com/joaomsilva/fintrack/internal/model"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the active user's profile",
	}

	cmd.AddCommand(profileShowCmd())
	cmd.AddCommand(profileSetCmd())

	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			p := s.profile
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Name:\t%s\n", p.Name)
			fmt.Fprintf(w, "Job:\t%s\n", p.Job)
			fmt.Fprintf(w, "Age:\t%d\n", p.Age)
			fmt.Fprintf(w, "Currency:\t%s\n", p.Currency)
			fmt.Fprintf(w, "Locale:\t%s\n", p.Locale)
			fmt.Fprintf(w, "Hide balance:\t%v\n", p.HideBalance)
			fmt.Fprintf(w, "Dark mode:\t%v\n", p.IsDarkMode)
			fmt.Fprintf(w, "Password set:\t%v\n", p.Password != "")
			return w.Flush()
		},
	}
}

func profileSetCmd() *cobra.Command {
	var (
		name        string
		job         string
		currency    string
		locale      string
		password    string
		age         int
		hideBalance bool
		darkMode    bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		Long: `Update the given profile fields; everything not passed keeps its stored
value. Hiding the balance only masks display output.`,
		Example: `  fintrack profile set --currency USD --locale en-US
  fintrack profile set --hide-balance`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			// Only flags the user actually passed become part of the update.
			var update model.ProfileUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("job") {
				update.Job = &job
			}
			if cmd.Flags().Changed("currency") {
				update.Currency = &currency
			}
			if cmd.Flags().Changed("locale") {
				update.Locale = &locale
			}
			if cmd.Flags().Changed("password") {
				update.Password = &password
			}
			if cmd.Flags().Changed("age") {
				update.Age = &age
			}
			if cmd.Flags().Changed("hide-balance") {
				update.HideBalance = &hideBalance
			}
			if cmd.Flags().Changed("dark-mode") {
				update.IsDarkMode = &darkMode
			}

			if _, err := s.tracker.UpdateProfile(ctx, s.namespace, update); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Profile updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&job, "job", "", "occupation")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale tag")
	cmd.Flags().StringVar(&password, "password", "", "account password (empty clears it)")
	cmd.Flags().IntVar(&age, "age", 0, "age")
	cmd.Flags().BoolVar(&hideBalance, "hide-balance", false, "mask amounts in terminal output")
	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "dark mode preference")

	return cmd
}
