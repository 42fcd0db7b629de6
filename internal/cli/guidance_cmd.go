package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// withSpinner runs fn behind a spinner when a model call may take a while.
func withSpinner(cmd *cobra.Command, app *App, message string, fn func() error) error {
	if app.Guidance.AIEnabled() && app.interactive() {
		stop := formatter.StartSpinner(cmd.ErrOrStderr(), message)
		defer stop()
	}
	return fn()
}

func newMeditationCmd(app *App) *cobra.Command {
	var asOf time.Time

	cmd := &cobra.Command{
		Use:   "meditation",
		Short: "A short meditation for your current phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out string
			err := withSpinner(cmd, app, "Writing your meditation...", func() error {
				m, err := app.Guidance.Meditation(cmd.Context(), orToday(app, asOf))
				if err != nil {
					return err
				}
				out = formatter.FormatMeditation(m)
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	asOfVar(cmd.Flags(), &asOf)

	return cmd
}

func newMealsCmd(app *App) *cobra.Command {
	var asOf time.Time

	cmd := &cobra.Command{
		Use:   "meals",
		Short: "A day of meals suited to your current phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out string
			err := withSpinner(cmd, app, "Planning your meals...", func() error {
				p, err := app.Guidance.MealPlan(cmd.Context(), orToday(app, asOf))
				if err != nil {
					return err
				}
				out = formatter.FormatMealPlan(p)
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	asOfVar(cmd.Flags(), &asOf)

	return cmd
}

func newRemedyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remedy [symptom]",
		Short: "Natural remedies for a symptom, or for every symptom you have logged",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var out string
			err := withSpinner(cmd, app, "Looking up remedies...", func() error {
				if len(args) == 1 {
					r, err := app.Guidance.Remedy(ctx, strings.TrimSpace(args[0]))
					if err != nil {
						return err
					}
					out = formatter.FormatRemedy(r) + "\n"
					return nil
				}
				rs, err := app.Guidance.Remedies(ctx)
				if err != nil {
					return err
				}
				out = formatter.FormatRemedies(rs)
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
