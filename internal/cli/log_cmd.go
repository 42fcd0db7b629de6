package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/cli/formatter"
	"github.com/alexanderramin/mooncyc/internal/contract"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record and review daily symptoms",
	}

	cmd.AddCommand(
		newLogAddCmd(app),
		newLogListCmd(app),
		newLogDeleteCmd(app),
	)

	return cmd
}

func newLogAddCmd(app *App) *cobra.Command {
	var date time.Time
	var mood, notes string
	var energy int
	var symptoms []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log mood, energy and symptoms for a day",
		Long: `Log mood, energy and symptoms for a day.

Without --mood and --energy an interactive form opens when running in a
terminal. Symptoms are free-form tags; "None" records a symptom-free day.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := &domain.SymptomEntry{
				Date:     orToday(app, date),
				Energy:   energy,
				Symptoms: cleanTags(symptoms),
				Notes:    notes,
			}

			flags := cmd.Flags()
			if !flags.Changed("mood") || !flags.Changed("energy") {
				if !app.interactive() {
					return errors.New("--mood and --energy are required when not running in a terminal")
				}
				values := logFormValues{
					Date:     entry.Date.Format(domain.DateLayout),
					Mood:     domain.MoodNeutral,
					Energy:   3,
					Symptoms: entry.Symptoms,
					Notes:    notes,
				}
				if err := logEntryForm(&values).Run(); err != nil {
					return err
				}
				d, err := parseDate(values.Date)
				if err != nil {
					return err
				}
				entry.Date = d
				entry.Mood = values.Mood
				entry.Energy = values.Energy
				entry.Symptoms = values.Symptoms
				entry.Notes = values.Notes
			} else {
				m, err := domain.ParseMood(mood)
				if err != nil {
					return &domain.ValidationError{Field: "mood", Message: err.Error()}
				}
				entry.Mood = m
			}

			if err := app.Symptoms.Log(cmd.Context(), entry); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntryLogged(entry))
			return nil
		},
	}

	dateVar(cmd.Flags(), &date, "date", "Day being logged (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood: Terrible, Low, Down, Neutral, Okay, Good, Great or Amazing")
	cmd.Flags().IntVar(&energy, "energy", 0, "Energy level 1-5")
	cmd.Flags().StringSliceVar(&symptoms, "symptoms", nil, "Comma-separated symptom tags")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged days, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Symptoms.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSymptomLog(entries))
			return nil
		},
	}
}

func newLogDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a log entry by ID or ID prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Symptoms.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted log entry %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newPatternsCmd(app *App) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Show which symptoms recur on which cycle days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req := contract.NewPatternsRequest()
			req.TopN = top

			view, err := app.Symptoms.Patterns(ctx, req)
			if err != nil {
				return err
			}
			c, err := app.Cycle.Get(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPatterns(view, c))
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", contract.DefaultTopSymptoms, "Number of symptoms to chart")

	return cmd
}

// cleanTags trims tags and drops empties and repeats, keeping order.
func cleanTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
