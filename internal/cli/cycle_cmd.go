package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/mooncyc/internal/cli/formatter"
	"github.com/alexanderramin/mooncyc/internal/contract"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/spf13/cobra"
)

func newCycleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Configure the menstrual cycle",
	}

	cmd.AddCommand(
		newCycleSetCmd(app),
		newCycleShowCmd(app),
	)

	return cmd
}

func newCycleSetCmd(app *App) *cobra.Command {
	var lastPeriod time.Time
	var cycleLength, periodLength int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Record the start of your last period and your cycle lengths",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Cycle.Configure(cmd.Context(), lastPeriod, cycleLength, periodLength)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCycle(c))
			return nil
		},
	}

	dateVar(cmd.Flags(), &lastPeriod, "last-period", "First day of your last period (YYYY-MM-DD)")
	cmd.Flags().IntVar(&cycleLength, "cycle-length", domain.DefaultCycleLength, "Cycle length in days (21-35)")
	cmd.Flags().IntVar(&periodLength, "period-length", domain.DefaultPeriodLength, "Period length in days (3-7)")
	_ = cmd.MarkFlagRequired("last-period")

	return cmd
}

func newCycleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored cycle configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Cycle.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCycle(c))
			return nil
		},
	}
}

func newTodayCmd(app *App) *cobra.Command {
	var asOf time.Time
	var days int

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's phase, energy and guidance",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewTodayRequest()
			now := orToday(app, asOf)
			req.Now = &now
			req.CalendarDays = days

			view, err := app.Cycle.Today(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatToday(view))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatExercise(view))
			return nil
		},
	}

	asOfVar(cmd.Flags(), &asOf)
	cmd.Flags().IntVar(&days, "days", contract.DefaultCalendarDays, "Number of days in the phase strip (0 to hide)")

	return cmd
}
