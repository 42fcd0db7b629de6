package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/cli/formatter"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/service"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name, category, intensity string
	var deadline time.Time
	var hours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task with a deadline and an hour estimate",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in service.NewTaskInput

			if strings.TrimSpace(name) == "" || deadline.IsZero() || hours == 0 {
				if !app.interactive() {
					return errors.New("--name, --deadline and --hours are required when not running in a terminal")
				}
				values := taskFormValues{
					Name:      name,
					Category:  domain.CategoryWork,
					Intensity: domain.IntensityModerate,
				}
				if !deadline.IsZero() {
					values.Deadline = deadline.Format(domain.DateLayout)
				}
				if hours > 0 {
					values.Hours = strconv.FormatFloat(hours, 'f', -1, 64)
				}
				if err := taskForm(&values).Run(); err != nil {
					return err
				}
				d, err := parseDate(values.Deadline)
				if err != nil {
					return err
				}
				h, err := strconv.ParseFloat(strings.TrimSpace(values.Hours), 64)
				if err != nil {
					return &domain.ValidationError{Field: "hours", Message: "must be a number"}
				}
				in = service.NewTaskInput{
					Name:      values.Name,
					Category:  values.Category,
					Deadline:  d,
					Hours:     h,
					Intensity: values.Intensity,
				}
			} else {
				c, err := domain.ParseCategory(category)
				if err != nil {
					return &domain.ValidationError{Field: "category", Message: err.Error()}
				}
				i, err := domain.ParseIntensity(intensity)
				if err != nil {
					return &domain.ValidationError{Field: "intensity", Message: err.Error()}
				}
				in = service.NewTaskInput{
					Name:      name,
					Category:  c,
					Deadline:  deadline,
					Hours:     hours,
					Intensity: i,
				}
			}

			t, err := app.Tasks.Add(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskAdded(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&category, "category", string(domain.CategoryWork), "Work, Study, Personal, Exercise or Creative")
	dateVar(cmd.Flags(), &deadline, "deadline", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours (0.5-20)")
	cmd.Flags().StringVar(&intensity, "intensity", string(domain.IntensityModerate), "Light, Moderate or Demanding")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by deadline",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, app.today()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Complete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleSage.Render("✔ Completed"), formatter.TruncID(id))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newScheduleCmd(app *App) *cobra.Command {
	var asOf time.Time

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show how task hours spread over the coming days",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Tasks.Schedule(cmd.Context(), orToday(app, asOf))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(s))
			return nil
		},
	}

	asOfVar(cmd.Flags(), &asOf)

	return cmd
}
