package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	defaultCycleFile = "cycle_data.json"
	defaultTasksFile = "tasks.json"
)

func newDataCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Import or export JSON data files",
	}

	cmd.AddCommand(
		newDataImportCmd(app),
		newDataExportCmd(app),
	)

	return cmd
}

func newDataImportCmd(app *App) *cobra.Command {
	var cyclePath, tasksPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace stored data with the contents of JSON files",
		Long: `Replace stored data with the contents of JSON files.

Every record is validated first; nothing is written if any record is
invalid. Omitting one of the files leaves that part of the data untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cyclePath == "" && tasksPath == "" {
				return errors.New("give --cycle, --tasks or both")
			}
			res, err := app.Archive.ImportFiles(cmd.Context(), cyclePath, tasksPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cyclePath != "" {
				state := "not configured"
				if res.Configured {
					state = "configured"
				}
				fmt.Fprintf(out, "Imported cycle (%s) with %d log entries\n", state, res.EntryCount)
			}
			if tasksPath != "" {
				fmt.Fprintf(out, "Imported %d tasks\n", res.TaskCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cyclePath, "cycle", "", "Cycle and symptom log file")
	cmd.Flags().StringVar(&tasksPath, "tasks", "", "Task list file")

	return cmd
}

func newDataExportCmd(app *App) *cobra.Command {
	var cyclePath, tasksPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write stored data to JSON files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cyclePath == "" && tasksPath == "" {
				return errors.New("give --cycle, --tasks or both")
			}
			if err := app.Archive.ExportFiles(cmd.Context(), cyclePath, tasksPath); err != nil {
				return err
			}
			written := make([]string, 0, 2)
			for _, p := range []string{cyclePath, tasksPath} {
				if p != "" {
					written = append(written, p)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", strings.Join(written, " and "))
			return nil
		},
	}

	cmd.Flags().StringVar(&cyclePath, "cycle", defaultCycleFile, "Cycle and symptom log file")
	cmd.Flags().StringVar(&tasksPath, "tasks", defaultTasksFile, "Task list file")

	return cmd
}
