package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/llm"
	"github.com/alexanderramin/mooncyc/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Cycle    service.CycleService
	Symptoms service.SymptomService
	Tasks    service.TaskService
	Guidance service.GuidanceService
	Archive  service.ArchiveService

	// LLM is the resolved model configuration, shown by "ai status".
	LLM      llm.LLMConfig
	Logger   *slog.Logger
	HTTPAddr string

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// spinner only run when it returns true.
	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// today returns the current calendar date.
func (a *App) today() time.Time {
	if a.Now != nil {
		return domain.DateOf(a.Now())
	}
	return domain.DateOf(time.Now())
}

// NewRootCmd creates the top-level "mooncyc" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mooncyc",
		Short:         "Cycle-aware wellness and workload planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCycleCmd(app),
		newTodayCmd(app),
		newLogCmd(app),
		newPatternsCmd(app),
		newTaskCmd(app),
		newScheduleCmd(app),
		newMeditationCmd(app),
		newMealsCmd(app),
		newRemedyCmd(app),
		newDataCmd(app),
		newAICmd(app),
		newServeCmd(app),
		newDashboardCmd(app),
	)

	return root
}
