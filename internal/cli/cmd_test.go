package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/guidance"
	"github.com/alexanderramin/mooncyc/internal/llm"
	"github.com/alexanderramin/mooncyc/internal/logger"
	"github.com/alexanderramin/mooncyc/internal/repository"
	"github.com/alexanderramin/mooncyc/internal/scheduler"
	"github.com/alexanderramin/mooncyc/internal/service"
	"github.com/alexanderramin/mooncyc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

var anchor = domain.Date(2024, 3, 1)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	cycles := repository.NewSQLiteCycleRepo(database)
	entries := repository.NewSQLiteSymptomLogRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	resolver := guidance.NewResolver(nil, logger.Discard())

	return &App{
		Cycle:    service.NewCycleService(cycles),
		Symptoms: service.NewSymptomService(entries, cycles),
		Tasks:    service.NewTaskService(tasks, scheduler.DefaultOptions()),
		Guidance: service.NewGuidanceService(cycles, entries, resolver),
		Archive:  service.NewArchiveService(cycles, entries, tasks, testutil.NewTestUoW(database)),
		LLM:      llm.DefaultConfig(),
		Logger:   logger.Discard(),
		Now:      func() time.Time { return domain.Date(2024, 3, 10).Add(9 * time.Hour) },
	}
}

// configuredApp returns a testApp with a 28/5 cycle starting at anchor.
func configuredApp(t *testing.T) *App {
	t.Helper()
	app := testApp(t)
	_, err := app.Cycle.Configure(context.Background(), anchor, 28, 5)
	require.NoError(t, err)
	return app
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithInput(t, app, "", args...)
}

func executeCmdWithInput(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- cycle / today ---

func TestCycleSetAndShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "cycle", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No cycle configured")

	out, err = executeCmd(t, app, "cycle", "set", "--last-period", "2024-03-01", "--cycle-length", "30", "--period-length", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-01")

	out, err = executeCmd(t, app, "cycle", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "30 days")
	assert.Contains(t, out, "4 days")
}

func TestCycleSet_RequiresLastPeriod(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "cycle", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last-period")
}

func TestCycleSet_RejectsBadInput(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "cycle", "set", "--last-period", "03/01/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")

	_, err = executeCmd(t, testApp(t), "cycle", "set", "--last-period", "2024-03-01", "--cycle-length", "50")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestToday_UnconfiguredIsConfigError(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "today")
	require.Error(t, err)
	assert.True(t, domain.IsConfigError(err))
}

func TestToday(t *testing.T) {
	app := configuredApp(t)

	out, err := executeCmd(t, app, "today", "--date", "2024-03-18")
	require.NoError(t, err)
	assert.Contains(t, out, "Luteal")
	assert.Contains(t, out, "day 18 of 28")
	assert.Contains(t, out, "MOVEMENT")

	out, err = executeCmd(t, app, "today")
	require.NoError(t, err)
	assert.Contains(t, out, "day 10 of 28")
	assert.Contains(t, out, "Follicular")
}

// --- log / patterns ---

func TestLogAdd_NonInteractiveRequiresMoodAndEnergy(t *testing.T) {
	_, err := executeCmd(t, configuredApp(t), "log", "add", "--mood", "Good")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--mood and --energy are required")
}

func TestLogAdd_UnknownMood(t *testing.T) {
	_, err := executeCmd(t, configuredApp(t), "log", "add", "--mood", "Ecstatic", "--energy", "3")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestLogAddListDelete(t *testing.T) {
	app := configuredApp(t)

	out, err := executeCmd(t, app, "log", "add",
		"--date", "2024-03-02",
		"--mood", "😊 Good",
		"--energy", "4",
		"--symptoms", "Cramps, Tired,Cramps",
		"--notes", "long walk")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged 2024-03-02")
	assert.Contains(t, out, "Menstrual")

	entries, err := app.Symptoms.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Cramps", "Tired"}, entries[0].Symptoms)
	assert.Equal(t, domain.MoodGood, entries[0].Mood)

	out, err = executeCmd(t, app, "log", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Cramps, Tired")
	assert.Contains(t, out, "long walk")

	out, err = executeCmd(t, app, "log", "delete", entries[0].ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted log entry")

	out, err = executeCmd(t, app, "log", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No entries yet")
}

func TestLogDelete_UnknownID(t *testing.T) {
	_, err := executeCmd(t, configuredApp(t), "log", "delete", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPatterns(t *testing.T) {
	app := configuredApp(t)

	out, err := executeCmd(t, app, "patterns")
	require.NoError(t, err)
	assert.Contains(t, out, "Not enough data yet")

	for _, date := range []string{"2024-03-02", "2024-03-03"} {
		_, err := executeCmd(t, app, "log", "add", "--date", date, "--mood", "Low", "--energy", "2", "--symptoms", "Cramps")
		require.NoError(t, err)
	}

	out, err = executeCmd(t, app, "patterns", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Cramps ×2")
	assert.Contains(t, out, "2 entries over a 28-day cycle")
}

func TestPatterns_Unconfigured(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "patterns")
	require.Error(t, err)
	assert.True(t, domain.IsConfigError(err))
}

// --- tasks / schedule ---

func TestTaskAdd_NonInteractiveRequiresFlags(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "task", "add", "--name", "Essay")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "are required")
}

func TestTaskAdd_RejectsUnknownCategory(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "task", "add", "--name", "Essay", "--deadline", "2024-03-12", "--hours", "2", "--category", "Chores")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestTaskLifecycle(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "task", "add",
		"--name", "Essay",
		"--deadline", "2024-03-12",
		"--hours", "6",
		"--category", "Study",
		"--intensity", "Demanding")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Essay")

	out, err = executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Essay")
	assert.Contains(t, out, "Study")
	assert.Contains(t, out, "URGENT")

	out, err = executeCmd(t, app, "schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "Sun Mar 10")
	assert.Contains(t, out, "3h")

	tasks, err := app.Tasks.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	prefix := tasks[0].ID[:6]

	_, err = executeCmd(t, app, "task", "done", prefix)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks")

	out, err = executeCmd(t, app, "task", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "✔ Essay")

	_, err = executeCmd(t, app, "task", "remove", prefix)
	require.NoError(t, err)

	tasks, err = app.Tasks.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSchedule_Overload(t *testing.T) {
	app := testApp(t)
	for _, name := range []string{"Report", "Slides"} {
		_, err := executeCmd(t, app, "task", "add", "--name", name, "--deadline", "2024-03-10", "--hours", "4")
		require.NoError(t, err)
	}

	out, err := executeCmd(t, app, "schedule", "--date", "2024-03-10")
	require.NoError(t, err)
	assert.Contains(t, out, "8h ⚠")
	assert.Contains(t, out, "Over the healthy limit on Sun Mar 10")
}

// --- guidance ---

func TestMeditationAndMeals_UseFallbacks(t *testing.T) {
	app := configuredApp(t)

	out, err := executeCmd(t, app, "meditation", "--date", "2024-03-02")
	require.NoError(t, err)
	assert.Contains(t, out, "MEDITATION")
	assert.Contains(t, out, "Pre-written")

	out, err = executeCmd(t, app, "meals")
	require.NoError(t, err)
	assert.Contains(t, out, "Breakfast")
	assert.Contains(t, out, "Pre-written")
}

func TestMeditation_Unconfigured(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "meditation")
	require.Error(t, err)
	assert.True(t, domain.IsConfigError(err))
}

func TestRemedy(t *testing.T) {
	app := configuredApp(t)

	out, err := executeCmd(t, app, "remedy", "Headache")
	require.NoError(t, err)
	assert.Contains(t, out, "HEADACHE")
	assert.Contains(t, out, "General wellness approach")

	out, err = executeCmd(t, app, "remedy")
	require.NoError(t, err)
	assert.Contains(t, out, "No symptoms logged yet")

	_, err = executeCmd(t, app, "log", "add", "--date", "2024-03-02", "--mood", "Low", "--energy", "2", "--symptoms", "Bloating,None")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "remedy")
	require.NoError(t, err)
	assert.Contains(t, out, "BLOATING")
	assert.NotContains(t, out, "NONE")

	_, err = executeCmd(t, app, "remedy", "None")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

// --- data ---

func TestDataExportImportRoundTrip(t *testing.T) {
	src := configuredApp(t)
	_, err := executeCmd(t, src, "log", "add", "--date", "2024-03-02", "--mood", "Okay", "--energy", "3", "--symptoms", "Acne")
	require.NoError(t, err)
	_, err = executeCmd(t, src, "task", "add", "--name", "Essay", "--deadline", "2024-03-12", "--hours", "2")
	require.NoError(t, err)

	dir := t.TempDir()
	cyclePath := filepath.Join(dir, "cycle_data.json")
	tasksPath := filepath.Join(dir, "tasks.json")

	out, err := executeCmd(t, src, "data", "export", "--cycle", cyclePath, "--tasks", tasksPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")

	dst := testApp(t)
	out, err = executeCmd(t, dst, "data", "import", "--cycle", cyclePath, "--tasks", tasksPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported cycle (configured) with 1 log entries")
	assert.Contains(t, out, "Imported 1 tasks")

	out, err = executeCmd(t, dst, "log", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Acne")

	out, err = executeCmd(t, dst, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Essay")
}

func TestDataImport_RequiresAFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "data", "import")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--cycle, --tasks or both")
}

// --- ai ---

func TestAIKeyCommands(t *testing.T) {
	keyring.MockInit()
	app := testApp(t)

	out, err := executeCmdWithInput(t, app, "sk-ant-test-1234\n", "ai", "set-key")
	require.NoError(t, err)
	assert.Contains(t, out, "Stored API key ********1234")

	app.LLM.Provider = llm.ProviderAnthropic
	app.LLM.APIKey = "sk-ant-test-1234"
	out, err = executeCmd(t, app, "ai", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, "********1234 (keyring)")

	out, err = executeCmd(t, app, "ai", "clear-key")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed stored API key.")

	out, err = executeCmd(t, app, "ai", "clear-key")
	require.NoError(t, err)
	assert.Contains(t, out, "No API key stored.")

	app.LLM.APIKey = ""
	out, err = executeCmd(t, app, "ai", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "not set")
}

func TestAISetKey_EmptyStdin(t *testing.T) {
	keyring.MockInit()
	_, err := executeCmd(t, testApp(t), "ai", "set-key")
	require.Error(t, err)
}

func TestDashboard_RequiresTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "dashboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
