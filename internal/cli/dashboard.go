package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/cli/formatter"
	"github.com/alexanderramin/mooncyc/internal/contract"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type dashboardTab int

const (
	tabToday dashboardTab = iota
	tabSchedule
	tabPatterns
)

var dashboardTabs = []dashboardTab{tabToday, tabSchedule, tabPatterns}

func (t dashboardTab) String() string {
	switch t {
	case tabToday:
		return "Today"
	case tabSchedule:
		return "Schedule"
	case tabPatterns:
		return "Patterns"
	default:
		return "?"
	}
}

type dashboardKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Refresh, k.Help, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Refresh, k.Help, k.Quit}}
}

// tabLoadedMsg carries a rendered tab body.
type tabLoadedMsg struct {
	tab     dashboardTab
	content string
	err     error
}

// dashboardModel is the root bubbletea Model for the dashboard.
type dashboardModel struct {
	app      *App
	today    time.Time
	keys     dashboardKeyMap
	help     help.Model
	viewport viewport.Model

	active  dashboardTab
	content map[dashboardTab]string
	errs    map[dashboardTab]error
	ready   bool
	width   int
	height  int
}

func newDashboardModel(app *App) dashboardModel {
	return dashboardModel{
		app:      app,
		today:    app.today(),
		keys:     newDashboardKeyMap(),
		help:     help.New(),
		viewport: viewport.New(80, 20),
		content:  make(map[dashboardTab]string),
		errs:     make(map[dashboardTab]error),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadAll()
}

func (m dashboardModel) loadAll() tea.Cmd {
	cmds := make([]tea.Cmd, len(dashboardTabs))
	for i, tab := range dashboardTabs {
		cmds[i] = m.load(tab)
	}
	return tea.Batch(cmds...)
}

func (m dashboardModel) load(tab dashboardTab) tea.Cmd {
	app, today := m.app, m.today
	return func() tea.Msg {
		content, err := renderTab(context.Background(), app, tab, today)
		return tabLoadedMsg{tab: tab, content: content, err: err}
	}
}

// renderTab renders one dashboard tab body as plain formatter output.
func renderTab(ctx context.Context, app *App, tab dashboardTab, today time.Time) (string, error) {
	switch tab {
	case tabToday:
		req := contract.NewTodayRequest()
		req.Now = &today
		view, err := app.Cycle.Today(ctx, req)
		if err != nil {
			return "", err
		}
		return formatter.FormatToday(view) + "\n\n" + formatter.FormatExercise(view), nil
	case tabSchedule:
		s, err := app.Tasks.Schedule(ctx, today)
		if err != nil {
			return "", err
		}
		tasks, err := app.Tasks.List(ctx, false)
		if err != nil {
			return "", err
		}
		return formatter.FormatSchedule(s) + "\n" + formatter.FormatTaskList(tasks, today), nil
	case tabPatterns:
		view, err := app.Symptoms.Patterns(ctx, contract.NewPatternsRequest())
		if err != nil {
			return "", err
		}
		c, err := app.Cycle.Get(ctx)
		if err != nil {
			return "", err
		}
		return formatter.FormatPatterns(view, c), nil
	default:
		return "", fmt.Errorf("unknown tab %d", tab)
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-m.chromeHeight(), 1)
		m.ready = true
		m.syncViewport()
		return m, nil

	case tabLoadedMsg:
		m.content[msg.tab] = msg.content
		m.errs[msg.tab] = msg.err
		if msg.tab == m.active {
			m.syncViewport()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchTo((m.active + 1) % dashboardTab(len(dashboardTabs)))
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchTo((m.active + dashboardTab(len(dashboardTabs)) - 1) % dashboardTab(len(dashboardTabs)))
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.today = m.app.today()
			return m, m.loadAll()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			if m.ready {
				m.viewport.Height = max(m.height-m.chromeHeight(), 1)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *dashboardModel) switchTo(tab dashboardTab) {
	m.active = tab
	m.syncViewport()
	m.viewport.GotoTop()
}

func (m *dashboardModel) syncViewport() {
	m.viewport.SetContent(m.body())
}

// body is the active tab's content, an error hint, or a loading line.
func (m dashboardModel) body() string {
	if err := m.errs[m.active]; err != nil {
		if domain.IsConfigError(err) {
			return formatter.Dim("Set up your cycle first: mooncyc cycle set --last-period YYYY-MM-DD")
		}
		return formatter.StyleOverload.Render("Error: " + err.Error())
	}
	content, ok := m.content[m.active]
	if !ok {
		return formatter.Dim("Loading...")
	}
	return content
}

func (m dashboardModel) tabBar() string {
	active := lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorDeep).Bold(true).Padding(0, 2)
	inactive := lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 2)

	tabs := make([]string, len(dashboardTabs))
	for i, tab := range dashboardTabs {
		if tab == m.active {
			tabs[i] = active.Render(tab.String())
		} else {
			tabs[i] = inactive.Render(tab.String())
		}
	}
	title := formatter.StyleHeader.Render("🌙 mooncyc") + "  " + formatter.Dim(formatter.ShortDate(m.today))
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// chromeHeight is the number of lines taken by the tab bar and help footer.
func (m dashboardModel) chromeHeight() int {
	return lipgloss.Height(m.tabBar()) + lipgloss.Height(m.help.View(m.keys)) + 2
}

func (m dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the dashboard needs an interactive terminal")
			}
			p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
