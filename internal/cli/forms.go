package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/cli/formatter"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// mooncycHuhTheme returns a huh theme using the mauve palette.
func mooncycHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorPlum).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorMauve)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorMauve)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorSage)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorSage).SetString("● ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("○ ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorDeep).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorMauve)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorMauve)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// logFormValues backs the interactive log form.
type logFormValues struct {
	Date     string
	Mood     domain.Mood
	Energy   int
	Symptoms []string
	Notes    string
}

func logEntryForm(v *logFormValues) *huh.Form {
	moods := make([]huh.Option[domain.Mood], 0, len(domain.Moods))
	for _, m := range domain.Moods {
		moods = append(moods, huh.NewOption(m.Label(), m))
	}
	energy := make([]huh.Option[int], 0, domain.MaxEnergy)
	for n := domain.MinEnergy; n <= domain.MaxEnergy; n++ {
		energy = append(energy, huh.NewOption(fmt.Sprintf("%d %s", n, strings.Repeat("⚡", n)), n))
	}

	return huh.NewForm(
		huh.NewGroup(
			dateInput("Date (YYYY-MM-DD)", v.Date, &v.Date),
			huh.NewSelect[domain.Mood]().
				Title("How are you feeling?").
				Options(moods...).
				Value(&v.Mood),
			huh.NewSelect[int]().
				Title("Energy").
				Options(energy...).
				Value(&v.Energy),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Symptoms").
				Options(huh.NewOptions(domain.SymptomCatalog...)...).
				Height(10).
				Value(&v.Symptoms),
			huh.NewText().
				Title("Notes").
				CharLimit(500).
				Value(&v.Notes),
		),
	).WithTheme(mooncycHuhTheme()).WithShowHelp(false)
}

// taskFormValues backs the interactive add-task form.
type taskFormValues struct {
	Name      string
	Category  domain.Category
	Deadline  string
	Hours     string
	Intensity domain.Intensity
}

func taskForm(v *taskFormValues) *huh.Form {
	categories := make([]huh.Option[domain.Category], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		categories = append(categories, huh.NewOption(string(c), c))
	}
	intensities := make([]huh.Option[domain.Intensity], 0, len(domain.Intensities))
	for _, i := range domain.Intensities {
		intensities = append(intensities, huh.NewOption(string(i), i))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Value(&v.Name).
				Validate(validateRequired),
			huh.NewSelect[domain.Category]().
				Title("Category").
				Options(categories...).
				Value(&v.Category),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Placeholder("2025-06-30").
				Value(&v.Deadline).
				Validate(validateDate),
			huh.NewInput().
				Title("Estimated hours").
				Placeholder("2.5").
				Value(&v.Hours).
				Validate(validateHours),
			huh.NewSelect[domain.Intensity]().
				Title("Intensity").
				Options(intensities...).
				Value(&v.Intensity),
		),
	).WithTheme(mooncycHuhTheme()).WithShowHelp(false)
}

func apiKeyForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Anthropic API key").
				EchoMode(huh.EchoModePassword).
				Value(value).
				Validate(validateRequired),
		),
	).WithTheme(mooncycHuhTheme()).WithShowHelp(false)
}

// dateInput returns a huh.Input for a required date field.
func dateInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "2025-06-30"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateDate)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	_, err := parseDate(s)
	return err
}

func validateHours(s string) error {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if h < domain.MinTaskHours || h > domain.MaxTaskHours {
		return fmt.Errorf("must be between %.1f and %.0f", domain.MinTaskHours, domain.MaxTaskHours)
	}
	return nil
}
