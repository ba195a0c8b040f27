package tui

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/matteobrandi/traccia/internal/cli/formatter"
	"github.com/matteobrandi/traccia/internal/service"
)

// wizardValues collects the new-project form fields.
type wizardValues struct {
	Title       string
	Client      string
	Description string
	Budget      string
	Starter     bool
}

// tracciaHuhTheme restyles huh with the dashboard's palette.
func tracciaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newProjectWizard(values *wizardValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Bakery website").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errTitleRequired
					}
					return nil
				}).
				Value(&values.Title),
			huh.NewInput().
				Title("Client").
				Placeholder("optional").
				Value(&values.Client),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&values.Description),
			huh.NewInput().
				Title("Budget (€)").
				Placeholder("300").
				Validate(validateBudget).
				Value(&values.Budget),
			huh.NewConfirm().
				Title("Seed starter tasks?").
				Affirmative("Yes").
				Negative("No").
				Value(&values.Starter),
		),
	).WithTheme(tracciaHuhTheme()).WithShowHelp(true)
}

func validateBudget(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errBudgetNumeric
	}
	return nil
}

func (m Model) startWizard() (tea.Model, tea.Cmd) {
	m.mode = modeWizard
	m.wizardValues = &wizardValues{Starter: true}
	m.wizard = newProjectWizard(m.wizardValues)
	return m, m.wizard.Init()
}

func (m Model) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.mode = modeDashboard
		m.wizard = nil
		return m, nil
	}

	form, cmd := m.wizard.Update(msg)
	m.wizard = form.(*huh.Form)

	if m.wizard.State == huh.StateCompleted {
		values := *m.wizardValues
		m.mode = modeDashboard
		m.wizard = nil
		m.loading = true
		return m, m.createFromWizard(values)
	}
	if m.wizard.State == huh.StateAborted {
		m.mode = modeDashboard
		m.wizard = nil
		return m, nil
	}
	return m, cmd
}

func (m Model) createFromWizard(values wizardValues) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		in := service.CreateProjectInput{
			Title:            strings.TrimSpace(values.Title),
			Client:           strings.TrimSpace(values.Client),
			Description:      strings.TrimSpace(values.Description),
			SkipStarterTasks: !values.Starter,
		}
		if b := strings.TrimSpace(values.Budget); b != "" {
			if v, err := strconv.ParseFloat(b, 64); err == nil {
				in.Budget = &v
			}
		}
		_, err := app.Projects.Create(context.Background(), in)
		return mutationDoneMsg{err: err}
	}
}
