package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/matteobrandi/traccia/internal/cli"
	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/goals"
)

type mode int

const (
	modeDashboard mode = iota
	modeWizard
)

type pane int

const (
	paneProjects pane = iota
	paneTasks
)

// dashboardData holds everything the dashboard renders.
type dashboardData struct {
	projects []*domain.Project
	statuses []goals.Status
	revenue  int
}

type dataLoadedMsg struct {
	data dashboardData
	err  error
}

type mutationDoneMsg struct {
	err error
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Switch  key.Binding
	Toggle  key.Binding
	New     key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle task")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new project")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	app  *cli.App
	keys keyMap

	mode    mode
	focus   pane
	data    dashboardData
	loading bool
	err     error

	cursor     int
	taskCursor int

	wizard       *huh.Form
	wizardValues *wizardValues

	width  int
	height int
}

// NewModel builds the dashboard model against the given app services.
func NewModel(app *cli.App) Model {
	return Model{
		app:     app,
		keys:    defaultKeyMap(),
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadData()
}

func (m Model) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()

		projects, err := app.Projects.List(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		statuses, revenue, err := app.Goals.Overview(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{data: dashboardData{
			projects: projects,
			statuses: statuses,
			revenue:  revenue,
		}}
	}
}

func (m Model) selected() *domain.Project {
	if m.cursor < 0 || m.cursor >= len(m.data.projects) {
		return nil
	}
	return m.data.projects[m.cursor]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode == modeWizard && m.wizard != nil {
			form, cmd := m.wizard.Update(msg)
			m.wizard = form.(*huh.Form)
			return m, cmd
		}
		return m, nil

	case dataLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.data = msg.data
			if m.cursor >= len(m.data.projects) {
				m.cursor = len(m.data.projects) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.clampTaskCursor()
		}
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.loadData()

	case tea.KeyMsg:
		if m.mode == modeWizard {
			return m.updateWizard(msg)
		}
		return m.handleDashboardKey(msg)
	}

	if m.mode == modeWizard && m.wizard != nil {
		form, cmd := m.wizard.Update(msg)
		m.wizard = form.(*huh.Form)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadData()

	case key.Matches(msg, m.keys.New):
		return m.startWizard()

	case key.Matches(msg, m.keys.Switch):
		if m.focus == paneProjects {
			m.focus = paneTasks
		} else {
			m.focus = paneProjects
		}
		m.clampTaskCursor()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.focus == paneProjects {
			if m.cursor > 0 {
				m.cursor--
			}
			m.taskCursor = 0
		} else if m.taskCursor > 0 {
			m.taskCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.focus == paneProjects {
			if m.cursor < len(m.data.projects)-1 {
				m.cursor++
			}
			m.taskCursor = 0
		} else if p := m.selected(); p != nil && m.taskCursor < len(p.Tasks)-1 {
			m.taskCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.focus != paneTasks {
			m.focus = paneTasks
			m.clampTaskCursor()
			return m, nil
		}
		return m, m.toggleSelectedTask()
	}
	return m, nil
}

func (m *Model) clampTaskCursor() {
	p := m.selected()
	if p == nil || len(p.Tasks) == 0 {
		m.taskCursor = 0
		return
	}
	if m.taskCursor >= len(p.Tasks) {
		m.taskCursor = len(p.Tasks) - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
}

func (m Model) toggleSelectedTask() tea.Cmd {
	p := m.selected()
	if p == nil || m.taskCursor >= len(p.Tasks) {
		return nil
	}
	app := m.app
	projectID := p.ID
	taskID := p.Tasks[m.taskCursor].ID
	return func() tea.Msg {
		_, err := app.Tasks.Toggle(context.Background(), projectID, taskID)
		return mutationDoneMsg{err: err}
	}
}
