package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matteobrandi/traccia/internal/cli/formatter"
	"github.com/matteobrandi/traccia/internal/domain"
)

var (
	errTitleRequired = errors.New("a title is required")
	errBudgetNumeric = errors.New("budget must be a number")
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(0, 1)

	paneFocusStyle = paneStyle.
			BorderForeground(formatter.ColorHeader)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(formatter.ColorHeader).
				Bold(true)
)

func (m Model) View() string {
	if m.mode == modeWizard && m.wizard != nil {
		return formatter.Header("New project") + "\n\n" + m.wizard.View()
	}

	if m.loading {
		return formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Traccia") + "\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("error: "+m.err.Error()) + "\n")
	}

	left := m.renderProjectPane()
	right := m.renderTaskPane()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")
	b.WriteString(m.renderGoals())
	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func (m Model) renderProjectPane() string {
	var b strings.Builder
	b.WriteString(formatter.Bold("Projects") + "\n")

	if len(m.data.projects) == 0 {
		b.WriteString(formatter.Dim("none yet, press n"))
	}
	for i, p := range m.data.projects {
		line := fmt.Sprintf("%s %s %s",
			formatter.StatusPill(p.Status),
			p.Title,
			formatter.Dim(formatter.Money(p.TotalBudget)))
		if i == m.cursor {
			line = selectedRowStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	style := paneStyle
	if m.focus == paneProjects {
		style = paneFocusStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderTaskPane() string {
	var b strings.Builder
	p := m.selected()

	if p == nil {
		b.WriteString(formatter.Dim("no project selected"))
	} else {
		b.WriteString(formatter.Bold(p.Title) + "  " + formatter.RenderProgress(p.CompletionPct/100, 12) + "\n")
		b.WriteString(fmt.Sprintf("%s / %s earned\n\n",
			formatter.StyleGreen.Render(formatter.Money(p.Earned)),
			formatter.Money(p.TotalBudget)))
		b.WriteString(m.renderTasks(p))
	}

	style := paneStyle
	if m.focus == paneTasks {
		style = paneFocusStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderTasks(p *domain.Project) string {
	if len(p.Tasks) == 0 {
		return formatter.Dim("no tasks")
	}

	var b strings.Builder
	for i, t := range p.Tasks {
		name := t.Name
		if t.Completed {
			name = formatter.StyleDim.Strikethrough(true).Render(t.Name)
		}
		line := fmt.Sprintf("%s %s %s",
			formatter.TaskMark(t.Completed),
			name,
			formatter.StyleYellow.Render(formatter.Money(t.Price)))
		if m.focus == paneTasks && i == m.taskCursor {
			line = selectedRowStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) renderGoals() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s   ",
		formatter.Dim("revenue"),
		formatter.StyleGreen.Render(formatter.Money(m.data.revenue))))

	for _, s := range m.data.statuses {
		mark := formatter.StyleDim.Render("○")
		if s.Achieved {
			mark = formatter.StyleGreen.Render("●")
		}
		b.WriteString(fmt.Sprintf("%s %s  ", mark, formatter.Dim(formatter.Money(s.Goal.Target))))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	parts := []string{
		"↑/↓ move", "tab pane", "space toggle", "n new", "r refresh", "q quit",
	}
	return formatter.Dim(strings.Join(parts, " · "))
}
