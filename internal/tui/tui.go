// Package tui implements the interactive dashboard built on bubbletea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matteobrandi/traccia/internal/cli"
)

// Run starts the dashboard and blocks until the user quits.
func Run(app *cli.App) error {
	p := tea.NewProgram(NewModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
