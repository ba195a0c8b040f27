package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/matteobrandi/traccia/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Tasks    service.TaskService
	Goals    service.GoalService
	Stats    service.StatsService
	Drafts   service.DraftService
	Log      zerolog.Logger

	// RunTUI launches the interactive dashboard. It is injected by the
	// entry point to keep the dashboard package out of this one.
	RunTUI func(*App) error
}

// NewRootCmd creates the top-level "traccia" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "traccia",
		Short: "Freelance project, budget and revenue-goal tracker",
	}

	root.AddCommand(
		newProjectCmd(app),
		newTaskCmd(app),
		newGoalsCmd(app),
		newStatsCmd(app),
		newConfigCmd(app),
		newTuiCmd(app),
	)

	return root
}
