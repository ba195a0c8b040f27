package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTuiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.RunTUI == nil {
				return fmt.Errorf("interactive dashboard is not available in this build")
			}
			return app.RunTUI(app)
		},
	}
}
