package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matteobrandi/traccia/internal/cli/formatter"
)

func newGoalsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "Show the revenue goal ladder",
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, revenue, err := app.Goals.Overview(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatGoalLadder(statuses, revenue))
			return nil
		},
	}
}
