package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matteobrandi/traccia/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show portfolio statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Stats.Snapshot(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatStats(stats))
			return nil
		},
	}
}
