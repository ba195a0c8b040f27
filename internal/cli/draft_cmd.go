package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matteobrandi/traccia/internal/cli/formatter"
)

func newProjectDraftCmd(app *App) *cobra.Command {
	var accept bool

	cmd := &cobra.Command{
		Use:   "draft <brief...>",
		Short: "Draft a project from a short brief",
		Long: `Draft a project from a free-form brief. Without --accept the draft is
only shown for review; with --accept it is persisted as a real project.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			brief := strings.Join(args, " ")

			app.Log.Debug().Str("brief", brief).Msg("requesting project draft")
			draft, err := app.Drafts.Draft(ctx, brief)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatDraft(draft))

			if !accept {
				fmt.Println("Re-run with --accept to create this project.")
				return nil
			}

			p, err := app.Drafts.CreateFromDraft(ctx, draft)
			if err != nil {
				return err
			}
			fmt.Printf("Created project %s [%s] with budget %s\n",
				p.Title, p.DisplayID(), formatter.Money(p.TotalBudget))
			return nil
		},
	}

	cmd.Flags().BoolVar(&accept, "accept", false, "Persist the draft as a project")
	return cmd
}
