package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matteobrandi/traccia/internal/cli/formatter"
	"github.com/matteobrandi/traccia/internal/importer"
)

func newProjectImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Create a project from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := importer.LoadProjectFile(args[0])
			if err != nil {
				return err
			}

			if errs := importer.ValidateProjectFile(pf); len(errs) > 0 {
				var sb strings.Builder
				sb.WriteString(fmt.Sprintf("%d validation error(s) in %s:\n", len(errs), args[0]))
				for _, e := range errs {
					sb.WriteString("  - " + e.Error() + "\n")
				}
				return fmt.Errorf("%s", strings.TrimRight(sb.String(), "\n"))
			}

			p, err := app.Projects.Import(context.Background(), importer.Convert(pf))
			if err != nil {
				return err
			}

			fmt.Printf("Imported project %s [%s] with %d tasks and budget %s\n",
				p.Title, p.DisplayID(), len(p.Tasks), formatter.Money(p.TotalBudget))
			return nil
		},
	}
}

func newProjectExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <project>",
		Short: "Write a project to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}

			pf := importer.Export(p)
			if out == "" {
				out = fmt.Sprintf("%s.json", p.DisplayID())
			}
			if err := importer.SaveProjectFile(out, pf); err != nil {
				return err
			}
			fmt.Printf("Exported project %s to %s\n", p.Title, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output path (defaults to <id>.json)")
	return cmd
}
