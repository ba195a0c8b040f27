package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matteobrandi/traccia/internal/cli/formatter"
	"github.com/matteobrandi/traccia/internal/service"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectBudgetCmd(app),
		newProjectPauseCmd(app),
		newProjectResumeCmd(app),
		newProjectCompleteCmd(app),
		newProjectRemoveCmd(app),
		newProjectDraftCmd(app),
		newProjectImportCmd(app),
		newProjectExportCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var title, client, description string
	var budget float64
	var noStarterTasks bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.CreateProjectInput{
				Title:            title,
				Client:           client,
				Description:      description,
				SkipStarterTasks: noStarterTasks,
			}
			if cmd.Flags().Changed("budget") {
				in.Budget = &budget
			}

			p, err := app.Projects.Create(context.Background(), in)
			if err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s] with budget %s\n",
				p.Title, p.DisplayID(), formatter.Money(p.TotalBudget))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Total budget in euros")
	cmd.Flags().BoolVar(&noStarterTasks, "no-starter-tasks", false, "Skip the default starter tasks")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Println(formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <project>",
		Short: "Show a project with its tasks",
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
			fmt.Println(formatter.FormatProjectInspect(p))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var title, client, description string

	cmd := &cobra.Command{
		Use:   "update <project>",
		Short: "Update a project's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var in service.ProjectDetails
			if cmd.Flags().Changed("title") {
				in.Title = &title
			}
			if cmd.Flags().Changed("client") {
				in.Client = &client
			}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}

			p, err := app.Projects.UpdateDetails(ctx, id, in)
			if err != nil {
				return err
			}
			fmt.Printf("Updated project %s [%s]\n", p.Title, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&client, "client", "", "New client")
	cmd.Flags().StringVar(&description, "description", "", "New description")

	return cmd
}

func newProjectBudgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "budget <project> <amount>",
		Short: "Set the total budget, splitting it across tasks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var amount float64
			if _, err := fmt.Sscanf(strings.TrimSpace(args[1]), "%f", &amount); err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			p, err := app.Projects.SetBudget(ctx, id, amount)
			if err != nil {
				return err
			}
			fmt.Printf("Budget set to %s across %d tasks\n", formatter.Money(p.TotalBudget), len(p.Tasks))
			return nil
		},
	}
}

func newProjectPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause <project>",
		Short: "Put a project on hold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Pause(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Paused project %s\n", p.Title)
			return nil
		},
	}
}

func newProjectResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume <project>",
		Short: "Resume a paused project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Resume(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Resumed project %s\n", p.Title)
			return nil
		},
	}
}

func newProjectCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <project>",
		Short: "Mark every task done and complete the project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.CompleteAll(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Completed project %s, earned %s\n", p.Title, formatter.Money(p.Earned))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <project>",
		Short: "Delete a project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !force {
				p, err := app.Projects.GetByID(ctx, id)
				if err != nil {
					return err
				}
				fmt.Printf("Delete project %s and its %d tasks? Re-run with --force to confirm.\n",
					p.Title, len(p.Tasks))
				return nil
			}

			if err := app.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Project deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation step")
	return cmd
}
