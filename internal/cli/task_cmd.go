package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matteobrandi/traccia/internal/cli/formatter"
	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/service"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks within a project",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskToggleCmd(app),
		newTaskRenameCmd(app),
		newTaskPriceCmd(app),
		newTaskHoursCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

// withTask resolves the project and task arguments, then runs fn.
func withTask(app *App, projectArg, taskArg string, fn func(ctx context.Context, projectID, taskID string) (*domain.Project, error)) error {
	ctx := context.Background()
	projectID, err := resolveProjectID(ctx, app, projectArg)
	if err != nil {
		return err
	}
	p, err := app.Projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	taskID, err := resolveTaskID(p, taskArg)
	if err != nil {
		return err
	}
	updated, err := fn(ctx, projectID, taskID)
	if err != nil {
		return err
	}
	fmt.Println(formatter.FormatProjectInspect(updated))
	return nil
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name string
	var price, hours float64

	cmd := &cobra.Command{
		Use:   "add <project>",
		Short: "Add a task to a project",
		Long: `Add a task. With --price the budget grows by that amount; without it
the new task joins the existing budget allocation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			p, err := app.Tasks.Add(ctx, projectID, service.AddTaskInput{
				Name:  name,
				Price: price,
				Hours: hours,
			})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjectInspect(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().Float64Var(&price, "price", 0, "Task price in euros")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTaskToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <project> <task>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTask(app, args[0], args[1], func(ctx context.Context, projectID, taskID string) (*domain.Project, error) {
				return app.Tasks.Toggle(ctx, projectID, taskID)
			})
		},
	}
}

func newTaskRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <project> <task> <name>",
		Short: "Rename a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTask(app, args[0], args[1], func(ctx context.Context, projectID, taskID string) (*domain.Project, error) {
				return app.Tasks.Rename(ctx, projectID, taskID, args[2])
			})
		},
	}
}

func newTaskPriceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "price <project> <task> <amount>",
		Short: "Set a task's price; the project total follows",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			return withTask(app, args[0], args[1], func(ctx context.Context, projectID, taskID string) (*domain.Project, error) {
				return app.Tasks.EditPrice(ctx, projectID, taskID, amount)
			})
		},
	}
}

func newTaskHoursCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hours <project> <task> <hours>",
		Short: "Set a task's estimated hours",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			return withTask(app, args[0], args[1], func(ctx context.Context, projectID, taskID string) (*domain.Project, error) {
				return app.Tasks.EditHours(ctx, projectID, taskID, hours)
			})
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <project> <task>",
		Short: "Remove a task, reallocating its price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTask(app, args[0], args[1], func(ctx context.Context, projectID, taskID string) (*domain.Project, error) {
				return app.Tasks.Remove(ctx, projectID, taskID)
			})
		},
	}
}
