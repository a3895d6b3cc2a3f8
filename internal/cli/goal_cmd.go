package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/fitloop/internal/cli/formatter"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "Set and track fitness goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalUpdateCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var d goalDraft
	var target, current float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal (interactive when --title is omitted)",
		Example: `  fitloop goal add --title "Run 50 miles" --type distance --target 50 --unit miles --deadline 2025-09-01
  fitloop goal add`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if d.Title == "" {
				if !app.interactive() {
					return errors.New("--title and --target are required")
				}
				if err := wizardGoal(&d).Run(); err != nil {
					return err
				}
			} else {
				if !cmd.Flags().Changed("target") {
					return errors.New("--target is required")
				}
				d.Target = strconv.FormatFloat(target, 'f', -1, 64)
				d.Current = strconv.FormatFloat(current, 'f', -1, 64)
			}

			g, err := d.toGoal()
			if err != nil {
				return err
			}
			if err := app.Goals.Add(cmd.Context(), g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %s (%s)\n", formatter.Bold(g.Title), g.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&d.Title, "title", "", "Goal title")
	f.StringVar(&d.Type, "type", string(domain.GoalCustom), "weight, consistency, distance or custom")
	f.Float64Var(&target, "target", 0, "Target value")
	f.Float64Var(&current, "current", 0, "Current value")
	f.StringVar(&d.Unit, "unit", "", "Unit label, e.g. lbs or miles")
	f.StringVar(&d.Deadline, "deadline", "", "Deadline (YYYY-MM-DD)")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals with their progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Goals.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoals(views))
			return nil
		},
	}
}

func newGoalUpdateCmd(app *App) *cobra.Command {
	var current float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Set a goal's current value (ID prefix accepted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("current") {
				return errors.New("--current is required")
			}
			view, err := app.Goals.UpdateProgress(cmd.Context(), args[0], current)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalView(*view))
			return nil
		},
	}

	cmd.Flags().Float64Var(&current, "current", 0, "New current value")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a goal (ID prefix accepted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.interactive() {
				confirmed := false
				if err := wizardConfirm("Remove goal "+args[0]+"?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			g, err := app.Goals.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed goal %s (%s)\n", g.Title, g.ID)
			return nil
		},
	}

	addYesFlag(cmd.Flags(), &yes)

	return cmd
}
