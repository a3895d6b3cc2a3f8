package cli

import (
	"fmt"

	"github.com/alexanderramin/fitloop/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Aliases: []string{"plans"},
		Short:   "Browse workout plans",
	}

	cmd.AddCommand(
		newPlanListCmd(app),
		newPlanShowCmd(app),
	)

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available workout plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(app.Plans.List()))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PLAN",
		Short: "Show the exercises of a plan (by key, name or list number)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlanDetail(plan, app.LeadIn))
			return nil
		},
	}
}
