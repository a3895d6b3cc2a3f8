package cli

import (
	"fmt"

	"github.com/alexanderramin/fitloop/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAchievementsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"badges"},
		Short:   "Show achievements and points",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := app.Achievements.List(cmd.Context())
			if err != nil {
				return err
			}
			points, err := app.Achievements.TotalPoints(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAchievements(statuses, points))
			return nil
		},
	}
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"status"},
		Short:   "Show this week's activity, streak, goals and recent workouts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Dashboard.Build(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(d, app.weightUnit(), app.now()))
			return nil
		},
	}
}

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your targets and lifetime stats",
		Long: `Show your name, weekly workout, daily calorie and weight targets, and
lifetime stats. Targets are set in the profile section of the config file
or with FITLOOP_WEEKLY_WORKOUTS, FITLOOP_DAILY_CALORIES and
FITLOOP_TARGET_WEIGHT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Dashboard.Build(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(d, app.ProfileName, app.weightUnit()))
			return nil
		},
	}
}
