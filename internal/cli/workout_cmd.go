package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/fitloop/internal/cli/formatter"
	"github.com/alexanderramin/fitloop/internal/config"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/timer"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"w"},
		Short:   "Run workouts and review workout history",
	}

	cmd.AddCommand(
		newWorkoutStartCmd(app),
		newWorkoutHistoryCmd(app),
		newWorkoutRemoveCmd(app),
	)

	return cmd
}

func newWorkoutStartCmd(app *App) *cobra.Command {
	var leadIn int

	cmd := &cobra.Command{
		Use:   "start [PLAN]",
		Short: "Start the interval timer for a plan",
		Long: `Start the interval timer for a plan, chosen by key, name or list number.
Without PLAN an interactive picker is shown.

Keys: space pauses or resumes, s skips the current interval, q ends the
workout early. Finished and abandoned runs are saved to your history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := selectPlan(app, args)
			if err != nil {
				return err
			}

			seconds := app.LeadIn
			if cmd.Flags().Changed("lead-in") {
				if leadIn < 0 || leadIn > config.MaxLeadIn {
					return fmt.Errorf("--lead-in must be between 0 and %d", config.MaxLeadIn)
				}
				seconds = leadIn
			}

			m, err := newWorkoutModel(cmd.Context(), timer.New(timer.WithLeadIn(seconds)), plan, app.Workouts,
				withClock(app.now))
			if err != nil {
				return err
			}
			final, err := app.runProgram(cmd, m)
			if err != nil {
				return fmt.Errorf("running workout: %w", err)
			}
			done, ok := final.(*workoutModel)
			if !ok {
				return fmt.Errorf("running workout: unexpected model %T", final)
			}
			if done.err != nil {
				return fmt.Errorf("saving workout: %w", done.err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunResult(done.result))
			return nil
		},
	}

	cmd.Flags().IntVar(&leadIn, "lead-in", 0, "Countdown seconds before the first exercise (overrides config)")

	return cmd
}

// selectPlan resolves the plan argument, or asks with a picker when none was
// given on an interactive terminal.
func selectPlan(app *App, args []string) (domain.WorkoutPlan, error) {
	if len(args) == 1 {
		return app.Plans.Get(args[0])
	}
	if !app.interactive() {
		return domain.WorkoutPlan{}, errors.New("plan argument required (see 'fitloop plan list')")
	}
	var key string
	form := wizardSelectPlan(app.Plans, &key)
	if form == nil {
		return domain.WorkoutPlan{}, errors.New("no workout plans available")
	}
	if err := form.Run(); err != nil {
		return domain.WorkoutPlan{}, err
	}
	return app.Plans.Get(key)
}

func newWorkoutHistoryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"log", "ls"},
		Short:   "List recorded workouts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.Workouts.History(cmd.Context(), days)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(logs, days, app.now()))
			return nil
		},
	}

	addDaysFlag(cmd.Flags(), &days, 30)

	return cmd
}

func newWorkoutRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a recorded workout (ID prefix accepted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.interactive() {
				confirmed := false
				if err := wizardConfirm("Remove workout "+args[0]+"?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			w, err := app.Workouts.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s workout from %s (%s)\n",
				w.PlanName, w.StartedAt.Local().Format("Jan 2 15:04"), w.ID)
			return nil
		},
	}

	addYesFlag(cmd.Flags(), &yes)

	return cmd
}
