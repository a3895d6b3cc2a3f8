package cli

import (
	"fmt"

	"github.com/alexanderramin/fitloop/internal/cli/formatter"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "progress",
		Aliases: []string{"p"},
		Short:   "Track daily body and activity metrics",
	}

	cmd.AddCommand(
		newProgressLogCmd(app),
		newProgressListCmd(app),
		newProgressSummaryCmd(app),
		newProgressSeedCmd(app),
	)

	return cmd
}

func newProgressLogCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record metrics for a day (unset flags keep stored values)",
		Example: `  fitloop progress log --weight 182.4 --sleep 7.5 --mood 4
  fitloop progress log --date yesterday --steps 9500 --note "long walk"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(date, app.now())
			if err != nil {
				return err
			}
			patch, err := progressPatchFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to log: set at least one of --weight, --workout-min, --calories, --sleep, --mood, --steps, --water, --note")
			}

			entry, unlocked, err := app.Progress.Log(cmd.Context(), day, patch)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Logged"))
			fmt.Fprint(out, formatter.FormatProgressEntry(entry, app.weightUnit()))
			fmt.Fprint(out, formatter.FormatUnlocked(unlocked))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&date, "date", "", "Day to log (YYYY-MM-DD, today or yesterday; default today)")
	f.Float64("weight", 0, "Body weight")
	f.Int("workout-min", 0, "Workout minutes")
	f.Int("calories", 0, "Calories burned")
	f.Float64("sleep", 0, "Hours slept")
	f.Int("mood", 0, "Mood from 1 (low) to 5 (great)")
	f.Int("steps", 0, "Step count")
	f.Int("water", 0, "Glasses of water")
	f.String("note", "", "Free-form note")

	return cmd
}

// progressPatchFromFlags collects only the flags the user set.
func progressPatchFromFlags(fs *pflag.FlagSet) (service.ProgressPatch, error) {
	var p service.ProgressPatch
	var err error
	if p.Weight, err = changedFloat(fs, "weight"); err != nil {
		return p, err
	}
	if p.WorkoutMin, err = changedInt(fs, "workout-min"); err != nil {
		return p, err
	}
	if p.CaloriesBurned, err = changedInt(fs, "calories"); err != nil {
		return p, err
	}
	if p.SleepHours, err = changedFloat(fs, "sleep"); err != nil {
		return p, err
	}
	if p.Mood, err = changedInt(fs, "mood"); err != nil {
		return p, err
	}
	if p.Steps, err = changedInt(fs, "steps"); err != nil {
		return p, err
	}
	if p.WaterIntake, err = changedInt(fs, "water"); err != nil {
		return p, err
	}
	if p.Note, err = changedString(fs, "note"); err != nil {
		return p, err
	}
	return p, nil
}

func newProgressListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List daily entries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Progress.List(cmd.Context(), days)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgressEntries(entries, app.weightUnit()))
			return nil
		},
	}

	addDaysFlag(cmd.Flags(), &days, 14)

	return cmd
}

func newProgressSummaryCmd(app *App) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarise a week, month or year of entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := domain.ParsePeriod(period)
			if !ok {
				return fmt.Errorf("--period must be week, month or year, got %q", period)
			}
			sum, err := app.Progress.Summary(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(sum, app.weightUnit()))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", string(domain.PeriodWeek), "week, month or year")

	return cmd
}

func newProgressSeedCmd(app *App) *cobra.Command {
	var days int
	var seed int64
	var yes bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill recent days with generated demo entries",
		Long: `Fill the last --days days with generated demo entries: weight trending
down, sleep, mood, steps and workouts on most days. Existing entries for
those days are overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.interactive() {
				confirmed := false
				prompt := fmt.Sprintf("Overwrite progress entries for the last %d days with demo data?", days)
				if err := wizardConfirm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if !cmd.Flags().Changed("seed") {
				seed = app.now().UnixNano()
			}
			n, err := app.Progress.Seed(cmd.Context(), days, seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d days of demo progress.\n", n)
			return nil
		},
	}

	addDaysFlag(cmd.Flags(), &days, 30)
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible data")
	addYesFlag(cmd.Flags(), &yes)

	return cmd
}
