package cli

import (
	"time"

	"github.com/alexanderramin/fitloop/internal/catalog"
	"github.com/alexanderramin/fitloop/internal/config"
	"github.com/alexanderramin/fitloop/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the plan catalog, the services and the settings used by CLI
// commands.
type App struct {
	Plans        *catalog.Catalog
	Workouts     service.WorkoutService
	Progress     service.ProgressService
	Goals        service.GoalService
	Achievements service.AchievementService
	Dashboard    service.DashboardService

	LeadIn      int
	WeightUnit  string
	ProfileName string

	// IsInteractive reports whether huh forms may prompt on stdin.
	IsInteractive func() bool
	// RunProgram runs a bubbletea model to completion and returns its final
	// state. Tests replace it with a synchronous driver.
	RunProgram func(cmd *cobra.Command, m tea.Model) (tea.Model, error)
	// Now is the clock used for relative dates. Defaults to time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) weightUnit() string {
	if a.WeightUnit == "" {
		return config.UnitLbs
	}
	return a.WeightUnit
}

func (a *App) runProgram(cmd *cobra.Command, m tea.Model) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(cmd, m)
	}
	// Signals reach the model through the command context, which main
	// cancels on SIGINT/SIGTERM, so the model can save the run first.
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	return p.Run()
}

// NewRootCmd creates the top-level "fitloop" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fitloop",
		Short:         "Interval workout timer and fitness tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newWorkoutCmd(app),
		newProgressCmd(app),
		newGoalCmd(app),
		newAchievementsCmd(app),
		newDashboardCmd(app),
		newProfileCmd(app),
		newAskCmd(),
	)

	return root
}
