package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/repository"
)

const dashboardRecentLimit = 5

type dashboardService struct {
	workouts     WorkoutService
	logs         repository.WorkoutLogRepo
	progress     repository.ProgressRepo
	goals        GoalService
	achievements AchievementService
	targets      domain.Targets
	opts         options
}

func NewDashboardService(
	workouts WorkoutService,
	logs repository.WorkoutLogRepo,
	progress repository.ProgressRepo,
	goals GoalService,
	achievements AchievementService,
	targets domain.Targets,
	opts ...Option,
) DashboardService {
	return &dashboardService{
		workouts:     workouts,
		logs:         logs,
		progress:     progress,
		goals:        goals,
		achievements: achievements,
		targets:      targets,
		opts:         buildOptions(opts),
	}
}

// Build gathers the last seven days of workouts, the current streak, points,
// goals, the most recent runs and the profile figures measured against the
// configured targets.
func (s *dashboardService) Build(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{Targets: s.targets}

	week, err := s.workouts.History(ctx, 7)
	if err != nil {
		return nil, fmt.Errorf("loading this week's workouts: %w", err)
	}
	for _, w := range week {
		if w.IsCompleted() {
			d.WorkoutsThisWeek++
		}
		d.MinutesThisWeek += roundMinutes(w.ActiveSeconds)
	}

	completed, err := s.logs.ListCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading completed workouts: %w", err)
	}
	d.CurrentStreak = currentStreak(workoutDays(completed), s.opts.now())
	d.WorkoutsCompleted = len(completed)

	if err := s.addProgress(ctx, d); err != nil {
		return nil, err
	}

	if d.TotalPoints, err = s.achievements.TotalPoints(ctx); err != nil {
		return nil, fmt.Errorf("loading achievement points: %w", err)
	}
	if d.Goals, err = s.goals.List(ctx); err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}
	if d.Recent, err = s.logs.ListRecent(ctx, dashboardRecentLimit); err != nil {
		return nil, fmt.Errorf("loading recent workouts: %w", err)
	}
	return d, nil
}

// addProgress fills today's calories, the latest logged weight and the
// number of active days.
func (s *dashboardService) addProgress(ctx context.Context, d *Dashboard) error {
	today, err := s.progress.GetByDate(ctx, domain.Day(s.opts.now()))
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return fmt.Errorf("loading today's progress: %w", err)
	default:
		d.CaloriesToday = today.CaloriesBurned
	}

	entries, err := s.progress.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("loading progress entries: %w", err)
	}
	d.ActiveDays = len(entries)
	for _, e := range entries {
		if e.Weight > 0 {
			d.LatestWeight = e.Weight
		}
	}
	return nil
}
