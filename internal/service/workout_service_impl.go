package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fitloop/internal/db"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/repository"
	"github.com/google/uuid"
)

type workoutService struct {
	workouts repository.WorkoutLogRepo
	uow      db.UnitOfWork
	opts     options
}

func NewWorkoutService(workouts repository.WorkoutLogRepo, uow db.UnitOfWork, opts ...Option) WorkoutService {
	return &workoutService{workouts: workouts, uow: uow, opts: buildOptions(opts)}
}

// RecordRun stores a finished run, folds its minutes and calories into the
// day's progress entry and unlocks any achievements it earns, all in one
// transaction. Abandoned runs with no active time are not recorded.
func (s *workoutService) RecordRun(ctx context.Context, run RunRecord) (result *RecordResult, err error) {
	uc := startUseCase(s.opts.observer, "record-workout", map[string]any{
		"plan":      run.Plan.Key,
		"completed": run.Completed,
	})
	defer func() { uc.done(ctx, err) }()

	if run.Plan.Key == "" {
		return nil, fmt.Errorf("%w: run has no plan", ErrInvalidInput)
	}
	if run.ActiveSeconds < 0 || run.ExercisesDone < 0 {
		return nil, fmt.Errorf("%w: negative run counters", ErrInvalidInput)
	}
	if !run.Completed && run.ActiveSeconds == 0 {
		uc.fields["recorded"] = false
		return &RecordResult{}, nil
	}

	total := len(run.Plan.Exercises)
	done := run.ExercisesDone
	if run.Completed || done > total {
		done = total
	}
	status := domain.WorkoutAbandoned
	if run.Completed {
		status = domain.WorkoutCompleted
	}
	now := s.opts.now()
	ended := run.EndedAt
	if ended.IsZero() {
		ended = now
	}

	log := &domain.WorkoutLog{
		ID:             uuid.New().String(),
		PlanKey:        run.Plan.Key,
		PlanName:       run.Plan.DisplayName(),
		Status:         status,
		StartedAt:      run.StartedAt.UTC(),
		EndedAt:        ended.UTC(),
		ActiveSeconds:  run.ActiveSeconds,
		ExercisesDone:  done,
		ExercisesTotal: total,
		Calories:       domain.ScaledCalories(run.Plan.EstimatedCalories, done, total),
		CreatedAt:      now,
	}

	var unlocked []domain.Achievement
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteWorkoutLogRepo(tx).Create(ctx, log); err != nil {
			return err
		}
		if err := addRunToProgress(ctx, repository.NewSQLiteProgressRepo(tx), log, now); err != nil {
			return err
		}
		var err error
		unlocked, err = syncAchievements(ctx, tx, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("recording workout: %w", err)
	}

	uc.fields["recorded"] = true
	uc.fields["unlocked"] = len(unlocked)
	return &RecordResult{Log: log, Unlocked: unlocked}, nil
}

// addRunToProgress adds the run's minutes and calories to the progress
// entry for the day it started on.
func addRunToProgress(ctx context.Context, progress repository.ProgressRepo, log *domain.WorkoutLog, now time.Time) error {
	day := domain.Day(log.StartedAt)
	entry, err := progress.GetByDate(ctx, day)
	if err != nil {
		if !isNotFound(err) {
			return err
		}
		entry = &domain.ProgressEntry{Date: day}
	}
	entry.WorkoutMin += roundMinutes(log.ActiveSeconds)
	entry.CaloriesBurned += log.Calories
	entry.UpdatedAt = now
	return progress.Upsert(ctx, entry)
}

func roundMinutes(seconds int) int {
	return (seconds + 30) / 60
}

func (s *workoutService) History(ctx context.Context, days int) ([]*domain.WorkoutLog, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive", ErrInvalidInput)
	}
	since := domain.Day(s.opts.now()).AddDate(0, 0, -(days - 1))
	return s.workouts.ListSince(ctx, since)
}

// Remove deletes a workout log. Progress entries and unlocked achievements
// are left as they are.
func (s *workoutService) Remove(ctx context.Context, idPrefix string) (log *domain.WorkoutLog, err error) {
	uc := startUseCase(s.opts.observer, "remove-workout", map[string]any{"id": idPrefix})
	defer func() { uc.done(ctx, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteWorkoutLogRepo(tx)
		id, err := repo.ResolveID(ctx, idPrefix)
		if err != nil {
			return err
		}
		if log, err = repo.GetByID(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}
