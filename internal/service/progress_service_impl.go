package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/fitloop/internal/db"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/repository"
	"github.com/brianvoe/gofakeit/v6"
)

type progressService struct {
	progress repository.ProgressRepo
	uow      db.UnitOfWork
	opts     options
}

func NewProgressService(progress repository.ProgressRepo, uow db.UnitOfWork, opts ...Option) ProgressService {
	return &progressService{progress: progress, uow: uow, opts: buildOptions(opts)}
}

// Log applies patch to the entry for date, creating it if needed, and
// unlocks achievements the new values earn.
func (s *progressService) Log(ctx context.Context, date time.Time, patch ProgressPatch) (entry *domain.ProgressEntry, unlocked []domain.Achievement, err error) {
	day := domain.Day(date)
	uc := startUseCase(s.opts.observer, "log-progress", map[string]any{"date": day.Format(domain.DateLayout)})
	defer func() { uc.done(ctx, err) }()

	now := s.opts.now()
	if day.After(domain.Day(now)) {
		return nil, nil, fmt.Errorf("%w: cannot log progress for a future date", ErrInvalidInput)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProgressRepo(tx)
		existing, err := repo.GetByDate(ctx, day)
		switch {
		case err == nil:
			entry = existing
		case isNotFound(err):
			entry = &domain.ProgressEntry{Date: day}
		default:
			return err
		}

		patch.apply(entry)
		entry.UpdatedAt = now
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := repo.Upsert(ctx, entry); err != nil {
			return err
		}
		unlocked, err = syncAchievements(ctx, tx, now)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return entry, unlocked, nil
}

func (p ProgressPatch) apply(e *domain.ProgressEntry) {
	if p.Weight != nil {
		e.Weight = *p.Weight
	}
	if p.WorkoutMin != nil {
		e.WorkoutMin = *p.WorkoutMin
	}
	if p.CaloriesBurned != nil {
		e.CaloriesBurned = *p.CaloriesBurned
	}
	if p.SleepHours != nil {
		e.SleepHours = *p.SleepHours
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.Steps != nil {
		e.Steps = *p.Steps
	}
	if p.WaterIntake != nil {
		e.WaterIntake = *p.WaterIntake
	}
	if p.Note != nil {
		e.Note = *p.Note
	}
}

// IsEmpty reports whether the patch would change nothing.
func (p ProgressPatch) IsEmpty() bool {
	return p.Weight == nil && p.WorkoutMin == nil && p.CaloriesBurned == nil &&
		p.SleepHours == nil && p.Mood == nil && p.Steps == nil &&
		p.WaterIntake == nil && p.Note == nil
}

func (s *progressService) List(ctx context.Context, days int) ([]*domain.ProgressEntry, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive", ErrInvalidInput)
	}
	to := domain.Day(s.opts.now())
	return s.progress.ListRange(ctx, to.AddDate(0, 0, -(days-1)), to)
}

func (s *progressService) Summary(ctx context.Context, period domain.Period) (*domain.ProgressSummary, error) {
	if _, ok := domain.ParsePeriod(string(period)); !ok {
		return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, period)
	}
	days := period.Days()
	to := domain.Day(s.opts.now())
	from := to.AddDate(0, 0, -(days - 1))
	entries, err := s.progress.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("loading progress entries: %w", err)
	}
	sum := summarize(entries, days)
	sum.Period = period
	sum.From = from
	sum.To = to
	return &sum, nil
}

// summarize averages each metric over the entries that recorded it.
func summarize(entries []*domain.ProgressEntry, days int) domain.ProgressSummary {
	sum := domain.ProgressSummary{Entries: len(entries)}

	var weightSum, sleepSum float64
	var weightN, sleepN, moodSum, moodN, stepsSum, stepsN int
	var firstWeight, lastWeight float64
	for _, e := range entries {
		if e.Weight > 0 {
			weightSum += e.Weight
			weightN++
			if firstWeight == 0 {
				firstWeight = e.Weight
			}
			lastWeight = e.Weight
		}
		if e.SleepHours > 0 {
			sleepSum += e.SleepHours
			sleepN++
		}
		if e.Mood > 0 {
			moodSum += e.Mood
			moodN++
		}
		if e.Steps > 0 {
			stepsSum += e.Steps
			stepsN++
		}
		if e.WorkoutMin > 0 {
			sum.ActiveDays++
		}
		sum.TotalWorkout += e.WorkoutMin
		sum.TotalCalories += e.CaloriesBurned
	}

	if weightN > 0 {
		sum.AvgWeight = round1(weightSum / float64(weightN))
		sum.WeightChange = round1(lastWeight - firstWeight)
	}
	if sleepN > 0 {
		sum.AvgSleep = round1(sleepSum / float64(sleepN))
	}
	if moodN > 0 {
		sum.AvgMood = round1(float64(moodSum) / float64(moodN))
	}
	if stepsN > 0 {
		sum.AvgSteps = math.Round(float64(stepsSum) / float64(stepsN))
	}
	if days > 0 {
		sum.ConsistencyPct = round1(float64(sum.ActiveDays) / float64(days) * 100)
	}
	return sum
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Seed writes demo entries for the last days days ending today: weight
// drifting down about 0.3 per day from 185, and a workout on roughly 70% of
// days. Existing entries are overwritten.
func (s *progressService) Seed(ctx context.Context, days int, seed int64) (n int, err error) {
	uc := startUseCase(s.opts.observer, "seed-progress", map[string]any{"days": days})
	defer func() { uc.done(ctx, err) }()

	if days <= 0 || days > 366 {
		return 0, fmt.Errorf("%w: days must be between 1 and 366", ErrInvalidInput)
	}

	faker := gofakeit.New(seed)
	now := s.opts.now()
	start := domain.Day(now).AddDate(0, 0, -(days - 1))

	entries := make([]*domain.ProgressEntry, 0, days)
	for i := 0; i < days; i++ {
		e := &domain.ProgressEntry{
			Date:        start.AddDate(0, 0, i),
			Weight:      round1(185 - float64(i)*0.3 + faker.Float64Range(-0.25, 0.25)),
			SleepHours:  round1(faker.Float64Range(6.5, 8.5)),
			Mood:        faker.Number(1, 5),
			Steps:       faker.Number(2000, 12000),
			WaterIntake: faker.Number(3, 10),
			UpdatedAt:   now,
		}
		if faker.Float64Range(0, 1) < 0.7 {
			e.WorkoutMin = faker.Number(20, 90)
			e.CaloriesBurned = faker.Number(150, 800)
		}
		if i%7 == 0 {
			e.Note = faker.Sentence(5)
		}
		entries = append(entries, e)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProgressRepo(tx)
		for _, e := range entries {
			if err := repo.Upsert(ctx, e); err != nil {
				return err
			}
		}
		_, err := syncAchievements(ctx, tx, now)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("seeding progress: %w", err)
	}
	return len(entries), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
