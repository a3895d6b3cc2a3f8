package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/fitloop/internal/db"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/repository"
)

// Achievements lists every badge in display order.
var Achievements = []domain.Achievement{
	{ID: "first_workout", Title: "First Workout", Description: "Complete your first workout", Points: 10, Target: 1, Unit: "workouts"},
	{ID: "first_week", Title: "First Week Complete", Description: "Complete 5 workouts within 7 days", Points: 50, Target: 5, Unit: "workouts"},
	{ID: "streak_7", Title: "Seven Day Streak", Description: "Work out 7 days in a row", Points: 100, Target: 7, Unit: "days"},
	{ID: "calorie_burner", Title: "Calorie Burner", Description: "Burn 10,000 total calories", Points: 100, Target: 10000, Unit: "kcal"},
	{ID: "weight_loss_champion", Title: "Weight Loss Champion", Description: "Lose 10 units of body weight", Points: 150, Target: 10, Unit: "lbs"},
	{ID: "century", Title: "Century Club", Description: "Complete 100 workouts", Points: 200, Target: 100, Unit: "workouts"},
}

// achievementProgress measures each badge against the user's history.
func achievementProgress(completed []*domain.WorkoutLog, entries []*domain.ProgressEntry) map[string]float64 {
	var calories int
	var firstWeight, lastWeight float64
	for _, e := range entries {
		calories += e.CaloriesBurned
		if e.Weight > 0 {
			if firstWeight == 0 {
				firstWeight = e.Weight
			}
			lastWeight = e.Weight
		}
	}
	lost := firstWeight - lastWeight
	if lost < 0 {
		lost = 0
	}

	return map[string]float64{
		"first_workout":        float64(len(completed)),
		"first_week":           float64(maxInWindow(completed, 7*24*time.Hour)),
		"streak_7":             float64(longestStreak(workoutDays(completed))),
		"calorie_burner":       float64(calories),
		"weight_loss_champion": lost,
		"century":              float64(len(completed)),
	}
}

// maxInWindow returns the most workouts started within any window of the
// given length. logs must be sorted oldest first.
func maxInWindow(logs []*domain.WorkoutLog, window time.Duration) int {
	best, lo := 0, 0
	for hi := range logs {
		for logs[hi].StartedAt.Sub(logs[lo].StartedAt) >= window {
			lo++
		}
		if n := hi - lo + 1; n > best {
			best = n
		}
	}
	return best
}

// workoutDays returns the distinct UTC days with a workout, ascending.
func workoutDays(logs []*domain.WorkoutLog) []time.Time {
	seen := make(map[time.Time]bool, len(logs))
	days := make([]time.Time, 0, len(logs))
	for _, w := range logs {
		d := domain.Day(w.StartedAt)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func longestStreak(days []time.Time) int {
	best, run := 0, 0
	for i, d := range days {
		if i > 0 && d.Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// currentStreak counts consecutive workout days ending today, or ending
// yesterday when today has no workout yet.
func currentStreak(days []time.Time, now time.Time) int {
	if len(days) == 0 {
		return 0
	}
	today := domain.Day(now)
	last := days[len(days)-1]
	if last.Before(today.AddDate(0, 0, -1)) {
		return 0
	}
	run := 1
	for i := len(days) - 1; i > 0; i-- {
		if days[i].Sub(days[i-1]) != 24*time.Hour {
			break
		}
		run++
	}
	return run
}

// syncAchievements unlocks every badge whose target is now met, using
// repositories bound to conn. It returns the badges unlocked by this call.
func syncAchievements(ctx context.Context, conn db.DBTX, now time.Time) ([]domain.Achievement, error) {
	completed, err := repository.NewSQLiteWorkoutLogRepo(conn).ListCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading completed workouts: %w", err)
	}
	entries, err := repository.NewSQLiteProgressRepo(conn).ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading progress entries: %w", err)
	}

	progress := achievementProgress(completed, entries)
	achievements := repository.NewSQLiteAchievementRepo(conn)

	var unlocked []domain.Achievement
	for _, a := range Achievements {
		if progress[a.ID] < a.Target {
			continue
		}
		isNew, err := achievements.Unlock(ctx, a.ID, now)
		if err != nil {
			return nil, err
		}
		if isNew {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked, nil
}

type achievementService struct {
	workouts     repository.WorkoutLogRepo
	progress     repository.ProgressRepo
	achievements repository.AchievementRepo
	opts         options
}

func NewAchievementService(
	workouts repository.WorkoutLogRepo,
	progress repository.ProgressRepo,
	achievements repository.AchievementRepo,
	opts ...Option,
) AchievementService {
	return &achievementService{
		workouts:     workouts,
		progress:     progress,
		achievements: achievements,
		opts:         buildOptions(opts),
	}
}

func (s *achievementService) List(ctx context.Context) ([]domain.AchievementStatus, error) {
	completed, err := s.workouts.ListCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading completed workouts: %w", err)
	}
	entries, err := s.progress.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading progress entries: %w", err)
	}
	unlockedAt, err := s.achievements.ListUnlocked(ctx)
	if err != nil {
		return nil, err
	}

	progress := achievementProgress(completed, entries)
	out := make([]domain.AchievementStatus, 0, len(Achievements))
	for _, a := range Achievements {
		st := domain.AchievementStatus{Achievement: a, Progress: progress[a.ID]}
		if at, ok := unlockedAt[a.ID]; ok {
			st.Unlocked = true
			st.UnlockedAt = &at
		}
		out = append(out, st)
	}
	return out, nil
}

func (s *achievementService) TotalPoints(ctx context.Context) (int, error) {
	unlockedAt, err := s.achievements.ListUnlocked(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, a := range Achievements {
		if _, ok := unlockedAt[a.ID]; ok {
			total += a.Points
		}
	}
	return total, nil
}
