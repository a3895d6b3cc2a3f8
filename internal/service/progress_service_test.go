package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressLog_MergesWithExistingEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.progress.Log(ctx, env.now, ProgressPatch{WorkoutMin: ptr(30), CaloriesBurned: ptr(300)})
	require.NoError(t, err)

	entry, _, err := env.progress.Log(ctx, env.now, ProgressPatch{Weight: ptr(182.4), Note: ptr("felt strong")})
	require.NoError(t, err)
	assert.Equal(t, 182.4, entry.Weight)
	assert.Equal(t, 30, entry.WorkoutMin, "unset fields keep their stored value")
	assert.Equal(t, 300, entry.CaloriesBurned)
	assert.Equal(t, "felt strong", entry.Note)
}

func TestProgressLog_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.progress.Log(ctx, env.now, ProgressPatch{Mood: ptr(9)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = env.progress.Log(ctx, env.now.AddDate(0, 0, 1), ProgressPatch{Weight: ptr(180.0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	all, err := env.progressRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "rejected entries are not stored")
}

func TestProgressLog_UnlocksCalorieBurner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, unlocked, err := env.progress.Log(ctx, env.now.AddDate(0, 0, -1), ProgressPatch{CaloriesBurned: ptr(6000)})
	require.NoError(t, err)
	assert.Empty(t, unlocked)

	_, unlocked, err = env.progress.Log(ctx, env.now, ProgressPatch{CaloriesBurned: ptr(4000)})
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "calorie_burner", unlocked[0].ID)
}

func TestProgressSummary_Week(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Outside the 7-day window.
	require.NoError(t, env.progressRepo.Upsert(ctx, testutil.NewTestEntry(env.now.AddDate(0, 0, -7), testutil.WithWeight(200))))

	require.NoError(t, env.progressRepo.Upsert(ctx, testutil.NewTestEntry(env.now.AddDate(0, 0, -6),
		testutil.WithWeight(184), testutil.WithWorkoutMin(40), testutil.WithCaloriesBurned(400), testutil.WithMood(3))))
	require.NoError(t, env.progressRepo.Upsert(ctx, testutil.NewTestEntry(env.now.AddDate(0, 0, -3),
		testutil.WithWeight(183), testutil.WithMood(4))))
	require.NoError(t, env.progressRepo.Upsert(ctx, testutil.NewTestEntry(env.now,
		testutil.WithWeight(182), testutil.WithWorkoutMin(30), testutil.WithCaloriesBurned(250), testutil.WithMood(5))))

	sum, err := env.progress.Summary(ctx, domain.PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodWeek, sum.Period)
	assert.Equal(t, "2025-06-09", sum.From.Format(domain.DateLayout))
	assert.Equal(t, "2025-06-15", sum.To.Format(domain.DateLayout))
	assert.Equal(t, 3, sum.Entries)
	assert.Equal(t, 183.0, sum.AvgWeight)
	assert.Equal(t, -2.0, sum.WeightChange)
	assert.Equal(t, 70, sum.TotalWorkout)
	assert.Equal(t, 650, sum.TotalCalories)
	assert.Equal(t, 4.0, sum.AvgMood)
	assert.Equal(t, 7.5, sum.AvgSleep)
	assert.Equal(t, 8000.0, sum.AvgSteps)
	assert.Equal(t, 2, sum.ActiveDays)
	assert.Equal(t, 28.6, sum.ConsistencyPct)
}

func TestProgressSummary_EmptyAndUnknownPeriod(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sum, err := env.progress.Summary(ctx, domain.PeriodMonth)
	require.NoError(t, err)
	assert.Zero(t, sum.Entries)
	assert.Zero(t, sum.AvgWeight)

	_, err = env.progress.Summary(ctx, domain.Period("decade"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProgressSeed_GeneratesTrendingData(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	n, err := env.progress.Seed(ctx, 30, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	entries, err := env.progress.List(ctx, 30)
	require.NoError(t, err)
	require.Len(t, entries, 30)

	first, last := entries[0], entries[len(entries)-1]
	assert.Equal(t, "2025-05-17", first.Date.Format(domain.DateLayout))
	assert.Equal(t, "2025-06-15", last.Date.Format(domain.DateLayout))
	assert.InDelta(t, 185, first.Weight, 0.3)
	assert.Less(t, last.Weight, first.Weight-8)
	for _, e := range entries {
		assert.NoError(t, e.Validate())
		assert.GreaterOrEqual(t, e.Mood, 1)
	}

	// 29 days at 0.3/day is about 8.7 lost, short of weight_loss_champion.
	statuses, err := env.achievements.List(ctx)
	require.NoError(t, err)
	for _, st := range statuses {
		if st.ID == "weight_loss_champion" {
			assert.False(t, st.Unlocked)
			assert.InDelta(t, 8.7, st.Progress, 0.6)
		}
	}
}

func TestProgressSeed_Deterministic(t *testing.T) {
	a := newTestEnv(t)
	b := newTestEnv(t)
	ctx := context.Background()

	_, err := a.progress.Seed(ctx, 10, 99)
	require.NoError(t, err)
	_, err = b.progress.Seed(ctx, 10, 99)
	require.NoError(t, err)

	ea, err := a.progressRepo.ListAll(ctx)
	require.NoError(t, err)
	eb, err := b.progressRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, ea, 10)
	for i := range ea {
		assert.Equal(t, ea[i].Weight, eb[i].Weight)
		assert.Equal(t, ea[i].WorkoutMin, eb[i].WorkoutMin)
	}

	_, err = a.progress.Seed(ctx, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
