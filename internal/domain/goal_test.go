package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func testGoal(current float64, start time.Time, deadline *time.Time) *Goal {
	return &Goal{
		Title:     "Running Distance",
		Type:      GoalDistance,
		Target:    50,
		Current:   current,
		Unit:      "miles",
		StartDate: start,
		Deadline:  deadline,
	}
}

func TestGoalValidate(t *testing.T) {
	g := testGoal(10, testNow, nil)
	require.NoError(t, g.Validate())

	g.Type = "swimming"
	assert.ErrorContains(t, g.Validate(), "goal type")

	g = testGoal(10, testNow, nil)
	g.Target = 0
	assert.ErrorContains(t, g.Validate(), "target")

	before := testNow.AddDate(0, 0, -1)
	g = testGoal(10, testNow, &before)
	assert.ErrorContains(t, g.Validate(), "deadline")
}

func TestGoalProgressPct_Clamped(t *testing.T) {
	assert.InDelta(t, 0.35, testGoal(17.5, testNow, nil).ProgressPct(), 1e-9)
	assert.Equal(t, 1.0, testGoal(80, testNow, nil).ProgressPct())
}

func TestGoalStatus(t *testing.T) {
	start := testNow.AddDate(0, 0, -20)
	deadline := testNow.AddDate(0, 0, 10)

	// two thirds of the window elapsed, one third of the distance done
	behind := testGoal(17.5, start, &deadline)
	assert.Equal(t, GoalBehind, behind.Status(testNow))

	onTrack := testGoal(32, start, &deadline)
	assert.Equal(t, GoalOnTrack, onTrack.Status(testNow))

	achieved := testGoal(50, start, &deadline)
	assert.Equal(t, GoalAchieved, achieved.Status(testNow))
}

func TestGoalStatus_NoDeadlineNeverBehind(t *testing.T) {
	g := testGoal(0, testNow.AddDate(-1, 0, 0), nil)
	assert.Equal(t, GoalOnTrack, g.Status(testNow))
}

func TestGoalApplyProgress(t *testing.T) {
	g := testGoal(0, testNow, nil)
	require.NoError(t, g.ApplyProgress(12, testNow))
	assert.Equal(t, 12.0, g.Current)
	assert.Equal(t, testNow, g.UpdatedAt)

	assert.Error(t, g.ApplyProgress(-1, testNow))
	assert.Equal(t, 12.0, g.Current)
}

func TestProgressEntryValidate(t *testing.T) {
	e := &ProgressEntry{Date: Day(testNow), Weight: 180, Mood: 4, SleepHours: 7}
	require.NoError(t, e.Validate())

	e.Mood = 6
	assert.ErrorContains(t, e.Validate(), "mood")

	e.Mood = 3
	e.SleepHours = 25
	assert.ErrorContains(t, e.Validate(), "sleep")

	assert.ErrorContains(t, (&ProgressEntry{}).Validate(), "date")
}

func TestParsePeriod(t *testing.T) {
	p, ok := ParsePeriod("month")
	require.True(t, ok)
	assert.Equal(t, 30, p.Days())

	_, ok = ParsePeriod("decade")
	assert.False(t, ok)
}
