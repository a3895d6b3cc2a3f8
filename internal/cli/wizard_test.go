package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/fitloop/internal/catalog"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/testutil"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanOptions(t *testing.T) {
	opts := planOptions(catalog.New(testutil.NewTestPlan("quick")).List())
	require.Len(t, opts, 1)
	assert.Equal(t, "Plan quick · Beginner · 8s", opts[0].Key)
	assert.Equal(t, "quick", opts[0].Value)
}

func TestGoalDraftToGoal(t *testing.T) {
	g, err := goalDraft{
		Title: " Lose weight ", Type: "weight", Target: "10", Current: "2.5", Unit: "lbs", Deadline: "2025-08-01",
	}.toGoal()
	require.NoError(t, err)
	assert.Equal(t, "Lose weight", g.Title)
	assert.Equal(t, domain.GoalWeight, g.Type)
	assert.Equal(t, 10.0, g.Target)
	assert.Equal(t, 2.5, g.Current)
	require.NotNil(t, g.Deadline)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), *g.Deadline)

	g, err = goalDraft{Title: "Steps", Type: "custom", Target: "5"}.toGoal()
	require.NoError(t, err)
	assert.Zero(t, g.Current)
	assert.Nil(t, g.Deadline)

	_, err = goalDraft{Title: "x", Target: "lots"}.toGoal()
	assert.ErrorContains(t, err, "invalid target")

	_, err = goalDraft{Title: "x", Target: "1", Deadline: "soon"}.toGoal()
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestWizardValidators(t *testing.T) {
	assert.Error(t, validateRequired("a title")("  "))
	assert.NoError(t, validateRequired("a title")("Run"))

	assert.NoError(t, validatePositiveAmount("3.5"))
	assert.Error(t, validatePositiveAmount("0"))
	assert.Error(t, validatePositiveAmount("abc"))

	assert.NoError(t, validateNonNegativeAmount(""))
	assert.NoError(t, validateNonNegativeAmount("0"))
	assert.Error(t, validateNonNegativeAmount("-1"))

	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2025-06-15"))
	assert.Error(t, validateOptionalDate("15/06/2025"))
}

func TestParseDay(t *testing.T) {
	now := testutil.FixedNow
	today := domain.Day(now)

	for _, in := range []string{"", "today", " Today "} {
		d, err := parseDay(in, now)
		require.NoError(t, err)
		assert.Equal(t, today, d, "input %q", in)
	}

	d, err := parseDay("yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, -1), d)

	d, err = parseDay("2025-01-31", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), d)

	_, err = parseDay("last week", now)
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestProgressPatchFromFlags_OnlyChanged(t *testing.T) {
	cmd := newProgressLogCmd(&App{})
	require.NoError(t, cmd.Flags().Parse([]string{"--weight", "181.2", "--steps", "0", "--note", ""}))

	patch, err := progressPatchFromFlags(cmd.Flags())
	require.NoError(t, err)
	require.NotNil(t, patch.Weight)
	assert.Equal(t, 181.2, *patch.Weight)
	require.NotNil(t, patch.Steps)
	assert.Equal(t, 0, *patch.Steps)
	require.NotNil(t, patch.Note)
	assert.Empty(t, *patch.Note)
	assert.Nil(t, patch.Mood)
	assert.Nil(t, patch.SleepHours)
	assert.False(t, patch.IsEmpty())

	empty, err := progressPatchFromFlags(pflag.NewFlagSet("empty", pflag.ContinueOnError))
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}
