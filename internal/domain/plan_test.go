package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlan() *WorkoutPlan {
	return &WorkoutPlan{
		Key:  "test",
		Name: "Test Plan",
		Exercises: []Exercise{
			{Name: "Warm-up", Kind: ExerciseTimed, Duration: 5},
			{Name: "Squats", Kind: ExerciseSetsReps, Sets: 2, Reps: 12, WorkSeconds: 3, RestSeconds: 2},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validPlan().Validate())
}

func TestValidate_Empty(t *testing.T) {
	p := &WorkoutPlan{Key: "empty"}
	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPlan)
	assert.Contains(t, err.Error(), "no exercises")
}

func TestValidate_NilPlan(t *testing.T) {
	var p *WorkoutPlan
	assert.ErrorIs(t, p.Validate(), ErrInvalidPlan)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	p := &WorkoutPlan{
		Key: "bad",
		Exercises: []Exercise{
			{Name: "Warm-up", Kind: ExerciseTimed, Duration: 0},
			{Name: "Squats", Kind: ExerciseSetsReps, Sets: 0, WorkSeconds: 10, RestSeconds: -1},
			{Name: "", Kind: "yoga"},
		},
	}
	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPlan)
	msg := err.Error()
	assert.Contains(t, msg, "duration must be at least 1")
	assert.Contains(t, msg, "sets must be at least 1")
	assert.Contains(t, msg, "reps must be at least 1")
	assert.Contains(t, msg, "rest_seconds must be at least 1")
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, `unknown kind "yoga"`)
}

func TestValidate_ZeroWorkSeconds(t *testing.T) {
	p := validPlan()
	p.Exercises[1].WorkSeconds = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidPlan)
}

func TestValidate_ZeroReps(t *testing.T) {
	p := validPlan()
	p.Exercises[1].Reps = 0
	err := p.Validate()
	assert.ErrorIs(t, err, ErrInvalidPlan)
	assert.ErrorContains(t, err, "reps must be at least 1, got 0")
}

func TestEstimatedSeconds(t *testing.T) {
	// 5 + (2*3 + 1*2)
	assert.Equal(t, 13, validPlan().EstimatedSeconds())
}

func TestEstimatedSeconds_SingleSetHasNoRest(t *testing.T) {
	ex := Exercise{Name: "Plank", Kind: ExerciseSetsReps, Sets: 1, Reps: 1, WorkSeconds: 10, RestSeconds: 30}
	assert.Equal(t, 10, ex.EstimatedSeconds())
}

func TestTotalSets(t *testing.T) {
	assert.Equal(t, 1, Exercise{Kind: ExerciseTimed, Duration: 60}.TotalSets())
	assert.Equal(t, 4, Exercise{Kind: ExerciseSetsReps, Sets: 4}.TotalSets())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Test Plan", validPlan().DisplayName())
	assert.Equal(t, "bare", (&WorkoutPlan{Key: "bare"}).DisplayName())
}

func TestScaledCalories(t *testing.T) {
	assert.Equal(t, 240, ScaledCalories(240, 6, 6))
	assert.Equal(t, 120, ScaledCalories(240, 3, 6))
	assert.Equal(t, 0, ScaledCalories(240, 0, 6))
	assert.Equal(t, 0, ScaledCalories(240, 3, 0))
}
