package domain

type ExerciseKind string

const (
	ExerciseTimed    ExerciseKind = "timed"
	ExerciseSetsReps ExerciseKind = "sets_reps"
)

// ValidExerciseKinds is the canonical set of accepted exercise kind strings.
var ValidExerciseKinds = map[string]bool{
	"timed": true, "sets_reps": true,
}

type WorkoutStatus string

const (
	WorkoutCompleted WorkoutStatus = "completed"
	WorkoutAbandoned WorkoutStatus = "abandoned"
)

type GoalType string

const (
	GoalWeight      GoalType = "weight"
	GoalConsistency GoalType = "consistency"
	GoalDistance    GoalType = "distance"
	GoalCustom      GoalType = "custom"
)

// ValidGoalTypes is the canonical set of accepted goal type strings.
var ValidGoalTypes = map[string]bool{
	"weight": true, "consistency": true, "distance": true, "custom": true,
}

type GoalStatus string

const (
	GoalOnTrack  GoalStatus = "on_track"
	GoalBehind   GoalStatus = "behind"
	GoalAchieved GoalStatus = "achieved"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Days returns the look-back window for the period.
func (p Period) Days() int {
	switch p {
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	default:
		return 7
	}
}

// ParsePeriod accepts "week", "month" or "year".
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), true
	}
	return "", false
}
