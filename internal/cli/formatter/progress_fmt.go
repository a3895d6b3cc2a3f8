package formatter

import (
	"fmt"

	"github.com/alexanderramin/fitloop/internal/domain"
)

var moodFaces = []string{"", "😞", "🙁", "😐", "🙂", "😄"}

// Mood renders a 1-5 mood as a face, or "--" when unset.
func Mood(m int) string {
	if m < 1 || m >= len(moodFaces) {
		return StyleDim.Render("--")
	}
	return moodFaces[m]
}

func weight(w float64, unit string) string {
	return OrDash(fmt.Sprintf("%.1f %s", w, unit), w > 0)
}

// FormatProgressEntries renders daily entries oldest first.
func FormatProgressEntries(entries []*domain.ProgressEntry, unit string) string {
	if len(entries) == 0 {
		return Dim("No progress entries yet. Log one with 'fitloop progress log'.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date.Format(domain.DateLayout),
			weight(e.Weight, unit),
			OrDash(FormatMinutes(e.WorkoutMin), e.WorkoutMin > 0),
			OrDash(FormatNumber(e.CaloriesBurned), e.CaloriesBurned > 0),
			OrDash(fmt.Sprintf("%.1fh", e.SleepHours), e.SleepHours > 0),
			Mood(e.Mood),
			OrDash(FormatNumber(e.Steps), e.Steps > 0),
			OrDash(fmt.Sprintf("%d", e.WaterIntake), e.WaterIntake > 0),
			Dim(e.Note),
		})
	}
	return RenderTable([]string{"DATE", "WEIGHT", "WORKOUT", "KCAL", "SLEEP", "MOOD", "STEPS", "WATER", "NOTE"}, rows)
}

// FormatProgressEntry confirms a logged entry.
func FormatProgressEntry(e *domain.ProgressEntry, unit string) string {
	pairs := [][2]string{{"Date", e.Date.Format(domain.DateLayout)}}
	if e.Weight > 0 {
		pairs = append(pairs, [2]string{"Weight", weight(e.Weight, unit)})
	}
	if e.WorkoutMin > 0 {
		pairs = append(pairs, [2]string{"Workout", FormatMinutes(e.WorkoutMin)})
	}
	if e.CaloriesBurned > 0 {
		pairs = append(pairs, [2]string{"Calories", FormatNumber(e.CaloriesBurned) + " kcal"})
	}
	if e.SleepHours > 0 {
		pairs = append(pairs, [2]string{"Sleep", fmt.Sprintf("%.1fh", e.SleepHours)})
	}
	if e.Mood > 0 {
		pairs = append(pairs, [2]string{"Mood", Mood(e.Mood)})
	}
	if e.Steps > 0 {
		pairs = append(pairs, [2]string{"Steps", FormatNumber(e.Steps)})
	}
	if e.WaterIntake > 0 {
		pairs = append(pairs, [2]string{"Water", fmt.Sprintf("%d glasses", e.WaterIntake)})
	}
	if e.Note != "" {
		pairs = append(pairs, [2]string{"Note", e.Note})
	}
	return RenderKV(pairs) + "\n"
}

// FormatSummary renders aggregated metrics for a period.
func FormatSummary(s *domain.ProgressSummary, unit string) string {
	title := string(s.Period) + " summary"
	if s.Entries == 0 {
		return RenderBox(title, Dim("No entries between "+
			s.From.Format(domain.DateLayout)+" and "+s.To.Format(domain.DateLayout)+".")) + "\n"
	}

	change := fmt.Sprintf("%+.1f %s", s.WeightChange, unit)
	switch {
	case s.WeightChange < 0:
		change = StyleGreen.Render(change)
	case s.WeightChange > 0:
		change = StyleYellow.Render(change)
	}

	body := RenderKV([][2]string{
		{"Range", fmt.Sprintf("%s → %s", s.From.Format(domain.DateLayout), s.To.Format(domain.DateLayout))},
		{"Entries", fmt.Sprintf("%d", s.Entries)},
		{"Avg weight", weight(s.AvgWeight, unit)},
		{"Weight change", OrDash(change, s.AvgWeight > 0)},
		{"Workout time", FormatMinutes(s.TotalWorkout)},
		{"Calories", FormatNumber(s.TotalCalories) + " kcal"},
		{"Avg sleep", OrDash(fmt.Sprintf("%.1fh", s.AvgSleep), s.AvgSleep > 0)},
		{"Avg mood", OrDash(fmt.Sprintf("%.1f / 5", s.AvgMood), s.AvgMood > 0)},
		{"Avg steps", OrDash(FormatNumber(int(s.AvgSteps)), s.AvgSteps > 0)},
		{"Active days", fmt.Sprintf("%d", s.ActiveDays)},
		{"Consistency", RenderProgress(s.ConsistencyPct/100, 20)},
	})
	return RenderBox(title, body) + "\n"
}
