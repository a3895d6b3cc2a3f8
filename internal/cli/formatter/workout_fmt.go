package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitloop/internal/catalog"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/service"
)

// FormatPlanList renders the plan catalog as a numbered table.
func FormatPlanList(entries []catalog.Entry) string {
	if len(entries) == 0 {
		return Dim("No workout plans available.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		p := e.Plan
		source := "builtin"
		if e.Source != "builtin" {
			source = "file"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Index),
			StyleBlue.Render(p.Key),
			p.DisplayName(),
			DifficultyBadge(p.Difficulty),
			fmt.Sprintf("%d", len(p.Exercises)),
			FormatSeconds(p.EstimatedSeconds()),
			fmt.Sprintf("%d", p.EstimatedCalories),
			Dim(source),
		})
	}
	return RenderTable([]string{"#", "KEY", "NAME", "LEVEL", "EXERCISES", "TIME", "KCAL", "SOURCE"}, rows)
}

// DescribeExercise summarises an exercise on one line, such as
// "3 × 12 reps · 45s work / 60s rest" or "5:00 timed".
func DescribeExercise(ex domain.Exercise) string {
	if ex.IsTimed() {
		return FormatClock(ex.Duration) + " timed"
	}
	return fmt.Sprintf("%d × %s · %ds work / %ds rest", ex.Sets, Reps(ex.Reps), ex.WorkSeconds, ex.RestSeconds)
}

// Reps renders a rep count as "1 rep" or "12 reps".
func Reps(n int) string {
	if n == 1 {
		return "1 rep"
	}
	return fmt.Sprintf("%d reps", n)
}

// FormatPlanDetail renders a plan's exercises and totals in a box.
func FormatPlanDetail(p domain.WorkoutPlan, leadIn int) string {
	var b strings.Builder
	if p.Description != "" {
		b.WriteString(p.Description + "\n\n")
	}
	for i, ex := range p.Exercises {
		name := Bold(ex.Name)
		if ex.Category != "" {
			name += " " + Dim("("+ex.Category+")")
		}
		fmt.Fprintf(&b, "%2d. %s\n    %s\n", i+1, name, DescribeExercise(ex))
		if ex.Description != "" {
			b.WriteString("    " + Dim(ex.Description) + "\n")
		}
		for j, step := range ex.Steps {
			fmt.Fprintf(&b, "      %d) %s\n", j+1, step)
		}
		if len(ex.Tips) > 0 {
			b.WriteString("    " + StyleYellow.Render("Tips:") + " " + strings.Join(ex.Tips, " · ") + "\n")
		}
		if !ex.IsTimed() && ex.Sets > 1 {
			b.WriteString("    " + Dim(fmt.Sprintf("Rest %ds between sets", ex.RestSeconds)) + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(RenderKV([][2]string{
		{"Level", DifficultyBadge(p.Difficulty)},
		{"Duration", FormatSeconds(p.EstimatedSeconds() + leadIn)},
		{"Calories", fmt.Sprintf("~%d kcal", p.EstimatedCalories)},
	}))
	return RenderBox(p.DisplayName(), b.String())
}

// FormatHistory renders recorded runs, newest first.
func FormatHistory(logs []*domain.WorkoutLog, days int, now time.Time) string {
	if len(logs) == 0 {
		return Dim(fmt.Sprintf("No workouts recorded in the last %d days.", days)) + "\n"
	}
	rows := make([][]string, 0, len(logs))
	var active, calories, completed int
	for _, w := range logs {
		rows = append(rows, []string{
			TruncID(w.ID),
			RelativeDay(w.StartedAt, now),
			w.StartedAt.Local().Format("15:04"),
			w.PlanName,
			WorkoutStatusPill(w.Status),
			FormatSeconds(w.ActiveSeconds),
			fmt.Sprintf("%d/%d", w.ExercisesDone, w.ExercisesTotal),
			fmt.Sprintf("%d", w.Calories),
		})
		active += w.ActiveSeconds
		calories += w.Calories
		if w.IsCompleted() {
			completed++
		}
	}
	table := RenderTable([]string{"ID", "DAY", "AT", "PLAN", "STATUS", "ACTIVE", "DONE", "KCAL"}, rows)
	footer := Dim(fmt.Sprintf("%d completed · %s active · %s kcal",
		completed, FormatSeconds(active), FormatNumber(calories)))
	return table + "\n" + footer + "\n"
}

// FormatRunResult summarises a recorded run and any badges it unlocked.
func FormatRunResult(res *service.RecordResult) string {
	if res == nil || res.Log == nil {
		return Dim("Workout ended before it started; nothing recorded.") + "\n"
	}
	w := res.Log
	title := "Workout complete"
	if !w.IsCompleted() {
		title = "Workout abandoned"
	}
	body := RenderKV([][2]string{
		{"Plan", w.PlanName},
		{"Status", WorkoutStatusPill(w.Status)},
		{"Active", FormatClock(w.ActiveSeconds)},
		{"Exercises", fmt.Sprintf("%d/%d", w.ExercisesDone, w.ExercisesTotal)},
		{"Calories", fmt.Sprintf("~%d kcal", w.Calories)},
	})
	out := RenderBox(title, body) + "\n"
	if len(res.Unlocked) > 0 {
		out += FormatUnlocked(res.Unlocked)
	}
	return out
}
