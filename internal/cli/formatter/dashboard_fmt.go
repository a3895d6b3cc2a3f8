package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitloop/internal/service"
)

// FormatDashboard renders the overview: weekly totals against the targets,
// streak, points, goal bars and the latest runs.
func FormatDashboard(d *service.Dashboard, unit string, now time.Time) string {
	var b strings.Builder

	streak := fmt.Sprintf("%d days", d.CurrentStreak)
	if d.CurrentStreak == 1 {
		streak = "1 day"
	}
	if d.CurrentStreak >= 3 {
		streak = StyleGreen.Render(streak)
	}
	b.WriteString(RenderBox("This week", RenderKV([][2]string{
		{"Workouts", weeklyWorkouts(d)},
		{"Active time", FormatMinutes(d.MinutesThisWeek)},
		{"Streak", streak},
		{"Points", StylePurple.Render(fmt.Sprintf("%d", d.TotalPoints))},
		{"Calories today", caloriesToday(d)},
		{"Weight", weightVsTarget(d, unit)},
	})))
	b.WriteString("\n\n")

	b.WriteString(Header("Goals") + "\n")
	if len(d.Goals) == 0 {
		b.WriteString(Dim("No goals yet.") + "\n")
	}
	for _, v := range d.Goals {
		fmt.Fprintf(&b, "%s %s  %s\n", RenderProgress(v.Progress, 16), v.Goal.Title, GoalStatusIndicator(v.Status))
	}
	b.WriteString("\n")

	b.WriteString(Header("Recent workouts") + "\n")
	if len(d.Recent) == 0 {
		b.WriteString(Dim("No workouts yet. Start one with 'fitloop workout start'.") + "\n")
		return b.String()
	}
	for _, w := range d.Recent {
		fmt.Fprintf(&b, "%-10s %s  %s  %s\n",
			RelativeDay(w.StartedAt, now), w.PlanName, WorkoutStatusPill(w.Status), Dim(FormatSeconds(w.ActiveSeconds)))
	}
	return b.String()
}

// FormatProfile renders the profile card: name, targets and lifetime stats.
func FormatProfile(d *service.Dashboard, name, unit string) string {
	t := d.Targets
	target := func(n int, suffix string) string {
		return OrDash(fmt.Sprintf("%d%s", n, suffix), n > 0)
	}
	body := RenderKV([][2]string{
		{"Name", OrDash(name, name != "")},
		{"Weekly target", target(t.WeeklyWorkouts, " workouts")},
		{"Daily calories", target(t.DailyCalories, " kcal")},
		{"Target weight", weight(t.TargetWeight, unit)},
		{"Current weight", weight(d.LatestWeight, unit)},
		{"Active days", FormatNumber(d.ActiveDays)},
		{"Workouts done", FormatNumber(d.WorkoutsCompleted)},
		{"This week", weeklyWorkouts(d)},
	})
	return RenderBox("Profile", body) + "\n"
}

// weeklyWorkouts renders "2/3 ██████░░░" or just the count without a target.
func weeklyWorkouts(d *service.Dashboard) string {
	if d.Targets.WeeklyWorkouts <= 0 {
		return fmt.Sprintf("%d", d.WorkoutsThisWeek)
	}
	s := fmt.Sprintf("%d/%d ", d.WorkoutsThisWeek, d.Targets.WeeklyWorkouts) +
		RenderCompactBar(d.Targets.WeeklyProgress(d.WorkoutsThisWeek), 10, false)
	if d.WorkoutsThisWeek >= d.Targets.WeeklyWorkouts {
		s += " " + StyleGreen.Render("target met")
	}
	return s
}

func caloriesToday(d *service.Dashboard) string {
	if d.Targets.DailyCalories <= 0 {
		return FormatNumber(d.CaloriesToday) + " kcal"
	}
	return fmt.Sprintf("%s/%s kcal", FormatNumber(d.CaloriesToday), FormatNumber(d.Targets.DailyCalories))
}

func weightVsTarget(d *service.Dashboard, unit string) string {
	current := weight(d.LatestWeight, unit)
	diff, ok := d.Targets.WeightToGo(d.LatestWeight)
	if !ok {
		return current
	}
	if diff < 0.05 {
		return current + " " + StyleGreen.Render("at target")
	}
	return current + Dim(fmt.Sprintf(" (%.1f %s to %.1f)", diff, unit, d.Targets.TargetWeight))
}
