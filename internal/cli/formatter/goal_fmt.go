package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/fitloop/internal/service"
)

// FormatAmount trims trailing zeros from goal values.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func daysLeft(v service.GoalView) string {
	if v.DaysLeft == nil {
		return Dim("no deadline")
	}
	d := *v.DaysLeft
	switch {
	case d < 0:
		return StyleRed.Render(fmt.Sprintf("%dd overdue", -d))
	case d == 0:
		return StyleRed.Render("due today")
	case d <= 7:
		return StyleYellow.Render(fmt.Sprintf("%dd left", d))
	default:
		return fmt.Sprintf("%dd left", d)
	}
}

// FormatGoals renders the goal list with progress bars.
func FormatGoals(views []service.GoalView) string {
	if len(views) == 0 {
		return Dim("No goals yet. Add one with 'fitloop goal add'.") + "\n"
	}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		g := v.Goal
		rows = append(rows, []string{
			TruncID(g.ID),
			g.Title,
			Dim(string(g.Type)),
			fmt.Sprintf("%s/%s %s", FormatAmount(g.Current), FormatAmount(g.Target), g.Unit),
			RenderProgress(v.Progress, 12),
			GoalStatusIndicator(v.Status),
			daysLeft(v),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "TYPE", "VALUE", "PROGRESS", "STATUS", "DEADLINE"}, rows)
}

// FormatGoalView renders a single goal after it was added or updated.
func FormatGoalView(v service.GoalView) string {
	g := v.Goal
	return RenderKV([][2]string{
		{"Goal", Bold(g.Title) + " " + TruncID(g.ID)},
		{"Value", fmt.Sprintf("%s/%s %s", FormatAmount(g.Current), FormatAmount(g.Target), g.Unit)},
		{"Progress", RenderProgress(v.Progress, 20)},
		{"Status", GoalStatusIndicator(v.Status)},
		{"Deadline", daysLeft(v)},
	}) + "\n"
}
