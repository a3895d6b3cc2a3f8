package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitloop/internal/domain"
)

// FormatAchievements renders every badge with its progress toward the target.
func FormatAchievements(statuses []domain.AchievementStatus, points int) string {
	rows := make([][]string, 0, len(statuses))
	unlocked := 0
	for _, st := range statuses {
		mark := Dim("○")
		title := st.Title
		if st.Unlocked {
			mark = StylePurple.Render("★")
			title = Bold(title)
			unlocked++
		}
		progress := fmt.Sprintf("%s/%s %s",
			FormatAmount(min(st.Progress, st.Target)), FormatAmount(st.Target), st.Unit)
		rows = append(rows, []string{
			mark,
			title,
			Dim(st.Description),
			RenderCompactBar(st.ProgressPct(), 10, !st.Unlocked),
			progress,
			fmt.Sprintf("%d", st.Points),
		})
	}
	table := RenderTable([]string{"", "ACHIEVEMENT", "GOAL", "PROGRESS", "", "PTS"}, rows)
	footer := fmt.Sprintf("%d/%d unlocked · %s points", unlocked, len(statuses), Bold(fmt.Sprintf("%d", points)))
	return table + "\n" + footer + "\n"
}

// FormatUnlocked announces newly unlocked badges.
func FormatUnlocked(as []domain.Achievement) string {
	if len(as) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range as {
		fmt.Fprintf(&b, "%s %s %s\n",
			StylePurple.Render("★ Achievement unlocked:"), Bold(a.Title), Dim(fmt.Sprintf("(+%d pts)", a.Points)))
	}
	return b.String()
}
