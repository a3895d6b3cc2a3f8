package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/timer"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseColor returns the color used for the timer ring and label of a phase.
func PhaseColor(p timer.Phase) lipgloss.Color {
	switch p {
	case timer.PhaseCountdown:
		return ColorYellow
	case timer.PhaseWork:
		return ColorGreen
	case timer.PhaseRest:
		return ColorBlue
	case timer.PhaseComplete:
		return ColorPurple
	default:
		return ColorDim
	}
}

// GoalStatusIndicator returns a colored status such as "● ON TRACK".
func GoalStatusIndicator(status domain.GoalStatus) string {
	switch status {
	case domain.GoalAchieved:
		return StylePurple.Render("✔ ACHIEVED")
	case domain.GoalBehind:
		return StyleYellow.Render("● BEHIND")
	case domain.GoalOnTrack:
		return StyleGreen.Render("● ON TRACK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// WorkoutStatusPill returns a colored indicator for a recorded run.
func WorkoutStatusPill(status domain.WorkoutStatus) string {
	switch status {
	case domain.WorkoutCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.WorkoutAbandoned:
		return StyleYellow.Render("✖ Abandoned")
	default:
		return StyleDim.Render(string(status))
	}
}

// DifficultyBadge colors a plan's difficulty label.
func DifficultyBadge(d string) string {
	switch strings.ToLower(d) {
	case "":
		return StyleDim.Render("--")
	case "beginner":
		return StyleGreen.Render(d)
	case "intermediate":
		return StyleYellow.Render(d)
	case "advanced":
		return StyleRed.Render(d)
	default:
		return StylePurple.Render(d)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
