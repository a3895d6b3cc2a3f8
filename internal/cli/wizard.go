package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/fitloop/internal/catalog"
	"github.com/alexanderramin/fitloop/internal/cli/formatter"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fitloopHuhTheme returns a huh theme matching the formatter palette.
func fitloopHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planOptions builds select options labelled "name · level · time".
func planOptions(entries []catalog.Entry) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(entries))
	for _, e := range entries {
		p := e.Plan
		parts := []string{p.DisplayName()}
		if p.Difficulty != "" {
			parts = append(parts, p.Difficulty)
		}
		parts = append(parts, formatter.FormatSeconds(p.EstimatedSeconds()))
		options = append(options, huh.NewOption(strings.Join(parts, " · "), p.Key))
	}
	return options
}

// wizardSelectPlan creates a huh form to pick a workout plan from the catalog.
func wizardSelectPlan(plans *catalog.Catalog, result *string) *huh.Form {
	entries := plans.List()
	if len(entries) == 0 {
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which workout?").
				Options(planOptions(entries)...).
				Value(result),
		),
	).WithTheme(fitloopHuhTheme()).WithShowHelp(false)
}

// goalDraft holds the raw strings collected by the goal wizard.
type goalDraft struct {
	Title    string
	Type     string
	Target   string
	Current  string
	Unit     string
	Deadline string
}

// wizardGoal creates the multi-step form for "goal add".
func wizardGoal(d *goalDraft) *huh.Form {
	if d.Type == "" {
		d.Type = string(domain.GoalCustom)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Placeholder("Run 50 miles").
				Value(&d.Title).
				Validate(validateRequired("a title")),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Weight", string(domain.GoalWeight)),
					huh.NewOption("Consistency", string(domain.GoalConsistency)),
					huh.NewOption("Distance", string(domain.GoalDistance)),
					huh.NewOption("Custom", string(domain.GoalCustom)),
				).
				Value(&d.Type),
		),
		huh.NewGroup(
			amountInput("Target", "50", &d.Target, true),
			amountInput("Current (blank for 0)", "0", &d.Current, false),
			huh.NewInput().
				Title("Unit").
				Placeholder("miles").
				Value(&d.Unit),
		),
		huh.NewGroup(
			dateInput("Deadline (YYYY-MM-DD, blank for none)", "", &d.Deadline),
		),
	).WithTheme(fitloopHuhTheme()).WithShowHelp(false)
}

// toGoal converts validated wizard input to a domain goal.
func (d goalDraft) toGoal() (*domain.Goal, error) {
	target, err := strconv.ParseFloat(strings.TrimSpace(d.Target), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid target %q", d.Target)
	}
	g := &domain.Goal{
		Title:  strings.TrimSpace(d.Title),
		Type:   domain.GoalType(d.Type),
		Target: target,
		Unit:   strings.TrimSpace(d.Unit),
	}
	if s := strings.TrimSpace(d.Current); s != "" {
		if g.Current, err = strconv.ParseFloat(s, 64); err != nil {
			return nil, fmt.Errorf("invalid current value %q", d.Current)
		}
	}
	if s := strings.TrimSpace(d.Deadline); s != "" {
		deadline, err := time.Parse(domain.DateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline %q: use YYYY-MM-DD", d.Deadline)
		}
		g.Deadline = &deadline
	}
	return g, nil
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(fitloopHuhTheme()).WithShowHelp(false)
}

func validateRequired(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("enter %s", what)
		}
		return nil
	}
}

// validatePositiveAmount accepts a number greater than zero.
func validatePositiveAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateNonNegativeAmount accepts empty or a number of at least zero.
func validateNonNegativeAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
