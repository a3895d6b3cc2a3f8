package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitloop/internal/coach"
)

// FormatCoachAnswer renders a coach reply, matching glossary entries, the
// most relevant commands and suggested next commands.
func FormatCoachAnswer(a *coach.Answer) string {
	var b strings.Builder
	b.WriteString("  " + a.Reply + "\n")

	if len(a.Glossary) > 0 {
		b.WriteString("\n" + Header("Terms") + "\n")
		for _, g := range a.Glossary {
			term, def, _ := strings.Cut(g, ": ")
			fmt.Fprintf(&b, "  %s %s\n", Bold(term+":"), def)
		}
	}

	if len(a.Commands) > 0 {
		b.WriteString("\n" + Header("Commands") + "\n")
		for _, c := range a.Commands {
			fmt.Fprintf(&b, "  %s\n", StyleGreen.Render("$ "+c.FullPath))
			if c.Short != "" {
				fmt.Fprintf(&b, "    %s\n", Dim(c.Short))
			}
		}
	}

	if len(a.NextCommands) > 0 {
		b.WriteString("\n" + Header("Try next") + "\n")
		for _, c := range a.NextCommands {
			fmt.Fprintf(&b, "  %s\n", StyleBlue.Render(c))
		}
	}
	return b.String()
}

// FormatCoachWelcome is printed when an ask session starts.
func FormatCoachWelcome() string {
	return Header("fitloop coach") + "\n" +
		Dim("Ask about workouts, nutrition, soreness or weight. /terms lists the glossary, /quit exits.") + "\n\n"
}
