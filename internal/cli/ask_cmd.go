package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/fitloop/internal/cli/formatter"
	"github.com/alexanderramin/fitloop/internal/coach"
	"github.com/spf13/cobra"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [QUESTION...]",
		Short: "Ask the coach about workouts, nutrition, soreness or weight",
		Long: `Ask the coach a question, or start a session without one.

Answers come from keyword matching and a fitness glossary; nothing leaves
your machine. In a session, /terms lists the glossary and /quit exits.

Examples:
  fitloop ask "how long should I rest between sets?"
  fitloop ask what should a beginner do
  fitloop ask`,
		RunE: func(cmd *cobra.Command, args []string) error {
			commands := coachCommands(cmd.Root())
			if len(args) == 0 {
				return runCoachSession(cmd.InOrStdin(), cmd.OutOrStdout(), commands)
			}
			answer, err := coach.Ask(strings.Join(args, " "), commands)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCoachAnswer(answer))
			return nil
		},
	}
}

// runCoachSession answers one question per input line until /quit or EOF.
func runCoachSession(in io.Reader, out io.Writer, commands []coach.CommandInfo) error {
	fmt.Fprint(out, formatter.FormatCoachWelcome())
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "ask> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "/quit", "/exit", "/q":
			return nil
		case "/terms":
			fmt.Fprint(out, coach.FormatGlossary())
			continue
		}

		answer, err := coach.Ask(input, commands)
		if err != nil {
			fmt.Fprintln(out, formatter.StyleRed.Render(err.Error()))
			continue
		}
		fmt.Fprintln(out, formatter.FormatCoachAnswer(answer))
	}
}

// coachCommands lists the runnable, visible commands under root.
func coachCommands(root *cobra.Command) []coach.CommandInfo {
	var out []coach.CommandInfo
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		for _, sub := range c.Commands() {
			if !sub.IsAvailableCommand() || sub.Name() == "completion" || sub.Name() == "ask" {
				continue
			}
			if sub.Runnable() {
				out = append(out, coach.CommandInfo{FullPath: sub.CommandPath(), Short: sub.Short})
			}
			walk(sub)
		}
	}
	walk(root)
	return out
}
