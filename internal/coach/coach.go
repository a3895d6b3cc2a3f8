// Package coach answers fitness questions without a language model. A
// keyword intent picks the reply, glossary terms add definitions and the
// command list is scored for the most relevant fitloop commands.
package coach

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidQuestion is returned for empty or oversized questions.
var ErrInvalidQuestion = errors.New("invalid question")

const (
	MinQuestionLen = 2
	MaxQuestionLen = 500

	maxCommandMatches = 3
)

// Intent is the topic a question was classified under.
type Intent string

const (
	IntentWorkout   Intent = "workout"
	IntentNutrition Intent = "nutrition"
	IntentPain      Intent = "pain"
	IntentWeight    Intent = "weight"
	IntentGreeting  Intent = "greeting"
	IntentGeneral   Intent = "general"
)

// CommandInfo describes one CLI command for scoring. The cli package builds
// these from the cobra tree.
type CommandInfo struct {
	FullPath string
	Short    string
}

// Answer is the coach's reply to one question.
type Answer struct {
	Intent       Intent
	Reply        string
	Glossary     []string // "term: definition", sorted by term
	Commands     []CommandInfo
	NextCommands []string
}

// intents are checked in order; the first with a keyword in the question wins.
var intents = []struct {
	intent   Intent
	keywords []string
}{
	{IntentWorkout, []string{"workout", "exercise", "training", "train"}},
	{IntentNutrition, []string{"diet", "nutrition", "food", "meal", "eat"}},
	{IntentPain, []string{"pain", "hurt", "injury", "injured", "sore"}},
	{IntentWeight, []string{"weight", "lose", "gain", "fat"}},
	{IntentGreeting, []string{"hello", "hi", "hey"}},
}

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "how": true, "what": true, "with": true,
	"you": true, "can": true, "does": true, "should": true, "about": true, "are": true,
	"fitloop": true, "that": true, "this": true, "when": true, "why": true, "do": true,
}

// Ask classifies question and builds an answer. commands is the CLI command
// list to score; next commands not in it are dropped.
func Ask(question string, commands []CommandInfo) (*Answer, error) {
	question = strings.TrimSpace(question)
	switch n := utf8.RuneCountInString(question); {
	case n < MinQuestionLen:
		return nil, fmt.Errorf("%w: ask at least %d characters", ErrInvalidQuestion, MinQuestionLen)
	case n > MaxQuestionLen:
		return nil, fmt.Errorf("%w: keep it under %d characters, got %d", ErrInvalidQuestion, MaxQuestionLen, n)
	}

	lower := strings.ToLower(question)
	words := tokenize(lower)
	intent := classify(words)

	a := &Answer{
		Intent:   intent,
		Reply:    reply(intent, lower, words),
		Glossary: glossaryHits(words),
		Commands: scoreCommands(terms(words), commands),
	}
	a.NextCommands = groundNext(nextCommands[intent], commands)
	if intent == IntentGeneral && len(a.Glossary) == 0 && len(a.Commands) == 0 {
		a.Commands = pick(commands, defaultCommands)
	}
	return a, nil
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// terms drops short words and stopwords.
func terms(words []string) []string {
	var out []string
	for _, w := range words {
		if len(w) >= 3 && !stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

func singular(w string) string {
	if len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
		return strings.TrimSuffix(w, "s")
	}
	return w
}

func hasWord(words []string, keyword string) bool {
	for _, w := range words {
		if w == keyword || singular(w) == keyword {
			return true
		}
	}
	return false
}

func classify(words []string) Intent {
	for _, in := range intents {
		for _, kw := range in.keywords {
			if hasWord(words, kw) {
				return in.intent
			}
		}
	}
	return IntentGeneral
}

// glossaryHits returns definitions whose term shares a word with the question.
func glossaryHits(words []string) []string {
	var hits []string
	for term, def := range Glossary {
		for _, part := range strings.FieldsFunc(term, func(r rune) bool { return r == ' ' || r == '-' }) {
			if len(part) >= 3 && hasWord(words, part) {
				hits = append(hits, fmt.Sprintf("%s: %s", term, def))
				break
			}
		}
	}
	sort.Strings(hits)
	return hits
}

// scoreCommands ranks commands by how many terms appear in their path or
// description, best first, keeping the input order on ties.
func scoreCommands(terms []string, commands []CommandInfo) []CommandInfo {
	type scored struct {
		cmd  CommandInfo
		hits int
	}
	var matches []scored
	for _, cmd := range commands {
		path := strings.ToLower(cmd.FullPath)
		short := strings.ToLower(cmd.Short)
		hits := 0
		for _, t := range terms {
			s := singular(t)
			if strings.Contains(path, s) || strings.Contains(short, s) {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, scored{cmd: cmd, hits: hits})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].hits > matches[j].hits })

	out := make([]CommandInfo, 0, min(len(matches), maxCommandMatches))
	for i := 0; i < len(matches) && i < maxCommandMatches; i++ {
		out = append(out, matches[i].cmd)
	}
	return out
}

func groundNext(paths []string, commands []CommandInfo) []string {
	var out []string
	for _, c := range pick(commands, paths) {
		out = append(out, c.FullPath)
	}
	return out
}

// pick returns the commands named in paths, in paths order.
func pick(commands []CommandInfo, paths []string) []CommandInfo {
	var out []CommandInfo
	for _, p := range paths {
		for _, c := range commands {
			if c.FullPath == p {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
