package coach

import (
	"fmt"
	"sort"
	"strings"
)

// Glossary maps fitness and fitloop terms to short definitions.
var Glossary = map[string]string{
	"set":             "One uninterrupted block of work on an exercise. Sets are separated by rest intervals.",
	"rep":             "A single repetition of a movement. fitloop shows the rep count for each set but times the set, not the reps.",
	"rest":            "The recovery interval between two sets of the same exercise. The last set of an exercise has no rest.",
	"lead-in":         "The 'Get Ready' countdown before the first exercise. Set it with lead_in in the config or --lead-in.",
	"hiit":            "High-intensity interval training: short all-out work intervals with brief rests, such as 45s on and 15s off.",
	"warm-up":         "Light movement that raises heart rate and loosens joints before harder work. 5 minutes is a good minimum.",
	"cool-down":       "Easy movement and stretching after a workout to bring the heart rate down.",
	"streak":          "Consecutive days with at least one completed workout, counted back from today or yesterday.",
	"points":          "Each unlocked achievement is worth points. The dashboard shows the total.",
	"achievement":     "A badge unlocked by reaching a milestone, such as the first workout or a 7-day streak.",
	"goal":            "A target you track by hand: weight, consistency, distance or custom, with an optional deadline.",
	"calorie deficit": "Burning more calories than you eat. About 500 kcal a day below maintenance loses roughly 1 lb a week.",
	"protein":         "Aim for 1.6-2.2 g per kg of body weight a day to support muscle growth.",
	"plank":           "A core hold on forearms and toes with the body in a straight line. Don't let the hips rise or sag.",
	"squat":           "Feet shoulder-width apart, chest up, sit back as if into a chair and push up through the heels.",
	"progress":        "Daily entries of weight, calories, sleep, mood, steps and water. Log them with 'fitloop progress log'.",
	"target":          "Personal aims in the profile config: weekly workouts, daily calories and target weight.",
}

// FormatGlossary lists the glossary sorted by term.
func FormatGlossary() string {
	keys := make([]string, 0, len(Glossary))
	for k := range Glossary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("- %s: %s\n", k, Glossary[k]))
	}
	return b.String()
}
