package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alexanderramin/fitloop/internal/domain"
	"gopkg.in/yaml.v3"
)

// PlanFile is the on-disk plan format, accepted as JSON, YAML or TOML.
type PlanFile struct {
	Key         string         `json:"key" yaml:"key" toml:"key"`
	Name        string         `json:"name" yaml:"name" toml:"name"`
	Difficulty  string         `json:"difficulty,omitempty" yaml:"difficulty,omitempty" toml:"difficulty,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Calories    int            `json:"calories,omitempty" yaml:"calories,omitempty" toml:"calories,omitempty"`
	Exercises   []ExerciseFile `json:"exercises" yaml:"exercises" toml:"exercises"`
}

type ExerciseFile struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Kind        string   `json:"kind" yaml:"kind" toml:"kind"` // "timed" or "sets_reps"
	Category    string   `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Steps       []string `json:"steps,omitempty" yaml:"steps,omitempty" toml:"steps,omitempty"`
	Tips        []string `json:"tips,omitempty" yaml:"tips,omitempty" toml:"tips,omitempty"`
	Duration    int      `json:"duration,omitempty" yaml:"duration,omitempty" toml:"duration,omitempty"`
	Sets        *int     `json:"sets,omitempty" yaml:"sets,omitempty" toml:"sets,omitempty"`
	Reps        int      `json:"reps,omitempty" yaml:"reps,omitempty" toml:"reps,omitempty"`
	WorkSeconds int      `json:"work_seconds,omitempty" yaml:"work_seconds,omitempty" toml:"work_seconds,omitempty"`
	RestSeconds int      `json:"rest_seconds,omitempty" yaml:"rest_seconds,omitempty" toml:"rest_seconds,omitempty"`
}

// LoadPlanFile reads and decodes a plan file. The format follows the
// extension: .json, .yaml, .yml or .toml. A missing key defaults to the file stem.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var pf PlanFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &pf)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &pf)
	case ".toml":
		err = toml.Unmarshal(data, &pf)
	default:
		return nil, fmt.Errorf("unsupported plan file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing plan file %s: %w", filepath.Base(path), err)
	}

	if pf.Key == "" {
		pf.Key = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &pf, nil
}

// ToPlan converts the file form into a domain plan. Sets defaults to 1 for
// sets/reps exercises that omit it.
func (pf *PlanFile) ToPlan() domain.WorkoutPlan {
	plan := domain.WorkoutPlan{
		Key:               pf.Key,
		Name:              domain.CoalesceStr(pf.Name, pf.Key),
		Difficulty:        pf.Difficulty,
		Description:       pf.Description,
		EstimatedCalories: pf.Calories,
		Exercises:         make([]domain.Exercise, 0, len(pf.Exercises)),
	}
	for _, ef := range pf.Exercises {
		ex := domain.Exercise{
			Name:        ef.Name,
			Kind:        domain.ExerciseKind(ef.Kind),
			Category:    ef.Category,
			Description: ef.Description,
			Steps:       ef.Steps,
			Tips:        ef.Tips,
			Duration:    ef.Duration,
			Reps:        ef.Reps,
			WorkSeconds: ef.WorkSeconds,
			RestSeconds: ef.RestSeconds,
		}
		if ex.Kind == domain.ExerciseSetsReps {
			ex.Sets = domain.IntFromPtrWithDefault(1, ef.Sets)
		}
		plan.Exercises = append(plan.Exercises, ex)
	}
	return plan
}
