// Package catalog resolves workout plans by key. It merges the built-in
// plans with plan files found in a directory.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/fitloop/internal/domain"
)

// ErrPlanNotFound is returned when no plan matches a selector.
var ErrPlanNotFound = errors.New("plan not found")

// Entry is a plan with its list position and origin.
type Entry struct {
	Index  int
	Source string // "builtin" or the plan file path
	Plan   domain.WorkoutPlan
}

// Catalog is an immutable set of plans sorted by key.
type Catalog struct {
	entries []Entry
}

// New builds a catalog from the given plans, which are assumed valid.
func New(plans ...domain.WorkoutPlan) *Catalog {
	byKey := make(map[string]Entry, len(plans))
	for _, p := range plans {
		byKey[p.Key] = Entry{Source: "builtin", Plan: p}
	}
	return fromMap(byKey)
}

// Load returns the built-in plans plus every plan file in dir. A file plan
// overrides a built-in plan with the same key; two files claiming the same key
// is an error. A missing or empty dir yields just the built-ins. Any invalid
// file fails the whole load.
func Load(dir string) (*Catalog, error) {
	byKey := make(map[string]Entry)
	for _, p := range Builtin() {
		byKey[p.Key] = Entry{Source: "builtin", Plan: p}
	}
	if dir == "" {
		return fromMap(byKey), nil
	}

	files, err := planFiles(dir)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, file := range files {
		pf, err := LoadPlanFile(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		plan := pf.ToPlan()
		if err := plan.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(file), err))
			continue
		}
		if prev, ok := byKey[plan.Key]; ok && prev.Source != "builtin" {
			errs = append(errs, fmt.Errorf("%s: duplicate plan key %q, already defined in %s",
				filepath.Base(file), plan.Key, filepath.Base(prev.Source)))
			continue
		}
		byKey[plan.Key] = Entry{Source: file, Plan: plan}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("loading plans from %s: %w", dir, errors.Join(errs...))
	}
	return fromMap(byKey), nil
}

func planFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml", "*.toml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("listing plan files: %w", err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

func fromMap(byKey map[string]Entry) *Catalog {
	entries := make([]Entry, 0, len(byKey))
	for _, e := range byKey {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Plan.Key < entries[j].Plan.Key
	})
	for i := range entries {
		entries[i].Index = i + 1
	}
	return &Catalog{entries: entries}
}

// List returns all entries sorted by key.
func (c *Catalog) List() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Get resolves a plan by key, display name (case-insensitive) or the
// numeric index shown by List.
func (c *Catalog) Get(selector string) (domain.WorkoutPlan, error) {
	input := strings.TrimSpace(selector)
	if input == "" {
		return domain.WorkoutPlan{}, fmt.Errorf("%w: empty plan name", ErrPlanNotFound)
	}
	for _, e := range c.entries {
		if strings.EqualFold(e.Plan.Key, input) || strings.EqualFold(e.Plan.Name, input) {
			return e.Plan, nil
		}
	}
	if n, err := strconv.Atoi(input); err == nil {
		for _, e := range c.entries {
			if e.Index == n {
				return e.Plan, nil
			}
		}
	}
	return domain.WorkoutPlan{}, fmt.Errorf("%w: %q", ErrPlanNotFound, selector)
}
