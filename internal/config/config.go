// Package config resolves fitloop settings from defaults, an optional YAML
// file and FITLOOP_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/fitloop/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLeadIn = 5
	MaxLeadIn     = 60

	UnitLbs = "lbs"
	UnitKg  = "kg"

	DefaultWeeklyWorkouts = 3
	DefaultDailyCalories  = 2000
)

type Config struct {
	DBPath      string  `yaml:"db_path"`
	PlansDir    string  `yaml:"plans_dir"`
	LeadIn      int     `yaml:"lead_in"`
	LogUseCases bool    `yaml:"log_use_cases"`
	// LogFile receives use-case logs instead of stderr when set. It is
	// rotated by size.
	LogFile     string  `yaml:"log_file"`
	WeightUnit  string  `yaml:"weight_unit"`
	Profile     Profile `yaml:"profile"`
}

// Profile is the user's name and personal targets. Target weight is in
// WeightUnit.
type Profile struct {
	Name           string  `yaml:"name"`
	WeeklyWorkouts int     `yaml:"weekly_workouts"`
	DailyCalories  int     `yaml:"daily_calories"`
	TargetWeight   float64 `yaml:"target_weight"`
}

// Targets returns the profile's targets in domain form.
func (p Profile) Targets() domain.Targets {
	return domain.Targets{
		WeeklyWorkouts: p.WeeklyWorkouts,
		DailyCalories:  p.DailyCalories,
		TargetWeight:   p.TargetWeight,
	}
}

// Default returns the configuration rooted at ~/.fitloop.
func Default() Config {
	dir := dataDir()
	return Config{
		DBPath:     filepath.Join(dir, "fitloop.db"),
		PlansDir:   filepath.Join(dir, "plans"),
		LeadIn:     DefaultLeadIn,
		WeightUnit: UnitLbs,
		Profile: Profile{
			WeeklyWorkouts: DefaultWeeklyWorkouts,
			DailyCalories:  DefaultDailyCalories,
		},
	}
}

// Load reads the file named by FITLOOP_CONFIG (or ~/.fitloop/config.yaml),
// then applies environment overrides. A missing file is not an error.
func Load() (Config, error) {
	path := os.Getenv("FITLOOP_CONFIG")
	if path == "" {
		path = filepath.Join(dataDir(), "config.yaml")
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.PlansDir = expandHome(cfg.PlansDir)
	cfg.LogFile = expandHome(cfg.LogFile)
	cfg.WeightUnit = strings.ToLower(strings.TrimSpace(cfg.WeightUnit))
	cfg.Profile.Name = strings.TrimSpace(cfg.Profile.Name)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITLOOP_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("FITLOOP_PLANS"); v != "" {
		cfg.PlansDir = v
	}
	if v := os.Getenv("FITLOOP_LEAD_IN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.LeadIn = n
		}
	}
	if v := os.Getenv("FITLOOP_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FITLOOP_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("FITLOOP_WEIGHT_UNIT"); v != "" {
		cfg.WeightUnit = v
	}
	if v := os.Getenv("FITLOOP_NAME"); v != "" {
		cfg.Profile.Name = v
	}
	if v := os.Getenv("FITLOOP_WEEKLY_WORKOUTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Profile.WeeklyWorkouts = n
		}
	}
	if v := os.Getenv("FITLOOP_DAILY_CALORIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Profile.DailyCalories = n
		}
	}
	if v := os.Getenv("FITLOOP_TARGET_WEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Profile.TargetWeight = f
		}
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.LeadIn < 0 || c.LeadIn > MaxLeadIn {
		return fmt.Errorf("lead_in must be between 0 and %d, got %d", MaxLeadIn, c.LeadIn)
	}
	if c.WeightUnit != UnitLbs && c.WeightUnit != UnitKg {
		return fmt.Errorf("weight_unit must be %q or %q, got %q", UnitLbs, UnitKg, c.WeightUnit)
	}
	if err := c.Profile.Targets().Validate(); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	return nil
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fitloop"
	}
	return filepath.Join(home, ".fitloop")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
