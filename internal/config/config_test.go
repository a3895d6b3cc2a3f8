package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FITLOOP_DB", "FITLOOP_PLANS", "FITLOOP_LEAD_IN", "FITLOOP_LOG_USE_CASES", "FITLOOP_LOG_FILE", "FITLOOP_WEIGHT_UNIT",
		"FITLOOP_NAME", "FITLOOP_WEEKLY_WORKOUTS", "FITLOOP_DAILY_CALORIES", "FITLOOP_TARGET_WEIGHT"} {
		t.Setenv(k, "")
	}
}

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.DBPath, cfg.DBPath)
	assert.Equal(t, def.PlansDir, cfg.PlansDir)
	assert.Equal(t, DefaultLeadIn, cfg.LeadIn)
	assert.Equal(t, UnitLbs, cfg.WeightUnit)
	assert.False(t, cfg.LogUseCases)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, Profile{WeeklyWorkouts: 3, DailyCalories: 2000}, cfg.Profile)
}

func TestLoadFile_ProfileSection(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profile:
  name: " Sam "
  weekly_workouts: 5
  target_weight: 165.5
`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Sam", cfg.Profile.Name)
	assert.Equal(t, 5, cfg.Profile.WeeklyWorkouts)
	assert.Equal(t, DefaultDailyCalories, cfg.Profile.DailyCalories, "unset fields keep defaults")
	assert.Equal(t, 165.5, cfg.Profile.TargetWeight)

	t.Setenv("FITLOOP_WEEKLY_WORKOUTS", "4")
	t.Setenv("FITLOOP_DAILY_CALORIES", "1800")
	t.Setenv("FITLOOP_TARGET_WEIGHT", "160")
	t.Setenv("FITLOOP_NAME", "Alex")

	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Alex", cfg.Profile.Name)
	assert.Equal(t, domain.Targets{WeeklyWorkouts: 4, DailyCalories: 1800, TargetWeight: 160}, cfg.Profile.Targets())
}

func TestLoadFile_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_path: /tmp/fit.db
plans_dir: /tmp/plans
lead_in: 3
weight_unit: KG
`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fit.db", cfg.DBPath)
	assert.Equal(t, "/tmp/plans", cfg.PlansDir)
	assert.Equal(t, 3, cfg.LeadIn)
	assert.Equal(t, UnitKg, cfg.WeightUnit)

	t.Setenv("FITLOOP_LEAD_IN", "0")
	t.Setenv("FITLOOP_DB", "/var/fit.db")
	t.Setenv("FITLOOP_LOG_USE_CASES", "true")
	t.Setenv("FITLOOP_LOG_FILE", "/var/log/fitloop.log")

	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.LeadIn)
	assert.Equal(t, "/var/fit.db", cfg.DBPath)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, "/var/log/fitloop.log", cfg.LogFile)
}

func TestLoadFile_ExpandsHome(t *testing.T) {
	clearEnv(t)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("FITLOOP_PLANS", "~/workouts")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "workouts"), cfg.PlansDir)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"lead-in too large", map[string]string{"FITLOOP_LEAD_IN": "90"}, "lead_in"},
		{"negative lead-in", map[string]string{"FITLOOP_LEAD_IN": "-1"}, "lead_in"},
		{"bad unit", map[string]string{"FITLOOP_WEIGHT_UNIT": "stone"}, "weight_unit"},
		{"weekly target too large", map[string]string{"FITLOOP_WEEKLY_WORKOUTS": "30"}, "profile: weekly_workouts"},
		{"negative calorie target", map[string]string{"FITLOOP_DAILY_CALORIES": "-5"}, "daily_calories"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lead_in: [oops"), 0644))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestLoad_UsesFitloopConfigEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "alt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lead_in: 10\n"), 0644))
	t.Setenv("FITLOOP_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.LeadIn)
}
