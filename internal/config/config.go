// Package config loads effortlog settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/effort"
	"gopkg.in/yaml.v3"
)

// Settings is the content of the settings file.
type Settings struct {
	Years                    []int                `yaml:"years"`
	KnownProjects            []string             `yaml:"known_projects"`
	Targets                  map[int]string       `yaml:"targets"`
	UntaggedTag              string               `yaml:"untagged_tag"`
	ExcludeUntaggedFromTotal bool                 `yaml:"exclude_untagged_from_total"`
	TimeRanges               TimeRangeSettings    `yaml:"time_ranges"`
	EffortStatus             EffortStatusSettings `yaml:"effort_status"`
}

type TimeRangeSettings struct {
	UnknownID     string `yaml:"unknown_id"`
	RemoveUnknown bool   `yaml:"remove_unknown"`
	Top           int    `yaml:"top"`
}

type EffortStatusSettings struct {
	OnlyIncorrect bool `yaml:"only_incorrect"`
}

// Config is the resolved runtime configuration.
type Config struct {
	DBPath       string
	SettingsPath string
	LogCalls     bool
	LogLevel     slog.Level
	Settings     Settings
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		UntaggedTag:              "#untagged",
		ExcludeUntaggedFromTotal: true,
		TimeRanges: TimeRangeSettings{
			UnknownID:     "Unknown",
			RemoveUnknown: true,
		},
		EffortStatus: EffortStatusSettings{OnlyIncorrect: true},
	}
}

// LoadSettings reads the YAML file at path over the defaults. A missing
// file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}

// Load resolves paths from the environment, reads the settings file and
// applies environment overrides.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}

	cfg := Config{
		DBPath:       getEnv("EFFORTLOG_DB", filepath.Join(home, ".effortlog", "effortlog.db")),
		SettingsPath: getEnv("EFFORTLOG_SETTINGS", filepath.Join(home, ".effortlog", "settings.yaml")),
		LogLevel:     slog.LevelInfo,
	}
	if v := os.Getenv("EFFORTLOG_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("EFFORTLOG_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		}
	}

	cfg.Settings, err = LoadSettings(cfg.SettingsPath)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv("EFFORTLOG_YEARS"); v != "" {
		years, err := ParseYears(v)
		if err != nil {
			return cfg, fmt.Errorf("EFFORTLOG_YEARS: %w", err)
		}
		cfg.Settings.Years = years
	}
	return cfg, cfg.Settings.Validate()
}

// ParseYears parses a comma-separated list of years such as "2023,2024".
func ParseYears(s string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		y, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", part)
		}
		years = append(years, y)
	}
	return years, nil
}

// Validate reports every problem in s at once.
func (s Settings) Validate() error {
	var problems []string

	for _, y := range s.Years {
		if y < 1 {
			problems = append(problems, fmt.Sprintf("invalid year %d", y))
		}
	}
	years := make([]int, 0, len(s.Targets))
	for y := range s.Targets {
		years = append(years, y)
	}
	sort.Ints(years)
	for _, y := range years {
		if _, err := effort.Parse(s.Targets[y]); err != nil {
			problems = append(problems, fmt.Sprintf("target for %d: %v", y, err))
		}
	}
	for i, p := range s.KnownProjects {
		if strings.TrimSpace(p) == "" {
			problems = append(problems, fmt.Sprintf("known_projects[%d] is empty", i))
		}
	}
	if s.UntaggedTag == "" {
		problems = append(problems, "untagged_tag must not be empty")
	}
	if s.TimeRanges.UnknownID == "" {
		problems = append(problems, "time_ranges.unknown_id must not be empty")
	}
	if s.TimeRanges.Top < 0 {
		problems = append(problems, fmt.Sprintf("time_ranges.top must be >= 0, got %d", s.TimeRanges.Top))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid settings: %s", strings.Join(problems, "; "))
	}
	return nil
}

// TargetTable parses the configured yearly targets.
func (s Settings) TargetTable() (domain.TargetTable, error) {
	targets := make([]domain.YearlyTarget, 0, len(s.Targets))
	for y, text := range s.Targets {
		d, err := effort.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("target for %d: %w", y, err)
		}
		targets = append(targets, domain.YearlyTarget{Year: y, Target: d})
	}
	return domain.NewTargetTable(targets), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
