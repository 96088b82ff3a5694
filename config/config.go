// Package config loads calculator settings from a YAML file or CLI flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults for the optional settings. Year and month have no defaults and
// must always be supplied.
const (
	DefaultTimezoneOffset = 7.0
	DefaultOrb            = 1.0
	DefaultStepMinutes    = 15
	DefaultOutputDir      = "output"
	DefaultEphePath       = "./ephemeris_data"
)

// ErrSetupRequested signals that the caller asked for the interactive
// configuration wizard instead of flags.
var ErrSetupRequested = errors.New("interactive setup requested")

// Config holds one calculation run's settings.
type Config struct {
	Year           int     `yaml:"year"`
	Month          int     `yaml:"month"`
	TimezoneOffset float64 `yaml:"timezone_offset"`
	Orb            float64 `yaml:"orb"`
	StepMinutes    int     `yaml:"step_minutes"`
	OutputDir      string  `yaml:"output_dir"`
	EphePath       string  `yaml:"ephe_path"`
	JournalDir     string  `yaml:"journal_dir,omitempty"`
}

// Step returns the sample grid resolution.
func (c Config) Step() time.Duration {
	return time.Duration(c.StepMinutes) * time.Minute
}

// Validate checks ranges and grid alignment.
func (c Config) Validate() error {
	if c.Year < 1 {
		return fmt.Errorf("invalid year %d", c.Year)
	}
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("invalid month %d", c.Month)
	}
	if c.Orb <= 0 || c.Orb > 180 {
		return fmt.Errorf("invalid orb %.2f, must be in (0, 180]", c.Orb)
	}
	if c.StepMinutes < 1 || 60%c.StepMinutes != 0 {
		return fmt.Errorf("invalid step %d, minutes must evenly divide an hour", c.StepMinutes)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output dir is required")
	}
	if c.EphePath == "" {
		return fmt.Errorf("ephemeris data path is required")
	}
	return nil
}

// Get reads configuration. A --config YAML file wins over individual flags;
// --setup returns ErrSetupRequested so the caller can run the wizard.
func Get() (Config, error) {
	configPath := flag.String("config", "", "path to yaml config")
	setup := flag.Bool("setup", false, "run the interactive configuration wizard")
	year := flag.Int("year", 0, "calendar year, example: 2025")
	month := flag.Int("month", 0, "calendar month 1-12")
	tz := flag.Float64("tz", DefaultTimezoneOffset, "UTC offset in hours, fractional allowed")
	orb := flag.Float64("orb", DefaultOrb, "aspect orb in degrees")
	step := flag.Int("step", DefaultStepMinutes, "sample step in minutes, must divide 60")
	out := flag.String("out", DefaultOutputDir, "output directory")
	ephe := flag.String("ephe", DefaultEphePath, "swiss ephemeris data directory")
	journal := flag.String("journal", "", "event journal directory, empty disables journaling")

	flag.Parse()

	if *setup {
		return Config{}, ErrSetupRequested
	}

	if *configPath != "" {
		return FromYaml(*configPath)
	}

	cfg := Config{
		Year:           *year,
		Month:          *month,
		TimezoneOffset: *tz,
		Orb:            *orb,
		StepMinutes:    *step,
		OutputDir:      *out,
		EphePath:       *ephe,
		JournalDir:     *journal,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid flags")
	}
	return cfg, nil
}

// FromYaml loads and validates a YAML config file. Zero-valued optional
// fields take their defaults.
func FromYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	cfg := Config{
		TimezoneOffset: DefaultTimezoneOffset,
		Orb:            DefaultOrb,
		StepMinutes:    DefaultStepMinutes,
		OutputDir:      DefaultOutputDir,
		EphePath:       DefaultEphePath,
	}
	if err := yaml.Unmarshal(f, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c Config) Save(path string) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return errors.Wrapf(os.WriteFile(path, out, 0o644), "write config %s", path)
}
