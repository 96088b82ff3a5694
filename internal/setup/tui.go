// Package setup implements the interactive terminal configuration wizard.
package setup

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/minhvu-dev/ephemeris/config"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)
)

// RunTUI walks the user through a calculation config and optionally saves
// it to config.yaml. It returns the resulting config.
func RunTUI() (config.Config, error) {
	yearStr := "2025"
	monthStr := "9"
	tzStr := "7"
	orbStr := "1.0"
	stepStr := strconv.Itoa(config.DefaultStepMinutes)
	outputDir := config.DefaultOutputDir
	ephePath := config.DefaultEphePath
	journalDir := ""
	save := true

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("EPHEMERIS CALCULATOR SETUP"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Pick a month to compute.\n"))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Year").
				Value(&yearStr).
				Validate(validateInt(1, 9999)),
			huh.NewInput().
				Title("Month (1-12)").
				Value(&monthStr).
				Validate(validateInt(1, 12)),
			huh.NewInput().
				Title("UTC offset in hours (e.g. 7 for Vietnam)").
				Value(&tzStr).
				Validate(validateFloat(-14, 14)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Aspect orb in degrees").
				Value(&orbStr).
				Validate(validateFloat(0.01, 180)),
			huh.NewSelect[string]().
				Title("Sample step").
				Options(
					huh.NewOption("15 minutes", "15"),
					huh.NewOption("30 minutes", "30"),
					huh.NewOption("60 minutes", "60"),
				).
				Value(&stepStr),
			huh.NewInput().
				Title("Output directory").
				Value(&outputDir),
			huh.NewInput().
				Title("Swiss Ephemeris data directory").
				Value(&ephePath),
			huh.NewInput().
				Title("Event journal directory (empty disables journaling)").
				Value(&journalDir),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save as config.yaml?").
				Value(&save),
		),
	)

	if err := form.Run(); err != nil {
		return config.Config{}, errors.Wrap(err, "setup wizard")
	}

	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	tz, _ := strconv.ParseFloat(tzStr, 64)
	orb, _ := strconv.ParseFloat(orbStr, 64)
	step, _ := strconv.Atoi(stepStr)

	cfg := config.Config{
		Year:           year,
		Month:          month,
		TimezoneOffset: tz,
		Orb:            orb,
		StepMinutes:    step,
		OutputDir:      outputDir,
		EphePath:       ephePath,
		JournalDir:     journalDir,
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	if save {
		if err := cfg.Save("config.yaml"); err != nil {
			return config.Config{}, err
		}
		fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Saved config.yaml"))
	}

	return cfg, nil
}

func validateInt(min, max int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("not a number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func validateFloat(min, max float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("not a number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %g and %g", min, max)
		}
		return nil
	}
}
