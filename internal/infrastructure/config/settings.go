package config

import (
	"fmt"
	"time"

	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/spf13/viper"
)

// Configuration keys, as they appear in the config file. Environment
// variables use the PIZZERIA_ prefix with dots replaced by underscores,
// e.g. PIZZERIA_KITCHEN_TIME_SCALE.
const (
	KeyStepDelay    = "kitchen.step_delay"
	KeyTimeScale    = "kitchen.time_scale"
	KeyMenuFile     = "menu.file"
	KeyOutputFormat = "output.format"
)

// Settings aggregates the runtime configuration.
// This is a value object that flows through the system.
type Settings struct {
	// Kitchen
	StepDelay time.Duration
	TimeScale float64

	// Menu
	MenuFile string

	// Output
	Format string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		StepDelay: entities.DefaultStepDelay,
		TimeScale: 1,
		Format:    "table",
	}
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault(KeyStepDelay, d.StepDelay)
	v.SetDefault(KeyTimeScale, d.TimeScale)
	v.SetDefault(KeyMenuFile, d.MenuFile)
	v.SetDefault(KeyOutputFormat, d.Format)
}

// FromViper reads settings from v, which should already have its config
// file and environment bound.
func FromViper(v *viper.Viper) (Settings, error) {
	s := Settings{
		StepDelay: v.GetDuration(KeyStepDelay),
		TimeScale: v.GetFloat64(KeyTimeScale),
		MenuFile:  v.GetString(KeyMenuFile),
		Format:    v.GetString(KeyOutputFormat),
	}
	s.ApplyDefaults()

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ApplyDefaults applies defaults for zero values.
// A zero StepDelay or TimeScale is kept: it means no waiting.
func (s *Settings) ApplyDefaults() {
	if s.Format == "" {
		s.Format = "table"
	}
}

// Validate rejects settings the kitchen cannot work with.
func (s Settings) Validate() error {
	if s.StepDelay < 0 {
		return fmt.Errorf("%s must not be negative, got %s", KeyStepDelay, s.StepDelay)
	}
	if s.TimeScale < 0 {
		return fmt.Errorf("%s must not be negative, got %g", KeyTimeScale, s.TimeScale)
	}
	return nil
}
