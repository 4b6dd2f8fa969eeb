// Package config defines all configuration structures for SynthScreen.
// No I/O or parsing logic lives here — only plain data types and validation.
package config

import (
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

// LogConfig holds logging tunables.
type LogConfig struct {
	Level            string   `mapstructure:"level" yaml:"level"`
	Format           string   `mapstructure:"format" yaml:"format"` // "json" | "console"
	OutputPaths      []string `mapstructure:"output_paths" yaml:"output_paths,omitempty"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths" yaml:"error_output_paths,omitempty"`
}

// DataConfig locates the input tables.  Paths are resolved relative to the
// working directory and may be doublestar glob patterns; multiple matches are
// concatenated in lexical path order.
type DataConfig struct {
	// Elements is the element property table (Ion, Coordination, Charge,
	// Ionic Radius, plus any further numeric property columns).
	Elements string `mapstructure:"elements" yaml:"elements"`

	// Materials is the materials catalog (composition, Atoms, and optionally
	// pretty_formula, icsd_ids).  Rows with non-empty icsd_ids double as the
	// ICSD reference catalog.
	Materials string `mapstructure:"materials" yaml:"materials"`
}

// ResultsConfig controls run artifact persistence.
type ResultsConfig struct {
	// Dir is the output directory, created if absent.  It is an explicit
	// parameter: nothing else about artifact placement depends on the
	// process working directory.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Charts enables the true/false-positive proportion chart beside the CSV.
	Charts bool `mapstructure:"charts" yaml:"charts"`

	// Metrics enables the per-run Prometheus textfile beside the CSV.
	Metrics bool `mapstructure:"metrics" yaml:"metrics"`
}

// TargetConfig identifies the element to substitute out.
type TargetConfig struct {
	Ion          string `mapstructure:"ion" yaml:"ion"`
	Coordination string `mapstructure:"coordination" yaml:"coordination"`
	Charge       int    `mapstructure:"charge" yaml:"charge"`
}

// ConditionConfig is one named substitution condition.  Property and
// Percentage apply to Hume-Rothery only.
type ConditionConfig struct {
	Name       string  `mapstructure:"name" yaml:"name"`
	Property   string  `mapstructure:"property" yaml:"property,omitempty"`
	Percentage float64 `mapstructure:"percentage" yaml:"percentage,omitempty"`
}

// ScreenConfig parameterizes the substitution pipeline.
type ScreenConfig struct {
	Target     TargetConfig      `mapstructure:"target" yaml:"target"`
	Conditions []ConditionConfig `mapstructure:"conditions" yaml:"conditions"`

	// Template is the formula-synthesis rule; "{ion}" is replaced by the
	// substitute's symbol.
	Template string `mapstructure:"template" yaml:"template"`

	// Label is the df_name component of the artifact file name.
	Label string `mapstructure:"label" yaml:"label"`
}

// Config is the root configuration object.
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Data    DataConfig    `mapstructure:"data" yaml:"data"`
	Results ResultsConfig `mapstructure:"results" yaml:"results"`
	Screen  ScreenConfig  `mapstructure:"screen" yaml:"screen"`
}

// Known condition names; anything else fails validation.  The vocabulary is
// deliberately closed so a typo surfaces as a configuration error rather than
// a silently skipped filter.
var knownConditionNames = map[string]bool{
	"charge":       true,
	"coordination": true,
	"Hume-Rothery": true,
}

// Validate returns the first semantic error in the configuration.
func (c *Config) Validate() error {
	if c.Data.Elements == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "data.elements must not be empty")
	}
	if c.Data.Materials == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "data.materials must not be empty")
	}
	if c.Results.Dir == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "results.dir must not be empty")
	}
	for _, cond := range c.Screen.Conditions {
		if !knownConditionNames[cond.Name] {
			return apperrors.New(apperrors.ErrCodeUnknownCondition,
				"screen.conditions contains an unknown condition name").
				WithDetailf("%q", cond.Name)
		}
		if cond.Name == "Hume-Rothery" {
			if cond.Property == "" {
				return apperrors.New(apperrors.ErrCodeMissingConditionParameter,
					"Hume-Rothery condition requires a property")
			}
			if cond.Percentage < 0 {
				return apperrors.New(apperrors.ErrCodeInvalidPercentage,
					"Hume-Rothery percentage must be non-negative").
					WithDetailf("got %v", cond.Percentage)
			}
		}
	}
	return nil
}
