package config

// Default values mirror the reference CsPbI3 screening campaign: substitute
// the Pb²⁺ B-site under charge, coordination, and a 15% ionic-radius
// Hume-Rothery band.
const (
	DefaultElementsPath  = "Materials/extracted_table.csv"
	DefaultMaterialsPath = "Materials/all_materials.csv"
	DefaultResultsDir    = "Results"
	DefaultTemplate      = "Cs{ion}I3"
	DefaultLabel         = "novel_materials"
)

// ApplyDefaults fills unset fields of cfg with platform defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Data.Elements == "" {
		cfg.Data.Elements = DefaultElementsPath
	}
	if cfg.Data.Materials == "" {
		cfg.Data.Materials = DefaultMaterialsPath
	}
	if cfg.Results.Dir == "" {
		cfg.Results.Dir = DefaultResultsDir
	}
	if cfg.Screen.Target.Ion == "" {
		cfg.Screen.Target = TargetConfig{Ion: "Pb", Coordination: "VIII", Charge: 2}
	}
	if cfg.Screen.Conditions == nil {
		cfg.Screen.Conditions = []ConditionConfig{
			{Name: "charge"},
			{Name: "coordination"},
			{Name: "Hume-Rothery", Property: "Ionic Radius", Percentage: 15},
		}
	}
	if cfg.Screen.Template == "" {
		cfg.Screen.Template = DefaultTemplate
	}
	if cfg.Screen.Label == "" {
		cfg.Screen.Label = DefaultLabel
	}
}

// NewDefaultConfig returns a Config populated entirely with defaults.  The
// charts and metrics artifacts are on; operators disable them per run.
func NewDefaultConfig() *Config {
	cfg := &Config{
		Results: ResultsConfig{Charts: true, Metrics: true},
	}
	ApplyDefaults(cfg)
	return cfg
}
