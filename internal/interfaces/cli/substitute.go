package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	appscreening "github.com/turtacn/SynthScreen/internal/application/screening"
	"github.com/turtacn/SynthScreen/internal/config"
	"github.com/turtacn/SynthScreen/internal/domain/element"
	"github.com/turtacn/SynthScreen/internal/domain/material"
)

// NewSubstituteCmd creates the substitute command: run the isovalent
// substitution pipeline for the configured target element.
func NewSubstituteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "substitute",
		Short: "Generate isovalent substitutions for the target element and estimate their synthesizability",
		Long: "Resolves the target element in the element property table, filters\n" +
			"substitutes under the configured conditions (charge, coordination,\n" +
			"Hume-Rothery tolerance band), synthesizes candidate formulas from the\n" +
			"template, cross-references them with the ICSD catalog, and writes the\n" +
			"result table under the results directory.",
		Example: `  synthscreen substitute
  synthscreen substitute --ion Pb --charge 2 --coordination VIII
  synthscreen substitute --conditions charge,hume-rothery --percentage 20
  synthscreen substitute --template "Cs{ion}Br3" --label bromides`,
		RunE: runSubstitute,
	}

	f := cmd.Flags()
	f.String("ion", "", "target element symbol (overrides screen.target.ion)")
	f.Int("charge", 0, "target oxidation state (overrides screen.target.charge)")
	f.String("coordination", "", "target coordination number (overrides screen.target.coordination)")
	f.StringSlice("conditions", nil, "active conditions: charge, coordination, hume-rothery")
	f.String("property", "", "Hume-Rothery property column (overrides the configured condition)")
	f.Float64("percentage", 0, "Hume-Rothery tolerance percentage")
	f.String("template", "", "formula template with the {ion} placeholder")
	f.String("label", "", "artifact label (df_name)")
	return cmd
}

func runSubstitute(cmd *cobra.Command, _ []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	req, err := substitutionRequestFromFlags(cliCtx.Config, cmd.Flags())
	if err != nil {
		return err
	}

	svc := newRuntime(cliCtx.Config, cliCtx.Logger).substitutionService()
	result, err := svc.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	return printSubstitutionResult(cmd, cliCtx, result)
}

// substitutionRequestFromFlags merges the screen configuration block with the
// command's flag overrides.
func substitutionRequestFromFlags(cfg *config.Config, f *pflag.FlagSet) (appscreening.SubstitutionRequest, error) {
	req := appscreening.SubstitutionRequest{
		Target: element.TargetSpec{
			Ion:          cfg.Screen.Target.Ion,
			Coordination: cfg.Screen.Target.Coordination,
			Charge:       cfg.Screen.Target.Charge,
		},
		Template: material.FormulaTemplate(cfg.Screen.Template),
		Label:    cfg.Screen.Label,
	}

	if f.Changed("ion") {
		req.Target.Ion, _ = f.GetString("ion")
	}
	if f.Changed("charge") {
		req.Target.Charge, _ = f.GetInt("charge")
	}
	if f.Changed("coordination") {
		req.Target.Coordination, _ = f.GetString("coordination")
	}
	if f.Changed("template") {
		tpl, _ := f.GetString("template")
		req.Template = material.FormulaTemplate(tpl)
	}
	if f.Changed("label") {
		req.Label, _ = f.GetString("label")
	}

	// The Hume-Rothery parameters configured (or defaulted) for the run.
	property := ""
	percentage := 0.0
	for _, cond := range cfg.Screen.Conditions {
		if cond.Name == element.ConditionHumeRothery {
			property = cond.Property
			percentage = cond.Percentage
		}
	}
	if property == "" {
		property = element.PropertyIonicRadius
	}
	if f.Changed("property") {
		property, _ = f.GetString("property")
	}
	if f.Changed("percentage") {
		percentage, _ = f.GetFloat64("percentage")
	}

	if f.Changed("conditions") {
		names, _ := f.GetStringSlice("conditions")
		req.Conditions = make([]element.ConditionSpec, 0, len(names))
		for _, raw := range names {
			spec := element.ConditionSpec{Name: normalizeConditionName(raw)}
			if spec.Name == element.ConditionHumeRothery {
				spec.Property = property
				spec.Percentage = percentage
			}
			req.Conditions = append(req.Conditions, spec)
		}
	} else {
		req.Conditions = make([]element.ConditionSpec, 0, len(cfg.Screen.Conditions))
		for _, cond := range cfg.Screen.Conditions {
			spec := element.ConditionSpec{
				Name:       cond.Name,
				Property:   cond.Property,
				Percentage: cond.Percentage,
			}
			if spec.Name == element.ConditionHumeRothery {
				spec.Property = property
				spec.Percentage = percentage
			}
			req.Conditions = append(req.Conditions, spec)
		}
	}
	return req, nil
}

// normalizeConditionName maps case-insensitive flag spellings onto the closed
// condition vocabulary.  Unknown names pass through and fail interpretation.
func normalizeConditionName(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case element.ConditionCharge:
		return element.ConditionCharge
	case element.ConditionCoordination:
		return element.ConditionCoordination
	case "hume-rothery":
		return element.ConditionHumeRothery
	default:
		return strings.TrimSpace(raw)
	}
}

// substituteOutput is the JSON shape of a substitution run.
type substituteOutput struct {
	RunID               string     `json:"run_id"`
	Target              targetInfo `json:"target"`
	Candidates          int        `json:"candidates"`
	TruePositive        int        `json:"true_positive"`
	FalsePositive       int        `json:"false_positive"`
	SyntheticLikelihood float64    `json:"synthetic_likelihood"`
	Artifact            string     `json:"artifact"`
	Chart               string     `json:"chart,omitempty"`
	Metrics             string     `json:"metrics,omitempty"`
	Header              []string   `json:"header"`
	Rows                [][]string `json:"rows"`
}

type targetInfo struct {
	Ion          string `json:"ion"`
	Coordination string `json:"coordination"`
	Charge       int    `json:"charge"`
}

func (o substituteOutput) TableHeaders() []string { return o.Header }
func (o substituteOutput) TableRows() [][]string  { return o.Rows }

func printSubstitutionResult(cmd *cobra.Command, cliCtx *CLIContext, result *appscreening.SubstitutionResult) error {
	out := substituteOutput{
		RunID: result.RunID,
		Target: targetInfo{
			Ion:          result.Target.Ion,
			Coordination: result.Target.Coordination,
			Charge:       result.Target.Charge,
		},
		Candidates:          result.Candidates,
		TruePositive:        result.Summary.TruePositive,
		FalsePositive:       result.Summary.FalsePositive,
		SyntheticLikelihood: result.Summary.Percentage,
		Artifact:            result.ArtifactPath,
		Chart:               result.ChartPath,
		Metrics:             result.MetricsPath,
		Header:              result.Header,
		Rows:                result.Rows,
	}
	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Target: %s (coordination %s, charge %+d)\n\n",
		out.Target.Ion, out.Target.Coordination, out.Target.Charge)
	fmt.Fprint(w, FormatTable(out.Header, out.Rows))
	fmt.Fprintf(w, "\nCandidates: %d  True positive: %d  False positive: %d  P-Syn: %.2f%%\n",
		out.Candidates, out.TruePositive, out.FalsePositive, out.SyntheticLikelihood)
	fmt.Fprintf(w, "Artifact: %s\n", out.Artifact)
	if out.Chart != "" {
		fmt.Fprintf(w, "Chart: %s\n", out.Chart)
	}
	if out.Metrics != "" {
		fmt.Fprintf(w, "Metrics: %s\n", out.Metrics)
	}
	return nil
}
