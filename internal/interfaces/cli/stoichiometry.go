package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	appscreening "github.com/turtacn/SynthScreen/internal/application/screening"
)

// NewStoichiometryCmd creates the stoichiometry command group: annotate the
// materials catalog against the known atom-count patterns, or screen it down
// to the matching rows.
func NewStoichiometryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stoichiometry",
		Short: "Match the materials catalog against known stoichiometric patterns",
	}
	cmd.AddCommand(newAnnotateCmd(), newScreenCmd())
	return cmd
}

func newAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Flag every catalog row with whether its stoichiometry is a known pattern",
		Example: `  synthscreen stoichiometry annotate
  synthscreen stoichiometry annotate --label halide_survey`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			label, _ := cmd.Flags().GetString("label")

			svc := newRuntime(cliCtx.Config, cliCtx.Logger).stoichiometryService()
			result, err := svc.Annotate(cmd.Context(), appscreening.AnnotateRequest{Label: label})
			if err != nil {
				return err
			}
			return printAnnotateResult(cmd, cliCtx, result)
		},
	}
	cmd.Flags().String("label", "", "artifact label (df_name)")
	return cmd
}

func newScreenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Keep only the rows with a known stoichiometry and cross-reference them",
		Example: `  synthscreen stoichiometry screen
  synthscreen stoichiometry screen --label Ternary_perovskite`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			label, _ := cmd.Flags().GetString("label")

			svc := newRuntime(cliCtx.Config, cliCtx.Logger).stoichiometryService()
			result, err := svc.Screen(cmd.Context(), appscreening.ScreenRequest{Label: label})
			if err != nil {
				return err
			}
			return printScreenResult(cmd, cliCtx, result)
		},
	}
	cmd.Flags().String("label", "", "artifact label (df_name)")
	return cmd
}

// annotateOutput is the JSON shape of an annotation run.
type annotateOutput struct {
	RunID    string     `json:"run_id"`
	Scanned  int        `json:"scanned"`
	Passed   int        `json:"passed"`
	Artifact string     `json:"artifact"`
	Metrics  string     `json:"metrics,omitempty"`
	Header   []string   `json:"header"`
	Rows     [][]string `json:"rows"`
}

func (o annotateOutput) TableHeaders() []string { return o.Header }
func (o annotateOutput) TableRows() [][]string  { return o.Rows }

func printAnnotateResult(cmd *cobra.Command, cliCtx *CLIContext, result *appscreening.AnnotateResult) error {
	out := annotateOutput{
		RunID:    result.RunID,
		Scanned:  result.Scanned,
		Passed:   result.Passed,
		Artifact: result.ArtifactPath,
		Metrics:  result.MetricsPath,
		Header:   result.Header,
		Rows:     result.Rows,
	}
	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprint(w, FormatTable(out.Header, out.Rows))
	fmt.Fprintf(w, "\nScanned: %d  Passed: %d\n", out.Scanned, out.Passed)
	fmt.Fprintf(w, "Artifact: %s\n", out.Artifact)
	if out.Metrics != "" {
		fmt.Fprintf(w, "Metrics: %s\n", out.Metrics)
	}
	return nil
}

// screenOutput is the JSON shape of a screening run.
type screenOutput struct {
	RunID               string     `json:"run_id"`
	Scanned             int        `json:"scanned"`
	Matched             int        `json:"matched"`
	TruePositive        int        `json:"true_positive"`
	FalsePositive       int        `json:"false_positive"`
	SyntheticLikelihood float64    `json:"synthetic_likelihood"`
	Artifact            string     `json:"artifact"`
	Chart               string     `json:"chart,omitempty"`
	Metrics             string     `json:"metrics,omitempty"`
	Header              []string   `json:"header"`
	Rows                [][]string `json:"rows"`
}

func (o screenOutput) TableHeaders() []string { return o.Header }
func (o screenOutput) TableRows() [][]string  { return o.Rows }

func printScreenResult(cmd *cobra.Command, cliCtx *CLIContext, result *appscreening.ScreenResult) error {
	out := screenOutput{
		RunID:               result.RunID,
		Scanned:             result.Scanned,
		Matched:             result.Matched,
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
	fmt.Fprint(w, FormatTable(out.Header, out.Rows))
	fmt.Fprintf(w, "\nScanned: %d  Matched: %d  True positive: %d  False positive: %d  P-Syn: %.2f%%\n",
		out.Scanned, out.Matched, out.TruePositive, out.FalsePositive, out.SyntheticLikelihood)
	fmt.Fprintf(w, "Artifact: %s\n", out.Artifact)
	if out.Chart != "" {
		fmt.Fprintf(w, "Chart: %s\n", out.Chart)
	}
	if out.Metrics != "" {
		fmt.Fprintf(w, "Metrics: %s\n", out.Metrics)
	}
	return nil
}
