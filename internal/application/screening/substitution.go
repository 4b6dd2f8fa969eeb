package screening

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/SynthScreen/internal/domain/crossref"
	"github.com/turtacn/SynthScreen/internal/domain/element"
	"github.com/turtacn/SynthScreen/internal/domain/likelihood"
	"github.com/turtacn/SynthScreen/internal/domain/material"
	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/logging"
	screeningTypes "github.com/turtacn/SynthScreen/pkg/types/screening"
)

// Filter names stamped into artifact file names.
const (
	FilterSubstitution = "isovalent_generator"
	FilterAnnotate     = "isovalent_substitution"
	FilterScreen       = "stoichiometry_match"
)

// Default artifact labels per pipeline.
const (
	DefaultSubstitutionLabel = "novel_materials"
	DefaultAnnotateLabel     = "df"
	DefaultScreenLabel       = "Ternary_perovskite"
)

// SubstitutionRequest parameterizes one substitution screening run.
type SubstitutionRequest struct {
	Target     element.TargetSpec
	Conditions []element.ConditionSpec
	Template   material.FormulaTemplate

	// Label is the artifact df_name; empty means DefaultSubstitutionLabel.
	Label string
}

// SubstitutionResult is the assembled outcome of a substitution run.
type SubstitutionResult struct {
	RunID  string
	Target element.Element

	Header []string
	Rows   [][]string

	// Candidates is the substitute population size.
	Candidates int
	Summary    likelihood.Summary

	ArtifactPath string
	ChartPath    string
	MetricsPath  string
}

// SubstitutionService runs the substitution pipeline: resolve the target,
// interpret the conditions, filter substitutes, synthesize candidate
// formulas, cross-reference them, estimate the synthetic likelihood, and
// persist the assembled table.
type SubstitutionService interface {
	Run(ctx context.Context, req SubstitutionRequest) (*SubstitutionResult, error)
}

// SubstitutionDeps wires the service's collaborators.  Chart and Metrics are
// optional side-channel exporters; nil disables them.
type SubstitutionDeps struct {
	Elements  ElementSource
	Reference ReferenceSource
	Sink      ResultSink
	Chart     ChartRenderer
	Metrics   MetricsRecorder
	Logger    logging.Logger
}

// NewSubstitutionService builds the substitution service.
func NewSubstitutionService(deps SubstitutionDeps) SubstitutionService {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &substitutionService{deps: deps, logger: logger.Named("screening.substitution")}
}

type substitutionService struct {
	deps   SubstitutionDeps
	logger logging.Logger
}

func (s *substitutionService) Run(ctx context.Context, req SubstitutionRequest) (*SubstitutionResult, error) {
	runID := uuid.NewString()
	logger := s.logger.With(logging.String("run_id", runID))
	label := req.Label
	if label == "" {
		label = DefaultSubstitutionLabel
	}
	stages := newStageClock()

	cond, err := element.ParseConditionSet(req.Conditions)
	if err != nil {
		return nil, err
	}
	if err := req.Template.Validate(); err != nil {
		return nil, err
	}
	logger.Info("conditions interpreted",
		logging.Any("conditions", cond.Names),
		logging.Bool("coordination", cond.Coordination),
		logging.Bool("hume_rothery", cond.HumeRothery != nil))

	table, err := s.deps.Elements.Elements(ctx)
	if err != nil {
		return nil, err
	}
	stages.mark("load")

	target, err := table.ResolveTarget(req.Target)
	if err != nil {
		return nil, err
	}
	radius, _ := target.Property(element.PropertyIonicRadius)
	logger.Info("target element resolved",
		logging.String("ion", target.Ion),
		logging.String("coordination", target.Coordination),
		logging.Int("charge", target.Charge),
		logging.Float64("ionic_radius", radius))

	band, err := cond.ToleranceBand(target)
	if err != nil {
		return nil, err
	}
	if band != nil {
		logger.Info("tolerance band computed",
			logging.String("property", cond.HumeRothery.Property),
			logging.Float64("lower", band.Lower),
			logging.Float64("upper", band.Upper))
	}

	substitutes := table.Substitutes(target, cond, band)
	formulas := make([]string, len(substitutes))
	for i, e := range substitutes {
		formulas[i] = req.Template.Apply(e.Ion)
	}
	stages.mark("generate")
	logger.Info("substitutes generated",
		logging.Int("elements_scanned", len(table)),
		logging.Int("candidates", len(substitutes)))

	catalog, err := s.deps.Reference.Reference(ctx)
	if err != nil {
		return nil, err
	}
	matches, truePositive := crossref.FindMatches(catalog, formulas)
	stages.mark("crossref")

	summary, err := likelihood.Summarize(truePositive, len(substitutes))
	if err != nil {
		return nil, err
	}
	if summary.CountingDefect() {
		logger.Warn("reference rows outnumber candidates; false-positive count is negative",
			logging.Int("true_positive", summary.TruePositive),
			logging.Int("false_positive", summary.FalsePositive))
	}
	stages.mark("estimate")

	header, rows := assembleSubstitution(substitutes, matches)
	header, rows = appendDetails(header, rows, RunDetails{
		TruePositive: summary.TruePositive,
		Likelihood:   summary.Percentage,
		Conditions:   cond.Names,
		Parameters:   conditionParameters(cond, target),
	})

	artifactPath, err := s.deps.Sink.Write(ctx, screeningTypes.Artifact{
		Label:  label,
		Filter: FilterSubstitution,
		Header: header,
		Rows:   rows,
	})
	if err != nil {
		return nil, err
	}
	stages.mark("persist")

	result := &SubstitutionResult{
		RunID:        runID,
		Target:       target,
		Header:       header,
		Rows:         rows,
		Candidates:   len(substitutes),
		Summary:      summary,
		ArtifactPath: artifactPath,
	}

	if s.deps.Chart != nil {
		chartPath, err := s.deps.Chart.Render(ctx, summary.TruePositive, summary.FalsePositive, summary.Percentage)
		if err != nil {
			return nil, err
		}
		result.ChartPath = chartPath
	}
	if s.deps.Metrics != nil {
		metricsPath, err := s.deps.Metrics.Record(ctx, artifactPath, screeningTypes.RunStats{
			RunID:                runID,
			Pipeline:             FilterSubstitution,
			MaterialsScanned:     len(table),
			CandidatesGenerated:  len(substitutes),
			ReferenceRowsMatched: truePositive,
			TruePositives:        summary.TruePositive,
			FalsePositives:       summary.FalsePositive,
			SyntheticLikelihood:  summary.Percentage,
			StageDurations:       stages.durations,
		})
		if err != nil {
			return nil, err
		}
		result.MetricsPath = metricsPath
	}

	logger.Info("substitution run complete",
		logging.Int("candidates", result.Candidates),
		logging.Int("true_positive", summary.TruePositive),
		logging.Float64("synthetic_likelihood", summary.Percentage),
		logging.String("artifact", artifactPath))
	return result, nil
}

// conditionParameters records the active condition parameters in
// configuration order for the run-detail columns.
func conditionParameters(cond element.ConditionSet, target element.Element) []Parameter {
	var params []Parameter
	for _, name := range cond.Names {
		switch name {
		case element.ConditionCharge:
			params = append(params, Parameter{"charge", strconv.Itoa(target.Charge)})
		case element.ConditionCoordination:
			params = append(params, Parameter{"coordination", target.Coordination})
		case element.ConditionHumeRothery:
			params = append(params,
				Parameter{"target_property", cond.HumeRothery.Property},
				Parameter{"target_percentage", formatFloat(cond.HumeRothery.Percentage)})
		}
	}
	return params
}

// stageClock accumulates per-stage wall-clock durations.
type stageClock struct {
	last      time.Time
	durations map[string]time.Duration
}

func newStageClock() *stageClock {
	return &stageClock{last: time.Now(), durations: make(map[string]time.Duration)}
}

func (c *stageClock) mark(stage string) {
	now := time.Now()
	c.durations[stage] = now.Sub(c.last)
	c.last = now
}
