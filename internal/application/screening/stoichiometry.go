package screening

import (
	"context"

	"github.com/google/uuid"

	"github.com/turtacn/SynthScreen/internal/domain/crossref"
	"github.com/turtacn/SynthScreen/internal/domain/likelihood"
	"github.com/turtacn/SynthScreen/internal/domain/material"
	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SynthScreen/pkg/tabular"
	screeningTypes "github.com/turtacn/SynthScreen/pkg/types/screening"
)

// AnnotateRequest parameterizes a stoichiometry annotation run.
type AnnotateRequest struct {
	// Label is the artifact df_name; empty means DefaultAnnotateLabel.
	Label string
}

// AnnotateResult carries the annotated materials table.
type AnnotateResult struct {
	RunID string

	Header []string
	Rows   [][]string

	Scanned int
	Passed  int

	ArtifactPath string
	MetricsPath  string
}

// ScreenRequest parameterizes a stoichiometry screening run.
type ScreenRequest struct {
	// Label is the artifact df_name; empty means DefaultScreenLabel.
	Label string
}

// ScreenResult carries the matched rows and their cross-reference summary.
type ScreenResult struct {
	RunID string

	Header []string
	Rows   [][]string

	Scanned int
	Matched int
	Summary likelihood.Summary

	ArtifactPath string
	ChartPath    string
	MetricsPath  string
}

// StoichiometryService runs the stoichiometry pipelines over the materials
// catalog: Annotate flags every row against the known atom-count patterns;
// Screen keeps only the matching rows and cross-references them.
type StoichiometryService interface {
	Annotate(ctx context.Context, req AnnotateRequest) (*AnnotateResult, error)
	Screen(ctx context.Context, req ScreenRequest) (*ScreenResult, error)
}

// StoichiometryDeps wires the service's collaborators.  Chart and Metrics
// are optional; nil disables them.
type StoichiometryDeps struct {
	Materials MaterialSource
	Reference ReferenceSource
	Sink      ResultSink
	Chart     ChartRenderer
	Metrics   MetricsRecorder
	Logger    logging.Logger
}

// NewStoichiometryService builds the stoichiometry service.
func NewStoichiometryService(deps StoichiometryDeps) StoichiometryService {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &stoichiometryService{deps: deps, logger: logger.Named("screening.stoichiometry")}
}

type stoichiometryService struct {
	deps   StoichiometryDeps
	logger logging.Logger
}

func (s *stoichiometryService) Annotate(ctx context.Context, req AnnotateRequest) (*AnnotateResult, error) {
	runID := uuid.NewString()
	logger := s.logger.With(logging.String("run_id", runID))
	label := req.Label
	if label == "" {
		label = DefaultAnnotateLabel
	}
	stages := newStageClock()

	materials, err := s.deps.Materials.Materials(ctx)
	if err != nil {
		return nil, err
	}
	stages.mark("load")

	flags, err := material.MatchStoichiometry(materials)
	if err != nil {
		return nil, err
	}
	passed := 0
	for _, ok := range flags {
		if ok {
			passed++
		}
	}
	stages.mark("match")
	logger.Info("materials scanned", logging.Int("total", len(materials)))
	logger.Info("materials passed", logging.Int("total", passed))

	header := []string{"composition", colAtoms, colICSDIDs, colIsovalent}
	rows := make([][]string, len(materials))
	for i, m := range materials {
		rows[i] = []string{
			m.Composition,
			m.Atoms,
			tabular.JoinIDs(m.ICSDIDs),
			formatBool(flags[i]),
		}
	}

	artifactPath, err := s.deps.Sink.Write(ctx, screeningTypes.Artifact{
		Label:  label,
		Filter: FilterAnnotate,
		Header: header,
		Rows:   rows,
	})
	if err != nil {
		return nil, err
	}
	stages.mark("persist")

	result := &AnnotateResult{
		RunID:        runID,
		Header:       header,
		Rows:         rows,
		Scanned:      len(materials),
		Passed:       passed,
		ArtifactPath: artifactPath,
	}
	if s.deps.Metrics != nil {
		metricsPath, err := s.deps.Metrics.Record(ctx, artifactPath, screeningTypes.RunStats{
			RunID:            runID,
			Pipeline:         FilterAnnotate,
			MaterialsScanned: len(materials),
			StageDurations:   stages.durations,
		})
		if err != nil {
			return nil, err
		}
		result.MetricsPath = metricsPath
	}
	return result, nil
}

func (s *stoichiometryService) Screen(ctx context.Context, req ScreenRequest) (*ScreenResult, error) {
	runID := uuid.NewString()
	logger := s.logger.With(logging.String("run_id", runID))
	label := req.Label
	if label == "" {
		label = DefaultScreenLabel
	}
	stages := newStageClock()

	materials, err := s.deps.Materials.Materials(ctx)
	if err != nil {
		return nil, err
	}
	stages.mark("load")

	flags, err := material.MatchStoichiometry(materials)
	if err != nil {
		return nil, err
	}
	var matched []material.Material
	for i, m := range materials {
		if flags[i] {
			matched = append(matched, m)
		}
	}
	stages.mark("match")
	logger.Info("stoichiometry screen",
		logging.Int("scanned", len(materials)),
		logging.Int("matched", len(matched)))

	catalog, err := s.deps.Reference.Reference(ctx)
	if err != nil {
		return nil, err
	}
	formulas := make([]string, len(matched))
	for i, m := range matched {
		formulas[i] = m.Composition
	}
	matches, truePositive := crossref.FindMatches(catalog, formulas)
	stages.mark("crossref")

	summary, err := likelihood.Summarize(truePositive, len(matched))
	if err != nil {
		return nil, err
	}
	if summary.CountingDefect() {
		logger.Warn("reference rows outnumber matched materials; false-positive count is negative",
			logging.Int("true_positive", summary.TruePositive),
			logging.Int("false_positive", summary.FalsePositive))
	}
	stages.mark("estimate")

	header := []string{colNovelMaterial, colAtoms, colICSDIDs}
	rows := make([][]string, len(matched))
	for i, m := range matched {
		rows[i] = []string{m.Composition, m.Atoms, matches[i].JoinedIDs()}
	}
	header, rows = appendDetails(header, rows, RunDetails{
		TruePositive: summary.TruePositive,
		Likelihood:   summary.Percentage,
	})

	artifactPath, err := s.deps.Sink.Write(ctx, screeningTypes.Artifact{
		Label:  label,
		Filter: FilterScreen,
		Header: header,
		Rows:   rows,
	})
	if err != nil {
		return nil, err
	}
	stages.mark("persist")

	result := &ScreenResult{
		RunID:        runID,
		Header:       header,
		Rows:         rows,
		Scanned:      len(materials),
		Matched:      len(matched),
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
			Pipeline:             FilterScreen,
			MaterialsScanned:     len(materials),
			CandidatesGenerated:  len(matched),
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
	return result, nil
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
