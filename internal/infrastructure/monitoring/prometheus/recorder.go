// Package prometheus exports per-run screening statistics as a node-exporter
// textfile, written beside the CSV artifact.  Every run gets a fresh
// registry, so metrics never leak between invocations of a batch tool.
package prometheus

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
	"github.com/turtacn/SynthScreen/pkg/types/screening"
)

const namespace = "synthscreen"

// TextfileRecorder writes one .prom snapshot per run, named after the CSV
// artifact it accompanies.
type TextfileRecorder struct {
	logger logging.Logger
}

// NewTextfileRecorder returns a recorder.
func NewTextfileRecorder(logger logging.Logger) *TextfileRecorder {
	if logger == nil {
		logger = logging.Default()
	}
	return &TextfileRecorder{logger: logger.Named("metrics")}
}

// Record writes the run snapshot next to artifactPath, swapping its
// extension for .prom, and returns the textfile path.
func (r *TextfileRecorder) Record(_ context.Context, artifactPath string, stats screening.RunStats) (string, error) {
	path := promPath(artifactPath)

	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{
		"run_id":   stats.RunID,
		"pipeline": stats.Pipeline,
	}

	counts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "run_rows",
		Help:        "Row counts observed during the run, by stage.",
		ConstLabels: labels,
	}, []string{"kind"})
	counts.WithLabelValues("materials_scanned").Set(float64(stats.MaterialsScanned))
	counts.WithLabelValues("candidates_generated").Set(float64(stats.CandidatesGenerated))
	counts.WithLabelValues("reference_rows_matched").Set(float64(stats.ReferenceRowsMatched))

	// FalsePositives is a plain gauge because the population-minus-matches
	// arithmetic can go negative when reference rows repeat a formula.
	truePositives := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "run_true_positives",
		Help:        "Candidates confirmed against the reference catalog.",
		ConstLabels: labels,
	})
	truePositives.Set(float64(stats.TruePositives))
	falsePositives := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "run_false_positives",
		Help:        "Candidates without a reference match; negative on repeated reference formulas.",
		ConstLabels: labels,
	})
	falsePositives.Set(float64(stats.FalsePositives))

	likelihood := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "run_synthetic_likelihood_percent",
		Help:        "Synthetic likelihood percentage of the run.",
		ConstLabels: labels,
	})
	likelihood.Set(stats.SyntheticLikelihood)

	durations := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "run_stage_duration_seconds",
		Help:        "Wall-clock duration of each pipeline stage.",
		ConstLabels: labels,
	}, []string{"stage"})
	for stage, d := range stats.StageDurations {
		durations.WithLabelValues(stage).Set(d.Seconds())
	}

	registry.MustRegister(counts, truePositives, falsePositives, likelihood, durations)

	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeArtifactWrite,
			"metrics textfile cannot be written").WithDetailf("path %q", path)
	}

	r.logger.Debug("metrics textfile written", logging.String("path", path))
	return path, nil
}

func promPath(artifactPath string) string {
	ext := filepath.Ext(artifactPath)
	return strings.TrimSuffix(artifactPath, ext) + ".prom"
}
