// Package screening holds data-transfer types shared between the screening
// services and the monitoring/reporting collaborators.
package screening

import "time"

// Artifact is one tabular result to persist.  Label and Filter are the
// df_name and filter_name components of the artifact file name.
type Artifact struct {
	Label  string
	Filter string

	Header []string
	Rows   [][]string
}

// RunStats is the per-run metric snapshot exported alongside the CSV
// artifact.  It is assembled once per run and never mutated.
type RunStats struct {
	// RunID is the run's UUID, stamped on every exported metric.
	RunID string

	// Pipeline names the operation that produced the run, e.g.
	// "isovalent_generator" or "stoichiometry_match".
	Pipeline string

	MaterialsScanned    int
	CandidatesGenerated int
	ReferenceRowsMatched int
	TruePositives       int
	FalsePositives      int

	// SyntheticLikelihood is the run's percentage statistic.
	SyntheticLikelihood float64

	// StageDurations maps pipeline stage names to wall-clock durations.
	StageDurations map[string]time.Duration
}
