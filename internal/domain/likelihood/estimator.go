// Package likelihood converts cross-reference counts into the synthetic
// likelihood statistic reported for a screening run.
package likelihood

import (
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

// Summary is the per-run aggregate handed to reporting: the two category
// counts and the percentage.  It is assembled once and never mutated.
type Summary struct {
	TruePositive  int
	FalsePositive int

	// Percentage is truePositive·100/population, the synthetic likelihood.
	Percentage float64
}

// Estimate computes the synthetic likelihood percentage.  A zero population
// is an explicit error, never a silent NaN or Inf.
func Estimate(truePositive, population int) (float64, error) {
	if population == 0 {
		return 0, apperrors.New(apperrors.ErrCodeEmptyPopulation,
			"cannot estimate synthetic likelihood over an empty candidate population")
	}
	return float64(truePositive) * 100 / float64(population), nil
}

// Summarize derives the full Summary from a true-positive count and the
// candidate population size.
func Summarize(truePositive, population int) (Summary, error) {
	percentage, err := Estimate(truePositive, population)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		TruePositive:  truePositive,
		FalsePositive: population - truePositive,
		Percentage:    percentage,
	}, nil
}

// CountingDefect reports whether the false-positive count went negative.
// That can only happen when the upstream cross-reference counted more
// matching reference rows than there were candidates — the known overcount of
// the counts-reference-rows semantics.  Callers surface it as a warning; the
// summary is never masked or adjusted.
func (s Summary) CountingDefect() bool {
	return s.FalsePositive < 0
}
