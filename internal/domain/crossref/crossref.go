// Package crossref matches candidate formulas against the ICSD reference
// catalog of previously synthesized compounds.
package crossref

import (
	"github.com/turtacn/SynthScreen/pkg/tabular"
)

// ReferenceEntry is one row of the ICSD reference catalog.  Entries are
// loaded once and never mutated.
type ReferenceEntry struct {
	// Formula is the catalog's pretty_formula string.
	Formula string

	// IDs are the ICSD identifiers recorded for the formula; a catalog row
	// may carry several.
	IDs []string
}

// Catalog is the full reference table in source row order.
type Catalog []ReferenceEntry

// Match is the per-candidate cross-reference outcome.
type Match struct {
	// Formula is the candidate formula as submitted.
	Formula string

	// IDs accumulates the identifiers of every catalog row whose formula
	// equals the candidate's, in catalog row order.  Multiple matching rows
	// concatenate rather than replace.
	IDs []string

	// Matched distinguishes "no catalog row matched" from "matched a row
	// whose ID list happens to be empty".
	Matched bool
}

// JoinedIDs serializes the accumulated ID list the way result artifacts store
// it: comma-joined.  Splitting on commas reverses it losslessly.
func (m Match) JoinedIDs() string {
	return tabular.JoinIDs(m.IDs)
}

// FindMatches cross-references candidates against the catalog.  Comparison is
// exact, case-sensitive string equality on the formula; no normalization of
// chemical notation is attempted.  The plain O(reference × candidate) scan is
// deliberate: the tables are small and an index would not pay for itself.
//
// The returned count is the number of matching CATALOG ROWS, not of distinct
// matched candidates: a candidate present under several catalog rows is
// counted once per row.  This counts-reference-rows semantics inflates the
// downstream percentage beyond a per-candidate hit rate and is kept on
// purpose; see the estimator's defect surfacing for the consequences.
func FindMatches(catalog Catalog, candidates []string) ([]Match, int) {
	matches := make([]Match, len(candidates))
	index := make(map[string][]int, len(candidates))
	for i, formula := range candidates {
		matches[i] = Match{Formula: formula}
		index[formula] = append(index[formula], i)
	}

	truePositives := 0
	for _, entry := range catalog {
		positions, ok := index[entry.Formula]
		if !ok {
			continue
		}
		truePositives++
		for _, i := range positions {
			matches[i].Matched = true
			matches[i].IDs = append(matches[i].IDs, entry.IDs...)
		}
	}
	return matches, truePositives
}
