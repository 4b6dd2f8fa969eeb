// Package material models the materials catalog: composition records with
// their atom-count stoichiometry, the allow-list of previously observed
// stoichiometric patterns, and formula synthesis for substitution candidates.
package material

import (
	"github.com/turtacn/SynthScreen/pkg/tabular"
)

// Material is one row of the materials catalog.
type Material struct {
	// Composition is the formula string, e.g. "CsPbI3".
	Composition string

	// Atoms is the string-encoded atom-count triple as it appears in the
	// source table, e.g. "[1, 1, 3]".  It is parsed on demand with the strict
	// list grammar.
	Atoms string

	// ICSDIDs holds the catalog entry's database identifiers when the row
	// doubles as an ICSD reference entry; empty otherwise.
	ICSDIDs []string

	// Row is the 1-based data row in the source table, kept for diagnostics.
	Row int
}

// AtomCounts parses the Atoms field into its integer list form.  A malformed
// cell is an input error naming the offending row, never silently ignored.
func (m Material) AtomCounts() ([]int, error) {
	counts, err := tabular.ParseIntList(m.Atoms)
	if err != nil {
		return nil, wrapRow(err, m.Row)
	}
	return counts, nil
}
