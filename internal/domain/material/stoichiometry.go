package material

import (
	"fmt"

	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

// knownStoichiometries is the fixed allow-list of atom-count ratios observed
// in previously synthesized ternary compound families.  Membership is an
// exact match on the ordered triple; [3,1,6] and [1,3,6] are distinct.
var knownStoichiometries = [][3]int{
	{3, 1, 6},
	{3, 2, 9},
	{1, 1, 4},
	{2, 1, 6},
	{1, 1, 3},
	{1, 2, 5},
	{4, 1, 6},
	{1, 2, 7},
	{2, 1, 5},
	{3, 1, 5},
}

// KnownStoichiometries returns a copy of the allow-list.
func KnownStoichiometries() [][3]int {
	out := make([][3]int, len(knownStoichiometries))
	copy(out, knownStoichiometries)
	return out
}

// MatchStoichiometry reports, per material and in input order, whether its
// atom-count vector is one of the known stoichiometric patterns.
//
// A malformed Atoms cell aborts with a parse error naming the offending row.
// A well-formed list of the wrong arity is not an error: it simply never
// matches.
func MatchStoichiometry(materials []Material) ([]bool, error) {
	flags := make([]bool, len(materials))
	for i, m := range materials {
		counts, err := m.AtomCounts()
		if err != nil {
			return nil, err
		}
		if len(counts) != 3 {
			continue
		}
		triple := [3]int{counts[0], counts[1], counts[2]}
		for _, known := range knownStoichiometries {
			if triple == known {
				flags[i] = true
				break
			}
		}
	}
	return flags, nil
}

// wrapRow attaches the source row number to a cell-level parse error.
func wrapRow(err error, row int) error {
	return apperrors.Wrap(err, apperrors.CodeUnknown, fmt.Sprintf("materials table row %d", row))
}
