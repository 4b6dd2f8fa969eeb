// Package tabular holds small parsing and formatting helpers shared by the
// dataset loaders and the domain packages: list-encoded cells in the input
// tables are parsed with a strict grammar instead of being evaluated.
package tabular

import (
	"strconv"
	"strings"

	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

// ParseIntList parses a bracketed, comma-separated integer list such as
// "[3, 1, 6]" or "[-2,0,5]".  The grammar is deliberately narrow:
//
//	list  := '[' ws ( int ( ws ',' ws int )* )? ws ']'
//	int   := '-'? digit+
//
// Only ASCII digits, an optional leading minus per element, commas, spaces,
// and the surrounding brackets are accepted.  "[]" yields an empty list.
// Anything else is an ErrCodeTableMalformedCell error; input text is never
// evaluated.
func ParseIntList(s string) ([]int, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return nil, apperrors.New(apperrors.ErrCodeTableMalformedCell,
			"integer list must be enclosed in brackets").WithDetailf("value %q", s)
	}
	inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if inner == "" {
		return []int{}, nil
	}
	parts := strings.Split(inner, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, apperrors.New(apperrors.ErrCodeTableMalformedCell,
				"integer list element is not an integer").WithDetailf("element %q in value %q", p, s)
		}
		out = append(out, n)
	}
	return out, nil
}

// FormatIntList renders ints in the same bracketed form ParseIntList accepts,
// so written artifacts round-trip through the parser.
func FormatIntList(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// JoinIDs serializes an identifier list the way result artifacts store it:
// comma-joined with no surrounding brackets.  SplitIDs reverses it losslessly
// for non-empty input; an empty string maps to no IDs.
func JoinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

// SplitIDs splits a comma-joined identifier cell back into its list form.
func SplitIDs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
