// Package element models the element property table and the substitution
// rules applied to it: target resolution, the condition vocabulary, the
// Hume-Rothery tolerance band, and substitute filtering.
package element

import (
	"strconv"
	"strings"
)

// PropertyIonicRadius is the property column every element table carries and
// the default Hume-Rothery property.
const PropertyIonicRadius = "Ionic Radius"

// Element is one row of the element property table.  Records are immutable
// during a run.
type Element struct {
	// Ion is the chemical symbol, e.g. "Pb".
	Ion string

	// Coordination is the coordination number as recorded in the source
	// table, either a Roman numeral ("VIII") or an integer ("8").
	Coordination string

	// Charge is the signed oxidation state.
	Charge int

	// Properties holds the numeric property columns by their source column
	// name.  Blank cells are absent from the map.
	Properties map[string]float64

	// Row is the 1-based data row in the source table, kept for diagnostics.
	Row int
}

// Property returns the named numeric property and whether the source cell
// was populated.
func (e Element) Property(name string) (float64, bool) {
	v, ok := e.Properties[name]
	return v, ok
}

var romanNumerals = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5, "VI": 6,
	"VII": 7, "VIII": 8, "IX": 9, "X": 10, "XI": 11, "XII": 12,
}

// CanonicalCoordination converts a coordination value to its integer form.
// Both Roman numerals up to XII and plain integers are recognised; the second
// return value is false for anything else.
func CanonicalCoordination(s string) (int, bool) {
	trimmed := strings.TrimSpace(s)
	if n, ok := romanNumerals[strings.ToUpper(trimmed)]; ok {
		return n, true
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n, true
	}
	return 0, false
}

// CoordinationEqual compares two coordination values canonically, so "VIII"
// equals "8".  Values neither Roman nor integer fall back to exact string
// comparison.
func CoordinationEqual(a, b string) bool {
	ca, okA := CanonicalCoordination(a)
	cb, okB := CanonicalCoordination(b)
	if okA && okB {
		return ca == cb
	}
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
