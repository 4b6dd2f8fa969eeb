package element

import (
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

// Table is the full element property table loaded from the reference dataset.
type Table []Element

// TargetSpec identifies the element whose lattice site is being substituted.
type TargetSpec struct {
	Ion          string
	Coordination string
	Charge       int
}

// ResolveTarget returns the single table row matching spec exactly: ion
// equality, charge equality, and canonical coordination equality.  Zero
// matches yields ErrCodeTargetNotFound; more than one yields
// ErrCodeAmbiguousTarget.
func (t Table) ResolveTarget(spec TargetSpec) (Element, error) {
	var found []Element
	for _, e := range t {
		if e.Ion == spec.Ion && e.Charge == spec.Charge && CoordinationEqual(e.Coordination, spec.Coordination) {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 0:
		return Element{}, apperrors.New(apperrors.ErrCodeTargetNotFound,
			"no element row matches the target").
			WithDetailf("ion=%s charge=%d coordination=%s", spec.Ion, spec.Charge, spec.Coordination)
	case 1:
		return found[0], nil
	default:
		return Element{}, apperrors.New(apperrors.ErrCodeAmbiguousTarget,
			"target lookup matched more than one element row").
			WithDetailf("ion=%s charge=%d coordination=%s matched %d rows", spec.Ion, spec.Charge, spec.Coordination, len(found))
	}
}

// Substitutes filters the table down to chemically valid substitutes for
// target under the active conditions:
//
//   - exact charge equality (always applied),
//   - canonical coordination equality when the coordination condition is on,
//   - property value within band (inclusive) when band is non-nil; rows with
//     a blank property cell never pass the band,
//   - the target ion itself is removed (self-substitution is forbidden),
//   - duplicates are collapsed by ion symbol, first occurrence wins.
func (t Table) Substitutes(target Element, cond ConditionSet, band *Band) Table {
	property := ""
	if cond.HumeRothery != nil {
		property = cond.HumeRothery.Property
	}

	seen := make(map[string]bool, len(t))
	var out Table
	for _, e := range t {
		if e.Charge != target.Charge {
			continue
		}
		if cond.Coordination && !CoordinationEqual(e.Coordination, target.Coordination) {
			continue
		}
		if band != nil {
			v, ok := e.Property(property)
			if !ok || !band.Contains(v) {
				continue
			}
		}
		if e.Ion == target.Ion {
			continue
		}
		if seen[e.Ion] {
			continue
		}
		seen[e.Ion] = true
		out = append(out, e)
	}
	return out
}
