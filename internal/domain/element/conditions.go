package element

import (
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

// The closed condition vocabulary.  Condition names outside this set are
// rejected at parse time rather than silently ignored.
const (
	ConditionCharge       = "charge"
	ConditionCoordination = "coordination"
	ConditionHumeRothery  = "Hume-Rothery"
)

// ConditionSpec is the raw, as-configured form of one substitution condition.
// Property and Percentage are only meaningful for Hume-Rothery.
type ConditionSpec struct {
	Name       string
	Property   string
	Percentage float64
}

// HumeRothery carries the parameters of an active Hume-Rothery condition: a
// numeric property column and a symmetric relative tolerance in percent.
type HumeRothery struct {
	Property   string
	Percentage float64
}

// ConditionSet is the resolved, validated form of the configured conditions.
// Charge equality is a mandatory filter and is applied whether or not the
// "charge" name was listed; listing it only affects the recorded run detail.
type ConditionSet struct {
	// Names preserves the configured condition names in input order, for the
	// run-detail columns of the output artifact.
	Names []string

	// Coordination is true when exact coordination equality is required.
	Coordination bool

	// HumeRothery is non-nil when the property tolerance band is active.
	HumeRothery *HumeRothery
}

// ParseConditionSet resolves raw condition specs into a ConditionSet.
// Unknown names are configuration errors (ErrCodeUnknownCondition); a
// Hume-Rothery spec without a property is ErrCodeMissingConditionParameter
// and a negative percentage is ErrCodeInvalidPercentage.
func ParseConditionSet(specs []ConditionSpec) (ConditionSet, error) {
	var set ConditionSet
	for _, spec := range specs {
		switch spec.Name {
		case ConditionCharge:
			// Mandatory filter; nothing to configure.
		case ConditionCoordination:
			set.Coordination = true
		case ConditionHumeRothery:
			if spec.Property == "" {
				return ConditionSet{}, apperrors.New(apperrors.ErrCodeMissingConditionParameter,
					"Hume-Rothery condition requires a target property")
			}
			if spec.Percentage < 0 {
				return ConditionSet{}, apperrors.New(apperrors.ErrCodeInvalidPercentage,
					"Hume-Rothery percentage must be non-negative").
					WithDetailf("got %v", spec.Percentage)
			}
			set.HumeRothery = &HumeRothery{Property: spec.Property, Percentage: spec.Percentage}
		default:
			return ConditionSet{}, apperrors.New(apperrors.ErrCodeUnknownCondition,
				"condition name is not in the vocabulary").
				WithDetailf("%q (known: %s, %s, %s)", spec.Name, ConditionCharge, ConditionCoordination, ConditionHumeRothery)
		}
		set.Names = append(set.Names, spec.Name)
	}
	return set, nil
}

// ToleranceBand computes the Hume-Rothery band around the target's own value
// of the configured property.  It returns nil when the condition is inactive
// and ErrCodeTargetPropertyUnavailable when the target row has a blank cell
// for the property: a missing value must not silently flow into arithmetic.
func (c ConditionSet) ToleranceBand(target Element) (*Band, error) {
	if c.HumeRothery == nil {
		return nil, nil
	}
	v, ok := target.Property(c.HumeRothery.Property)
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeTargetPropertyUnavailable,
			"target element lacks the requested property value").
			WithDetailf("ion=%s property=%q", target.Ion, c.HumeRothery.Property)
	}
	band := BandAround(v, c.HumeRothery.Percentage)
	return &band, nil
}
