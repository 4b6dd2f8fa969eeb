package material

import (
	"strings"

	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

// IonPlaceholder is the token a FormulaTemplate replaces with the substitute
// ion's symbol.
const IonPlaceholder = "{ion}"

// FormulaTemplate synthesizes a candidate formula from a substitute ion.  The
// templating rule is data-specific — "Cs{ion}I3" produces the A-site
// substitutions of the CsPbI3 perovskite — and is injected by the caller so
// the screening logic generalizes across material families.
type FormulaTemplate string

// Validate rejects templates that lack the ion placeholder; without it every
// substitute would synthesize the same formula.
func (t FormulaTemplate) Validate() error {
	if !strings.Contains(string(t), IonPlaceholder) {
		return apperrors.New(apperrors.ErrCodeInvalidFormulaTemplate,
			"formula template must contain the "+IonPlaceholder+" placeholder").
			WithDetailf("template %q", string(t))
	}
	return nil
}

// Apply substitutes the ion symbol into the template.
func (t FormulaTemplate) Apply(ion string) string {
	return strings.ReplaceAll(string(t), IonPlaceholder, ion)
}
