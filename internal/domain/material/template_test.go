package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

func TestFormulaTemplateApply(t *testing.T) {
	tmpl := FormulaTemplate("Cs{ion}I3")
	require.NoError(t, tmpl.Validate())

	assert.Equal(t, "CsSnI3", tmpl.Apply("Sn"))
	assert.Equal(t, "CsBaI3", tmpl.Apply("Ba"))
}

func TestFormulaTemplateOtherFamilies(t *testing.T) {
	// The template is injectable; nothing ties the pipeline to perovskites.
	tmpl := FormulaTemplate("{ion}2O3")
	require.NoError(t, tmpl.Validate())
	assert.Equal(t, "Al2O3", tmpl.Apply("Al"))
}

func TestFormulaTemplateValidateRejectsMissingPlaceholder(t *testing.T) {
	err := FormulaTemplate("CsPbI3").Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidFormulaTemplate))
}

func TestMaterialAtomCounts(t *testing.T) {
	m := Material{Composition: "CsPbI3", Atoms: "[1, 1, 3]", Row: 9}
	counts, err := m.AtomCounts()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3}, counts)

	bad := Material{Composition: "Broken", Atoms: "one,one,three", Row: 4}
	_, err = bad.AtomCounts()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 4")
}
