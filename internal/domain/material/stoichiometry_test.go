package material

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

func TestMatchStoichiometryKnownVectors(t *testing.T) {
	var materials []Material
	for i, triple := range KnownStoichiometries() {
		materials = append(materials, Material{
			Composition: "M",
			Atoms:       tripleString(triple),
			Row:         i + 1,
		})
	}

	flags, err := MatchStoichiometry(materials)
	require.NoError(t, err)
	for i, flag := range flags {
		assert.True(t, flag, "known vector at row %d must match", i+1)
	}
}

func TestMatchStoichiometryNonMembers(t *testing.T) {
	materials := []Material{
		{Composition: "CsPbI3", Atoms: "[1, 1, 3]", Row: 1},
		{Composition: "NaCl2X", Atoms: "[1, 1, 1]", Row: 2},
		{Composition: "Reordered", Atoms: "[6, 1, 3]", Row: 3}, // order matters
		{Composition: "AlmostKnown", Atoms: "[3, 1, 7]", Row: 4},
	}

	flags, err := MatchStoichiometry(materials)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, flags)
}

func TestMatchStoichiometryWrongArityIsNoMatch(t *testing.T) {
	materials := []Material{
		{Composition: "Pair", Atoms: "[1, 3]", Row: 1},
		{Composition: "Quad", Atoms: "[1, 1, 3, 1]", Row: 2},
		{Composition: "Empty", Atoms: "[]", Row: 3},
		{Composition: "Known", Atoms: "[2, 1, 5]", Row: 4},
	}

	flags, err := MatchStoichiometry(materials)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, true}, flags)
}

func TestMatchStoichiometryMalformedCellNamesRow(t *testing.T) {
	materials := []Material{
		{Composition: "Fine", Atoms: "[1, 1, 3]", Row: 1},
		{Composition: "Broken", Atoms: "1;1;3", Row: 2},
	}

	_, err := MatchStoichiometry(materials)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTableMalformedCell))
	assert.Contains(t, err.Error(), "row 2")
}

func TestMatchStoichiometryPreservesOrderAndLength(t *testing.T) {
	materials := []Material{
		{Atoms: "[1, 1, 3]", Row: 1},
		{Atoms: "[9, 9, 9]", Row: 2},
		{Atoms: "[3, 2, 9]", Row: 3},
	}

	flags, err := MatchStoichiometry(materials)
	require.NoError(t, err)
	require.Len(t, flags, len(materials))
	assert.Equal(t, []bool{true, false, true}, flags)
}

func tripleString(v [3]int) string {
	return fmt.Sprintf("[%d, %d, %d]", v[0], v[1], v[2])
}
