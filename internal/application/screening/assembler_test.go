package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/SynthScreen/internal/domain/crossref"
	"github.com/turtacn/SynthScreen/internal/domain/element"
)

func TestAssembleSubstitutionColumns(t *testing.T) {
	substitutes := element.Table{
		elem("Sn", "VIII", 2, 1.22, 1),
		elem("Ba", "VIII", 2, 1.42, 2),
	}
	matches := []crossref.Match{
		{Formula: "CsSnI3", IDs: []string{"69997", "69998"}, Matched: true},
		{Formula: "CsBaI3"},
	}

	header, rows := assembleSubstitution(substitutes, matches)

	assert.Equal(t, []string{
		"Substituted Element", "Coordination", "Charge",
		"Ionic Radius", "Novel Material", "icsd_ids",
	}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Sn", "VIII", "2", "1.22", "CsSnI3", "69997,69998"}, rows[0])
	assert.Equal(t, []string{"Ba", "VIII", "2", "1.42", "CsBaI3", ""}, rows[1])
}

func TestAssembleSubstitutionBlankRadius(t *testing.T) {
	substitutes := element.Table{{Ion: "Sn", Coordination: "VIII", Charge: 2}}
	matches := []crossref.Match{{Formula: "CsSnI3"}}

	_, rows := assembleSubstitution(substitutes, matches)
	assert.Equal(t, "", rows[0][3])
}

func TestAppendDetailsLayout(t *testing.T) {
	header := []string{"Novel Material"}
	rows := [][]string{{"CsSnI3"}, {"CsBaI3"}, {"CsSrI3"}}

	header, rows = appendDetails(header, rows, RunDetails{
		TruePositive: 2,
		Likelihood:   66.5,
		Conditions:   []string{"charge", "coordination", "Hume-Rothery"},
		Parameters: []Parameter{
			{"charge", "2"},
			{"coordination", "VIII"},
			{"target_property", "Ionic Radius"},
			{"target_percentage", "15"},
		},
	})

	assert.Equal(t, []string{
		"Novel Material", "True Positive", "Synthetic P-Value",
		"Conditions", "Condition Valueargs", "Condition Value",
	}, header)

	// Four parameters force a fourth, padded row.
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"CsSnI3", "2", "66.5", "charge", "charge", "2"}, rows[0])
	assert.Equal(t, []string{"CsBaI3", "", "", "coordination", "coordination", "VIII"}, rows[1])
	assert.Equal(t, []string{"CsSrI3", "", "", "Hume-Rothery", "target_property", "Ionic Radius"}, rows[2])
	assert.Equal(t, []string{"", "", "", "", "target_percentage", "15"}, rows[3])
}

func TestAppendDetailsScalarsOnly(t *testing.T) {
	header := []string{"Novel Material", "Atoms"}
	rows := [][]string{{"CsPbI3", "[1, 1, 3]"}}

	header, rows = appendDetails(header, rows, RunDetails{TruePositive: 1, Likelihood: 100})

	assert.Equal(t, []string{"Novel Material", "Atoms", "True Positive", "Synthetic P-Value"}, header)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"CsPbI3", "[1, 1, 3]", "1", "100"}, rows[0])
}

func TestAppendDetailsEmptyTableStillCarriesScalars(t *testing.T) {
	header, rows := appendDetails([]string{"Novel Material"}, nil, RunDetails{
		TruePositive: 0,
		Likelihood:   0,
	})

	assert.Equal(t, []string{"Novel Material", "True Positive", "Synthetic P-Value"}, header)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"", "0", "0"}, rows[0])
}
