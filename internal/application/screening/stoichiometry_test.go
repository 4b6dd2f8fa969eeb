package screening

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/SynthScreen/internal/domain/crossref"
	"github.com/turtacn/SynthScreen/internal/domain/material"
	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

func testMaterials() []material.Material {
	return []material.Material{
		{Composition: "CsPbI3", Atoms: "[1, 1, 3]", ICSDIDs: []string{"161481"}, Row: 1},
		{Composition: "Ba2TiO4", Atoms: "[2, 1, 4]", Row: 2},
		{Composition: "K2PtCl6", Atoms: "[2, 1, 6]", Row: 3},
	}
}

func newStoichiometryFixture(materials []material.Material, catalog crossref.Catalog) (StoichiometryService, *memorySink, *fakeChart, *fakeMetrics) {
	sink := &memorySink{}
	chart := &fakeChart{}
	metrics := &fakeMetrics{}
	svc := NewStoichiometryService(StoichiometryDeps{
		Materials: &fakeMaterials{materials: materials},
		Reference: &fakeReference{catalog: catalog},
		Sink:      sink,
		Chart:     chart,
		Metrics:   metrics,
		Logger:    logging.NewNopLogger(),
	})
	return svc, sink, chart, metrics
}

func TestAnnotateFlagsEveryRow(t *testing.T) {
	svc, sink, _, metrics := newStoichiometryFixture(testMaterials(), nil)

	result, err := svc.Annotate(context.Background(), AnnotateRequest{})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 2, result.Passed)

	require.Len(t, sink.artifacts, 1)
	artifact := sink.artifacts[0]
	assert.Equal(t, "df", artifact.Label)
	assert.Equal(t, "isovalent_substitution", artifact.Filter)
	assert.Equal(t, []string{"composition", "Atoms", "icsd_ids", "isovalent"}, artifact.Header)
	require.Len(t, artifact.Rows, 3)
	assert.Equal(t, []string{"CsPbI3", "[1, 1, 3]", "161481", "True"}, artifact.Rows[0])
	assert.Equal(t, []string{"Ba2TiO4", "[2, 1, 4]", "", "False"}, artifact.Rows[1])
	assert.Equal(t, []string{"K2PtCl6", "[2, 1, 6]", "", "True"}, artifact.Rows[2])

	require.Len(t, metrics.stats, 1)
	assert.Equal(t, "isovalent_substitution", metrics.stats[0].Pipeline)
	assert.Equal(t, 3, metrics.stats[0].MaterialsScanned)
}

func TestAnnotateMalformedAtomsCell(t *testing.T) {
	materials := []material.Material{
		{Composition: "CsPbI3", Atoms: "[1; 1; 3]", Row: 1},
	}
	svc, sink, _, _ := newStoichiometryFixture(materials, nil)

	_, err := svc.Annotate(context.Background(), AnnotateRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
	assert.Empty(t, sink.artifacts)
}

func TestScreenKeepsMatchedRowsOnly(t *testing.T) {
	catalog := crossref.Catalog{
		{Formula: "CsPbI3", IDs: []string{"161481", "161482"}},
	}
	svc, sink, chart, metrics := newStoichiometryFixture(testMaterials(), catalog)

	result, err := svc.Screen(context.Background(), ScreenRequest{})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 2, result.Matched)
	assert.Equal(t, 1, result.Summary.TruePositive)
	assert.Equal(t, 1, result.Summary.FalsePositive)
	assert.InDelta(t, 50, result.Summary.Percentage, 1e-9)

	require.Len(t, sink.artifacts, 1)
	artifact := sink.artifacts[0]
	assert.Equal(t, "Ternary_perovskite", artifact.Label)
	assert.Equal(t, "stoichiometry_match", artifact.Filter)
	assert.Equal(t, []string{
		"Novel Material", "Atoms", "icsd_ids", "True Positive", "Synthetic P-Value",
	}, artifact.Header)
	require.Len(t, artifact.Rows, 2)
	assert.Equal(t, []string{"CsPbI3", "[1, 1, 3]", "161481,161482", "1", "50"}, artifact.Rows[0])
	assert.Equal(t, []string{"K2PtCl6", "[2, 1, 6]", "", "", ""}, artifact.Rows[1])

	require.Len(t, chart.calls, 1)
	assert.Equal(t, chartCall{1, 1, 50}, chart.calls[0])

	require.Len(t, metrics.stats, 1)
	assert.Equal(t, "stoichiometry_match", metrics.stats[0].Pipeline)
	assert.Equal(t, 2, metrics.stats[0].CandidatesGenerated)
}

func TestScreenEmptyMatchSetWritesNothing(t *testing.T) {
	materials := []material.Material{
		{Composition: "Ba2TiO4", Atoms: "[2, 1, 4]", Row: 1},
	}
	svc, sink, chart, _ := newStoichiometryFixture(materials, nil)

	_, err := svc.Screen(context.Background(), ScreenRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeEmptyPopulation))
	assert.Empty(t, sink.artifacts)
	assert.Empty(t, chart.calls)
}

func TestScreenCustomLabel(t *testing.T) {
	catalog := crossref.Catalog{{Formula: "CsPbI3", IDs: []string{"1"}}}
	svc, sink, _, _ := newStoichiometryFixture(testMaterials(), catalog)

	_, err := svc.Screen(context.Background(), ScreenRequest{Label: "halides"})
	require.NoError(t, err)
	require.Len(t, sink.artifacts, 1)
	assert.Equal(t, "halides", sink.artifacts[0].Label)
}
