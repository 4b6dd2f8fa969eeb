package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

const materialsCSV = `composition,Atoms,pretty_formula,icsd_ids
CsPbI3,"[1, 1, 3]",CsPbI3,"[161481, 181288]"
CsSnI3,"[1, 1, 3]",CsSnI3,[69997]
Cs3Sb2I9,"[3, 2, 9]",Cs3Sb2I9,[]
NaWeird,"[1, 1, 1]",,
`

func TestMaterialsLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "materials.csv", materialsCSV)

	src := NewCSVMaterialSource(path, logging.NewNopLogger())
	materials, err := src.Materials(context.Background())
	require.NoError(t, err)
	require.Len(t, materials, 4)

	assert.Equal(t, "CsPbI3", materials[0].Composition)
	assert.Equal(t, "[1, 1, 3]", materials[0].Atoms)
	assert.Equal(t, []string{"161481", "181288"}, materials[0].ICSDIDs)
	assert.Equal(t, 1, materials[0].Row)

	// Empty icsd_ids list and blank cells both mean "no IDs".
	assert.Empty(t, materials[2].ICSDIDs)
	assert.Empty(t, materials[3].ICSDIDs)
}

func TestReferenceKeepsOnlyRowsWithIDs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "materials.csv", materialsCSV)

	src := NewCSVMaterialSource(path, logging.NewNopLogger())
	catalog, err := src.Reference(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	assert.Equal(t, "CsPbI3", catalog[0].Formula)
	assert.Equal(t, []string{"161481", "181288"}, catalog[0].IDs)
	assert.Equal(t, "CsSnI3", catalog[1].Formula)
}

func TestReferenceWithoutPrettyFormulaColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "materials.csv",
		"composition,Atoms,icsd_ids\nCsPbI3,\"[1, 1, 3]\",[7]\n")

	src := NewCSVMaterialSource(path, logging.NewNopLogger())
	catalog, err := src.Reference(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "CsPbI3", catalog[0].Formula)
}

func TestMaterialsMalformedIDListNamesLocation(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "materials.csv",
		"composition,Atoms,icsd_ids\nCsPbI3,\"[1, 1, 3]\",\"161481;181288\"\n")

	src := NewCSVMaterialSource(path, logging.NewNopLogger())
	_, err := src.Materials(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTableMalformedCell))
	assert.Contains(t, err.Error(), "line 2")
}

func TestMaterialsMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "materials.csv", "composition\nCsPbI3\n")

	src := NewCSVMaterialSource(path, logging.NewNopLogger())
	_, err := src.Materials(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTableMissingColumn))
	assert.Contains(t, err.Error(), "Atoms")
}

func TestMaterialsEmptyCatalog(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "materials.csv", "composition,Atoms\n")

	src := NewCSVMaterialSource(path, logging.NewNopLogger())
	_, err := src.Materials(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTableEmpty))
}
