package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/SynthScreen/internal/domain/element"
	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestElementsLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "elements.csv",
		"Ion,Coordination,Charge,Ionic Radius,Electronegativity\n"+
			"Pb,VIII,2,1.29,2.33\n"+
			"Sn,VIII,2,1.22,\n"+
			"La,VIII,3,1.16,1.10\n")

	src := NewCSVElementSource(path, logging.NewNopLogger())
	table, err := src.Elements(context.Background())
	require.NoError(t, err)
	require.Len(t, table, 3)

	pb := table[0]
	assert.Equal(t, "Pb", pb.Ion)
	assert.Equal(t, "VIII", pb.Coordination)
	assert.Equal(t, 2, pb.Charge)
	assert.Equal(t, 1, pb.Row)

	radius, ok := pb.Property(element.PropertyIonicRadius)
	require.True(t, ok)
	assert.Equal(t, 1.29, radius)

	en, ok := pb.Property("Electronegativity")
	require.True(t, ok)
	assert.Equal(t, 2.33, en)

	// Blank property cell is absent, not zero.
	_, ok = table[1].Property("Electronegativity")
	assert.False(t, ok)
}

func TestElementsMissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "elements.csv", "Ion,Charge,Ionic Radius\nPb,2,1.29\n")

	src := NewCSVElementSource(path, logging.NewNopLogger())
	_, err := src.Elements(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTableMissingColumn))
	assert.Contains(t, err.Error(), "Coordination")
}

func TestElementsMalformedCharge(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "elements.csv",
		"Ion,Coordination,Charge,Ionic Radius\nPb,VIII,two,1.29\n")

	src := NewCSVElementSource(path, logging.NewNopLogger())
	_, err := src.Elements(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTableMalformedCell))
	assert.Contains(t, err.Error(), "line 2")
}

func TestElementsGlobConcatenatesLexically(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "elements_b.csv", "Ion,Coordination,Charge,Ionic Radius\nSn,VIII,2,1.22\n")
	writeFile(t, dir, "elements_a.csv", "Ion,Coordination,Charge,Ionic Radius\nPb,VIII,2,1.29\n")

	src := NewCSVElementSource(filepath.Join(dir, "elements_*.csv"), logging.NewNopLogger())
	table, err := src.Elements(context.Background())
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, "Pb", table[0].Ion) // elements_a.csv first
	assert.Equal(t, "Sn", table[1].Ion)
	assert.Equal(t, 2, table[1].Row)
}

func TestElementsNoFilesMatched(t *testing.T) {
	src := NewCSVElementSource(filepath.Join(t.TempDir(), "absent*.csv"), logging.NewNopLogger())
	_, err := src.Elements(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTableNoFiles))
}

func TestElementsEmptyTable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "elements.csv", "Ion,Coordination,Charge,Ionic Radius\n")

	src := NewCSVElementSource(path, logging.NewNopLogger())
	_, err := src.Elements(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTableEmpty))
}
