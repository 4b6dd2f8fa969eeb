// Package dataset loads the input tables — the element property table and
// the materials catalog — from CSV files.  Table paths may be doublestar glob
// patterns; all matches are concatenated in lexical path order.
package dataset

import (
	"encoding/csv"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

// resolveFiles expands a path or glob pattern into the sorted list of
// matching files.  Zero matches is a dataset error: a silently empty input
// would make every downstream count meaningless.
func resolveFiles(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeTableNoFiles,
			"invalid table path pattern").WithDetailf("pattern %q", pattern)
	}
	if len(matches) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeTableNoFiles,
			"no table files matched").WithDetailf("pattern %q", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// readCSVFile reads one CSV file into a header and its data rows.
func readCSVFile(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.ErrCodeTableUnreadable,
			"failed to open table file").WithDetailf("file %q", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // arity is validated per cell, with row context
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.ErrCodeTableUnreadable,
			"failed to parse table file").WithDetailf("file %q", path)
	}
	if len(records) == 0 {
		return nil, nil, apperrors.New(apperrors.ErrCodeTableEmpty,
			"table file has no header row").WithDetailf("file %q", path)
	}
	return records[0], records[1:], nil
}

// columnIndex maps header names to positions.
type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}

// require returns the position of a mandatory column.
func (c columnIndex) require(name, file string) (int, error) {
	i, ok := c[name]
	if !ok {
		return 0, apperrors.New(apperrors.ErrCodeTableMissingColumn,
			"required column missing").WithDetailf("column %q in file %q", name, file)
	}
	return i, nil
}

// cell returns row[i], tolerating short rows.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
