package dataset

import (
	"context"
	"strconv"
	"strings"

	"github.com/turtacn/SynthScreen/internal/domain/crossref"
	"github.com/turtacn/SynthScreen/internal/domain/material"
	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
	"github.com/turtacn/SynthScreen/pkg/tabular"
)

// Column names of the materials catalog.
const (
	colComposition   = "composition"
	colAtoms         = "Atoms"
	colPrettyFormula = "pretty_formula"
	colICSDIDs       = "icsd_ids"
)

// CSVMaterialSource loads the materials catalog from CSV.  The same catalog
// serves two roles: the stoichiometry pipelines consume every row, and the
// rows carrying a non-empty icsd_ids list form the ICSD reference catalog.
type CSVMaterialSource struct {
	path   string
	logger logging.Logger
}

// NewCSVMaterialSource returns a source reading from path, which may be a
// glob pattern.
func NewCSVMaterialSource(path string, logger logging.Logger) *CSVMaterialSource {
	if logger == nil {
		logger = logging.Default()
	}
	return &CSVMaterialSource{path: path, logger: logger.Named("dataset.materials")}
}

// Materials loads every catalog row.  Atoms cells are carried verbatim; the
// stoichiometry matcher parses them so a malformed cell is reported against
// the operation that consumes it.
func (s *CSVMaterialSource) Materials(_ context.Context) ([]material.Material, error) {
	var out []material.Material
	err := s.scan(func(m material.Material, _ string) {
		out = append(out, m)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reference derives the ICSD reference catalog: rows whose icsd_ids list is
// non-empty, keyed by pretty_formula (falling back to composition when the
// catalog has no pretty_formula column).
func (s *CSVMaterialSource) Reference(_ context.Context) (crossref.Catalog, error) {
	var catalog crossref.Catalog
	err := s.scan(func(m material.Material, pretty string) {
		if len(m.ICSDIDs) == 0 {
			return
		}
		formula := pretty
		if formula == "" {
			formula = m.Composition
		}
		catalog = append(catalog, crossref.ReferenceEntry{
			Formula: formula,
			IDs:     m.ICSDIDs,
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("reference catalog derived", logging.Int("entries", len(catalog)))
	return catalog, nil
}

// scan walks every data row of every matched file in order, handing the
// visitor the material plus its pretty_formula cell (empty when the catalog
// lacks that column).
func (s *CSVMaterialSource) scan(visit func(material.Material, string)) error {
	files, err := resolveFiles(s.path)
	if err != nil {
		return err
	}

	total := 0
	for _, file := range files {
		header, records, err := readCSVFile(file)
		if err != nil {
			return err
		}
		idx := indexColumns(header)

		compIdx, err := idx.require(colComposition, file)
		if err != nil {
			return err
		}
		atomsIdx, err := idx.require(colAtoms, file)
		if err != nil {
			return err
		}
		prettyIdx, hasPretty := idx[colPrettyFormula]
		idsIdx, hasIDs := idx[colICSDIDs]

		for line, record := range records {
			total++
			m := material.Material{
				Composition: strings.TrimSpace(cell(record, compIdx)),
				Atoms:       strings.TrimSpace(cell(record, atomsIdx)),
				Row:         total,
			}
			pretty := ""
			if hasPretty {
				pretty = strings.TrimSpace(cell(record, prettyIdx))
			}
			if hasIDs {
				raw := strings.TrimSpace(cell(record, idsIdx))
				if raw != "" {
					ids, err := tabular.ParseIntList(raw)
					if err != nil {
						return apperrors.Wrap(err, apperrors.CodeUnknown,
							"icsd_ids cell at file "+file+" line "+strconv.Itoa(line+2))
					}
					m.ICSDIDs = formatIDs(ids)
				}
			}
			visit(m, pretty)
		}
	}

	if total == 0 {
		return apperrors.New(apperrors.ErrCodeTableEmpty,
			"materials catalog contains no rows").WithDetailf("pattern %q", s.path)
	}
	return nil
}

func formatIDs(ids []int) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(id)
	}
	return out
}
