package dataset

import (
	"context"
	"strconv"
	"strings"

	"github.com/turtacn/SynthScreen/internal/domain/element"
	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

// Column names of the element property table.
const (
	colIon          = "Ion"
	colCoordination = "Coordination"
	colCharge       = "Charge"
)

// CSVElementSource loads the element property table from CSV.
type CSVElementSource struct {
	path   string
	logger logging.Logger
}

// NewCSVElementSource returns a source reading from path, which may be a
// glob pattern.
func NewCSVElementSource(path string, logger logging.Logger) *CSVElementSource {
	if logger == nil {
		logger = logging.Default()
	}
	return &CSVElementSource{path: path, logger: logger.Named("dataset.elements")}
}

// Elements loads and parses the full element table.  Beyond the fixed Ion /
// Coordination / Charge columns, every remaining column is treated as a
// numeric property; blank cells are absent from the property map and cells
// that do not parse as numbers are skipped with a debug log so descriptive
// text columns do not abort a run.
func (s *CSVElementSource) Elements(_ context.Context) (element.Table, error) {
	files, err := resolveFiles(s.path)
	if err != nil {
		return nil, err
	}

	var table element.Table
	row := 0
	for _, file := range files {
		header, records, err := readCSVFile(file)
		if err != nil {
			return nil, err
		}
		idx := indexColumns(header)

		ionIdx, err := idx.require(colIon, file)
		if err != nil {
			return nil, err
		}
		coordIdx, err := idx.require(colCoordination, file)
		if err != nil {
			return nil, err
		}
		chargeIdx, err := idx.require(colCharge, file)
		if err != nil {
			return nil, err
		}
		if _, err := idx.require(element.PropertyIonicRadius, file); err != nil {
			return nil, err
		}

		for line, record := range records {
			row++
			charge, err := strconv.Atoi(strings.TrimSpace(cell(record, chargeIdx)))
			if err != nil {
				return nil, apperrors.New(apperrors.ErrCodeTableMalformedCell,
					"Charge cell is not an integer").
					WithDetailf("value %q at file %q line %d", cell(record, chargeIdx), file, line+2)
			}

			e := element.Element{
				Ion:          strings.TrimSpace(cell(record, ionIdx)),
				Coordination: strings.TrimSpace(cell(record, coordIdx)),
				Charge:       charge,
				Properties:   make(map[string]float64),
				Row:          row,
			}
			for name, i := range idx {
				if name == colIon || name == colCoordination || name == colCharge {
					continue
				}
				raw := strings.TrimSpace(cell(record, i))
				if raw == "" {
					continue
				}
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					s.logger.Debug("skipping non-numeric property cell",
						logging.String("column", name),
						logging.String("value", raw),
						logging.String("file", file),
						logging.Int("line", line+2))
					continue
				}
				e.Properties[name] = v
			}
			table = append(table, e)
		}
	}

	if len(table) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeTableEmpty,
			"element table contains no rows").WithDetailf("pattern %q", s.path)
	}
	s.logger.Debug("element table loaded",
		logging.Int("rows", len(table)),
		logging.Int("files", len(files)))
	return table, nil
}
