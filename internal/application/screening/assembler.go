package screening

import (
	"strconv"

	"github.com/turtacn/SynthScreen/internal/domain/crossref"
	"github.com/turtacn/SynthScreen/internal/domain/element"
)

// Output column names shared by the result artifacts.
const (
	colSubstitutedElement = "Substituted Element"
	colCoordination       = "Coordination"
	colCharge             = "Charge"
	colIonicRadius        = "Ionic Radius"
	colNovelMaterial      = "Novel Material"
	colICSDIDs            = "icsd_ids"
	colAtoms              = "Atoms"
	colIsovalent          = "isovalent"

	colTruePositive   = "True Positive"
	colSyntheticP     = "Synthetic P-Value"
	colConditions     = "Conditions"
	colConditionValue = "Condition Value"
)

// Parameter is one named condition parameter recorded in the run-detail
// columns, e.g. {"target_percentage", "15"}.  Order is preserved.
type Parameter struct {
	Name  string
	Value string
}

// RunDetails carries the per-run summary merged into the result table.
type RunDetails struct {
	TruePositive int
	Likelihood   float64

	// Conditions lists the active condition names, one per row of the
	// Conditions column.
	Conditions []string

	// Parameters spread across the "<Condition Value>args" name column and
	// the "Condition Value" value column, one pair per row.
	Parameters []Parameter
}

// assembleSubstitution builds the substitution result table: one row per
// substitute, in filter output order, with its synthesized formula and
// accumulated reference IDs.
func assembleSubstitution(substitutes element.Table, matches []crossref.Match) ([]string, [][]string) {
	header := []string{
		colSubstitutedElement, colCoordination, colCharge,
		colIonicRadius, colNovelMaterial, colICSDIDs,
	}
	rows := make([][]string, len(substitutes))
	for i, e := range substitutes {
		radius := ""
		if v, ok := e.Property(element.PropertyIonicRadius); ok {
			radius = formatFloat(v)
		}
		rows[i] = []string{
			e.Ion,
			e.Coordination,
			strconv.Itoa(e.Charge),
			radius,
			matches[i].Formula,
			matches[i].JoinedIDs(),
		}
	}
	return header, rows
}

type detailColumn struct {
	name  string
	cells []string
}

// appendDetails widens the table with the run-detail columns: scalar details
// occupy row 0 of their column, the condition-name list fills its column from
// row 0 downward, and parameters spread as a name column ("...args") beside a
// value column.  The table grows rows as needed; padding cells stay empty.
func appendDetails(header []string, rows [][]string, details RunDetails) ([]string, [][]string) {
	width := len(header)
	need := len(rows)
	if need < 1 {
		need = 1
	}
	if len(details.Conditions) > need {
		need = len(details.Conditions)
	}
	if len(details.Parameters) > need {
		need = len(details.Parameters)
	}
	for len(rows) < need {
		rows = append(rows, make([]string, width))
	}

	columns := []detailColumn{
		{colTruePositive, []string{strconv.Itoa(details.TruePositive)}},
		{colSyntheticP, []string{formatFloat(details.Likelihood)}},
	}
	if len(details.Conditions) > 0 {
		columns = append(columns, detailColumn{colConditions, details.Conditions})
	}
	if len(details.Parameters) > 0 {
		names := make([]string, len(details.Parameters))
		values := make([]string, len(details.Parameters))
		for i, p := range details.Parameters {
			names[i] = p.Name
			values[i] = p.Value
		}
		columns = append(columns,
			detailColumn{colConditionValue + "args", names},
			detailColumn{colConditionValue, values})
	}

	for _, col := range columns {
		header = append(header, col.name)
		for i := range rows {
			cell := ""
			if i < len(col.cells) {
				cell = col.cells[i]
			}
			rows[i] = append(rows[i], cell)
		}
	}
	return header, rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
