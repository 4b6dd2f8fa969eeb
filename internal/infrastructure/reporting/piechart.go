// Package reporting renders the optional per-run chart artifact.  The core
// pipeline only supplies the two category counts and the percentage; all
// drawing lives here.
package reporting

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

// SVGPieChart renders the true/false-positive proportion of a run as a
// two-slice SVG pie, written beside the CSV artifact and named by the
// percentage value.
type SVGPieChart struct {
	dir    string
	logger logging.Logger
}

// NewSVGPieChart returns a renderer writing under dir.
func NewSVGPieChart(dir string, logger logging.Logger) *SVGPieChart {
	if logger == nil {
		logger = logging.Default()
	}
	return &SVGPieChart{dir: dir, logger: logger.Named("reporting")}
}

const (
	chartSize   = 400.0
	chartRadius = 150.0
)

// Slice colors match the established report palette.
const (
	colorTruePositive  = "#66c2a5"
	colorFalsePositive = "#fc8d62"
)

type slice struct {
	Path  string
	Color string
	Label string
}

type chartData struct {
	Size   float64
	Title  string
	Slices []slice
	// Full is set instead of Slices when one category owns the whole pie.
	Full *slice
}

var chartTemplate = template.Must(template.New("pie").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Size}}" height="{{.Size}}" viewBox="0 0 {{.Size}} {{.Size}}">
  <title>{{.Title}}</title>
  <text x="200" y="28" text-anchor="middle" font-family="sans-serif" font-size="18">{{.Title}}</text>
{{- if .Full}}
  <circle cx="200" cy="210" r="150" fill="{{.Full.Color}}"><desc>{{.Full.Label}}</desc></circle>
{{- else}}
{{- range .Slices}}
  <path d="{{.Path}}" fill="{{.Color}}"><desc>{{.Label}}</desc></path>
{{- end}}
{{- end}}
</svg>
`))

// Render writes the chart and returns its path.  A negative count is clamped
// to zero for drawing only — the caller has already surfaced the counting
// defect — and a run with no candidates never reaches here, so the total is
// always positive.
func (c *SVGPieChart) Render(_ context.Context, truePositive, falsePositive int, percentage float64) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeResultsDir,
			"results directory cannot be created").WithDetailf("dir %q", c.dir)
	}

	name := "pie_chart_" + strconv.FormatFloat(percentage, 'f', -1, 64) + ".svg"
	path := filepath.Join(c.dir, name)

	data := buildChart(truePositive, falsePositive, percentage)
	f, err := os.Create(path)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeArtifactWrite,
			"chart artifact cannot be created").WithDetailf("path %q", path)
	}
	if err := chartTemplate.Execute(f, data); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", apperrors.Wrap(err, apperrors.ErrCodeArtifactWrite,
			"chart rendering failed").WithDetailf("path %q", path)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", apperrors.Wrap(err, apperrors.ErrCodeArtifactWrite,
			"chart artifact cannot be written").WithDetailf("path %q", path)
	}

	c.logger.Debug("proportion chart written", logging.String("path", path))
	return path, nil
}

func buildChart(truePositive, falsePositive int, percentage float64) chartData {
	tp := math.Max(float64(truePositive), 0)
	fp := math.Max(float64(falsePositive), 0)
	data := chartData{
		Size:  chartSize,
		Title: "P-Syn: " + strconv.FormatFloat(percentage, 'f', 2, 64) + "%",
	}

	total := tp + fp
	fraction := 0.0
	if total > 0 {
		fraction = tp / total
	}
	switch {
	case fraction <= 0:
		data.Full = &slice{Color: colorFalsePositive, Label: "False Positive"}
	case fraction >= 1:
		data.Full = &slice{Color: colorTruePositive, Label: "True Positive"}
	default:
		data.Slices = []slice{
			{Path: arcPath(0, fraction), Color: colorTruePositive, Label: "True Positive"},
			{Path: arcPath(fraction, 1), Color: colorFalsePositive, Label: "False Positive"},
		}
	}
	return data
}

// arcPath builds a pie-slice path from one fraction of the circle to
// another, starting at 12 o'clock and sweeping clockwise.
func arcPath(from, to float64) string {
	const cx, cy = 200.0, 210.0
	x0, y0 := pointAt(cx, cy, from)
	x1, y1 := pointAt(cx, cy, to)
	largeArc := "0"
	if to-from > 0.5 {
		largeArc = "1"
	}
	return "M" + coord(cx) + "," + coord(cy) +
		" L" + coord(x0) + "," + coord(y0) +
		" A" + coord(chartRadius) + "," + coord(chartRadius) + " 0 " + largeArc + ",1 " +
		coord(x1) + "," + coord(y1) + " Z"
}

func pointAt(cx, cy, fraction float64) (float64, float64) {
	angle := 2 * math.Pi * fraction
	return cx + chartRadius*math.Sin(angle), cy - chartRadius*math.Cos(angle)
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
