package screening

import (
	"context"

	"github.com/turtacn/SynthScreen/internal/domain/crossref"
	"github.com/turtacn/SynthScreen/internal/domain/element"
	"github.com/turtacn/SynthScreen/internal/domain/material"
	screeningTypes "github.com/turtacn/SynthScreen/pkg/types/screening"
)

type fakeElements struct {
	table element.Table
	err   error
}

func (f *fakeElements) Elements(context.Context) (element.Table, error) {
	return f.table, f.err
}

type fakeMaterials struct {
	materials []material.Material
	err       error
}

func (f *fakeMaterials) Materials(context.Context) ([]material.Material, error) {
	return f.materials, f.err
}

type fakeReference struct {
	catalog crossref.Catalog
	err     error
}

func (f *fakeReference) Reference(context.Context) (crossref.Catalog, error) {
	return f.catalog, f.err
}

type memorySink struct {
	artifacts []screeningTypes.Artifact
	err       error
}

func (s *memorySink) Write(_ context.Context, artifact screeningTypes.Artifact) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.artifacts = append(s.artifacts, artifact)
	return "Results/" + artifact.Label + "_" + artifact.Filter + ".csv", nil
}

type chartCall struct {
	truePositive  int
	falsePositive int
	percentage    float64
}

type fakeChart struct {
	calls []chartCall
}

func (c *fakeChart) Render(_ context.Context, tp, fp int, percentage float64) (string, error) {
	c.calls = append(c.calls, chartCall{tp, fp, percentage})
	return "Results/pie_chart.svg", nil
}

type fakeMetrics struct {
	paths []string
	stats []screeningTypes.RunStats
}

func (m *fakeMetrics) Record(_ context.Context, artifactPath string, stats screeningTypes.RunStats) (string, error) {
	m.paths = append(m.paths, artifactPath)
	m.stats = append(m.stats, stats)
	return artifactPath + ".prom", nil
}

// elem builds a test element row with an ionic radius.
func elem(ion, coordination string, charge int, radius float64, row int) element.Element {
	return element.Element{
		Ion:          ion,
		Coordination: coordination,
		Charge:       charge,
		Properties:   map[string]float64{element.PropertyIonicRadius: radius},
		Row:          row,
	}
}
