// Package screening orchestrates the substitution and stoichiometry
// pipelines: loading the input tables, running the domain filters,
// assembling the result table, and handing artifacts to the persistence
// and reporting collaborators.
package screening

import (
	"context"

	"github.com/turtacn/SynthScreen/internal/domain/crossref"
	"github.com/turtacn/SynthScreen/internal/domain/element"
	"github.com/turtacn/SynthScreen/internal/domain/material"
	screeningTypes "github.com/turtacn/SynthScreen/pkg/types/screening"
)

// ElementSource supplies the element property table.
type ElementSource interface {
	Elements(ctx context.Context) (element.Table, error)
}

// MaterialSource supplies the materials catalog.
type MaterialSource interface {
	Materials(ctx context.Context) ([]material.Material, error)
}

// ReferenceSource supplies the ICSD reference catalog.
type ReferenceSource interface {
	Reference(ctx context.Context) (crossref.Catalog, error)
}

// ResultSink persists one result table and returns the artifact path.
type ResultSink interface {
	Write(ctx context.Context, artifact screeningTypes.Artifact) (string, error)
}

// ChartRenderer renders the true/false-positive proportion chart and
// returns its path.
type ChartRenderer interface {
	Render(ctx context.Context, truePositive, falsePositive int, percentage float64) (string, error)
}

// MetricsRecorder exports the run statistics beside the CSV artifact and
// returns the textfile path.
type MetricsRecorder interface {
	Record(ctx context.Context, artifactPath string, stats screeningTypes.RunStats) (string, error)
}
