package cli

import (
	appscreening "github.com/turtacn/SynthScreen/internal/application/screening"
	"github.com/turtacn/SynthScreen/internal/config"
	"github.com/turtacn/SynthScreen/internal/infrastructure/dataset"
	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/SynthScreen/internal/infrastructure/persistence"
	"github.com/turtacn/SynthScreen/internal/infrastructure/reporting"
)

// runtime holds the per-invocation collaborators built from configuration.
type runtime struct {
	elements  *dataset.CSVElementSource
	materials *dataset.CSVMaterialSource
	sink      *persistence.CSVSink
	chart     appscreening.ChartRenderer
	metrics   appscreening.MetricsRecorder
	logger    logging.Logger
}

// newRuntime wires the infrastructure from configuration.  The chart and
// metrics exporters stay nil when disabled.
func newRuntime(cfg *config.Config, logger logging.Logger) *runtime {
	rt := &runtime{
		elements:  dataset.NewCSVElementSource(cfg.Data.Elements, logger),
		materials: dataset.NewCSVMaterialSource(cfg.Data.Materials, logger),
		sink:      persistence.NewCSVSink(cfg.Results.Dir, logger),
		logger:    logger,
	}
	if cfg.Results.Charts {
		rt.chart = reporting.NewSVGPieChart(cfg.Results.Dir, logger)
	}
	if cfg.Results.Metrics {
		rt.metrics = prometheus.NewTextfileRecorder(logger)
	}
	return rt
}

func (rt *runtime) substitutionService() appscreening.SubstitutionService {
	return appscreening.NewSubstitutionService(appscreening.SubstitutionDeps{
		Elements:  rt.elements,
		Reference: rt.materials,
		Sink:      rt.sink,
		Chart:     rt.chart,
		Metrics:   rt.metrics,
		Logger:    rt.logger,
	})
}

func (rt *runtime) stoichiometryService() appscreening.StoichiometryService {
	return appscreening.NewStoichiometryService(appscreening.StoichiometryDeps{
		Materials: rt.materials,
		Reference: rt.materials,
		Sink:      rt.sink,
		Chart:     rt.chart,
		Metrics:   rt.metrics,
		Logger:    rt.logger,
	})
}
