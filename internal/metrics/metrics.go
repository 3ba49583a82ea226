// Package metrics exports batch run metrics in the Prometheus text format.
//
// Metrics are kept in a private registry and written as a node_exporter
// textfile, so a scheduled stoich run can be scraped without running a server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bft-labs/stoich/internal/ports"
	"github.com/bft-labs/stoich/pkg/batch"
)

const namespace = "stoich"

// Recorder implements ports.MetricsRecorder.
type Recorder struct {
	path     string
	registry *prometheus.Registry

	items          *prometheus.CounterVec
	aspirinGrams   prometheus.Counter
	aceticAcid     prometheus.Counter
	lastRun        prometheus.Gauge
	lastPercentYld prometheus.Gauge
}

// NewRecorder creates a Recorder that flushes to path. An empty path makes
// Flush a no-op, which keeps the recorder usable when export is disabled.
func NewRecorder(path string) *Recorder {
	r := &Recorder{
		path:     path,
		registry: prometheus.NewRegistry(),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "items_total",
			Help:      "Batch records processed, by outcome.",
		}, []string{"outcome"}),
		aspirinGrams: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aspirin_grams_total",
			Help:      "Aspirin mass produced across all successful records.",
		}),
		aceticAcid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acetic_acid_grams_total",
			Help:      "Acetic acid byproduct mass across all successful records.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last batch run finished.",
		}),
		lastPercentYld: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_percent_yield",
			Help:      "Aspirin yield of the last run as a percentage of the theoretical maximum.",
		}),
	}
	r.registry.MustRegister(r.items, r.aspirinGrams, r.aceticAcid, r.lastRun, r.lastPercentYld)

	// pre-create both series so a clean run still exports failure=0
	r.items.WithLabelValues("success")
	r.items.WithLabelValues("failure")
	return r
}

// Observe adds one run to the counters.
func (r *Recorder) Observe(report batch.Report, finishedAt time.Time) {
	s := report.Summary()
	r.items.WithLabelValues("success").Add(float64(s.Succeeded))
	r.items.WithLabelValues("failure").Add(float64(s.Failed))
	r.aspirinGrams.Add(s.AspirinMass)
	r.aceticAcid.Add(s.AceticAcidMass)
	r.lastRun.Set(float64(finishedAt.Unix()))
	r.lastPercentYld.Set(s.PercentYield)
}

// Flush writes all metrics to the textfile.
func (r *Recorder) Flush() error {
	if r.path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(r.path, r.registry)
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Ensure Recorder implements ports.MetricsRecorder.
var _ ports.MetricsRecorder = (*Recorder)(nil)
