// Package metrics records eggdoc run statistics in Prometheus format.
//
// Overview:
//   - Responsibility: Count runs by result, time them, and export the numbers
//     as a node-exporter textfile for build agents
//   - Key Types: Recorder
//   - Concurrency Model: Safe for concurrent use (Prometheus collectors)
//   - Error Semantics: Export errors are returned to the caller
//   - Performance Notes: Private registry, written once per invocation
//
// Usage:
//
//	rec := metrics.NewRecorder()
//	rec.Observe(metrics.ResultSuccess, elapsed)
//	err := rec.WriteTextfile("/var/lib/node_exporter/eggdoc.prom")
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"go.eggybyte.com/eggdoc/core/errors"
)

// Run results used as the "result" label.
const (
	ResultSuccess       = "success"
	ResultSkipped       = "skipped"
	ResultConfigFailed  = "config_failed"
	ResultLaunchFailed  = "launch_failed"
	ResultGenerationErr = "generation_failed"
	ResultError         = "error"
)

// Recorder holds the eggdoc collectors in a private registry.
type Recorder struct {
	registry  *prometheus.Registry
	runs      *prometheus.CounterVec
	duration  prometheus.Histogram
	overrides prometheus.Gauge
	lines     prometheus.Gauge
}

// NewRecorder creates a recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eggdoc_runs_total",
			Help: "Documentation runs by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "eggdoc_run_duration_seconds",
			Help:    "Wall time of documentation runs.",
			Buckets: []float64{0.5, 1, 5, 15, 60, 300, 900},
		}),
		overrides: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "eggdoc_option_overrides",
			Help: "Number of options overridden in the last run.",
		}),
		lines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "eggdoc_output_lines",
			Help: "Lines of doxygen output captured in the last run.",
		}),
	}
	r.registry.MustRegister(r.runs, r.duration, r.overrides, r.lines)
	return r
}

// Observe records one run.
func (r *Recorder) Observe(result string, elapsed time.Duration) {
	r.runs.WithLabelValues(result).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// SetOverrides records the number of overridden options.
func (r *Recorder) SetOverrides(n int) {
	r.overrides.Set(float64(n))
}

// SetOutputLines records the number of captured output lines.
func (r *Recorder) SetOutputLines(n int) {
	r.lines.Set(float64(n))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(errors.CodeInternal, "metrics.WriteTextfile", err, "write %s", path)
	}
	return nil
}

// ResultOf maps a run error to its result label.
func ResultOf(err error) string {
	if err == nil {
		return ResultSuccess
	}
	switch errors.CodeOf(err) {
	case errors.CodeConfigBuild:
		return ResultConfigFailed
	case errors.CodeLaunch:
		return ResultLaunchFailed
	case errors.CodeGeneration:
		return ResultGenerationErr
	default:
		return ResultError
	}
}

