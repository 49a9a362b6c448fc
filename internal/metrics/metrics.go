// Package metrics exposes Prometheus collectors describing clustering runs.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/slink/linkage"
)

// Outcome labels for slink_cluster_runs_total.
const (
	OutcomeOK            = "ok"
	OutcomeUnderCapacity = "under_capacity"
	OutcomeError         = "error"
)

// Recorder owns a private registry so tests and embedders never collide with
// the global default registry.
type Recorder struct {
	registry *prometheus.Registry

	runs     *prometheus.CounterVec
	merges   prometheus.Counter
	duration prometheus.Histogram
	achieved prometheus.Gauge
}

// New registers every slink collector on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slink",
			Subsystem: "cluster",
			Name:      "runs_total",
			Help:      "Clustering runs by outcome.",
		}, []string{"outcome"}),
		merges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slink",
			Subsystem: "cluster",
			Name:      "merges_total",
			Help:      "Unions performed across all successful runs.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "slink",
			Subsystem: "cluster",
			Name:      "duration_seconds",
			Help:      "Wall time of a clustering run, including graph materialization.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		achieved: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "slink",
			Subsystem: "cluster",
			Name:      "achieved_clusters",
			Help:      "Number of clusters produced by the latest successful run.",
		}),
	}
	r.registry.MustRegister(r.runs, r.merges, r.duration, r.achieved)

	return r
}

// Observe records one run. res may be nil when err is non-nil.
func (r *Recorder) Observe(took time.Duration, res *linkage.Result[string], err error) {
	r.duration.Observe(took.Seconds())

	switch {
	case errors.Is(err, linkage.ErrUnderCapacity):
		r.runs.WithLabelValues(OutcomeUnderCapacity).Inc()
		return
	case err != nil:
		r.runs.WithLabelValues(OutcomeError).Inc()
		return
	case res.UnderCapacity():
		r.runs.WithLabelValues(OutcomeUnderCapacity).Inc()
	default:
		r.runs.WithLabelValues(OutcomeOK).Inc()
	}
	r.merges.Add(float64(len(res.Merges)))
	r.achieved.Set(float64(res.Achieved))
}

// Registry returns the registry backing r.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
