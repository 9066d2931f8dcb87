package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder is the only Recorder implementation depending on
// Prometheus collectors, isolating that import to this file per the
// teacher's one-concern-per-file convention.
type PrometheusRecorder struct {
	modelsConstructed prometheus.Counter
	validationFailed  *prometheus.CounterVec
	paretoDuration    prometheus.Histogram
	tOrderingDuration prometheus.Histogram
}

// NewPrometheusRecorder registers its collectors on reg and returns a
// Recorder backed by them. reg must not be nil.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		modelsConstructed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mcda",
			Name:      "models_constructed_total",
			Help:      "Number of models successfully constructed.",
		}),
		validationFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcda",
			Name:      "validation_failures_total",
			Help:      "Number of model construction failures, labeled by sub-reason.",
		}, []string{"reason"}),
		paretoDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mcda",
			Name:      "pareto_duration_seconds",
			Help:      "Wall-clock duration of Pareto-filter passes.",
			Buckets:   prometheus.DefBuckets,
		}),
		tOrderingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mcda",
			Name:      "t_ordering_duration_seconds",
			Help:      "Wall-clock duration of t-ordering passes.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(r.modelsConstructed, r.validationFailed, r.paretoDuration, r.tOrderingDuration)
	return r
}

func (r *PrometheusRecorder) ModelConstructed() { r.modelsConstructed.Inc() }

func (r *PrometheusRecorder) ValidationFailed(reason string) {
	r.validationFailed.WithLabelValues(reason).Inc()
}

func (r *PrometheusRecorder) ParetoComputed(d time.Duration) {
	r.paretoDuration.Observe(d.Seconds())
}

func (r *PrometheusRecorder) TOrderingComputed(d time.Duration) {
	r.tOrderingDuration.Observe(d.Seconds())
}
