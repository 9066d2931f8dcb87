// Package metrics instruments Model construction and the Pareto/t-ordering
// passes with Prometheus collectors. The core mcda package never depends on
// this package's collectors directly — it only sees the Recorder interface,
// so a plain library user pays zero observability cost (spec.md §5: the
// core is "purely computational, single-threaded, and synchronous").
package metrics

import "time"

// Recorder observes model-construction and algorithm-pass events. Models
// call these unconditionally; the default NoopRecorder makes that free.
type Recorder interface {
	// ModelConstructed is called once per successful NewModel.
	ModelConstructed()

	// ValidationFailed is called once per failed NewModel, labeled by the
	// sentinel error's short reason (e.g. "cyclic_preferences").
	ValidationFailed(reason string)

	// ParetoComputed records the wall-clock duration of a Pareto-filter pass.
	ParetoComputed(d time.Duration)

	// TOrderingComputed records the wall-clock duration of a t-ordering pass.
	TOrderingComputed(d time.Duration)
}

// NoopRecorder discards every observation. It is the default Recorder for
// a Model constructed without mcda.WithMetrics(...) wired in.
type NoopRecorder struct{}

func (NoopRecorder) ModelConstructed()            {}
func (NoopRecorder) ValidationFailed(string)      {}
func (NoopRecorder) ParetoComputed(time.Duration) {}
func (NoopRecorder) TOrderingComputed(time.Duration) {}
