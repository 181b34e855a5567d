package metrics

import "time"

// OutcomeLabel enumerates final build result categories for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for build and step metrics.
// Implementations may forward to Prometheus, OpenTelemetry, etc. The
// NoopRecorder is used when metrics are not configured, allowing optional
// injection everywhere.
type Recorder interface {
	ObserveStepDuration(step string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome OutcomeLabel)
	SetPagesTotal(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStepDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)        {}
func (NoopRecorder) IncBuildOutcome(OutcomeLabel)              {}
func (NoopRecorder) SetPagesTotal(int)                         {}
