package metrics

import "time"

// ResultLabel enumerates render result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// WriteOutcome describes what happened to one output page.
type WriteOutcome string

const (
	WriteWritten   WriteOutcome = "written"
	WriteUnchanged WriteOutcome = "unchanged"
	WriteRemoved   WriteOutcome = "removed"
	WriteStale     WriteOutcome = "stale"
)

// RunOutcome is the final status of a generate or check run.
type RunOutcome string

const (
	RunSuccess  RunOutcome = "success"
	RunFailed   RunOutcome = "failed"
	RunCanceled RunOutcome = "canceled"
	RunStale    RunOutcome = "stale"
)

// Render kinds used as label values.
const (
	KindModule = "module"
	KindIndex  = "index"
)

// Recorder defines observability hooks for rendering and publishing.
// Implementations may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveRenderDuration(kind string, d time.Duration)
	IncRenderResult(kind string, result ResultLabel)
	IncPageWrite(outcome WriteOutcome)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome RunOutcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(string, time.Duration) {}
func (NoopRecorder) IncRenderResult(string, ResultLabel)         {}
func (NoopRecorder) IncPageWrite(WriteOutcome)                   {}
func (NoopRecorder) ObserveRunDuration(time.Duration)            {}
func (NoopRecorder) IncRunOutcome(RunOutcome)                    {}
