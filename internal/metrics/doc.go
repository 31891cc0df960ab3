// Package metrics provides the observability hooks for page rendering and
// publishing runs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	r := render.New(render.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The CLI has no long-running server, so Prometheus metrics are exported with
// WriteTextfile for collection by the node_exporter textfile collector.
package metrics
