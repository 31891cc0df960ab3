package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	renderDuration *prom.HistogramVec
	renderResults  *prom.CounterVec
	pageWrites     *prom.CounterVec
	runDuration    prom.Histogram
	runOutcomes    *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg
// (a fresh registry when reg is nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "apidocs",
			Name:      "render_duration_seconds",
			Help:      "Duration of rendering and formatting a single page",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		renderResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "apidocs",
			Name:      "render_results_total",
			Help:      "Page render results by kind and outcome",
		}, []string{"kind", "result"}),
		pageWrites: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "apidocs",
			Name:      "page_writes_total",
			Help:      "Output pages by write outcome",
		}, []string{"outcome"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "apidocs",
			Name:      "run_duration_seconds",
			Help:      "Total duration of a generate or check run",
			Buckets:   prom.DefBuckets,
		}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "apidocs",
			Name:      "run_outcomes_total",
			Help:      "Runs by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.renderDuration, pr.renderResults, pr.pageWrites, pr.runDuration, pr.runOutcomes)
	return pr
}

func (p *PrometheusRecorder) ObserveRenderDuration(kind string, d time.Duration) {
	if p == nil || p.renderDuration == nil {
		return
	}
	p.renderDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRenderResult(kind string, result ResultLabel) {
	if p == nil || p.renderResults == nil {
		return
	}
	p.renderResults.WithLabelValues(kind, string(result)).Inc()
}

func (p *PrometheusRecorder) IncPageWrite(outcome WriteOutcome) {
	if p == nil || p.pageWrites == nil {
		return
	}
	p.pageWrites.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome RunOutcome) {
	if p == nil || p.runOutcomes == nil {
		return
	}
	p.runOutcomes.WithLabelValues(string(outcome)).Inc()
}

// WriteTextfile writes every metric gathered from g to path in the text
// exposition format. The file is replaced atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	return prom.WriteToTextfile(path, g)
}
