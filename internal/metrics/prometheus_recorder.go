package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docdraft"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	stageDuration *prom.HistogramVec
	stageResults  *prom.CounterVec
	decisions     *prom.CounterVec
	pages         *prom.CounterVec
	modifiedDocs  prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		stageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"}),
		decisions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "draft_decisions_total",
			Help:      "Draft selection outcomes",
		}, []string{"outcome"}),
		pages: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pages_total",
			Help:      "Pages by classification (full or draft)",
		}, []string{"result"}),
		modifiedDocs: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "modified_docs",
			Help:      "Documentation files changed relative to the trunk branch in the last run",
		}),
	}
	reg.MustRegister(pr.stageDuration, pr.stageResults, pr.decisions, pr.pages, pr.modifiedDocs)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncDecision(outcome string) {
	if p == nil {
		return
	}
	p.decisions.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) IncPages(label PageLabel, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.pages.WithLabelValues(string(label)).Add(float64(n))
}

func (p *PrometheusRecorder) SetModifiedDocs(n int) {
	if p == nil {
		return
	}
	p.modifiedDocs.Set(float64(n))
}
