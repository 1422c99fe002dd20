package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	dispatched    *prom.CounterVec
	filtered      *prom.CounterVec
	degraded      *prom.CounterVec
	parseFailures *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers render metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		dispatched: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doxybridge",
			Name:      "dispatched_nodes_total",
			Help:      "Nodes handed to a renderer, by node type",
		}, []string{"node_type"}),
		filtered: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doxybridge",
			Name:      "filtered_nodes_total",
			Help:      "Nodes pruned by the filter, by node type",
		}, []string{"node_type"}),
		degraded: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doxybridge",
			Name:      "degraded_dispatches_total",
			Help:      "Dispatches that fell back to a generic renderer",
		}, []string{"node_type", "reason"}),
		parseFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doxybridge",
			Name:      "parse_failures_total",
			Help:      "Compound documents that failed to parse",
		}, []string{"name"}),
	}
	reg.MustRegister(pr.dispatched, pr.filtered, pr.degraded, pr.parseFailures)
	return pr
}

func (p *PrometheusRecorder) IncDispatched(nodeType string) {
	if p == nil || p.dispatched == nil {
		return
	}
	p.dispatched.WithLabelValues(nodeType).Inc()
}

func (p *PrometheusRecorder) IncFiltered(nodeType string) {
	if p == nil || p.filtered == nil {
		return
	}
	p.filtered.WithLabelValues(nodeType).Inc()
}

func (p *PrometheusRecorder) IncDegraded(nodeType string, reason DegradeReason) {
	if p == nil || p.degraded == nil {
		return
	}
	p.degraded.WithLabelValues(nodeType, string(reason)).Inc()
}

func (p *PrometheusRecorder) IncParseFailure(name string) {
	if p == nil || p.parseFailures == nil {
		return
	}
	p.parseFailures.WithLabelValues(name).Inc()
}
