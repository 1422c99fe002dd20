// Package metrics provides render observability for doxybridge.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default so the render engine never needs nil checks; PrometheusRecorder
// forwards to a Prometheus registry when metrics are enabled in the config.
//
//	reg := prometheus.NewRegistry()
//	creator := render.NewCreator(parsers, project, render.WithRecorder(metrics.NewPrometheusRecorder(reg)))
package metrics
