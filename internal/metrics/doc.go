// Package metrics records draft-selection and build metrics.
//
// Components receive a Recorder and default to NoopRecorder, so callers never
// need nil checks. When metrics.textfile is configured the CLI swaps in a
// PrometheusRecorder and writes the registry to a node-exporter textfile at
// the end of the run:
//
//	reg := prom.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	runner := pipeline.NewRunner(stages...)
//	bc.Recorder = rec
//	// ...
//	_ = metrics.WriteTextfile(path, reg)
package metrics
