package daylog

import (
	"fmt"
	"net/http"
)

// WriteMetrics is a snapshot of what a logger did with its write calls.
type WriteMetrics struct {
	// Written counts lines appended to disk.
	Written uint64
	// Filtered counts calls rejected by the level rules.
	Filtered uint64
	// Failed counts calls that passed the filter but failed on I/O.
	Failed uint64
	// Disabled counts calls made while the logger was disabled or closed.
	Disabled uint64
	// Bytes counts bytes appended to disk.
	Bytes uint64
}

// MetricsSource is implemented by loggers that expose write metrics.
type MetricsSource interface {
	Metrics() WriteMetrics
}

// MetricsExporter exposes write metrics via a Prometheus-style HTTP handler.
type MetricsExporter struct {
	source MetricsSource
}

// NewMetricsExporter creates an exporter reading from source on every scrape.
func NewMetricsExporter(source MetricsSource) *MetricsExporter {
	return &MetricsExporter{source: source}
}

// ServeHTTP renders the metrics using Prometheus exposition format.
func (e *MetricsExporter) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	var metrics WriteMetrics
	if e.source != nil {
		metrics = e.source.Metrics()
	}

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	fmt.Fprintln(w, "# HELP daylog_lines_written_total Total log lines appended to disk")
	fmt.Fprintln(w, "# TYPE daylog_lines_written_total counter")
	fmt.Fprintf(w, "daylog_lines_written_total %d\n", metrics.Written)

	fmt.Fprintln(w, "# HELP daylog_lines_filtered_total Total log calls rejected by level rules")
	fmt.Fprintln(w, "# TYPE daylog_lines_filtered_total counter")
	fmt.Fprintf(w, "daylog_lines_filtered_total %d\n", metrics.Filtered)

	fmt.Fprintln(w, "# HELP daylog_write_failures_total Total log writes that failed on I/O")
	fmt.Fprintln(w, "# TYPE daylog_write_failures_total counter")
	fmt.Fprintf(w, "daylog_write_failures_total %d\n", metrics.Failed)

	fmt.Fprintln(w, "# HELP daylog_disabled_calls_total Total log calls made while disabled")
	fmt.Fprintln(w, "# TYPE daylog_disabled_calls_total counter")
	fmt.Fprintf(w, "daylog_disabled_calls_total %d\n", metrics.Disabled)

	fmt.Fprintln(w, "# HELP daylog_bytes_written_total Total bytes appended to disk")
	fmt.Fprintln(w, "# TYPE daylog_bytes_written_total counter")
	fmt.Fprintf(w, "daylog_bytes_written_total %d\n", metrics.Bytes)
}
