// Package instrumentation provides OpenTelemetry metrics and tracing for
// the agenda CLI.
//
// Instrumentation is disabled by default; a one-shot run emits nothing.
// When enabled via INSTRUMENTATION_ENABLED=true, Calendar API operations
// and OAuth token activity are recorded and exported through either the
// stdout or OTLP exporters, selected by METRICS_EXPORTER and
// TRACING_EXPORTER. Pending telemetry is flushed on Provider.Shutdown.
package instrumentation
