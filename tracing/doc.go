// Package tracing integrates OpenTelemetry with the configuration registry.
// Instrumentation is kept in a separate package so that applications which do
// not require tracing can exclude it from their build.
package tracing
