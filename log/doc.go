// Package log bridges zap into the native error log. A Sink wraps a
// native log and a Core encodes zap entries through it, so module code
// logs with the zap API and the output lands in error_log with the
// worker's own formatting, level gating and reopening behavior.
//
// The native log is not thread safe and the bridge never pretends it
// is: entries written off the worker thread are dropped and counted,
// and the count is reported once the next on-thread entry goes out.
package log
