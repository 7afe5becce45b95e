// Package slogobs implements observability.Provider on top of log/slog.
//
// Spans and metrics are rendered as debug log lines; counters keep a running
// total that can be read back with [Observer.CounterValue]. Output format and
// level default to the GRADER_LOG_FORMAT / GRADER_LOG_LEVEL environment
// variables (falling back to LOG_FORMAT / LOG_LEVEL) and can be overridden
// with [WithFormat], [WithLevel], [WithOutput], [WithColors] and [WithLogger].
package slogobs
