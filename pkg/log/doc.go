// Package log provides structured protocol event logging for SkyPoint.
//
// Events are captured at three layers: transport (raw frames), wire
// (decoded property messages), and controller (command execution).
// Applications choose a sink: SlogAdapter for console debugging,
// FileLogger for CBOR session capture (replayable with Reader and the
// skypoint-monitor tool), MultiLogger to combine sinks, or NoopLogger
// to disable logging entirely.
package log
