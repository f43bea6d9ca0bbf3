// Package mount implements the mount command execution engine: a
// single-goroutine controller that turns pointing commands (sync,
// goto, manual nudge, stop, step-size changes) into calls against a
// device adapter, retrying fallible hardware operations under a
// bounded policy and reporting failures to a console sink.
//
// The controller owns the mount phase and step size exclusively.
// Phase reflects the outcome of the last resolved command, not live
// device state. Exactly one command resolves at a time, including its
// retries and any fallback stop, before the next is dequeued.
package mount
