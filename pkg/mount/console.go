package mount

import (
	"fmt"
	"io"
	"log/slog"
)

// Console receives user-visible messages from the controller. The
// controller emits warnings exactly on retry exhaustion and on
// rejected or failed step-size changes.
type Console interface {
	Warn(text string)
}

// WriterConsole writes console messages to an io.Writer, one per line.
type WriterConsole struct {
	w io.Writer
}

// NewWriterConsole creates a console sink on the given writer.
func NewWriterConsole(w io.Writer) *WriterConsole {
	return &WriterConsole{w: w}
}

// Warn writes a WARNING line.
func (c *WriterConsole) Warn(text string) {
	fmt.Fprintf(c.w, "WARNING: %s\n", text)
}

// SlogConsole routes console messages to a slog logger.
type SlogConsole struct {
	logger *slog.Logger
}

// NewSlogConsole creates a console sink on the given logger.
// A nil logger uses slog.Default.
func NewSlogConsole(logger *slog.Logger) *SlogConsole {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogConsole{logger: logger}
}

// Warn logs at warning level.
func (c *SlogConsole) Warn(text string) {
	c.logger.Warn(text)
}

// NopConsole discards all messages.
type NopConsole struct{}

// Warn does nothing.
func (NopConsole) Warn(string) {}

var (
	_ Console = (*WriterConsole)(nil)
	_ Console = (*SlogConsole)(nil)
	_ Console = NopConsole{}
)
