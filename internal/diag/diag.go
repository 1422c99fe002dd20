// Package diag carries render diagnostics to the host.
package diag

import (
	"context"
	"log/slog"
	"sync"

	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
	"git.home.luguber.info/inful/doxybridge/internal/logfields"
)

// Location identifies where in the host's sources a diagnostic applies.
type Location struct {
	File string
	Line int
}

// Diagnostic is a single message for the host's diagnostics channel.
type Diagnostic struct {
	Severity errors.ErrorSeverity
	Message  string
	Location Location
}

// Reporter accepts diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// Warning is shorthand for a warning-level Diagnostic.
func Warning(message string, loc Location) Diagnostic {
	return Diagnostic{Severity: errors.SeverityWarning, Message: message, Location: loc}
}

// Notice is shorthand for an info-level Diagnostic without a location.
func Notice(message string) Diagnostic {
	return Diagnostic{Severity: errors.SeverityInfo, Message: message}
}

// SlogReporter forwards diagnostics to a slog.Logger.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter creates a reporter logging through logger (slog.Default when nil).
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger}
}

func (r *SlogReporter) Report(d Diagnostic) {
	attrs := make([]slog.Attr, 0, 2)
	if d.Location.File != "" {
		attrs = append(attrs, logfields.File(d.Location.File))
	}
	if d.Location.Line > 0 {
		attrs = append(attrs, logfields.Line(d.Location.Line))
	}
	r.logger.LogAttrs(context.Background(), errors.SlogLevel(d.Severity), d.Message, attrs...)
}

// Collector records diagnostics in memory.
type Collector struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns a copy of everything reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.diagnostics...)
}

// Count returns how many diagnostics of severity were reported.
func (c *Collector) Count(severity errors.ErrorSeverity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.diagnostics {
		if d.Severity == severity {
			n++
		}
	}
	return n
}

// Tee reports to every reporter in order.
type Tee []Reporter

func (t Tee) Report(d Diagnostic) {
	for _, r := range t {
		r.Report(d)
	}
}
