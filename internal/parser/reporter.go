package parser

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

// Reporter receives extraction diagnostics from the assembler. Misses are
// warnings, never errors.
type Reporter interface {
	Detected(issuer models.Issuer)
	Extracted(issuer models.Issuer, field Field, value string)
	Missed(issuer models.Issuer, field Field)
	Transactions(issuer models.Issuer, count int)
}

// NopReporter discards all diagnostics.
type NopReporter struct{}

func (NopReporter) Detected(models.Issuer)                 {}
func (NopReporter) Extracted(models.Issuer, Field, string) {}
func (NopReporter) Missed(models.Issuer, Field)            {}
func (NopReporter) Transactions(models.Issuer, int)        {}

// LogReporter writes diagnostics to a structured logger.
type LogReporter struct {
	Logger *slog.Logger
}

// NewLogReporter returns a reporter logging to logger, or to slog.Default
// when logger is nil.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{Logger: logger}
}

func (r *LogReporter) Detected(issuer models.Issuer) {
	r.Logger.Info("detected issuer", slog.String("issuer", string(issuer)))
}

func (r *LogReporter) Extracted(issuer models.Issuer, field Field, value string) {
	r.Logger.Debug("extracted field",
		slog.String("issuer", string(issuer)),
		slog.String("field", string(field)),
		slog.String("value", value))
}

func (r *LogReporter) Missed(issuer models.Issuer, field Field) {
	r.Logger.Warn("could not extract field",
		slog.String("issuer", string(issuer)),
		slog.String("field", string(field)))
}

func (r *LogReporter) Transactions(issuer models.Issuer, count int) {
	r.Logger.Info("extracted transactions",
		slog.String("issuer", string(issuer)),
		slog.Int("count", count))
}

// Collector records missed fields so callers can return them alongside a
// partial statement. It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	missed []Field
	issuer models.Issuer
}

func (c *Collector) Detected(issuer models.Issuer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issuer = issuer
}

func (c *Collector) Extracted(models.Issuer, Field, string) {}

func (c *Collector) Missed(issuer models.Issuer, field Field) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issuer = issuer
	c.missed = append(c.missed, field)
}

func (c *Collector) Transactions(models.Issuer, int) {}

// MissedFields returns the fields that could not be extracted, in extraction order.
func (c *Collector) MissedFields() []Field {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Field(nil), c.missed...)
}

// Warnings renders the missed fields as human-readable messages.
func (c *Collector) Warnings() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.missed))
	for _, f := range c.missed {
		out = append(out, fmt.Sprintf("could not extract %s for %s", f, c.issuer))
	}
	return out
}

// MultiReporter fans diagnostics out to several reporters.
type MultiReporter []Reporter

func (m MultiReporter) Detected(issuer models.Issuer) {
	for _, r := range m {
		r.Detected(issuer)
	}
}

func (m MultiReporter) Extracted(issuer models.Issuer, field Field, value string) {
	for _, r := range m {
		r.Extracted(issuer, field, value)
	}
}

func (m MultiReporter) Missed(issuer models.Issuer, field Field) {
	for _, r := range m {
		r.Missed(issuer, field)
	}
}

func (m MultiReporter) Transactions(issuer models.Issuer, count int) {
	for _, r := range m {
		r.Transactions(issuer, count)
	}
}
