package invoicegen

import (
	"strings"
	"time"
)

// Field is a single record value. Null distinguishes an explicit JSON null
// (or a missing CSV cell) from a present-but-empty string; both display as
// an empty string during substitution, but only non-null fields trigger
// derived fragments such as tax_row.
type Field struct {
	Value string
	Null  bool
}

// String returns the display form of the field (empty for null).
func (f Field) String() string {
	if f.Null {
		return ""
	}
	return f.Value
}

// Blank reports whether the field is null or contains only whitespace.
func (f Field) Blank() bool {
	return f.Null || strings.TrimSpace(f.Value) == ""
}

// Record is one flat row of source data, keyed by trimmed field name.
// Records are immutable after loading.
type Record map[string]Field

// Get returns the display string for key and whether the key exists.
func (r Record) Get(key string) (string, bool) {
	f, ok := r[key]
	if !ok {
		return "", false
	}
	return f.String(), true
}

// Input contains generation parameters for a single run.
type Input struct {
	Template   string // Template text, HTML or Markdown (required)
	Markdown   bool   // Convert Template from Markdown before substitution
	Record     Record // Selected record (required)
	OutputPath string // Destination PDF path (required)
}

// Report describes the outcome of a successful generation.
type Report struct {
	RenderedHTML   string   // HTML after substitution and style injection
	Unresolved     []string // Placeholder names left untouched (sorted)
	AvailableKeys  []string // Keys that were available for substitution (sorted)
	Degraded       bool     // Substitution fell back to the raw template
	EngineWarnings []string // Non-fatal warnings from the PDF engine
	OutputPath     string   // Where the PDF was written
}

// FontHandle is a resolved Cyrillic-capable font located at startup.
// A nil handle means no suitable font was found and generic family names
// are used instead.
type FontHandle struct {
	Path   string // Absolute path to the font file
	Family string // Family name to register, e.g. "Arial"
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout       time.Duration
	currencyLabel string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// DefaultCurrencyLabel is the suffix appended to derived amount rows.
const DefaultCurrencyLabel = "руб."

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("invoicegen: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithCurrencyLabel overrides the currency suffix used in derived
// tax_row and total_row fragments.
func WithCurrencyLabel(label string) Option {
	return func(s *Service) {
		s.cfg.currencyLabel = label
	}
}

// WithFont supplies the resolved font handle. Pass nil to force the
// generic font family fallback.
func WithFont(font *FontHandle) Option {
	return func(s *Service) {
		s.font = font
	}
}

// withEngine injects a PDF engine, used by tests to avoid a real browser.
func withEngine(e pdfEngine) Option {
	return func(s *Service) {
		s.engine = e
	}
}
