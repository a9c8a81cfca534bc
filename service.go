package invoicegen

import (
	"context"
	"fmt"
)

// Service orchestrates the record-to-PDF pipeline: optional Markdown
// conversion, placeholder substitution, font CSS injection, and PDF
// generation.
type Service struct {
	cfg         serviceConfig
	font        *FontHandle
	mdConverter templateConverter
	engine      pdfEngine
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithFont).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:       defaultTimeout,
			currencyLabel: DefaultCurrencyLabel,
		},
		mdConverter: newGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the PDF engine if not injected (e.g., by tests)
	if s.engine == nil {
		s.engine = newRodEngine(s.cfg.timeout)
	}

	return s
}

// Generate runs the full pipeline for one record and writes the PDF to
// input.OutputPath. The context is used for cancellation and timeout.
//
// Substitution problems never fail the run: a degraded render falls back to
// the raw template and unresolved placeholders are reported in the Report.
// I/O and engine problems at the final write step are escalated, because a
// partially written or missing PDF is never an acceptable silent outcome.
func (s *Service) Generate(ctx context.Context, input Input) (*Report, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tmplText := input.Template
	if input.Markdown {
		converted, err := s.mdConverter.ToHTML(ctx, tmplText)
		if err != nil {
			return nil, fmt.Errorf("converting markdown template: %w", err)
		}
		tmplText = converted
	}

	render := renderWith(tmplText, input.Record, s.cfg.currencyLabel)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	prepared, warnings, err := generateDocument(ctx, s.engine, s.font, render.Text, input.OutputPath)
	if err != nil {
		return nil, err
	}

	return &Report{
		RenderedHTML:   prepared,
		Unresolved:     render.Unresolved,
		AvailableKeys:  render.AvailableKeys,
		Degraded:       render.Degraded,
		EngineWarnings: warnings,
		OutputPath:     input.OutputPath,
	}, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.engine != nil {
		return s.engine.Close()
	}
	return nil
}

// validateInput checks that required fields are present.
func validateInput(input Input) error {
	if input.Template == "" {
		return ErrEmptyTemplate
	}
	if input.OutputPath == "" {
		return ErrEmptyOutputPath
	}
	return nil
}
