package pdfmd

import "log/slog"

// Option configures an Extractor instance.
type Option func(*Extractor)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(e *Extractor) {
		e.cfg = cfg
	}
}

// WithOCR installs the OCR fallback used for pages without a text layer.
// Without it, such pages only produce a warning.
func WithOCR(c OCRClient) Option {
	return func(e *Extractor) {
		e.ocr = c
	}
}

// WithEnhancer installs the LLM enhancement step, which rewrites the fully
// assembled markdown after all pages are processed. Enhancement failures are
// non-fatal: the pre-enhancement markdown is kept.
func WithEnhancer(en Enhancer) Option {
	return func(e *Extractor) {
		e.enhancer = en
	}
}

// WithLogger sets the logger used for per-page progress and degradations.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		e.cfg.Logger = l
	}
}
