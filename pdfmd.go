// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Package pdfmd converts paginated PDF documents to markdown and grades how
// faithfully the conversion preserved the source with a weighted fetch score.
package pdfmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// llmTruncationMarker is appended when the markdown body exceeds the
// enhancement input limit and has to be cut.
const llmTruncationMarker = "\n\n<!-- Content truncated for LLM processing -->"

// Extractor is the document-to-markdown extraction engine.
type Extractor struct {
	cfg       Config
	ocr       OCRClient
	enhancer  Enhancer
	formatter *TextFormatter
	logger    *slog.Logger
}

// Result holds the output of one extraction run.
type Result struct {
	Markdown string
	Score    Score
}

// New creates an Extractor with the given options.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	e.cfg.defaults()
	e.logger = e.cfg.Logger
	e.formatter = NewTextFormatter([]rune(e.cfg.BulletGlyphs)...)
	return e
}

// ExtractFile opens a PDF at path and runs the extraction pipeline on it.
// Failing to open or validate the input is the only fatal outcome; every
// later degradation is absorbed into the score's warnings.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if info.Size() > e.cfg.MaxFileSize {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), e.cfg.MaxFileSize)}
	}

	doc, err := OpenDocument(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return e.ExtractDocument(ctx, doc)
}

// ExtractDocument runs the pipeline over an already opened document backend.
// Pages are processed strictly in source order and each page's result is
// merged into the metrics accumulator before the next page starts.
func (e *Extractor) ExtractDocument(ctx context.Context, doc Document) (*Result, error) {
	metrics := Metrics{TotalPages: doc.PageCount()}
	e.logger.Debug("extracting document", "path", doc.Path(), "pages", metrics.TotalPages)

	var fragments []string
	for n := 1; n <= metrics.TotalPages; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := doc.Page(n)
		if err != nil {
			// A page the backend cannot hand out degrades like an empty one.
			metrics.apply(pageResult{warnings: []string{fmt.Sprintf("Page %d: %v", n, err)}})
			continue
		}

		res := e.extractPage(ctx, doc, page, n)
		metrics.apply(res)
		if strings.TrimSpace(res.fragment) != "" {
			fragments = append(fragments, res.fragment)
		}
	}

	markdown := strings.Join(fragments, "\n\n---\n\n")
	markdown = normalizeMarkdown(markdown)

	// Enhancement runs once on the assembled document. On failure the
	// pre-enhancement markdown is preserved unchanged and llm_enhanced stays
	// false; the score reflects what actually happened, not what was asked.
	if e.enhancer != nil {
		if enhanced, ok := e.enhance(ctx, markdown, filepath.Base(doc.Path())); ok {
			markdown = enhanced
			metrics.LLMEnhanced = true
		}
	}

	metrics.finalize()
	score := metrics.FetchScore()
	e.logger.Debug("extraction complete", "score", score.OverallScore, "grade", score.Grade)

	return &Result{Markdown: markdown, Score: score}, nil
}

// enhance invokes the LLM enhancement collaborator, truncating oversized
// input first. The bool reports whether the returned markdown should replace
// the original.
func (e *Extractor) enhance(ctx context.Context, markdown, docName string) (string, bool) {
	input := markdown
	if len(input) > e.cfg.MaxLLMInput {
		input = truncateUTF8(input, e.cfg.MaxLLMInput) + llmTruncationMarker
	}

	enhanced, err := e.enhancer.Enhance(ctx, input, docName)
	if err != nil {
		e.logger.Warn("LLM enhancement failed, keeping original markdown", "error", err)
		return "", false
	}
	if strings.TrimSpace(enhanced) == "" {
		e.logger.Warn("LLM enhancement returned empty output, keeping original markdown")
		return "", false
	}
	return normalizeMarkdown(enhanced), true
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
