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

package pdfmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// extractPage converts one page into its markdown fragment and metric deltas.
// Every degradation on this path is recoverable: empty text falls back to OCR,
// OCR failure becomes a warning, and the page still contributes its marker.
func (e *Extractor) extractPage(ctx context.Context, doc Document, page Page, pageNum int) pageResult {
	var res pageResult
	parts := []string{fmt.Sprintf("<!-- Page %d -->", pageNum)}

	// Primary text extraction, with OCR as the fallback path.
	text := page.Text()
	if strings.TrimSpace(text) != "" {
		res.hasText = true
		parts = append(parts, e.formatter.Format(text))
	} else {
		ocrText := e.tryOCR(ctx, doc, pageNum, &res)
		if ocrText != "" {
			res.usedOCR = true
			res.hasText = true
			parts = append(parts, "<!-- OCR extracted -->\n"+ocrText)
		} else {
			res.warnings = append(res.warnings, fmt.Sprintf("Page %d: No text extracted", pageNum))
		}
	}

	// Tables. pages_with_tables counts once per page regardless of how many
	// tables it carries.
	for _, table := range page.Tables() {
		md := renderTableMarkdown(table.Rows)
		if md == "" {
			continue
		}
		res.tables++
		parts = append(parts, md)
	}
	if res.tables > 0 {
		res.hasTables = true
	}

	// Images are referenced, not embedded; the target filename encodes the
	// page number and a per-page 1-based index.
	images := page.Images()
	for i := range images {
		res.images++
		parts = append(parts, fmt.Sprintf("![Image %d.%d](image_p%d_%d.png)", pageNum, i+1, pageNum, i+1))
	}
	if len(images) > 0 {
		res.hasImages = true
	}

	res.fragment = strings.Join(parts, "\n\n")
	return res
}

// tryOCR runs the OCR fallback for a page without a text layer. It returns
// formatted markdown text, or "" when OCR is missing, fails, or recognizes
// nothing; failures are recorded on the result as warnings.
func (e *Extractor) tryOCR(ctx context.Context, doc Document, pageNum int, res *pageResult) string {
	if e.ocr == nil {
		return ""
	}

	e.logger.Debug("attempting OCR", "page", pageNum, "dpi", e.cfg.OCRDPI)

	text, err := e.ocr.RecognizePage(ctx, doc.Path(), pageNum, e.cfg.OCRDPI)
	if err != nil {
		if errors.Is(err, ErrOCRUnavailable) {
			res.warnings = append(res.warnings, fmt.Sprintf("Page %d: OCR not available", pageNum))
		} else {
			res.warnings = append(res.warnings, fmt.Sprintf("Page %d: OCR failed - %v", pageNum, err))
		}
		return ""
	}
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return e.formatter.Format(text)
}
