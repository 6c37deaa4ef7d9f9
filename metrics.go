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

// Metrics accumulates per-page extraction signals for a single document run.
// It is owned by the pipeline; pages report their contribution through a
// pageResult, which is merged here in page order.
type Metrics struct {
	TotalPages      int
	PagesWithText   int
	PagesWithTables int
	PagesWithImages int
	TablesExtracted int
	ImagesExtracted int
	OCRPages        int
	LLMEnhanced     bool

	// TextConfidence and StructureConfidence are derived at finalization,
	// never during per-page accumulation. Both are in [0,1].
	TextConfidence      float64
	StructureConfidence float64

	// Warnings is append-only and ordered by page.
	Warnings []string
}

// pageResult is the contribution of a single page: its markdown fragment plus
// the metric deltas it produced. Pages never touch the Metrics accumulator
// directly, so page extraction could be parallelized without sharing state as
// long as results are still merged in page order.
type pageResult struct {
	fragment string
	warnings []string

	hasText   bool
	usedOCR   bool
	hasTables bool
	hasImages bool
	tables    int
	images    int
}

// apply merges one page's result into the accumulator.
func (m *Metrics) apply(r pageResult) {
	if r.hasText {
		m.PagesWithText++
	}
	if r.usedOCR {
		m.OCRPages++
	}
	if r.hasTables {
		m.PagesWithTables++
	}
	if r.hasImages {
		m.PagesWithImages++
	}
	m.TablesExtracted += r.tables
	m.ImagesExtracted += r.images
	m.Warnings = append(m.Warnings, r.warnings...)
}

// finalize derives the confidence values once all pages have been merged.
func (m *Metrics) finalize() {
	if m.TotalPages > 0 {
		m.TextConfidence = minFloat(1.0, float64(m.PagesWithText)/float64(m.TotalPages))
	} else {
		m.TextConfidence = 0
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
