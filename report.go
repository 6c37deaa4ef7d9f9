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
	"fmt"
	"strconv"
	"strings"
)

// ComposeReport appends the human-readable extraction report to the markdown
// body: the score table, a details list, and — only when present — the
// warnings. It never mutates the score.
func ComposeReport(markdown string, score Score) string {
	var b strings.Builder
	b.WriteString(markdown)
	b.WriteString("\n\n---\n\n## Extraction Report\n\n")

	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| **Overall Score** | %s/100 (%s) |\n", formatScore(score.OverallScore), score.Grade)
	fmt.Fprintf(&b, "| **Text Extraction** | %s/100 |\n", formatScore(score.Components.TextExtraction))
	fmt.Fprintf(&b, "| **Structure Preservation** | %s/100 |\n", formatScore(score.Components.StructurePreservation))
	fmt.Fprintf(&b, "| **Completeness** | %s/100 |\n", formatScore(score.Components.Completeness))

	b.WriteString("\n### Details\n")
	fmt.Fprintf(&b, "- **Total Pages**: %d\n", score.TotalPages)
	fmt.Fprintf(&b, "- **Tables Found**: %d\n", score.TablesFound)
	fmt.Fprintf(&b, "- **Images Found**: %d\n", score.ImagesFound)
	fmt.Fprintf(&b, "- **OCR Required**: %s\n", yesNo(score.OCRRequired))
	fmt.Fprintf(&b, "- **LLM Enhanced**: %s\n", yesNo(score.LLMEnhanced))

	if len(score.Warnings) > 0 {
		b.WriteString("\n### Warnings\n")
		for _, w := range score.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	return b.String()
}

// formatScore prints a score with exactly one decimal place, so 100 renders
// as "100.0" and 95.5 as "95.5".
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
