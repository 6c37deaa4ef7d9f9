package pdfmd

import (
	"strings"
	"testing"
)

func TestComposeReport(t *testing.T) {
	score := Score{
		OverallScore: 92.5,
		Components: ScoreComponents{
			TextExtraction:        100,
			StructurePreservation: 75,
			Completeness:          100,
		},
		Grade:       "A - Excellent",
		TotalPages:  10,
		TablesFound: 2,
		Warnings:    []string{},
	}

	out := ComposeReport("body", score)

	if !strings.HasPrefix(out, "body\n\n---\n\n## Extraction Report") {
		t.Errorf("report not appended after body:\n%s", out)
	}

	for _, want := range []string{
		"| Metric | Value |",
		"| **Overall Score** | 92.5/100 (A - Excellent) |",
		"| **Text Extraction** | 100.0/100 |",
		"| **Structure Preservation** | 75.0/100 |",
		"| **Completeness** | 100.0/100 |",
		"- **Total Pages**: 10",
		"- **Tables Found**: 2",
		"- **Images Found**: 0",
		"- **OCR Required**: No",
		"- **LLM Enhanced**: No",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "### Warnings") {
		t.Error("warnings section present despite empty warnings")
	}
}

func TestComposeReportWithWarnings(t *testing.T) {
	score := Score{
		Grade:    "F - Poor",
		Warnings: []string{"Page 1: No text extracted", "Page 2: OCR failed - boom"},
	}

	out := ComposeReport("body", score)

	if !strings.Contains(out, "### Warnings") {
		t.Fatalf("missing warnings section:\n%s", out)
	}
	if !strings.Contains(out, "- Page 1: No text extracted") ||
		!strings.Contains(out, "- Page 2: OCR failed - boom") {
		t.Errorf("missing warning entries:\n%s", out)
	}
}
