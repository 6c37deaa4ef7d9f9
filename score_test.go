package pdfmd

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFetchScoreCleanDocument(t *testing.T) {
	m := Metrics{
		TotalPages:      10,
		PagesWithText:   10,
		TablesExtracted: 2,
		PagesWithTables: 2,
	}
	m.finalize()

	score := m.FetchScore()

	if got := score.Components.TextExtraction; got != 100 {
		t.Errorf("text_extraction = %v, want 100", got)
	}
	// Structure: base 50 plus the table bonus 25.
	if got := score.Components.StructurePreservation; got != 75 {
		t.Errorf("structure_preservation = %v, want 75", got)
	}
	if got := score.Components.Completeness; got != 100 {
		t.Errorf("completeness = %v, want 100", got)
	}
	// 100*0.4 + 75*0.3 + 100*0.3
	if got := score.OverallScore; got != 92.5 {
		t.Errorf("overall_score = %v, want 92.5", got)
	}
	if got := score.Grade; got != "A - Excellent" {
		t.Errorf("grade = %q, want %q", got, "A - Excellent")
	}
}

func TestFetchScoreZeroPages(t *testing.T) {
	m := Metrics{}
	m.finalize()

	score := m.FetchScore()
	if score.Components.TextExtraction != 0 {
		t.Errorf("text_extraction = %v, want 0 for empty document", score.Components.TextExtraction)
	}
	if score.TotalPages != 0 {
		t.Errorf("total_pages = %d, want 0", score.TotalPages)
	}
}

func TestFetchScoreWarningPenalty(t *testing.T) {
	cases := []struct {
		warnings int
		want     float64
	}{
		{0, 100},
		{1, 95},
		{2, 90},
		{5, 75},
		{6, 70}, // penalty saturates at 30
		{10, 70},
	}

	for _, tc := range cases {
		m := Metrics{TotalPages: 4, PagesWithText: 4}
		for i := 0; i < tc.warnings; i++ {
			m.Warnings = append(m.Warnings, "warning")
		}
		m.finalize()

		if got := m.FetchScore().Components.Completeness; got != tc.want {
			t.Errorf("completeness with %d warnings = %v, want %v", tc.warnings, got, tc.want)
		}
	}
}

func TestFetchScoreOCRPenalty(t *testing.T) {
	base := Metrics{TotalPages: 3, PagesWithText: 3}
	base.finalize()

	allOCR := Metrics{TotalPages: 3, PagesWithText: 3, OCRPages: 3}
	allOCR.finalize()

	diff := base.FetchScore().Components.Completeness - allOCR.FetchScore().Components.Completeness
	if diff != 20 {
		t.Errorf("all-OCR completeness penalty = %v, want 20", diff)
	}

	// Partial OCR carries no completeness penalty.
	someOCR := Metrics{TotalPages: 3, PagesWithText: 3, OCRPages: 1}
	someOCR.finalize()
	if got := someOCR.FetchScore().Components.Completeness; got != 100 {
		t.Errorf("partial-OCR completeness = %v, want 100", got)
	}

	if !allOCR.FetchScore().OCRRequired {
		t.Error("ocr_required = false, want true")
	}
}

func TestFetchScoreBounds(t *testing.T) {
	snapshots := []Metrics{
		{},
		{TotalPages: 1},
		{TotalPages: 1, PagesWithText: 1, TablesExtracted: 5, ImagesExtracted: 9, LLMEnhanced: true},
		{TotalPages: 2, OCRPages: 2, PagesWithText: 2, Warnings: make([]string, 40)},
		{TotalPages: 100, PagesWithText: 37},
	}

	for i, m := range snapshots {
		m.finalize()
		score := m.FetchScore()
		values := []float64{
			score.OverallScore,
			score.Components.TextExtraction,
			score.Components.StructurePreservation,
			score.Components.Completeness,
		}
		for _, v := range values {
			if v < 0 || v > 100 {
				t.Errorf("snapshot %d: score value %v out of [0,100]", i, v)
			}
		}
	}
}

func TestFetchScorePure(t *testing.T) {
	m := Metrics{
		TotalPages:      5,
		PagesWithText:   4,
		TablesExtracted: 1,
		OCRPages:        1,
		Warnings:        []string{"Page 3: No text extracted"},
	}
	m.finalize()

	first := m.FetchScore()
	second := m.FetchScore()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("FetchScore not pure:\n%+v\nvs\n%+v", first, second)
	}
}

func TestRoundHalfToEven(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{92.25, 92.2},
		{92.75, 92.8},
		{92.24, 92.2},
		{92.26, 92.3},
		{100, 100},
		{0, 0},
	}

	for _, tc := range cases {
		if got := round1(tc.in); got != tc.want {
			t.Errorf("round1(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFetchScoreJSONContract(t *testing.T) {
	m := Metrics{TotalPages: 2, PagesWithText: 2, LLMEnhanced: true}
	m.finalize()

	data, err := json.Marshal(m.FetchScore())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"overall_score", "components", "grade", "total_pages",
		"tables_found", "images_found", "ocr_required", "llm_enhanced", "warnings",
	} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing JSON field %q", key)
		}
	}

	components, ok := decoded["components"].(map[string]any)
	if !ok {
		t.Fatalf("components is %T, want object", decoded["components"])
	}
	for _, key := range []string{"text_extraction", "structure_preservation", "completeness"} {
		if _, ok := components[key]; !ok {
			t.Errorf("missing component field %q", key)
		}
	}

	// Empty warnings must serialize as [], not null.
	if warnings, ok := decoded["warnings"].([]any); !ok || warnings == nil {
		t.Errorf("warnings = %v (%T), want empty array", decoded["warnings"], decoded["warnings"])
	}
}
