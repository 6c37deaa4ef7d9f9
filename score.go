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

import "math"

// Component weights for the overall fetch score.
const (
	weightTextExtraction        = 0.4
	weightStructurePreservation = 0.3
	weightCompleteness          = 0.3
)

// ScoreComponents holds the three weighted component scores, each 0-100.
// The JSON field names are a stable contract consumed by external tooling.
type ScoreComponents struct {
	TextExtraction        float64 `json:"text_extraction"`
	StructurePreservation float64 `json:"structure_preservation"`
	Completeness          float64 `json:"completeness"`
}

// Score is the graded fetch score for one extraction run, plus a restatement
// of selected metrics for reporting. Field names and nesting are stable.
type Score struct {
	OverallScore float64         `json:"overall_score"`
	Components   ScoreComponents `json:"components"`
	Grade        string          `json:"grade"`
	TotalPages   int             `json:"total_pages"`
	TablesFound  int             `json:"tables_found"`
	ImagesFound  int             `json:"images_found"`
	OCRRequired  bool            `json:"ocr_required"`
	LLMEnhanced  bool            `json:"llm_enhanced"`
	Warnings     []string        `json:"warnings"`
}

// FetchScore maps a finalized metrics snapshot to the graded score.
// It is a pure function: identical metrics always produce an identical Score.
func (m *Metrics) FetchScore() Score {
	// Text extraction (weight 0.4).
	var textScore float64
	if m.TotalPages > 0 {
		ratio := float64(m.PagesWithText) / float64(m.TotalPages)
		textScore = minFloat(100, ratio*100+m.TextConfidence*20)
	}

	// Structure preservation (weight 0.3). Base 50, bonuses for tables,
	// images, and LLM enhancement; only the upper bound needs clamping since
	// every term is additive.
	structScore := 50.0
	if m.TablesExtracted > 0 {
		structScore += 25
	}
	if m.ImagesExtracted > 0 {
		structScore += 15
	}
	if m.LLMEnhanced {
		structScore += 10
	}
	structScore = minFloat(100, structScore+m.StructureConfidence*20)

	// Completeness (weight 0.3). OCR-only documents and warnings reduce it;
	// the warning penalty saturates at 30.
	completeness := 100.0
	if m.OCRPages > 0 && m.OCRPages == m.TotalPages {
		completeness -= 20
	}
	if n := len(m.Warnings); n > 0 {
		completeness -= minFloat(30, float64(n)*5)
	}
	if completeness < 0 {
		completeness = 0
	}

	overall := textScore*weightTextExtraction +
		structScore*weightStructurePreservation +
		completeness*weightCompleteness

	// Warnings is restated as a copy so the Score stays immutable even if the
	// accumulator keeps appending. Empty stays [] rather than null in JSON.
	warnings := make([]string, len(m.Warnings))
	copy(warnings, m.Warnings)

	return Score{
		OverallScore: round1(overall),
		Components: ScoreComponents{
			TextExtraction:        round1(textScore),
			StructurePreservation: round1(structScore),
			Completeness:          round1(completeness),
		},
		Grade:       scoreToGrade(overall),
		TotalPages:  m.TotalPages,
		TablesFound: m.TablesExtracted,
		ImagesFound: m.ImagesExtracted,
		OCRRequired: m.OCRPages > 0,
		LLMEnhanced: m.LLMEnhanced,
		Warnings:    warnings,
	}
}

// scoreToGrade maps an overall score to its letter grade (inclusive lower bounds).
func scoreToGrade(score float64) string {
	switch {
	case score >= 90:
		return "A - Excellent"
	case score >= 80:
		return "B - Good"
	case score >= 70:
		return "C - Acceptable"
	case score >= 60:
		return "D - Fair"
	default:
		return "F - Poor"
	}
}

// round1 rounds to one decimal place, ties to even.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
