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
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines shorter than this that are entirely upper-case are treated as headings.
const headingMaxLen = 80

var (
	// "1.2 Introduction" style numbered section headings.
	reNumberedHeading = regexp.MustCompile(`^[\d.]+\s+[A-Z]`)
	// "1. " numbered list markers, already valid markdown.
	reNumberedList = regexp.MustCompile(`^\d+\.\s+`)
)

// TextFormatter restructures raw line-oriented page text into markdown.
// Classification is heuristic; the recognized bullet glyphs are configurable
// because real-world PDFs use a mix of ASCII and typographic bullets.
type TextFormatter struct {
	bullets string
	titler  cases.Caser
}

// NewTextFormatter creates a formatter recognizing the given bullet glyphs.
// With no arguments the default set ("-", "*", "•") is used.
func NewTextFormatter(bullets ...rune) *TextFormatter {
	glyphs := string(bullets)
	if glyphs == "" {
		glyphs = defaultBulletGlyphs
	}
	return &TextFormatter{
		bullets: glyphs,
		titler:  cases.Title(language.English),
	}
}

// Format classifies each non-blank line and rewrites it as a markdown
// construct. Blank lines pass through unchanged so paragraph breaks survive.
func (f *TextFormatter) Format(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			out = append(out, "")
			continue
		}
		out = append(out, f.formatLine(stripped))
	}
	return strings.Join(out, "\n")
}

// formatLine applies the classification rules in precedence order;
// the first match wins.
func (f *TextFormatter) formatLine(stripped string) string {
	switch {
	case utf8.RuneCountInString(stripped) < headingMaxLen && isUpperLine(stripped):
		return "## " + f.titler.String(stripped)
	case reNumberedHeading.MatchString(stripped):
		return "### " + stripped
	case f.isBulletLine(stripped):
		// Drop the glyph and its following space, then re-trim in case the
		// source used wider indentation.
		r := []rune(stripped)
		return "- " + strings.TrimSpace(string(r[2:]))
	case reNumberedList.MatchString(stripped):
		return stripped
	default:
		return stripped
	}
}

// isBulletLine reports whether the line starts with a recognized bullet glyph
// followed by whitespace.
func (f *TextFormatter) isBulletLine(s string) bool {
	r := []rune(s)
	if len(r) < 2 {
		return false
	}
	return strings.ContainsRune(f.bullets, r[0]) && unicode.IsSpace(r[1])
}

// isUpperLine reports whether the line contains at least one cased letter and
// no lower-case letters, mirroring the usual "all caps" check.
func isUpperLine(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
