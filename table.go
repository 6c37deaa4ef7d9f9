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

import "strings"

// renderTableMarkdown normalizes a jagged grid of cells into a rectangular
// markdown table. Only zero-length rows are dropped; rows whose cells trim to
// blank still render as empty pipe cells. Cells are trimmed and every row is
// right-padded with empty cells to the widest row. The first surviving row
// becomes the header; detection cannot tell whether the source had one.
// Returns "" when no rows remain.
func renderTableMarkdown(rows [][]string) string {
	cleaned := make([][]string, 0, len(rows))
	maxCols := 0
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.TrimSpace(c)
		}
		if len(cells) > maxCols {
			maxCols = len(cells)
		}
		cleaned = append(cleaned, cells)
	}
	if len(cleaned) == 0 {
		return ""
	}

	for i, row := range cleaned {
		for len(row) < maxCols {
			row = append(row, "")
		}
		cleaned[i] = row
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |")
	}

	writeRow(cleaned[0])
	b.WriteString("\n")

	sep := make([]string, maxCols)
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(sep)

	for _, row := range cleaned[1:] {
		b.WriteString("\n")
		writeRow(row)
	}

	return b.String()
}
