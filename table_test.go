package pdfmd

import "testing"

func TestRenderTableMarkdown(t *testing.T) {
	cases := []struct {
		name string
		rows [][]string
		want string
	}{
		{
			name: "empty input",
			rows: nil,
			want: "",
		},
		{
			name: "rectangular",
			rows: [][]string{{"Name", "Age"}, {"Ann", "34"}, {"Bob", "9"}},
			want: "| Name | Age |\n| --- | --- |\n| Ann | 34 |\n| Bob | 9 |",
		},
		{
			name: "jagged row padded",
			rows: [][]string{{"A", "B"}, {"1"}},
			want: "| A | B |\n| --- | --- |\n| 1 |  |",
		},
		{
			name: "nil rows dropped",
			rows: [][]string{nil, {"A", "B"}, nil, {"1", "2"}},
			want: "| A | B |\n| --- | --- |\n| 1 | 2 |",
		},
		{
			name: "cells trimmed",
			rows: [][]string{{"  A ", " B"}, {" 1", "2  "}},
			want: "| A | B |\n| --- | --- |\n| 1 | 2 |",
		},
		{
			name: "header only",
			rows: [][]string{{"Single"}},
			want: "| Single |\n| --- |",
		},
		{
			name: "all rows empty",
			rows: [][]string{{}, {}},
			want: "",
		},
		{
			name: "blank cells render as empty pipe cells",
			rows: [][]string{{"", "  "}, {" ", ""}},
			want: "|  |  |\n| --- | --- |\n|  |  |",
		},
		{
			name: "trailing blank row kept",
			rows: [][]string{{"A", "B"}, {"", ""}},
			want: "| A | B |\n| --- | --- |\n|  |  |",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := renderTableMarkdown(tc.rows)
			if got != tc.want {
				t.Errorf("renderTableMarkdown(%v) =\n%q\nwant\n%q", tc.rows, got, tc.want)
			}
		})
	}
}

func TestRenderTableMarkdownDeterministic(t *testing.T) {
	rows := [][]string{{"A", "B", "C"}, {"1", "2"}, {"3"}}
	first := renderTableMarkdown(rows)
	second := renderTableMarkdown(rows)
	if first != second {
		t.Errorf("rendering not deterministic:\n%q\nvs\n%q", first, second)
	}
}
