package pdfmd

import "testing"

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", "# Title\nbody", "# Title\nbody"},
		{"plain fences", "```\n# Title\nbody\n```", "# Title\nbody"},
		{"language tag", "```markdown\n# Title\nbody\n```", "# Title\nbody"},
		{"fence only prefix", "```", "```"},
		{"trailing newline after fence", "```\nbody\n```\n", "body"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripCodeFences(tc.in); got != tc.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewGeminiEnhancerDefaults(t *testing.T) {
	en := NewGeminiEnhancer("  key  ", "")
	if en.APIKey != "key" {
		t.Errorf("APIKey = %q", en.APIKey)
	}
	if en.Model == "" {
		t.Error("default model not set")
	}
}
