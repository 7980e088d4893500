package utils

import (
	"regexp"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Individual Men",
			expected: "individual-men",
		},
		{
			name:     "dash separated division",
			input:    "INDIVIDUAL MEN - SENIORS",
			expected: "individual-men-seniors",
		},
		{
			name:     "unicode dash collapses",
			input:    "Individual Men – Seniors",
			expected: "individual-men-seniors",
		},
		{
			name:     "punctuation runs collapse to one hyphen",
			input:    "Trio!!!   (Juniors)",
			expected: "trio-juniors",
		},
		{
			name:     "leading and trailing junk trimmed",
			input:    "  --Mixed Pair-- ",
			expected: "mixed-pair",
		},
		{
			name:     "underscores are not slug characters",
			input:    "group_youth",
			expected: "group-youth",
		},
		{
			name:     "digits survive",
			input:    "U12 Development",
			expected: "u12-development",
		},
		{
			name:     "only junk becomes empty",
			input:    "!!! ---",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.expected {
				t.Errorf("Slugify(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Individual Men - Seniors",
		"AEROBIC DANCE - YOUTH",
		"Trio!!!   (Juniors)",
		"",
	}
	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestSlugifyShape(t *testing.T) {
	shape := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	inputs := []string{
		"Individual Men - Seniors",
		"  weird    input ##",
		"A",
		"12,5",
	}
	for _, input := range inputs {
		got := Slugify(input)
		if got == "" {
			continue
		}
		if !shape.MatchString(got) {
			t.Errorf("Slugify(%q) = %q does not match slug shape", input, got)
		}
	}
}
