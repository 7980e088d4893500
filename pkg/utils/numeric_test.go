package utils

import (
	"testing"
)

func TestToNum(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *float64
	}{
		{
			name:     "plain decimal",
			input:    "15.2",
			expected: ptr(15.2),
		},
		{
			name:     "comma decimal separator",
			input:    "12,5",
			expected: ptr(12.5),
		},
		{
			name:     "integer",
			input:    "14",
			expected: ptr(14),
		},
		{
			name:     "surrounding whitespace",
			input:    " 9.750 ",
			expected: ptr(9.75),
		},
		{
			name:     "negative penalty",
			input:    "-0,3",
			expected: ptr(-0.3),
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: nil,
		},
		{
			name:     "not a number",
			input:    "abc",
			expected: nil,
		},
		{
			name:     "tie marker is not numeric",
			input:    "2=",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNum(tt.input)
			if (got == nil) != (tt.expected == nil) {
				t.Fatalf("ToNum(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
			if got != nil && *got != *tt.expected {
				t.Errorf("ToNum(%q) = %v, expected %v", tt.input, *got, *tt.expected)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }
