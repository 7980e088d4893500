package utils

import (
	"strconv"
	"strings"
)

// ToNum parses a spreadsheet cell into an optional score. Empty input yields
// nil, commas are treated as decimal separators ("12,5" -> 12.5), and any
// parse failure degrades to nil instead of returning an error. Absent scores
// must stay nil, never zero, so they sort after real values on display.
func ToNum(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
