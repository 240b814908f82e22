package enrichment

import (
	"math"
	"strconv"
	"strings"
)

// ParsePValue parses free-form p-value text into a float64, with NaN as
// the missing marker. A leading "<" qualifier, as topGO emits for values
// below its reporting floor ("< 1e-30"), is stripped and the bound itself
// is used; the inequality is not preserved. Anything unparseable is NaN,
// never an error.
func ParsePValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "<"))
	var v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// FormatPValue renders a parsed p-value back into a cell, empty for NaN.
func FormatPValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseBoolCell reads R-style TRUE/FALSE cells, case-insensitive.
// Anything that is not a recognizable true is false.
func ParseBoolCell(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}
