package services

import (
	"strconv"
	"strings"
)

// ParsedLine is one typed order line reduced to a product name and quantity.
type ParsedLine struct {
	Raw  string
	Name string
	Qty  float64
}

// ParseLine parses a single typed order line. Two strategies, in order:
// "name, qty" split on the last comma, else whitespace-split with a trailing
// integer token as quantity. Quantity defaults to 1. Returns false for a
// blank line.
func ParseLine(line string) (ParsedLine, bool) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return ParsedLine{}, false
	}

	if i := strings.LastIndex(raw, ","); i >= 0 {
		name := strings.TrimSpace(raw[:i])
		qty, err := strconv.Atoi(strings.TrimSpace(raw[i+1:]))
		if err == nil && qty > 0 && name != "" {
			return ParsedLine{Raw: raw, Name: name, Qty: float64(qty)}, true
		}
	}

	fields := strings.Fields(raw)
	if len(fields) > 1 {
		qty, err := strconv.Atoi(fields[len(fields)-1])
		if err == nil && qty > 0 {
			name := strings.Join(fields[:len(fields)-1], " ")
			return ParsedLine{Raw: raw, Name: name, Qty: float64(qty)}, true
		}
	}

	return ParsedLine{Raw: raw, Name: raw, Qty: 1}, true
}

// ParseText splits free-form order text into parsed lines, skipping blanks.
func ParseText(text string) []ParsedLine {
	var lines []ParsedLine
	for _, line := range strings.Split(text, "\n") {
		if parsed, ok := ParseLine(line); ok {
			lines = append(lines, parsed)
		}
	}
	return lines
}
