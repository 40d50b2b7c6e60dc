package services

import "strings"

// ParseSuggestions returns the hyphen-prefixed lines that follow the first
// SUGGESTIONS: marker, without the hyphen. Output without the marker yields
// an empty list.
func ParseSuggestions(raw string) []string {
	suggestions := []string{}

	_, body, found := strings.Cut(raw, SuggestionsMarker)
	if !found {
		return suggestions
	}

	for _, line := range splitLines(body) {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		if item := strings.TrimSpace(strings.TrimPrefix(line, "-")); item != "" {
			suggestions = append(suggestions, item)
		}
	}

	return suggestions
}

// ParseSummary trims the output and strips a leading SUMMARY: marker in any
// letter case.
func ParseSummary(raw string) string {
	summary := strings.TrimSpace(raw)

	if len(summary) >= len(SummaryMarker) && strings.EqualFold(summary[:len(SummaryMarker)], SummaryMarker) {
		summary = strings.TrimSpace(summary[len(SummaryMarker):])
	}

	return summary
}

// splitLines breaks on \n, \r\n and a lone \r.
func splitLines(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}
