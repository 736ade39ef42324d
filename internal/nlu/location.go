package nlu

import (
	"regexp"
	"strings"
)

var (
	parensPattern       = regexp.MustCompile(`[()]`)
	trailingPunctuation = regexp.MustCompile(`[.,;:]+$`)
	multiSpacePattern   = regexp.MustCompile(`\s{2,}`)
	separatorPattern    = regexp.MustCompile(`(?i)\s+and\s+|[,;/|]`)

	// timeWordPattern removes embedded time/date words from a location
	// capture ("Paris today" -> "Paris"). Numbers are deliberately not
	// matched so "Paris 75001" survives.
	timeWordPattern = regexp.MustCompile(`(?i)\bnow\b|\btoday\b|\byesterday\b|\blast\b|\bthis\b|\bnext\b|\bweek\b|\bmonth\b|\bjan(?:uary)?\b|\bfeb(?:ruary)?\b|\bmar(?:ch)?\b|\bapr(?:il)?\b|\bmay\b|\bjun(?:e)?\b|\bjul(?:y)?\b|\baug(?:ust)?\b|\bsep(?:tember)?\b|\boct(?:ober)?\b|\bnov(?:ember)?\b|\bdec(?:ember)?\b`)
)

// SanitizeLocation cleans one raw location capture. The cleanup order
// matters: parentheses become spaces before punctuation stripping, and time
// words are removed before whitespace is collapsed. The second return value
// is false when nothing usable remains.
func SanitizeLocation(raw string) (string, bool) {
	loc := strings.TrimSpace(parensPattern.ReplaceAllString(raw, " "))
	loc = strings.TrimSpace(trailingPunctuation.ReplaceAllString(loc, ""))
	loc = strings.TrimSpace(timeWordPattern.ReplaceAllString(loc, ""))
	loc = multiSpacePattern.ReplaceAllString(loc, " ")
	loc = strings.TrimRight(strings.TrimSpace(loc), ",")
	if loc == "" {
		return "", false
	}
	return loc, true
}

// SplitLocations divides a combined location phrase ("Paris and Tokyo,
// London") into trimmed candidates, preserving left-to-right order. Empty
// input yields no candidates.
func SplitLocations(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range separatorPattern.Split(raw, -1) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
