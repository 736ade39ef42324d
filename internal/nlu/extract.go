package nlu

import (
	"regexp"
	"strings"
)

// Extraction is the result of scanning one input text. Location and Time are
// nil when the text contains no recognizable phrase; they are never empty
// strings.
type Extraction struct {
	Metrics  []Metric
	Location *string
	Time     *string
}

var (
	// locationPattern captures the phrase following a standalone "in". The
	// original-case text is searched so city casing survives into the capture.
	locationPattern = regexp.MustCompile(`(?i)\bin ([a-z0-9 \-_,]+)`)

	// timePattern is the closed time vocabulary; first match in the
	// lower-cased text wins.
	timePattern = regexp.MustCompile(`january|february|march|april|may|june|july|august|september|october|november|december|today|now|yesterday|last week|this week|next week`)
)

// Extract scans text for metric mentions, a location phrase, and a time
// phrase. It is a pure function: no state, same output for same input.
func Extract(text string) Extraction {
	lower := strings.ToLower(text)

	var metrics []Metric
	for _, entry := range metricLexicon {
		for _, p := range entry.patterns {
			if p.MatchString(lower) {
				metrics = append(metrics, entry.metric)
				break
			}
		}
	}

	ex := Extraction{Metrics: metrics}

	if m := locationPattern.FindStringSubmatch(text); m != nil {
		loc := strings.TrimSpace(m[1])
		ex.Location = &loc
	}

	if t := timePattern.FindString(lower); t != "" {
		ex.Time = &t
	}

	return ex
}
