package nlu

import (
	"regexp"
	"strings"
)

// Metric identifies one of the weather measurements the extractor understands.
type Metric string

const (
	MetricTemperature Metric = "temperature"
	MetricRainfall    Metric = "rainfall"
	MetricHumidity    Metric = "humidity"
	MetricWindSpeed   Metric = "wind_speed"
	MetricPressure    Metric = "pressure"
)

// metricLexicon lists every known metric with the patterns that recognize it
// in lower-cased text. Slice order is the declaration order and fixes the
// order of metrics in extraction results.
var metricLexicon = []struct {
	metric   Metric
	patterns []*regexp.Regexp
}{
	{MetricTemperature, compile(`temp(?:erature)?`, `hotter`, `colder`, `degrees`, `°c`, `°f`, `\bweather\b`)},
	{MetricRainfall, compile(`rain(?:fall)?`, `precipitation`, `mm of rain`, `rainy`)},
	{MetricHumidity, compile(`humidity`, `humid`)},
	{MetricWindSpeed, compile(`wind(?: speed)?`, `windspeed`, `wind gust`)},
	{MetricPressure, compile(`pressure`, `hpa`, `atm`)},
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(expr))
	}
	return out
}

// Metrics returns the known metric identifiers in lexicon order.
func Metrics() []Metric {
	out := make([]Metric, 0, len(metricLexicon))
	for _, entry := range metricLexicon {
		out = append(out, entry.metric)
	}
	return out
}

// ParseMetric maps a raw identifier onto a known Metric. The second return
// value is false for identifiers outside the closed set.
func ParseMetric(s string) (Metric, bool) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	for _, entry := range metricLexicon {
		if entry.metric == m {
			return m, true
		}
	}
	return "", false
}
