package weather

import (
	"encoding/json"
	"testing"

	"github.com/i474232898/weather-intent-service/internal/nlu"
)

func decodeObservation(t *testing.T, payload string) Observation {
	t.Helper()
	var obs Observation
	if err := json.Unmarshal([]byte(payload), &obs); err != nil {
		t.Fatalf("decode observation: %v", err)
	}
	return obs
}

func TestResolveMetricFieldLookup(t *testing.T) {
	obs := decodeObservation(t, `{
		"main": {"temp": 21.4, "humidity": 63, "pressure": 1013},
		"wind": {"speed": 5.2}
	}`)

	tests := []struct {
		metric nlu.Metric
		want   float64
	}{
		{nlu.MetricTemperature, 21.4},
		{nlu.MetricHumidity, 63},
		{nlu.MetricPressure, 1013},
		{nlu.MetricWindSpeed, 5.2},
	}

	for _, tt := range tests {
		got := ResolveMetric(tt.metric, obs)
		if got == nil || *got != tt.want {
			t.Fatalf("ResolveMetric(%s) = %v, want %v", tt.metric, got, tt.want)
		}
	}
}

func TestResolveMetricAbsentField(t *testing.T) {
	obs := decodeObservation(t, `{"main": {"humidity": 50}}`)

	if got := ResolveMetric(nlu.MetricTemperature, obs); got != nil {
		t.Fatalf("expected nil for absent temp, got %v", *got)
	}
	if got := ResolveMetric(nlu.MetricWindSpeed, obs); got != nil {
		t.Fatalf("expected nil for absent wind, got %v", *got)
	}
}

func TestResolveRainfall(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    float64
	}{
		{"1h wins", `{"rain": {"1h": 2.5, "3h": 6.0}}`, 2.5},
		{"3h fallback", `{"rain": {"3h": 1.0}}`, 1.0},
		{"empty rain object", `{"rain": {}}`, 0.0},
		{"no rain key", `{"main": {"temp": 10}}`, 0.0},
		{"zero 1h is still a reading", `{"rain": {"1h": 0, "3h": 4.0}}`, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMetric(nlu.MetricRainfall, decodeObservation(t, tt.payload))
			if got == nil || *got != tt.want {
				t.Fatalf("rainfall = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveUnknownMetric(t *testing.T) {
	obs := decodeObservation(t, `{"main": {"temp": 10}}`)

	if got := ResolveMetric(nlu.Metric("moisture"), obs); got != nil {
		t.Fatalf("expected nil for unknown metric, got %v", *got)
	}
}
