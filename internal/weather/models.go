package weather

import (
	"github.com/i474232898/weather-intent-service/internal/nlu"
)

// UnitsLabel is attached to every result row; values use the provider's
// metric unit system.
const UnitsLabel = "metric (see provider)"

// MetricResult is one successfully resolved (metric, location) pair. Value is
// nil when the provider responded but did not report the requested field.
type MetricResult struct {
	Metric   nlu.Metric `json:"metric"`
	Location string     `json:"location"`
	Value    *float64   `json:"value"`
	Units    string     `json:"units"`
	Provider string     `json:"provider"`
}

// LocationError reports why a single location candidate could not be
// resolved. One entry exists for every candidate without a MetricResult.
type LocationError struct {
	Location string `json:"location"`
	Error    string `json:"error"`
}
