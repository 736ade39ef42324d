package weather

import (
	"github.com/i474232898/weather-intent-service/internal/nlu"
)

// ResolveMetric maps a requested metric onto the provider payload. A nil
// return means the provider did not report the field. Rainfall never resolves
// to nil: a missing rain object means no rain fell.
func ResolveMetric(metric nlu.Metric, obs Observation) *float64 {
	switch metric {
	case nlu.MetricTemperature:
		return obs.Main.Temp
	case nlu.MetricHumidity:
		return obs.Main.Humidity
	case nlu.MetricPressure:
		return obs.Main.Pressure
	case nlu.MetricWindSpeed:
		return obs.Wind.Speed
	case nlu.MetricRainfall:
		// The 1h reading wins over 3h when both are present.
		if v, ok := obs.Rain["1h"]; ok {
			return &v
		}
		if v, ok := obs.Rain["3h"]; ok {
			return &v
		}
		zero := 0.0
		return &zero
	default:
		return nil
	}
}
