package weather

import (
	"context"
)

// Observation is the provider's current-conditions payload for one location.
// Only the fields the resolver consumes are decoded; pointer fields and the
// rain map distinguish absent data from zero values.
type Observation struct {
	Name string `json:"name"`
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
		Pressure *float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Rain map[string]float64 `json:"rain"`
}

// Gateway abstracts the external weather provider (e.g. OpenWeatherMap).
// Implementations perform exactly one synchronous request per call: no retry,
// no caching, no shared resilience state across calls.
type Gateway interface {
	Name() string
	Current(ctx context.Context, location string) (Observation, error)
}
