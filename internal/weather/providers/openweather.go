package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-intent-service/internal/weather"
)

// OpenWeatherGateway implements the weather.Gateway contract against the
// OpenWeatherMap current-conditions API.
type OpenWeatherGateway struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenWeatherGateway creates a gateway using the given client for outbound
// calls. The client's timeout bounds each request; an empty apiKey is
// accepted here and rejected per call.
func NewOpenWeatherGateway(client *http.Client, apiKey string) *OpenWeatherGateway {
	return &OpenWeatherGateway{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		client:  client,
	}
}

func (g *OpenWeatherGateway) Name() string {
	return g.name
}

// Current fetches current conditions for one location using metric units.
// Each call is a single independent attempt.
func (g *OpenWeatherGateway) Current(ctx context.Context, location string) (weather.Observation, error) {
	if g.apiKey == "" {
		return weather.Observation{}, weather.ErrNoCredentials
	}
	if location == "" {
		return weather.Observation{}, weather.ErrEmptyLocation
	}

	values := url.Values{}
	values.Set("q", location)
	values.Set("appid", g.apiKey)
	values.Set("units", "metric")

	u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
	log.Printf("INFO: calling OpenWeather API: %s q=%q", g.baseURL, location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return weather.Observation{}, err
	}

	resp, err := doRequest(g.client, req)
	if err != nil {
		return weather.Observation{}, err
	}
	defer resp.Body.Close()

	var obs weather.Observation
	if err := json.NewDecoder(resp.Body).Decode(&obs); err != nil {
		return weather.Observation{}, fmt.Errorf("decode provider response: %w", err)
	}

	return obs, nil
}
