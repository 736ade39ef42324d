package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/i474232898/weather-intent-service/internal/weather"
)

type stubGateway struct {
	fn func(location string) (weather.Observation, error)
}

func (s *stubGateway) Name() string { return "openweathermap" }

func (s *stubGateway) Current(_ context.Context, location string) (weather.Observation, error) {
	return s.fn(location)
}

func newTestApp(gw weather.Gateway) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, weather.NewService(gw))
	return app
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func TestGetMetricValidation(t *testing.T) {
	app := newTestApp(&stubGateway{fn: func(string) (weather.Observation, error) {
		t.Error("gateway must not be called for invalid requests")
		return weather.Observation{}, nil
	}})

	// Unknown metric should return 400.
	req := httptest.NewRequest(http.MethodGet, "/get_metric?metric=moisture&location=Paris", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// Missing location should also return 400.
	req = httptest.NewRequest(http.MethodGet, "/get_metric?metric=temperature", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// A location that sanitizes to nothing should return 400 as well.
	req = httptest.NewRequest(http.MethodGet, "/get_metric?metric=temperature&location=%28today%29", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestGetMetricPartialSuccess(t *testing.T) {
	app := newTestApp(&stubGateway{fn: func(location string) (weather.Observation, error) {
		if location == "Paris" {
			var obs weather.Observation
			temp := 18.5
			obs.Main.Temp = &temp
			return obs, nil
		}
		return weather.Observation{}, &weather.ProviderError{
			StatusCode: 404, Status: "Not Found", Body: "city not found",
		}
	}})

	req := httptest.NewRequest(http.MethodGet, "/get_metric?metric=temperature&location=Paris+and+Nowhereville123", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body struct {
		Results []weather.MetricResult  `json:"results"`
		Errors  []weather.LocationError `json:"errors"`
	}
	decodeBody(t, resp, &body)

	if len(body.Results) != 1 || body.Results[0].Location != "Paris" {
		t.Fatalf("expected one Paris result, got %+v", body.Results)
	}
	if len(body.Errors) != 1 || body.Errors[0].Location != "Nowhereville123" {
		t.Fatalf("expected one Nowhereville123 error, got %+v", body.Errors)
	}
}

func TestGetMetricAllFailedIsBadGateway(t *testing.T) {
	app := newTestApp(&stubGateway{fn: func(string) (weather.Observation, error) {
		return weather.Observation{}, weather.ErrNoCredentials
	}})

	req := httptest.NewRequest(http.MethodGet, "/get_metric?metric=humidity&location=Paris,Tokyo", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, resp.StatusCode)
	}

	var body struct {
		Errors []weather.LocationError `json:"errors"`
	}
	decodeBody(t, resp, &body)
	if len(body.Errors) != 2 {
		t.Fatalf("expected one error per candidate, got %+v", body.Errors)
	}
}

func TestExtractMetricEndpoint(t *testing.T) {
	app := newTestApp(&stubGateway{fn: func(string) (weather.Observation, error) {
		return weather.Observation{}, nil
	}})

	req := httptest.NewRequest(http.MethodPost, "/extract_metric",
		strings.NewReader(`{"text": "How much rain in Berlin next week"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body extractResponse
	decodeBody(t, resp, &body)

	if diff := cmp.Diff([]string{"rainfall"}, body.Metrics); diff != "" {
		t.Fatalf("metrics mismatch (-want +got):\n%s", diff)
	}
	if body.RawText != "How much rain in Berlin next week" {
		t.Fatalf("raw_text mismatch: %q", body.RawText)
	}
	if body.Location == nil || *body.Location != "Berlin next week" {
		t.Fatalf("expected location %q, got %v", "Berlin next week", body.Location)
	}
	if body.Time == nil || *body.Time != "next week" {
		t.Fatalf("expected time %q, got %v", "next week", body.Time)
	}
}

func TestExtractMetricEmptyText(t *testing.T) {
	app := newTestApp(&stubGateway{fn: func(string) (weather.Observation, error) {
		return weather.Observation{}, nil
	}})

	req := httptest.NewRequest(http.MethodPost, "/extract_metric", strings.NewReader(`{"text": ""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body extractResponse
	decodeBody(t, resp, &body)
	if len(body.Metrics) != 0 || body.Location != nil || body.Time != nil {
		t.Fatalf("expected empty extraction, got %+v", body)
	}
}
