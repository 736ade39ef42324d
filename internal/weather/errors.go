package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCredentials is returned when no provider API key is configured.
	ErrNoCredentials = errors.New("provider API key is missing; set OWM_API_KEY (or OWA) in environment")

	// ErrEmptyLocation is returned for a blank location before any network call.
	ErrEmptyLocation = errors.New("location is empty")

	// ErrUnknownMetric is returned for identifiers outside the closed metric set.
	ErrUnknownMetric = errors.New("metric not supported")

	// ErrNoValidLocation is returned when no candidate survives sanitization.
	ErrNoValidLocation = errors.New("no valid location found after parsing/sanitization")

	// ErrAllLocationsFailed is returned when every candidate produced an error.
	ErrAllLocationsFailed = errors.New("all locations failed")
)

// ProviderError carries the upstream status and response body of a failed
// provider call, preserved for diagnostics.
type ProviderError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Status, e.Body)
}
