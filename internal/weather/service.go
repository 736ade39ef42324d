package weather

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/i474232898/weather-intent-service/internal/nlu"
)

// Service drives the split -> sanitize -> fetch -> resolve pipeline for a
// metric query.
type Service struct {
	gateway Gateway
}

// NewService creates a new Service.
func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// QueryMetric resolves the metric for every location candidate found in the
// raw location string. Candidates are fetched concurrently; each failure
// lands in the returned error list and never aborts the other candidates.
// The returned error is non-nil only for precondition violations
// (ErrUnknownMetric, ErrEmptyLocation, ErrNoValidLocation) or when every
// candidate failed (ErrAllLocationsFailed, with the error list populated).
func (s *Service) QueryMetric(ctx context.Context, metric, rawLocation string) ([]MetricResult, []LocationError, error) {
	m, ok := nlu.ParseMetric(metric)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	if strings.TrimSpace(rawLocation) == "" {
		return nil, nil, ErrEmptyLocation
	}

	var candidates []string
	for _, part := range nlu.SplitLocations(rawLocation) {
		if clean, cleanOK := nlu.SanitizeLocation(part); cleanOK {
			candidates = append(candidates, clean)
		}
	}
	if len(candidates) == 0 {
		return nil, nil, ErrNoValidLocation
	}

	log.Printf("INFO: metric query: metric=%s candidates=%d raw=%q", m, len(candidates), rawLocation)

	// Indexed collection keeps result/error order aligned with the input
	// candidate order regardless of goroutine scheduling.
	type outcome struct {
		result *MetricResult
		fail   *LocationError
	}
	outcomes := make([]outcome, len(candidates))

	var wg sync.WaitGroup
	for i, loc := range candidates {
		wg.Add(1)
		go func(i int, loc string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					outcomes[i] = outcome{fail: &LocationError{
						Location: loc,
						Error:    fmt.Sprintf("internal error: %v", r),
					}}
				}
			}()

			obs, err := s.gateway.Current(ctx, loc)
			if err != nil {
				outcomes[i] = outcome{fail: &LocationError{Location: loc, Error: err.Error()}}
				return
			}

			outcomes[i] = outcome{result: &MetricResult{
				Metric:   m,
				Location: loc,
				Value:    ResolveMetric(m, obs),
				Units:    UnitsLabel,
				Provider: s.gateway.Name(),
			}}
		}(i, loc)
	}
	wg.Wait()

	var results []MetricResult
	var failures []LocationError
	for _, o := range outcomes {
		switch {
		case o.result != nil:
			results = append(results, *o.result)
		case o.fail != nil:
			failures = append(failures, *o.fail)
		}
	}

	if len(results) == 0 && len(failures) > 0 {
		return nil, failures, ErrAllLocationsFailed
	}
	return results, failures, nil
}
