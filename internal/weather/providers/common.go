package providers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/i474232898/weather-intent-service/internal/weather"
)

var errNoHTTPClient = errors.New("http client not configured")

// maxErrorBody caps how much of an upstream error body is preserved in a
// ProviderError.
const maxErrorBody = 4 << 10

// doRequest executes the request and converts any non-2xx response into a
// *weather.ProviderError carrying the upstream status and body text. The
// caller owns the response body on success.
func doRequest(client *http.Client, req *http.Request) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &weather.ProviderError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return resp, nil
}
