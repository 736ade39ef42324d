package httpapi

import (
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/i474232898/weather-intent-service/internal/nlu"
	"github.com/i474232898/weather-intent-service/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	app.Post("/extract_metric", handleExtract)
	app.Get("/get_metric", handleGetMetric(service))
}

type extractRequest struct {
	Text string `json:"text"`
}

type extractResponse struct {
	Metrics  []string `json:"metrics"`
	RawText  string   `json:"raw_text"`
	Location *string  `json:"location"`
	Time     *string  `json:"time"`
}

func handleExtract(c *fiber.Ctx) error {
	var req extractRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	resp, err := runExtraction(req.Text)
	if err != nil {
		// Trace id correlates the response with the stack logged below.
		traceID := uuid.NewString()
		log.Printf("ERROR: extract_metric failed trace=%s: %v", traceID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
			"trace": traceID,
		})
	}

	return c.JSON(resp)
}

// runExtraction isolates the extractor behind a recover so an extraction bug
// surfaces as a 500 response instead of tearing down the process.
func runExtraction(text string) (resp extractResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: extraction panic: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("extraction failed: %v", r)
		}
	}()

	ex := nlu.Extract(text)

	metrics := make([]string, 0, len(ex.Metrics))
	for _, m := range ex.Metrics {
		metrics = append(metrics, string(m))
	}

	return extractResponse{
		Metrics:  metrics,
		RawText:  text,
		Location: ex.Location,
		Time:     ex.Time,
	}, nil
}

// metricQuery holds query parameters for the metric endpoint.
type metricQuery struct {
	Metric   string `validate:"required,oneof=temperature rainfall humidity wind_speed pressure"`
	Location string `validate:"required"`
}

func handleGetMetric(service *weather.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := metricQuery{
			Metric:   strings.ToLower(c.Query("metric")),
			Location: c.Query("location"),
		}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		results, failures, err := service.QueryMetric(c.UserContext(), q.Metric, q.Location)
		switch {
		case errors.Is(err, weather.ErrAllLocationsFailed):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"errors": failures,
			})
		case errors.Is(err, weather.ErrUnknownMetric),
			errors.Is(err, weather.ErrEmptyLocation),
			errors.Is(err, weather.ErrNoValidLocation):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "failed to resolve metric")
		}

		// Empty slices serialize as [] so partial success is always explicit.
		if results == nil {
			results = []weather.MetricResult{}
		}
		if failures == nil {
			failures = []weather.LocationError{}
		}
		return c.JSON(fiber.Map{
			"results": results,
			"errors":  failures,
		})
	}
}
