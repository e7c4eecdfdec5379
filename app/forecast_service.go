package app

import (
	"context"
	"fmt"

	"econhub/internal"
	"econhub/internal/config"
	"econhub/internal/errors"
	"econhub/internal/forecast"
)

// MaxForecastSteps bounds the horizon of a single request
const MaxForecastSteps = 365

// MaxForecastSamples bounds the Monte Carlo draws of a single request
const MaxForecastSamples = config.MaxForecastSamples

// demoSeriesLength and demoTrainLength shape the series used when the caller
// supplies none: the first 100 points of a 120 point synthetic series.
const (
	demoSeriesLength = 120
	demoTrainLength  = 100
)

// ForecastRequest describes one forecast. Zero values take the configured
// defaults; an empty Series uses the synthetic demo series.
type ForecastRequest struct {
	Query   string    `json:"query"`
	Series  []float64 `json:"series"`
	Steps   int       `json:"steps"`
	Samples int       `json:"samples"`
	Seed    *uint64   `json:"seed"`
}

// ForecastResult is the outcome of a forecast request
type ForecastResult struct {
	Query    string    `json:"query" yaml:"query"`
	Forecast []float64 `json:"forecast" yaml:"forecast"`
	Lower    []float64 `json:"lower" yaml:"lower"`
	Upper    []float64 `json:"upper" yaml:"upper"`
	Report   string    `json:"report" yaml:"report"`
	Demo     bool      `json:"demo" yaml:"demo"`
}

// ForecastService runs the predictive engine for API and CLI callers
type ForecastService struct {
	defaults config.ForecastConfig
	logger   *internal.Logger
}

// NewForecastService creates a forecast service
func NewForecastService(defaults config.ForecastConfig, logger *internal.Logger) *ForecastService {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &ForecastService{defaults: defaults, logger: logger}
}

// Run fits the engine on the request series and forecasts from it
func (s *ForecastService) Run(ctx context.Context, req ForecastRequest) (*ForecastResult, error) {
	steps := req.Steps
	if steps == 0 {
		steps = s.defaults.Steps
	}
	if steps < 1 || steps > MaxForecastSteps {
		return nil, errors.InvalidInput("steps must be between 1 and 365")
	}
	samples := req.Samples
	if samples == 0 {
		samples = s.defaults.Samples
	}
	if samples < 1 || samples > MaxForecastSamples {
		return nil, errors.InvalidInput(fmt.Sprintf("samples must be between 1 and %d", MaxForecastSamples))
	}
	seed := s.defaults.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}

	series := req.Series
	demo := len(series) == 0
	if demo {
		series = forecast.Synthetic(demoSeriesLength, seed)[:demoTrainLength]
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	engine := forecast.NewEngine()
	if err := engine.Fit(series); err != nil {
		return nil, errors.Wrap(err, "failed to fit forecast engine")
	}
	fc, err := engine.Predict(steps, samples, seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to forecast")
	}
	lower, upper, err := fc.Bands(0.95)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute confidence bands")
	}
	report, err := forecast.Report(req.Query, fc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build report")
	}

	w := engine.Weights()
	s.logger.Info("[Forecast] %d points, %d steps, weights trend=%.3f markov=%.3f residual=%.3f",
		len(series), steps, w[0], w[1], w[2])

	return &ForecastResult{
		Query:    req.Query,
		Forecast: fc.Point,
		Lower:    lower,
		Upper:    upper,
		Report:   report,
		Demo:     demo,
	}, nil
}
