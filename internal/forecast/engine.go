// Package forecast implements a small ensemble forecaster: a linear trend,
// a quartile Markov chain and an AR(1) residual correction, blended by their
// in-sample accuracy, with Monte Carlo uncertainty around the blend.
package forecast

import (
	"fmt"
	"math"

	"econhub/internal/errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// MinSeriesLength is the shortest series Fit accepts
const MinSeriesLength = 8

const (
	componentTrend = iota
	componentMarkov
	componentResidual
	componentCount
)

// Engine is fitted once and then used for any number of predictions.
// It is not safe for concurrent Fit calls.
type Engine struct {
	series []float64

	alpha, beta float64 // trend intercept and slope
	phi         float64 // AR(1) coefficient of the trend residuals
	lastResid   float64

	chain *markovChain

	weights     [componentCount]float64
	residualStd float64
	fitted      bool
}

// NewEngine creates an unfitted engine
func NewEngine() *Engine {
	return &Engine{}
}

// Fit estimates every component on series
func (e *Engine) Fit(series []float64) error {
	if len(series) < MinSeriesLength {
		return errors.InvalidInput("series needs at least 8 points")
	}
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.InvalidInput(fmt.Sprintf("series value at index %d is not finite", i))
		}
	}

	e.series = append(e.series[:0], series...)
	n := len(series)

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	e.alpha, e.beta = stat.LinearRegression(xs, series, nil, false)

	resid := make([]float64, n)
	for t, y := range series {
		resid[t] = y - e.trendAt(t)
	}
	e.phi = ar1(resid)
	e.lastResid = resid[n-1]

	chain, err := newMarkovChain(series)
	if err != nil {
		return errors.Wrap(err, "failed to fit markov chain")
	}
	e.chain = chain

	// One-step-ahead in-sample predictions of each component, t >= 1.
	fits := [componentCount][]float64{}
	for k := range fits {
		fits[k] = make([]float64, n-1)
	}
	for t := 1; t < n; t++ {
		trend := e.trendAt(t)
		fits[componentTrend][t-1] = trend
		fits[componentMarkov][t-1] = chain.mean[chain.next(chain.states[t-1])]
		fits[componentResidual][t-1] = trend + e.phi*resid[t-1]
	}

	actual := series[1:]
	var total float64
	for k := range fits {
		e.weights[k] = 1 / (mse(fits[k], actual) + 1e-12)
		total += e.weights[k]
	}
	for k := range e.weights {
		e.weights[k] /= total
	}

	blendResid := make([]float64, n-1)
	for i := range blendResid {
		var blend float64
		for k := range fits {
			blend += e.weights[k] * fits[k][i]
		}
		blendResid[i] = actual[i] - blend
	}
	std, err := stats.StandardDeviation(blendResid)
	if err != nil || std == 0 || math.IsNaN(std) {
		std = 1.0
	}
	e.residualStd = std
	e.fitted = true
	return nil
}

// Fitted reports whether Fit has succeeded
func (e *Engine) Fitted() bool {
	return e.fitted
}

// Weights returns the trend, markov and residual blend weights
func (e *Engine) Weights() [3]float64 {
	return e.weights
}

// ResidualStd returns the standard deviation used for sampling
func (e *Engine) ResidualStd() float64 {
	return e.residualStd
}

// PointForecast returns the blended forecast for the next steps values
func (e *Engine) PointForecast(steps int) ([]float64, error) {
	if !e.fitted {
		return nil, errors.ValidationError("forecast engine has not been fitted")
	}
	if steps <= 0 {
		return nil, errors.InvalidInput("steps must be positive")
	}

	n := len(e.series)
	out := make([]float64, steps)
	state := e.chain.states[n-1]
	decay := 1.0
	for h := 1; h <= steps; h++ {
		t := n - 1 + h
		trend := e.trendAt(t)
		state = e.chain.next(state)
		decay *= e.phi

		components := [componentCount]float64{
			componentTrend:    trend,
			componentMarkov:   e.chain.mean[state],
			componentResidual: trend + decay*e.lastResid,
		}
		for k, v := range components {
			out[h-1] += e.weights[k] * v
		}
	}
	return out, nil
}

func (e *Engine) trendAt(t int) float64 {
	return e.alpha + e.beta*float64(t)
}

// ar1 estimates phi in r[t] = phi * r[t-1], clamped to the stationary range
func ar1(r []float64) float64 {
	var num, den float64
	for t := 1; t < len(r); t++ {
		num += r[t] * r[t-1]
		den += r[t-1] * r[t-1]
	}
	if den == 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, num/den))
}

func mse(pred, actual []float64) float64 {
	var sum float64
	for i := range pred {
		d := actual[i] - pred[i]
		sum += d * d
	}
	return sum / float64(len(pred))
}
