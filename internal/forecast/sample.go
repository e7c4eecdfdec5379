package forecast

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"econhub/internal/errors"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Forecast is a point forecast with Monte Carlo samples around it
type Forecast struct {
	Point []float64
	// Samples[i][h] is draw i for step h
	Samples [][]float64
}

// Predict returns the point forecast for steps values and samples normal
// draws around it, seeded so that equal inputs give equal output.
func (e *Engine) Predict(steps, samples int, seed uint64) (*Forecast, error) {
	point, err := e.PointForecast(steps)
	if err != nil {
		return nil, err
	}
	if samples <= 0 {
		return nil, errors.InvalidInput("samples must be positive")
	}

	noise := distuv.Normal{Mu: 0, Sigma: e.residualStd, Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
	draws := make([][]float64, samples)
	for i := range draws {
		row := make([]float64, steps)
		for h := range row {
			row[h] = point[h] + noise.Rand()
		}
		draws[i] = row
	}
	return &Forecast{Point: point, Samples: draws}, nil
}

// Steps returns the forecast horizon
func (f *Forecast) Steps() int {
	return len(f.Point)
}

// Interval returns the central interval holding level of the samples at step
func (f *Forecast) Interval(step int, level float64) (lo, hi float64, err error) {
	if step < 0 || step >= len(f.Point) {
		return 0, 0, errors.InvalidInput(fmt.Sprintf("step %d outside forecast horizon %d", step, len(f.Point)))
	}
	if !(level > 0 && level < 1) {
		return 0, 0, errors.InvalidInput("level must be between 0 and 1")
	}
	if len(f.Samples) == 0 {
		return f.Point[step], f.Point[step], nil
	}

	column := make([]float64, len(f.Samples))
	for i, row := range f.Samples {
		column[i] = row[step]
	}
	sort.Float64s(column)
	tail := (1 - level) / 2
	lo = stat.Quantile(tail, stat.Empirical, column, nil)
	hi = stat.Quantile(1-tail, stat.Empirical, column, nil)
	return lo, hi, nil
}

// Bands returns the lower and upper interval bound for every step
func (f *Forecast) Bands(level float64) (lower, upper []float64, err error) {
	lower = make([]float64, len(f.Point))
	upper = make([]float64, len(f.Point))
	for h := range f.Point {
		lower[h], upper[h], err = f.Interval(h, level)
		if err != nil {
			return nil, nil, err
		}
	}
	return lower, upper, nil
}

// Report summarizes the first forecast step with its 95% interval
func Report(query string, f *Forecast) (string, error) {
	if f == nil || len(f.Point) == 0 {
		return "", errors.InvalidInput("empty forecast")
	}
	lo, hi, err := f.Interval(0, 0.95)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Query: %s\nForecast next value: %.2f\n95%% confidence interval: [%.2f, %.2f]\n",
		query, f.Point[0], lo, hi), nil
}

// Synthetic returns the demo series 0.1*t + sin(2*pi*t/12) + N(0, 0.5)
func Synthetic(n int, seed uint64) []float64 {
	noise := distuv.Normal{Mu: 0, Sigma: 0.5, Src: rand.NewPCG(seed, seed)}
	out := make([]float64, n)
	for t := range out {
		x := float64(t)
		out[t] = 0.1*x + math.Sin(2*math.Pi*x/12) + noise.Rand()
	}
	return out
}
