package ports

import "context"

// SeriesReader loads a numeric time series for forecasting
type SeriesReader interface {
	// ReadSeries returns the values of column in file order
	ReadSeries(ctx context.Context, column string) ([]float64, error)
}
