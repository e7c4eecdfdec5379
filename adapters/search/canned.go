// Package search provides Summarizer implementations.
package search

import (
	"context"
	"fmt"

	"econhub/internal"
)

// CannedSummarizer answers every query with a fixed simulated summary until
// a real language model is connected.
type CannedSummarizer struct {
	logger *internal.Logger
}

// NewCannedSummarizer creates a canned summarizer
func NewCannedSummarizer(logger *internal.Logger) *CannedSummarizer {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &CannedSummarizer{logger: logger}
}

// Summarize implements ports.Summarizer
func (s *CannedSummarizer) Summarize(ctx context.Context, query string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.logger.Debug("[CannedSummarizer] summarizing query of %d bytes", len(query))
	return fmt.Sprintf("This is a simulated summary for your search query: \"%s\". Real GPT connection coming soon!", query), nil
}
