package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCannedSummarizer(t *testing.T) {
	s := NewCannedSummarizer(nil)

	got, err := s.Summarize(context.Background(), "labor markets")
	require.NoError(t, err)
	assert.Equal(t, `This is a simulated summary for your search query: "labor markets". Real GPT connection coming soon!`, got)

	got, err = s.Summarize(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, `This is a simulated summary for your search query: "". Real GPT connection coming soon!`, got)
}

func TestCannedSummarizerHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCannedSummarizer(nil).Summarize(ctx, "q")
	assert.ErrorIs(t, err, context.Canceled)
}
