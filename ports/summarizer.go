package ports

import "context"

// Summarizer turns a research query into a short summary
type Summarizer interface {
	// Summarize returns the summary for query. An empty query is allowed.
	Summarize(ctx context.Context, query string) (string, error)
}
