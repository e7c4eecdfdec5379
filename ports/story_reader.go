package ports

import (
	"context"

	"econhub/domain/story"
)

// StoryReader provides read access to the story library
type StoryReader interface {
	// List returns every story in library order
	List(ctx context.Context) ([]story.Story, error)

	// Get returns the story with the given id, or a NOT_FOUND error
	Get(ctx context.Context, id string) (story.Story, error)
}
