// Package memory provides in-process implementations of the ports.
package memory

import (
	"context"

	"econhub/domain/story"
	"econhub/internal/errors"
)

// StoryCatalog is a read-only, in-memory story library. It is never
// modified after construction and is safe for concurrent use.
type StoryCatalog struct {
	order   []string
	stories map[string]story.Story
}

// NewStoryCatalog seeds a catalog with stories. Later duplicates of an id
// replace earlier ones but keep the first position.
func NewStoryCatalog(stories []story.Story) *StoryCatalog {
	c := &StoryCatalog{stories: make(map[string]story.Story, len(stories))}
	for _, s := range stories {
		if _, seen := c.stories[s.ID]; !seen {
			c.order = append(c.order, s.ID)
		}
		c.stories[s.ID] = s
	}
	return c
}

// List implements ports.StoryReader
func (c *StoryCatalog) List(ctx context.Context) ([]story.Story, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]story.Story, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.stories[id])
	}
	return out, nil
}

// Get implements ports.StoryReader
func (c *StoryCatalog) Get(ctx context.Context, id string) (story.Story, error) {
	if err := ctx.Err(); err != nil {
		return story.Story{}, err
	}
	s, ok := c.stories[id]
	if !ok {
		return story.Story{}, errors.NotFound("story")
	}
	return s, nil
}
