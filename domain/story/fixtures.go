package story

import "time"

// DemoStories returns the stories the in-memory catalog is seeded with.
// They cover the full, minimal, empty, partial and all-missing shapes.
func DemoStories(now time.Time) []Story {
	return []Story{
		{
			ID:        "test-1",
			Premise:   "Test premise",
			Created:   now,
			Narrative: []string{"A", "B", "C"},
			Images:    []string{},
		},
		{
			ID:        "test-2",
			Premise:   "Full test premise",
			Created:   now,
			Narrative: []string{"Segment 1", "Segment 2", "Segment 3", "Segment 4"},
			Images:    []string{"https://picsum.photos/seed/1/400/250"},
			Audio:     "https://example.com/fake-audio.mp3",
		},
		{
			ID:        "test-3",
			Narrative: []string{},
			Images:    []string{},
		},
		{
			ID:        "test-4",
			Premise:   "Partial test",
			Created:   now,
			Narrative: []string{"Only one segment"},
			Images:    []string{""},
		},
		{
			ID: "test-5",
		},
	}
}
