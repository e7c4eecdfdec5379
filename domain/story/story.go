// Package story holds generated stories and their card view models.
package story

import (
	"time"

	"econhub/domain/share"
)

// Story is a generated story as shown in the library
type Story struct {
	ID        string    `json:"id"`
	Premise   string    `json:"premise"`
	Created   time.Time `json:"created,omitempty"`
	Narrative []string  `json:"narrative,omitempty"`
	Images    []string  `json:"images,omitempty"`
	Audio     string    `json:"audio,omitempty"`
}

// CardVariant selects how much of the narrative a card previews
type CardVariant int

const (
	// CardMyStories previews two segments
	CardMyStories CardVariant = iota
	// CardLibrary previews three segments
	CardLibrary
)

// SegmentLimit returns the number of narrative segments the variant shows
func (v CardVariant) SegmentLimit() int {
	if v == CardLibrary {
		return 3
	}
	return 2
}

// UntitledPremise is shown for stories without a premise
const UntitledPremise = "Untitled Story"

// Card is the render-ready form of a Story
type Card struct {
	ID           string
	Title        string
	CreatedLabel string
	Segments     []string
	More         bool
	PreviewImage string
	Audio        string
	// ShareURL is empty when the story has no usable id; no share control
	// is rendered then.
	ShareURL string
}

// Shareable reports whether the card has a share link
func (c Card) Shareable() bool {
	return c.ShareURL != ""
}

// NewCard builds the card for s. Missing fields are simply left out.
func NewCard(s Story, variant CardVariant, origin share.Origin) Card {
	card := Card{
		ID:    s.ID,
		Title: s.Premise,
		Audio: s.Audio,
	}
	if card.Title == "" {
		card.Title = UntitledPremise
	}
	if !s.Created.IsZero() {
		card.CreatedLabel = s.Created.Format(time.DateTime)
	}

	limit := variant.SegmentLimit()
	if len(s.Narrative) > limit {
		card.Segments = append([]string(nil), s.Narrative[:limit]...)
		card.More = true
	} else {
		card.Segments = append([]string(nil), s.Narrative...)
	}

	if len(s.Images) > 0 && s.Images[0] != "" {
		card.PreviewImage = s.Images[0]
	}

	id := share.IDString(s.ID)
	if !id.IsBlank() {
		card.ShareURL = share.BuildURL(origin, id)
	}
	return card
}

// NewCards builds cards for every story in order
func NewCards(stories []Story, variant CardVariant, origin share.Origin) []Card {
	cards := make([]Card, 0, len(stories))
	for _, s := range stories {
		cards = append(cards, NewCard(s, variant, origin))
	}
	return cards
}
