package ui

import (
	"html/template"
	"net/http"
	"strings"

	"econhub/domain/share"
	"econhub/domain/story"
	"econhub/domain/worldview"
	"econhub/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

type pageData struct {
	Title string
}

type cardsPage struct {
	pageData
	Heading string
	Cards   []story.Card
}

type storyPage struct {
	pageData
	Card      story.Card
	Narrative []string
	Images    []string
}

type factorField struct {
	ID       string
	Name     string
	Options  []string
	Selected string
}

type worldviewPage struct {
	pageData
	Fields       []factorField
	Rendered     template.HTML
	Unrecognized []worldview.Issue
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, http.StatusOK, "index.html", pageData{Title: "EconHub"})
}

func (a *App) handleStoryLibrary(w http.ResponseWriter, r *http.Request) {
	a.renderCards(w, r, "Story Library", story.CardLibrary)
}

func (a *App) handleMyStories(w http.ResponseWriter, r *http.Request) {
	a.renderCards(w, r, "My Stories", story.CardMyStories)
}

func (a *App) renderCards(w http.ResponseWriter, r *http.Request, heading string, variant story.CardVariant) {
	stories, err := a.stories.List(r.Context())
	if err != nil {
		a.logger.Error("[UI] listing stories: %v", err)
		http.Error(w, "Failed to load stories", errors.HTTPStatus(err))
		return
	}
	a.renderTemplate(w, http.StatusOK, "stories.html", cardsPage{
		pageData: pageData{Title: heading},
		Heading:  heading,
		Cards:    story.NewCards(stories, variant, a.shareOrigin(r)),
	})
}

func (a *App) handleStory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s, err := a.stories.Get(r.Context(), id)
	if err != nil {
		if errors.GetCode(err) == errors.CodeNotFound {
			a.handleNotFound(w, r)
			return
		}
		a.logger.Error("[UI] loading story %q: %v", id, err)
		http.Error(w, "Failed to load story", http.StatusInternalServerError)
		return
	}

	card := story.NewCard(s, story.CardLibrary, a.shareOrigin(r))
	images := make([]string, 0, len(s.Images))
	for _, img := range s.Images {
		if img != "" {
			images = append(images, img)
		}
	}
	a.renderTemplate(w, http.StatusOK, "story.html", storyPage{
		pageData:  pageData{Title: card.Title},
		Card:      card,
		Narrative: s.Narrative,
		Images:    images,
	})
}

func (a *App) handleWorldview(w http.ResponseWriter, r *http.Request) {
	res := a.worldviews.Resolve(r.Context(), worldview.InputFromValues(r.URL.Query()))

	fields := make([]factorField, 0, len(res.Worldview))
	for _, d := range a.worldviews.Catalog() {
		selected := ""
		if fr, ok := res.Worldview.Lookup(d.ID); ok {
			selected = fr.Choice
		}
		fields = append(fields, factorField{ID: string(d.ID), Name: d.Name, Options: d.Options, Selected: selected})
	}

	a.renderTemplate(w, http.StatusOK, "worldview.html", worldviewPage{
		pageData:     pageData{Title: "Worldview"},
		Fields:       fields,
		Rendered:     renderMarkdown(res.Worldview.Markdown()),
		Unrecognized: res.Unrecognized,
	})
}

func (a *App) handleNotFound(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, http.StatusNotFound, "not_found.html", pageData{Title: "Not Found"})
}

// renderMarkdown converts trusted server-generated markdown to HTML. Raw
// HTML in the source is skipped.
func renderMarkdown(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.SkipHTML})
	return template.HTML(markdown.ToHTML([]byte(md), p, renderer))
}

// shareOrigin is the origin share links point at: the configured public
// origin, else the origin the request arrived on. X-Forwarded-Proto is only
// honoured when it names http or https.
func (a *App) shareOrigin(r *http.Request) share.Origin {
	if a.publicOrigin != "" {
		return share.OriginString(a.publicOrigin)
	}
	if r.Host == "" {
		return share.NoOrigin()
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	proto, _, _ := strings.Cut(r.Header.Get("X-Forwarded-Proto"), ",")
	switch proto = strings.ToLower(strings.TrimSpace(proto)); proto {
	case "http", "https":
		scheme = proto
	}
	return share.OriginHref(scheme + "://" + r.Host)
}
