package ui

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"econhub/app"
	"econhub/internal"
	"econhub/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates/*.html static
var embeddedFiles embed.FS

// App serves the HTML pages and the search API
type App struct {
	router       *chi.Mux
	templates    *template.Template
	summarizer   ports.Summarizer
	stories      ports.StoryReader
	worldviews   *app.WorldviewService
	publicOrigin string
	logger       *internal.Logger
}

// AppDeps holds the collaborators of the pages app
type AppDeps struct {
	Summarizer ports.Summarizer
	Stories    ports.StoryReader
	Worldviews *app.WorldviewService
	// PublicOrigin, when set, is used for share links instead of the
	// request's own origin.
	PublicOrigin string
	Logger       *internal.Logger
}

// NewApp creates the pages app
func NewApp(deps AppDeps) (*App, error) {
	logger := deps.Logger
	if logger == nil {
		logger = internal.NewNopLogger()
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:       chi.NewRouter(),
		templates:    templates,
		summarizer:   deps.Summarizer,
		stories:      deps.Stories,
		worldviews:   deps.Worldviews,
		publicOrigin: deps.PublicOrigin,
		logger:       logger,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.RealIP)
	a.router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logSink{a.logger},
		NoColor: true,
	}))
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Handle("/static/*", http.FileServer(http.FS(embeddedFiles)))

	a.router.Get("/", a.handleIndex)
	a.router.Get("/stories", a.handleStoryLibrary)
	a.router.Get("/my-stories", a.handleMyStories)
	a.router.Get("/story/{id}", a.handleStory)
	a.router.Get("/worldview", a.handleWorldview)

	// Every method reaches the handler so it can answer 405 itself.
	a.router.HandleFunc("/api/search", a.handleSearch)

	a.router.NotFound(a.handleNotFound)
}

// Handler exposes the router for tests and embedding
func (a *App) Handler() http.Handler {
	return a.router
}

// Run serves on addr until ctx is cancelled
func (a *App) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	return Serve(ctx, "ui", addr, a.router, shutdownTimeout, a.logger)
}

// renderTemplate renders into a buffer first so template errors never
// produce half-written pages.
func (a *App) renderTemplate(w http.ResponseWriter, status int, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		a.logger.Error("[UI] template %s failed: %v", templateName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		a.logger.Debug("[UI] writing %s response: %v", templateName, err)
	}
}

// logSink adapts Logger to chi's request logger
type logSink struct {
	logger *internal.Logger
}

func (s logSink) Print(v ...interface{}) {
	s.logger.Info("%s", fmt.Sprint(v...))
}
