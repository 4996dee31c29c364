// Package ui serves a small read-only dashboard for browsing the
// question bank.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"

	"skillprep/domain/bank"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router    *chi.Mux
	bank      *bank.Bank
	templates *template.Template
	port      string
}

// Config holds dashboard configuration
type Config struct {
	Port string
}

// Display labels for the closed role/category sets.
var roleLabels = map[string]string{
	"software-developer": "Software Developer",
	"tech-lead":          "Tech Lead",
	"architect":          "Solution Architect",
	"principal":          "Principal Engineer",
}

var categoryLabels = map[string]string{
	"communication":       "Communication",
	"collaboration":       "Collaboration",
	"leadership":          "Leadership",
	"problem-solving":     "Problem Solving",
	"technical-mentoring": "Technical Mentoring",
}

// NewApp creates the dashboard over the given question bank.
func NewApp(cfg Config, b *bank.Bank) (*App, error) {
	funcMap := template.FuncMap{
		"roleLabel": func(s string) string {
			if label, ok := roleLabels[s]; ok {
				return label
			}
			return s
		},
		"categoryLabel": func(s string) string {
			if label, ok := categoryLabels[s]; ok {
				return label
			}
			return s
		},
		"renderMarkdown": func(s string) template.HTML {
			return template.HTML(markdown.ToHTML([]byte(s), nil, nil))
		},
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		bank:      b,
		templates: templates,
		port:      cfg.Port,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/questions/{id}", a.handleQuestionDetail)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	log.Printf("Starting question bank dashboard on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the chi mux for tests.
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
