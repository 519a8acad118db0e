package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"esgchat/app"
	"esgchat/internal"
	"esgchat/ports"
)

// App is the HTTP surface: thin adapters over the chat and store
// operations, no logic beyond the read-only guard.
type App struct {
	router *chi.Mux
	chat   *app.ChatService
	store  ports.Store
	log    *internal.Logger
}

// NewApp creates the HTTP application.
func NewApp(chat *app.ChatService, store ports.Store, logger *internal.Logger) *App {
	if logger == nil {
		logger = internal.DefaultLogger
	}

	a := &App{
		router: chi.NewRouter(),
		chat:   chat,
		store:  store,
		log:    logger.Named("http"),
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// Router returns the configured handler.
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

func (a *App) setupRoutes() {
	a.router.Get("/", a.handleDocs)

	a.router.Route("/api", func(r chi.Router) {
		r.Post("/chat", a.handleChat)
		r.Get("/suggestions", a.handleSuggestions)
		r.Get("/database/info", a.handleDatabaseInfo)
		r.Get("/database/table/{name}", a.handleTableInfo)
		r.Post("/database/query", a.handleCustomQuery)
		r.Get("/export/{format}", a.handleExport)
	})
}
