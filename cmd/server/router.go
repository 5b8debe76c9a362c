package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/phrazzld/studysnap/internal/api"
	apiMiddleware "github.com/phrazzld/studysnap/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: app.config.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:         86400,
	}).Handler)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	generateHandler := api.NewGenerateHandler(app.generator, app.config.Server.MaxBodyBytes)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", generateHandler.Generate)
		r.Get("/health", api.Health)
	})

	return r
}
