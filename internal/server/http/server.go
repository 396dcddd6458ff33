// Package httpserver exposes the Frame REST API.
package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/framehq/frame-api/internal/repository"
	"github.com/framehq/frame-api/internal/service"
	"github.com/framehq/frame-api/internal/token"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth    service.AuthService
	movies  service.MovieService
	users   repository.UserRepository
	tokens  *token.Service
	log     *zap.Logger
	version string
}

// New constructs the HTTP server with injected services.
func New(auth service.AuthService, movies service.MovieService, users repository.UserRepository,
	tokens *token.Service, log *zap.Logger, version string) *Server {
	return &Server{auth: auth, movies: movies, users: users, tokens: tokens, log: log, version: version}
}

// Router builds the route tree with the shared middleware chain.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.recoverer)
	r.Use(s.logging)

	r.Get("/", s.handleRoot)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Get("/movies", s.handleListMovies)
		r.Get("/movies/{id}", s.handleGetMovie)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Post("/movies", s.handleCreateMovie)
		})
	})

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Frame API is running",
		"version": s.version,
	})
}
