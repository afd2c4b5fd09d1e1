package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ashchan-dev/ashchan/internal/middleware"
	"github.com/ashchan-dev/ashchan/internal/middleware/metrics"
	"github.com/ashchan-dev/ashchan/internal/setup"
)

// New wires all routes. Every content mutation and every read beyond
// registration/login requires a verified bearer token; role checks
// live in the services.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/ready", h.Ready)

		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.Auth))

			r.Get("/boards", h.GetBoards)
			r.Post("/boards", h.CreateBoard)
			r.Get("/boards/search", h.SearchBoards)
			r.Get("/boards/{board}", h.GetBoard)
			r.Get("/boards/{board}/threads", h.GetBoardThreads)

			r.Post("/threads", h.CreateThread)
			r.Get("/threads/{thread}", h.GetThread)
			r.Delete("/threads/{thread}", h.DeleteThread)
			r.Get("/threads/{thread}/posts", h.GetThreadPosts)
			r.Post("/threads/{thread}/posts", h.CreateThreadPost)

			r.Get("/posts/{post}", h.GetThreadPost)
			r.Delete("/posts/{post}", h.DeleteThreadPost)

			r.Get("/search", h.Search)
			r.Get("/logs", h.GetLogs)

			r.Get("/users/{id}", h.GetUser)
			r.Put("/users/{id}/type", h.ChangeUserType)
			r.Put("/users/{id}/status", h.ChangeUserStatus)
		})
	})

	return r
}
