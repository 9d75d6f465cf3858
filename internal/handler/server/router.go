package server

import (
	"net/http"

	"github.com/bagdasarian/matchmake/internal/handler"
	"github.com/bagdasarian/matchmake/internal/handler/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
)

type RouterDeps struct {
	Handler        *handler.Handler
	Auth           *middleware.Authenticator
	Clock          clockwork.Clock
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) http.Handler {
	h := deps.Handler
	auth := deps.Auth.Authenticate

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.AccessLog(deps.Clock))

	r.Get("/health", h.Health)

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", h.ListTeams)
		r.With(auth).Get("/me", h.GetMyTeam)
		r.Get("/{id}", h.GetTeam)
	})

	r.Route("/match-requests", func(r chi.Router) {
		r.Get("/opened", h.ListOpenMatchRequests)
		r.Get("/{id}", h.GetMatchRequest)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/", h.CreateMatchRequest)
			r.Get("/", h.ListMyMatchRequests)
			r.Get("/received", h.ListReceivedJoins)
			r.Put("/{id}", h.UpdateMatchRequest)
			r.Delete("/{id}", h.DeleteMatchRequest)
			r.Post("/{id}/join", h.JoinMatchRequest)
		})
	})

	r.Route("/challenges", func(r chi.Router) {
		r.Use(auth)
		r.Post("/", h.SendChallenge)
		r.Get("/sent", h.ListSentChallenges)
		r.Get("/received", h.ListReceivedChallenges)
		r.Get("/{id}", h.GetChallenge)
		r.Post("/{id}/accept", h.AcceptChallenge)
		r.Delete("/{id}/reject", h.RejectChallenge)
		r.Delete("/{id}", h.CancelChallenge)
	})

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", h.ListMatches)
		r.Get("/{id}", h.GetMatch)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/", h.CreateMatch)
			r.Get("/upcoming", h.ListUpcomingMatches)
			r.Put("/{id}", h.UpdateMatchStatus)
			r.Delete("/{id}", h.DeleteMatch)
		})
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	return c.Handler(r)
}
