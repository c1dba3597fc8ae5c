package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authDomain "github.com/paynote/paynote/internal/auth"
	"github.com/paynote/paynote/internal/http/auth"
	"github.com/paynote/paynote/internal/http/note"
	"github.com/paynote/paynote/internal/http/session"
	"github.com/paynote/paynote/internal/http/summary"
)

func New(
	authSvc *authDomain.Service,
	authV1 *auth.Handler,
	notesV1 *note.Handler,
	summaryV1 *summary.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)

			r.Group(func(r chi.Router) {
				r.Use(session.Middleware(authSvc))
				authV1.MeRoutes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(session.Middleware(authSvc))

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				notesV1.Routes(r)
			})

			r.Route("/people", notesV1.PersonRoutes)

			r.Route("/summary", summaryV1.Routes)
		})
	})

	return router
}
