package httpserver

import (
	"net/http"
	"time"

	"troupe-app-go/internal/config"
	"troupe-app-go/internal/transport/httpserver/handler"
	authmw "troupe-app-go/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, auth *authmw.SessionAuth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/meta", handlers.Meta)
		r.Post("/auth/login", handlers.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Post("/auth/logout", handlers.Logout)
			r.Get("/auth/me", handlers.Me)
			r.Post("/auth/pin", handlers.ChangePIN)

			r.Get("/users", handlers.ListUsers)
			r.Post("/users", handlers.CreateUser)
			r.Delete("/users/{id}", handlers.DeleteUser)
			r.Patch("/users/{id}/role", handlers.ChangeUserRole)
			r.Post("/users/{id}/reset-pin", handlers.ResetUserPIN)

			r.Get("/availability", handlers.ListAvailability)
			r.Put("/availability/{date}", handlers.SetAvailability)

			r.Get("/notifications", handlers.ListNotifications)
			r.Delete("/notifications", handlers.ClearNotifications)

			r.Get("/reports", handlers.Report)
			r.Get("/reports/export", handlers.ExportReport)
		})
	})

	return r
}
