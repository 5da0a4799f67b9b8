package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/linkstash/linkstash-go/internal/metrics"
	"github.com/linkstash/linkstash-go/internal/middleware"
)

// RouterConfig carries the wired dependencies for the HTTP surface.
type RouterConfig struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Bookmarks *BookmarkHandler

	JWTSecret  string
	UserFinder middleware.UserFinder

	Logger    *slog.Logger
	Collector *metrics.Collector
}

// NewRouter builds the full route tree: public auth routes and guarded
// user/bookmark routes, plus health and metrics endpoints.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	if cfg.Logger != nil {
		r.Use(middleware.Logger(cfg.Logger))
	}
	if cfg.Collector != nil {
		r.Use(cfg.Collector.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if cfg.Collector != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Collector.Handler())
	}

	r.Post("/auth/signup", cfg.Auth.HandleSignup)
	r.Post("/auth/signin", cfg.Auth.HandleSignin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret, cfg.UserFinder))

		r.Get("/users/me", cfg.Users.HandleMe)
		r.Patch("/users", cfg.Users.HandleEdit)

		r.Get("/bookmarks", cfg.Bookmarks.HandleIndex)
		r.Get("/bookmarks/{id}", cfg.Bookmarks.HandleView)
		r.Post("/bookmarks", cfg.Bookmarks.HandleStore)
	})

	return r
}
