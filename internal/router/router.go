package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-social-network/internal/config"
	"go-social-network/internal/handler"
	"go-social-network/internal/middleware"
)

type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Post         *handler.PostHandler
	Community    *handler.CommunityHandler
	Notification *handler.NotificationHandler
	Search       *handler.SearchHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", h.Health.Check)

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
		auth.Post("/refresh-token", h.Auth.Refresh)
		auth.Post("/logout", h.Auth.Logout)
	})

	r.With(authMiddleware.RequireAuth).Get("/users/me", h.User.Me)

	r.With(authMiddleware.RequireAuth).Post("/posts", h.Post.Create)
	r.Get("/posts", h.Post.List)
	r.With(authMiddleware.RequireAuth).Post("/posts/{post_id}/like", h.Post.Like)
	r.With(authMiddleware.RequireAuth).Post("/posts/{post_id}/comment", h.Post.Comment)

	r.With(authMiddleware.RequireAuth).Post("/communities", h.Community.Create)
	r.With(authMiddleware.RequireAuth).Post("/communities/{community_id}/join", h.Community.Join)
	r.Get("/communities", h.Community.List)

	r.With(authMiddleware.RequireAuth).Post("/notifications", h.Notification.Create)
	r.With(authMiddleware.RequireAuth).Get("/notifications", h.Notification.List)

	r.Get("/search/posts", h.Search.Posts)
	r.Get("/search/users", h.Search.Users)
	r.Get("/search/communities", h.Search.Communities)

	return r
}
