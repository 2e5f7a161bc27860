package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/muhammadlatif13/movieapp/internal/handler"
	"github.com/muhammadlatif13/movieapp/internal/middleware"
)

// RegisterRoutes registers routes that do not belong to any resource group.
// Currently it exposes only a health check, which load balancers and
// monitoring systems use to verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the auth endpoints.  Register and login are open;
// /api/auth/me requires the access token issued at login and is guarded by
// the JWTAuth middleware with the provided secret.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.GET("/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterWatchlist registers the watchlist endpoints under /api/watchlist.
// The static /check route must be declared alongside the /:user_id param
// route; Echo resolves static segments first.
func RegisterWatchlist(e *echo.Echo, h *handler.WatchlistHandler) {
	g := e.Group("/api/watchlist")
	g.GET("/check", h.Check)
	g.GET("/:user_id", h.List)
	g.POST("/save", h.Save)
	g.DELETE("/remove", h.Remove)
}

// RegisterReviews registers the review endpoints under /api/reviews.
func RegisterReviews(e *echo.Echo, h *handler.ReviewHandler) {
	g := e.Group("/api/reviews")
	g.POST("", h.Upsert)
	g.GET("/movie/:movie_id", h.ListByMovie)
	g.GET("/movie/:movie_id/user/:user_id", h.GetByUser)
}

// RegisterTrending registers the trending search counter and latest-viewed
// endpoints.  The optional cache middleware is applied to the read routes;
// pass nil to skip caching.
func RegisterTrending(e *echo.Echo, h *handler.TrendingHandler, cache echo.MiddlewareFunc) {
	read := make([]echo.MiddlewareFunc, 0, 1)
	if cache != nil {
		read = append(read, cache)
	}

	g := e.Group("/api/trending")
	g.POST("/search", h.RecordSearch)
	g.GET("", h.Top, read...)

	m := e.Group("/api/movies/latest")
	m.POST("", h.TouchLatest)
	m.GET("", h.Latest, read...)
}
