package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/muhammadlatif13/movieapp/internal/config"
	"github.com/muhammadlatif13/movieapp/internal/repository"
)

// posterBaseURL is the image CDN prefix the mobile client renders posters
// from; stored search hits keep the full URL so the trending list needs no
// catalog lookup.
const posterBaseURL = "https://image.tmdb.org/t/p/w500"

// TrendingStore is the document-store surface behind the trending and
// latest-viewed endpoints.  A nil store means Redis was unavailable at
// startup and the endpoints answer 503.
type TrendingStore interface {
	IncrementSearch(ctx context.Context, term string, movieID uint64, title, posterURL string) error
	TopSearches(ctx context.Context, n int) ([]repository.TrendingMovie, error)
	TouchLatest(ctx context.Context, movieID uint64, title, posterPath string) error
	ListLatest(ctx context.Context, n int) ([]repository.LatestMovie, error)
}

// TrendingHandler bundles dependencies for trending/latest endpoints.
type TrendingHandler struct {
	Cfg   config.Config
	Store TrendingStore
}

func NewTrendingHandler(cfg config.Config, store TrendingStore) *TrendingHandler {
	return &TrendingHandler{Cfg: cfg, Store: store}
}

// ----- DTOs -----

type recordSearchReq struct {
	SearchTerm string `json:"search_term"`
	MovieID    uint64 `json:"movie_id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

type touchLatestReq struct {
	MovieID    uint64 `json:"movie_id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

// RecordSearch increments the counter for a search term and stores the top
// hit's metadata.
func (h *TrendingHandler) RecordSearch(c echo.Context) error {
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "trending is unavailable"})
	}
	var req recordSearchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.SearchTerm = strings.TrimSpace(req.SearchTerm)
	req.Title = strings.TrimSpace(req.Title)
	if req.SearchTerm == "" || req.MovieID == 0 || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing required fields: search_term, movie_id, title"})
	}
	posterURL := ""
	if req.PosterPath != "" {
		posterURL = posterBaseURL + req.PosterPath
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.IncrementSearch(ctx, req.SearchTerm, req.MovieID, req.Title, posterURL); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "search recorded"})
}

// Top returns the most searched terms, highest count first.
func (h *TrendingHandler) Top(c echo.Context) error {
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "trending is unavailable"})
	}
	limit := h.Cfg.TrendingLimit
	if s := c.QueryParam("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	top, err := h.Store.TopSearches(ctx, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, top)
}

// TouchLatest records a movie view: inserts it into the recently-viewed
// list or refreshes its timestamp.
func (h *TrendingHandler) TouchLatest(c echo.Context) error {
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "latest movies are unavailable"})
	}
	var req touchLatestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.MovieID == 0 || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing required fields: movie_id, title"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.TouchLatest(ctx, req.MovieID, req.Title, req.PosterPath); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "latest movies updated"})
}

// Latest returns the recently-viewed movies, newest first.
func (h *TrendingHandler) Latest(c echo.Context) error {
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "latest movies are unavailable"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	latest, err := h.Store.ListLatest(ctx, h.Cfg.LatestLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, latest)
}
