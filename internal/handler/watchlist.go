package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/muhammadlatif13/movieapp/internal/repository"
)

// WatchlistStore is the persistence surface the watchlist endpoints need.
type WatchlistStore interface {
	Save(ctx context.Context, e repository.WatchlistEntry) (uint64, error)
	ListByUser(ctx context.Context, userID uint64) ([]repository.WatchlistEntry, error)
	Exists(ctx context.Context, userID, movieID uint64) (bool, error)
	Remove(ctx context.Context, userID, movieID uint64) error
}

// WatchlistHandler bundles dependencies for watchlist endpoints.
type WatchlistHandler struct {
	Store WatchlistStore
}

func NewWatchlistHandler(store WatchlistStore) *WatchlistHandler {
	return &WatchlistHandler{Store: store}
}

// ----- DTOs -----

type saveMovieReq struct {
	UserID      uint64   `json:"user_id"`
	MovieID     uint64   `json:"movie_id"`
	Title       string   `json:"title"`
	PosterPath  *string  `json:"poster_path"`
	VoteAverage *float64 `json:"vote_average"`
	ReleaseDate *string  `json:"release_date"`
}

type watchlistKeyReq struct {
	UserID  uint64 `json:"user_id"`
	MovieID uint64 `json:"movie_id"`
}

// Save adds a movie to the user's watchlist.  Re-saving the same movie
// refreshes the entry instead of duplicating it.
func (h *WatchlistHandler) Save(c echo.Context) error {
	var req saveMovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.UserID == 0 || req.MovieID == 0 || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing required fields: user_id, movie_id, title"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Store.Save(ctx, repository.WatchlistEntry{
		UserID:      req.UserID,
		MovieID:     req.MovieID,
		Title:       req.Title,
		PosterPath:  req.PosterPath,
		VoteAverage: req.VoteAverage,
		ReleaseDate: req.ReleaseDate,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "movie saved to watchlist",
		"id":      id,
	})
}

// List returns the user's watchlist, most recently saved first.
func (h *WatchlistHandler) List(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entries, err := h.Store.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}

// Check reports whether a movie is saved on the user's watchlist.
func (h *WatchlistHandler) Check(c echo.Context) error {
	userStr := c.QueryParam("user_id")
	movieStr := c.QueryParam("movie_id")
	if userStr == "" || movieStr == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing required query parameters: user_id, movie_id"})
	}
	userID, err := strconv.ParseUint(userStr, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user_id"})
	}
	movieID, err := strconv.ParseUint(movieStr, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid movie_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	saved, err := h.Store.Exists(ctx, userID, movieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"saved": saved})
}

// Remove deletes a movie from the user's watchlist.
func (h *WatchlistHandler) Remove(c echo.Context) error {
	var req watchlistKeyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.UserID == 0 || req.MovieID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing required fields: user_id, movie_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Remove(ctx, req.UserID, req.MovieID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found in watchlist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "movie removed from watchlist"})
}
