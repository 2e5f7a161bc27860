package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/muhammadlatif13/movieapp/internal/queue"
	"github.com/muhammadlatif13/movieapp/internal/repository"
	queue_publisher "github.com/muhammadlatif13/movieapp/internal/service"
)

// ReviewStore is the persistence surface the review endpoints need.
type ReviewStore interface {
	Upsert(ctx context.Context, userID, movieID uint64, rating int, comment *string) error
	ListByMovie(ctx context.Context, movieID uint64) ([]repository.MovieReview, error)
	GetByUser(ctx context.Context, userID, movieID uint64) (repository.Review, error)
}

// ReviewHandler bundles dependencies for review endpoints.  PublishEvents
// controls whether submissions are echoed to the message broker.
type ReviewHandler struct {
	Store         ReviewStore
	PublishEvents bool
}

func NewReviewHandler(store ReviewStore, publishEvents bool) *ReviewHandler {
	return &ReviewHandler{Store: store, PublishEvents: publishEvents}
}

// ----- DTOs -----

type upsertReviewReq struct {
	UserID  uint64  `json:"user_id"`
	MovieID uint64  `json:"movie_id"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// Upsert creates a review or overwrites the caller's previous review of the
// same movie.  One atomic statement in the store keeps concurrent
// submissions last-writer-wins.
func (h *ReviewHandler) Upsert(c echo.Context) error {
	var req upsertReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.UserID == 0 || req.MovieID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing required fields: user_id, movie_id"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "rating must be between 1 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Upsert(ctx, req.UserID, req.MovieID, req.Rating, req.Comment); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}

	if h.PublishEvents {
		ev := queue.ReviewSubmittedEvent{
			UserID:      req.UserID,
			MovieID:     req.MovieID,
			Rating:      req.Rating,
			SubmittedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if req.Comment != nil {
			ev.Comment = *req.Comment
		}
		// Best effort: a broker outage must not fail the submission.
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pubCancel()
			_ = queue_publisher.PublishReviewSubmitted(pubCtx, ev)
		}()
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "review submitted successfully"})
}

// ListByMovie returns all reviews for a movie with usernames, newest first.
func (h *ReviewHandler) ListByMovie(c echo.Context) error {
	movieID, err := strconv.ParseUint(c.Param("movie_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid movie_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Store.ListByMovie(ctx, movieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, reviews)
}

// GetByUser returns the single review a user wrote for a movie.
func (h *ReviewHandler) GetByUser(c echo.Context) error {
	movieID, err := strconv.ParseUint(c.Param("movie_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid movie_id"})
	}
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	review, err := h.Store.GetByUser(ctx, userID, movieID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "review not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, review)
}
