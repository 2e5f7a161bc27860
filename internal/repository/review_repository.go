package repository

import (
	"context"
	"database/sql"
	"time"
)

// Review mirrors the 'reviews' table.  Logical identity is the pair
// (user_id, movie_id); the composite unique key guarantees at most one row
// per pair, which the upsert in Upsert relies on.
type Review struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	MovieID   uint64    `json:"movie_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// MovieReview is a review joined with the reviewing user's username, as
// rendered on a movie's detail screen.
type MovieReview struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewRepo provides persistence for movie reviews.
type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

// Upsert inserts a review or, when the (user_id, movie_id) pair already
// exists, overwrites rating and comment and refreshes created_at.  A single
// atomic statement keeps concurrent submissions from the same user
// last-writer-wins without an explicit transaction.
func (r *ReviewRepo) Upsert(ctx context.Context, userID, movieID uint64, rating int, comment *string) error {
	const q = `INSERT INTO reviews (user_id, movie_id, rating, comment)
		VALUES (?,?,?,?)
		ON DUPLICATE KEY UPDATE
			rating = VALUES(rating),
			comment = VALUES(comment),
			created_at = CURRENT_TIMESTAMP`
	_, err := r.DB.ExecContext(ctx, q, userID, movieID, rating, comment)
	return err
}

// ListByMovie returns all reviews for a movie joined with usernames, most
// recent first.
func (r *ReviewRepo) ListByMovie(ctx context.Context, movieID uint64) ([]MovieReview, error) {
	const q = `SELECT r.id, r.user_id, u.username, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.movie_id = ?
		ORDER BY r.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]MovieReview, 0)
	for rows.Next() {
		var mr MovieReview
		var comment sql.NullString
		if err := rows.Scan(&mr.ID, &mr.UserID, &mr.Username, &mr.Rating, &comment, &mr.CreatedAt); err != nil {
			return nil, err
		}
		if comment.Valid {
			c := comment.String
			mr.Comment = &c
		}
		reviews = append(reviews, mr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetByUser returns the single review for (user_id, movie_id), or
// ErrNotFound when the user never reviewed the movie.
func (r *ReviewRepo) GetByUser(ctx context.Context, userID, movieID uint64) (Review, error) {
	const q = `SELECT id, user_id, movie_id, rating, comment, created_at
		FROM reviews WHERE user_id = ? AND movie_id = ? LIMIT 1`
	var rv Review
	var comment sql.NullString
	err := r.DB.QueryRowContext(ctx, q, userID, movieID).Scan(
		&rv.ID, &rv.UserID, &rv.MovieID, &rv.Rating, &comment, &rv.CreatedAt)
	if err == sql.ErrNoRows {
		return Review{}, ErrNotFound
	}
	if err != nil {
		return Review{}, err
	}
	if comment.Valid {
		c := comment.String
		rv.Comment = &c
	}
	return rv, nil
}
