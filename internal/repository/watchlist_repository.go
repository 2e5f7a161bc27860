package repository

import (
	"context"
	"database/sql"
	"time"
)

// WatchlistEntry mirrors the 'watchlist' table.  Identity is the pair
// (user_id, movie_id), enforced by a composite unique key.  The movie
// metadata columns are denormalized copies of what the catalog API returned
// at save time so the list screen renders without further lookups.
type WatchlistEntry struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	MovieID     uint64    `json:"movie_id"`
	Title       string    `json:"title"`
	PosterPath  *string   `json:"poster_path"`
	VoteAverage *float64  `json:"vote_average"`
	ReleaseDate *string   `json:"release_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// WatchlistRepo provides persistence for a user's saved movies.
type WatchlistRepo struct{ DB *sql.DB }

func NewWatchlistRepo(db *sql.DB) *WatchlistRepo { return &WatchlistRepo{DB: db} }

// Save inserts a watchlist entry or, when the (user_id, movie_id) pair is
// already saved, refreshes its metadata and created_at.  Re-saving therefore
// bumps the entry to the top of the list instead of creating a duplicate
// row.  The LAST_INSERT_ID(id) assignment makes MySQL report the existing
// row id on the update path, so the returned id is stable across re-saves.
func (r *WatchlistRepo) Save(ctx context.Context, e WatchlistEntry) (uint64, error) {
	const q = `INSERT INTO watchlist (user_id, movie_id, title, poster_path, vote_average, release_date)
		VALUES (?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			id = LAST_INSERT_ID(id),
			title = VALUES(title),
			poster_path = VALUES(poster_path),
			vote_average = VALUES(vote_average),
			release_date = VALUES(release_date),
			created_at = CURRENT_TIMESTAMP`
	res, err := r.DB.ExecContext(ctx, q,
		e.UserID, e.MovieID, e.Title, e.PosterPath, e.VoteAverage, e.ReleaseDate)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByUser returns all watchlist entries for the user, most recently
// saved first.  An empty slice is returned when the user saved nothing.
func (r *WatchlistRepo) ListByUser(ctx context.Context, userID uint64) ([]WatchlistEntry, error) {
	const q = `SELECT id, user_id, movie_id, title, poster_path, vote_average, release_date, created_at
		FROM watchlist WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]WatchlistEntry, 0)
	for rows.Next() {
		var e WatchlistEntry
		var poster, release sql.NullString
		var vote sql.NullFloat64
		if err := rows.Scan(&e.ID, &e.UserID, &e.MovieID, &e.Title, &poster, &vote, &release, &e.CreatedAt); err != nil {
			return nil, err
		}
		if poster.Valid {
			p := poster.String
			e.PosterPath = &p
		}
		if vote.Valid {
			v := vote.Float64
			e.VoteAverage = &v
		}
		if release.Valid {
			d := release.String
			e.ReleaseDate = &d
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Exists reports whether the movie is on the user's watchlist.
func (r *WatchlistRepo) Exists(ctx context.Context, userID, movieID uint64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM watchlist WHERE user_id = ? AND movie_id = ? LIMIT 1",
		userID, movieID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the entry for (user_id, movie_id).  Returns ErrNotFound
// when the movie was not on the watchlist.
func (r *WatchlistRepo) Remove(ctx context.Context, userID, movieID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM watchlist WHERE user_id = ? AND movie_id = ?",
		userID, movieID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
