package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestWatchlistSaveUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// Re-saving must go through the upsert path so duplicates are impossible
	// and the row id stays stable.
	mock.ExpectExec(`(?s)INSERT INTO watchlist.*ON DUPLICATE KEY UPDATE.*id = LAST_INSERT_ID\(id\).*created_at = CURRENT_TIMESTAMP`).
		WithArgs(uint64(1), uint64(42), "Dune", nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := NewWatchlistRepo(db)
	id, err := repo.Save(context.Background(), WatchlistEntry{UserID: 1, MovieID: 42, Title: "Dune"})
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWatchlistListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "movie_id", "title", "poster_path", "vote_average", "release_date", "created_at"}).
		AddRow(4, 1, 99, "Alien", "/alien.jpg", 8.5, "1979-05-25", now).
		AddRow(3, 1, 42, "Dune", nil, nil, nil, now.Add(-time.Hour))
	mock.ExpectQuery(`(?s)SELECT .* FROM watchlist WHERE user_id = \? ORDER BY created_at DESC`).
		WithArgs(uint64(1)).
		WillReturnRows(rows)

	repo := NewWatchlistRepo(db)
	entries, err := repo.ListByUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	assert.Equal(t, "Alien", entries[0].Title)
	assert.Equal(t, 8.5, *entries[0].VoteAverage)
	assert.Equal(t, "1979-05-25", *entries[0].ReleaseDate)

	// Nullable columns stay nil when the store holds NULL.
	assert.Nil(t, entries[1].PosterPath)
	assert.Nil(t, entries[1].VoteAverage)
	assert.Nil(t, entries[1].ReleaseDate)
}

func TestWatchlistListByUserEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .* FROM watchlist WHERE user_id = \?`).
		WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "movie_id", "title", "poster_path", "vote_average", "release_date", "created_at"}))

	repo := NewWatchlistRepo(db)
	entries, err := repo.ListByUser(context.Background(), 9)
	assert.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestWatchlistExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT 1 FROM watchlist WHERE user_id = \? AND movie_id = \? LIMIT 1`).
		WithArgs(uint64(1), uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	repo := NewWatchlistRepo(db)
	saved, err := repo.Exists(context.Background(), 1, 42)
	assert.NoError(t, err)
	assert.True(t, saved)
}

func TestWatchlistExistsFalse(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT 1 FROM watchlist WHERE user_id = \? AND movie_id = \? LIMIT 1`).
		WithArgs(uint64(1), uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	repo := NewWatchlistRepo(db)
	saved, err := repo.Exists(context.Background(), 1, 42)
	assert.NoError(t, err)
	assert.False(t, saved)
}

func TestWatchlistRemove(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM watchlist WHERE user_id = \? AND movie_id = \?`).
		WithArgs(uint64(1), uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewWatchlistRepo(db)
	assert.NoError(t, repo.Remove(context.Background(), 1, 42))
}

func TestWatchlistRemoveNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM watchlist WHERE user_id = \? AND movie_id = \?`).
		WithArgs(uint64(1), uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewWatchlistRepo(db)
	err = repo.Remove(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
