package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/muhammadlatif13/movieapp/internal/repository"
)

// --- mock user store ---

type MockUserStore struct {
	mock.Mock
}

var _ UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, username, password string, cost int) (uint64, error) {
	args := m.Called(ctx, username, password, cost)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (repository.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(repository.User), args.Error(1)
}

// --- mock watchlist store ---

type MockWatchlistStore struct {
	mock.Mock
}

var _ WatchlistStore = (*MockWatchlistStore)(nil)

func (m *MockWatchlistStore) Save(ctx context.Context, e repository.WatchlistEntry) (uint64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockWatchlistStore) ListByUser(ctx context.Context, userID uint64) ([]repository.WatchlistEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistStore) Exists(ctx context.Context, userID, movieID uint64) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatchlistStore) Remove(ctx context.Context, userID, movieID uint64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

// --- mock review store ---

type MockReviewStore struct {
	mock.Mock
}

var _ ReviewStore = (*MockReviewStore)(nil)

func (m *MockReviewStore) Upsert(ctx context.Context, userID, movieID uint64, rating int, comment *string) error {
	args := m.Called(ctx, userID, movieID, rating, comment)
	return args.Error(0)
}

func (m *MockReviewStore) ListByMovie(ctx context.Context, movieID uint64) ([]repository.MovieReview, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MovieReview), args.Error(1)
}

func (m *MockReviewStore) GetByUser(ctx context.Context, userID, movieID uint64) (repository.Review, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Get(0).(repository.Review), args.Error(1)
}

// --- mock trending store ---

type MockTrendingStore struct {
	mock.Mock
}

var _ TrendingStore = (*MockTrendingStore)(nil)

func (m *MockTrendingStore) IncrementSearch(ctx context.Context, term string, movieID uint64, title, posterURL string) error {
	args := m.Called(ctx, term, movieID, title, posterURL)
	return args.Error(0)
}

func (m *MockTrendingStore) TopSearches(ctx context.Context, n int) ([]repository.TrendingMovie, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TrendingMovie), args.Error(1)
}

func (m *MockTrendingStore) TouchLatest(ctx context.Context, movieID uint64, title, posterPath string) error {
	args := m.Called(ctx, movieID, title, posterPath)
	return args.Error(0)
}

func (m *MockTrendingStore) ListLatest(ctx context.Context, n int) ([]repository.LatestMovie, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LatestMovie), args.Error(1)
}
