package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/muhammadlatif13/movieapp/internal/repository"
)

func TestTrendingRecordSearch(t *testing.T) {
	store := new(MockTrendingStore)
	store.On("IncrementSearch", mock.Anything, "dune", uint64(42), "Dune",
		"https://image.tmdb.org/t/p/w500/dune.jpg").Return(nil)
	h := NewTrendingHandler(testConfig(), store)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/trending/search",
		`{"search_term":"dune","movie_id":42,"title":"Dune","poster_path":"/dune.jpg"}`)

	assert.NoError(t, h.RecordSearch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func TestTrendingRecordSearchMissingFields(t *testing.T) {
	h := NewTrendingHandler(testConfig(), new(MockTrendingStore))
	e := echo.New()

	for _, body := range []string{
		`{"movie_id":42,"title":"Dune"}`,
		`{"search_term":"dune","title":"Dune"}`,
		`{"search_term":"dune","movie_id":42}`,
	} {
		c, rec := newJSONContext(e, http.MethodPost, "/api/trending/search", body)
		assert.NoError(t, h.RecordSearch(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestTrendingTop(t *testing.T) {
	store := new(MockTrendingStore)
	store.On("TopSearches", mock.Anything, 5).Return([]repository.TrendingMovie{
		{SearchTerm: "dune", MovieID: 42, Title: "Dune", Count: 3},
		{SearchTerm: "alien", MovieID: 7, Title: "Alien", Count: 1},
	}, nil)
	h := NewTrendingHandler(testConfig(), store)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/api/trending", "")

	assert.NoError(t, h.Top(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var top []repository.TrendingMovie
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	assert.Len(t, top, 2)
	assert.Equal(t, "dune", top[0].SearchTerm)
}

func TestTrendingTopCustomLimit(t *testing.T) {
	store := new(MockTrendingStore)
	store.On("TopSearches", mock.Anything, 2).Return([]repository.TrendingMovie{}, nil)
	h := NewTrendingHandler(testConfig(), store)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/api/trending?limit=2", "")

	assert.NoError(t, h.Top(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func TestTrendingUnavailable(t *testing.T) {
	h := NewTrendingHandler(testConfig(), nil)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodGet, "/api/trending", "")
	assert.NoError(t, h.Top(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	c, rec = newJSONContext(e, http.MethodPost, "/api/trending/search",
		`{"search_term":"dune","movie_id":42,"title":"Dune"}`)
	assert.NoError(t, h.RecordSearch(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLatestTouchAndList(t *testing.T) {
	store := new(MockTrendingStore)
	store.On("TouchLatest", mock.Anything, uint64(42), "Dune", "/dune.jpg").Return(nil)
	store.On("ListLatest", mock.Anything, 10).Return([]repository.LatestMovie{
		{MovieID: 42, Title: "Dune", PosterPath: "/dune.jpg"},
	}, nil)
	h := NewTrendingHandler(testConfig(), store)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/movies/latest",
		`{"movie_id":42,"title":"Dune","poster_path":"/dune.jpg"}`)
	assert.NoError(t, h.TouchLatest(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newJSONContext(e, http.MethodGet, "/api/movies/latest", "")
	assert.NoError(t, h.Latest(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var latest []repository.LatestMovie
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &latest))
	assert.Len(t, latest, 1)
	assert.Equal(t, uint64(42), latest[0].MovieID)
}
