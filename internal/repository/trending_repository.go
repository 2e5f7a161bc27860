package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key layout for the trending/latest features.  Counts and recency
// live in sorted sets so top-N reads are a single range query; the movie
// metadata shown next to each entry lives in a hash per member.
const (
	trendingSetKey  = "trending:terms"
	trendingHashKey = "trending:term:" // + search term
	latestSetKey    = "latest:movies"
	latestHashKey   = "latest:movie:" // + movie id
)

// TrendingMovie is one row of the trending searches ranking: the search
// term, how often it was searched, and the metadata of its top hit.
type TrendingMovie struct {
	SearchTerm string `json:"search_term"`
	MovieID    uint64 `json:"movie_id"`
	Title      string `json:"title"`
	PosterURL  string `json:"poster_url"`
	Count      int64  `json:"count"`
}

// LatestMovie is one entry of the recently-viewed list.
type LatestMovie struct {
	MovieID    uint64 `json:"movie_id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
	ViewedAt   string `json:"viewed_at"`
}

// TrendingRepo stores trending search counters and the capped
// recently-viewed movie list in Redis.
type TrendingRepo struct {
	RDB       *redis.Client
	LatestCap int // entries kept in the latest-viewed set
}

func NewTrendingRepo(rdb *redis.Client, latestCap int) *TrendingRepo {
	if latestCap < 1 {
		latestCap = 10
	}
	return &TrendingRepo{RDB: rdb, LatestCap: latestCap}
}

// IncrementSearch bumps the counter for a search term and records the
// metadata of the movie the search surfaced.  The metadata overwrite is
// deliberate: the ranking always shows the latest top hit for the term.
func (r *TrendingRepo) IncrementSearch(ctx context.Context, term string, movieID uint64, title, posterURL string) error {
	pipe := r.RDB.TxPipeline()
	pipe.ZIncrBy(ctx, trendingSetKey, 1, term)
	pipe.HSet(ctx, trendingHashKey+term, map[string]interface{}{
		"movie_id":   strconv.FormatUint(movieID, 10),
		"title":      title,
		"poster_url": posterURL,
	})
	_, err := pipe.Exec(ctx)
	return err
}

// TopSearches returns the n most searched terms, highest count first.
func (r *TrendingRepo) TopSearches(ctx context.Context, n int) ([]TrendingMovie, error) {
	if n < 1 {
		n = 1
	}
	members, err := r.RDB.ZRevRangeWithScores(ctx, trendingSetKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]TrendingMovie, 0, len(members))
	for _, m := range members {
		term, _ := m.Member.(string)
		tm := TrendingMovie{SearchTerm: term, Count: int64(m.Score)}
		meta, err := r.RDB.HGetAll(ctx, trendingHashKey+term).Result()
		if err != nil {
			return nil, err
		}
		if id, err := strconv.ParseUint(meta["movie_id"], 10, 64); err == nil {
			tm.MovieID = id
		}
		tm.Title = meta["title"]
		tm.PosterURL = meta["poster_url"]
		out = append(out, tm)
	}
	return out, nil
}

// TouchLatest inserts a movie into the recently-viewed set or refreshes its
// timestamp, then trims the set down to LatestCap entries.
func (r *TrendingRepo) TouchLatest(ctx context.Context, movieID uint64, title, posterPath string) error {
	id := strconv.FormatUint(movieID, 10)
	now := time.Now().UTC()
	pipe := r.RDB.TxPipeline()
	pipe.ZAdd(ctx, latestSetKey, redis.Z{Score: float64(now.UnixMilli()), Member: id})
	pipe.HSet(ctx, latestHashKey+id, map[string]interface{}{
		"title":       title,
		"poster_path": posterPath,
		"viewed_at":   now.Format(time.RFC3339),
	})
	pipe.ZRemRangeByRank(ctx, latestSetKey, 0, int64(-(r.LatestCap + 1)))
	_, err := pipe.Exec(ctx)
	return err
}

// ListLatest returns up to n recently-viewed movies, newest first.
func (r *TrendingRepo) ListLatest(ctx context.Context, n int) ([]LatestMovie, error) {
	if n < 1 || n > r.LatestCap {
		n = r.LatestCap
	}
	ids, err := r.RDB.ZRevRange(ctx, latestSetKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]LatestMovie, 0, len(ids))
	for _, id := range ids {
		meta, err := r.RDB.HGetAll(ctx, latestHashKey+id).Result()
		if err != nil {
			return nil, err
		}
		var lm LatestMovie
		if parsed, err := strconv.ParseUint(id, 10, 64); err == nil {
			lm.MovieID = parsed
		}
		lm.Title = meta["title"]
		lm.PosterPath = meta["poster_path"]
		lm.ViewedAt = meta["viewed_at"]
		out = append(out, lm)
	}
	return out, nil
}
