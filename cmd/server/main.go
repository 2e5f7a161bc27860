package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/muhammadlatif13/movieapp/internal/config"
	"github.com/muhammadlatif13/movieapp/internal/database"
	"github.com/muhammadlatif13/movieapp/internal/handler"
	"github.com/muhammadlatif13/movieapp/internal/middleware"
	"github.com/muhammadlatif13/movieapp/internal/queue"
	"github.com/muhammadlatif13/movieapp/internal/repository"
	"github.com/muhammadlatif13/movieapp/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// A database connection failure at startup is fatal.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.ApplySchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	// Redis backs trending counters, the latest-viewed list, rate limiting
	// and response caching.  When it is unreachable those features are
	// disabled and the core API keeps working.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable: trending, rate limiting and caching disabled")
	}

	users := repository.NewUserRepo(db)
	watchlist := repository.NewWatchlistRepo(db)
	reviews := repository.NewReviewRepo(db)

	var trendingStore handler.TrendingStore
	if rdb != nil {
		trendingStore = repository.NewTrendingRepo(rdb, cfg.LatestLimit)
	}

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb))

	var cacheMW echo.MiddlewareFunc
	if rdb != nil {
		cacheMW = middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users), cfg.JWTSecret)
	router.RegisterWatchlist(e, handler.NewWatchlistHandler(watchlist))
	router.RegisterReviews(e, handler.NewReviewHandler(reviews, cfg.EventsEnabled))
	router.RegisterTrending(e, handler.NewTrendingHandler(cfg, trendingStore), cacheMW)

	if cfg.EventsEnabled {
		go func() {
			if err := queue.StartReviewConsumer(); err != nil {
				log.Printf("review consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
