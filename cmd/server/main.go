package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/joyal-jij0/shl/internal/config"
	"github.com/joyal-jij0/shl/internal/database"
	"github.com/joyal-jij0/shl/internal/handler"
	"github.com/joyal-jij0/shl/internal/middleware"
	"github.com/joyal-jij0/shl/internal/repository"
	"github.com/joyal-jij0/shl/internal/router"
	"github.com/joyal-jij0/shl/internal/service"
)

func main() {
	// .env is optional; deployments inject env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// The catalog file must exist and be readable before we accept traffic.
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("catalog store unavailable at %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	products := repository.NewProductRepo(db)
	catalog := service.NewCatalogService(products)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Redis is optional: a nil client turns the response cache and the
	// rate limiter into pass-through middleware.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// The response cache is wired per route, not globally: the health
	// route must hit the store on every probe, so only the product
	// routes may serve from cache.
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e,
		&handler.CatalogHandler{Catalog: catalog},
		&handler.HealthHandler{Store: products},
		cache,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBPath)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
