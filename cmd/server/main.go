package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/engine"
	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/router"
	"github.com/iliyamo/hotel-reservation/internal/store"
	storemysql "github.com/iliyamo/hotel-reservation/internal/store/mysql"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	hotels, rooms, users, feedback := buildStores(cfg)
	eng := engine.New(hotels, rooms, users, feedback)

	e := echo.New()
	e.HideBanner = true

	// Redis-backed rate limiting applies to everything; the response
	// cache only wraps the public browse endpoints.  Both degrade to
	// no-ops when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	browseCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewBrowseHandler(eng), browseCache)
	router.RegisterClient(e, handler.NewClientHandler(eng), cfg.JWTSecret)
	router.RegisterAgent(e, handler.NewAgentHandler(eng), cfg.JWTSecret)
	router.RegisterAdmin(e, handler.NewAdminHotelHandler(eng), handler.NewAdminBookingHandler(eng, users), cfg.JWTSecret)

	// The consumer turns booking events into notification log lines,
	// standing in for outbound email.  It reconnects forever on its
	// own goroutine.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreDriver)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// buildStores selects the persistence backend.  The in-memory store
// is the default and optionally loads the demo fixtures; "mysql"
// connects using the DB_* variables.
func buildStores(cfg config.Config) (store.HotelStore, store.RoomStore, store.UserStore, store.FeedbackStore) {
	if cfg.StoreDriver == "mysql" {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("mysql connect failed: %v", err)
		}
		s := storemysql.New(db)
		return s, s, s, s
	}

	m := store.NewMemory()
	if cfg.SeedDemoData {
		if err := store.SeedDemo(context.Background(), m, cfg.BcryptCost); err != nil {
			log.Fatalf("seed demo data failed: %v", err)
		}
		log.Println("demo data seeded (accounts: admin/agent/client@example.com)")
	}
	return m, m, m, m
}
