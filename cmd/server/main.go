package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/libbook/seat-reservation/internal/config"
	"github.com/libbook/seat-reservation/internal/database"
	"github.com/libbook/seat-reservation/internal/handler"
	"github.com/libbook/seat-reservation/internal/middleware"
	"github.com/libbook/seat-reservation/internal/queue"
	"github.com/libbook/seat-reservation/internal/repository"
	"github.com/libbook/seat-reservation/internal/router"
	"github.com/libbook/seat-reservation/internal/seed"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	// Seeding failure is logged and the server keeps starting; store
	// operations will fail individually until the store recovers.
	if err := seed.Run(ctx, seatRepo, userRepo); err != nil {
		log.Printf("seeding error: %v", err)
	}

	events := queue.NewPublisherFromEnv()
	if url := queue.BrokerURL(); url != "" {
		go queue.StartBookingConsumer(url)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS()) // unrestricted cross-origin access
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), config.NewRedisClient()))

	router.Register(e,
		handler.NewUserHandler(userRepo),
		handler.NewSeatHandler(seatRepo),
		handler.NewBookingHandler(bookingRepo, events),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
