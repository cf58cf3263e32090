package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"fyyur/internal/config"
	"fyyur/internal/database"
	"fyyur/internal/handler"
	"fyyur/internal/queue"
	"fyyur/internal/repository"
	"fyyur/internal/router"
	"fyyur/internal/service"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.MigrateSchema(ctx, db); err != nil {
		log.WithError(err).Fatal("schema migration failed")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable; response cache and rate limiting disabled")
	}

	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)
	publisher := service.NewListingPublisher(log)
	h := handler.NewListingHandler(venues, artists, shows, publisher)

	// The consumer writes listing activity to logs/listing.log and keeps
	// reconnecting on its own; it never stops the server.
	go func() {
		if err := queue.StartListingConsumer(log); err != nil {
			log.WithError(err).Warn("listing consumer stopped")
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, rdb, config.LoadCacheConfig(), config.LoadRateLimitConfig())

	addr := ":" + cfg.Port
	log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
