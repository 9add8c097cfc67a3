package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/postdeck/configs"
	"github.com/maheshrc27/postdeck/internal/api"
	"github.com/maheshrc27/postdeck/internal/gateway"
	job "github.com/maheshrc27/postdeck/internal/jobs"
	"github.com/maheshrc27/postdeck/internal/repository"
	"github.com/maheshrc27/postdeck/internal/service"
	"github.com/maheshrc27/postdeck/internal/views"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	var (
		viewRepo repository.ViewRepository
		rdb      *redis.Client
		c        *cron.Cron
	)
	if cfg.RedisURI != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisURI})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis is unreachable: %v", err)
		}
		viewRepo = repository.NewRedisViewRepository(rdb, cfg.ViewTTL)
	} else {
		memRepo := repository.NewMemoryViewRepository(cfg.ViewTTL)
		viewRepo = memRepo

		// cron jobs
		sweepJob := job.NewViewSweepJob(memRepo)
		c = cron.New()
		c.AddFunc("@every 00h10m00s", sweepJob.SweepViews)
		c.Start()
	}

	app := api.NewApp(api.Deps{
		Config:   cfg,
		Location: loc,
		Gateway:  gateway.NewClient(cfg.APIURL, nil),
		Views:    renderer,
		Calendar: service.NewCalendarService(viewRepo, loc),
		Compose: service.NewComposeService(
			service.NewImageSearchService(cfg.UnsplashAPIURL, cfg.UnsplashAccessKey, nil),
			service.NewR2Service(cfg.R2),
		),
	})

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on %s", cfg.ListenAddr)

	gracefulShutdown(app, c, rdb)
}

func gracefulShutdown(app *fiber.App, c *cron.Cron, rdb *redis.Client) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	if c != nil {
		c.Stop()
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Printf("Failed to close redis: %v", err)
		}
	}
	log.Println("Server shutdown complete.")
}
