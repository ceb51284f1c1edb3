package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"eventbite/internal/config"
	contributiondb "eventbite/internal/contributions/db"
	"eventbite/internal/database"
	eventdb "eventbite/internal/events/db"
	goaldb "eventbite/internal/goals/db"
	snackdb "eventbite/internal/snacks/db"

	"eventbite/internal/contributions"
	"eventbite/internal/contributions/contribution_api"
	"eventbite/internal/events"
	"eventbite/internal/events/event_api"
	"eventbite/internal/events/qr"
	eventsredis "eventbite/internal/events/redis"
	"eventbite/internal/goals"
	"eventbite/internal/goals/goal_api"
	"eventbite/internal/kafka"
	"eventbite/internal/logger"
	"eventbite/internal/snacks"
	"eventbite/internal/snacks/snack_api"
)

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting EventBite API initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	ctx := context.Background()

	bunDB, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to open store: %v", err))
	}
	defer bunDB.Close()
	log.Info("DATABASE", fmt.Sprintf("SQLite store opened at %s", cfg.Database.Path))

	if err := database.InitSchema(ctx, bunDB); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to initialize schema: %v", err))
	}
	log.Info("DATABASE", "Schema ready")

	// Redis is optional: without it the verify-admin limiter is a no-op.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("REDIS", fmt.Sprintf("Redis unreachable at %s, verify limiter disabled: %v", cfg.Redis.Addr, err))
			redisClient = nil
		} else {
			log.Info("REDIS", fmt.Sprintf("Redis connection successful to %s", cfg.Redis.Addr))
			defer redisClient.Close()
		}
	}
	limiter := eventsredis.NewLimiter(redisClient, cfg.Limits.AdminVerifyMax, cfg.Limits.AdminVerifyWindow, log)

	// Kafka is optional as well; mock mode only logs the payloads.
	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka, log)
		defer producer.Close()
		if !cfg.Kafka.MockMode {
			topics := []string{
				cfg.Kafka.Topics.EventCreated,
				cfg.Kafka.Topics.ContributionCreated,
				cfg.Kafka.Topics.ContributionUpdated,
				cfg.Kafka.Topics.ContributionDeleted,
			}
			if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, topics); err != nil {
				log.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
			} else {
				log.Info("KAFKA", "Required topics ensured successfully")
			}
		}
		log.Info("KAFKA", "Activity producer initialized")
	}

	eventService := events.NewEventService(&eventdb.DB{Bun: bunDB})
	goalService := goals.NewGoalService(&goaldb.DB{Bun: bunDB}, cfg.Limits.GoalLimit)
	contributionService := contributions.NewContributionService(&contributiondb.DB{Bun: bunDB})
	snackService := snacks.NewSnackService(&snackdb.DB{Bun: bunDB})

	eventHandler := event_api.NewHandler(eventService, limiter, qr.NewGenerator(cfg.Share.BaseURL), producer, log)
	goalHandler := goal_api.NewHandler(goalService, log)
	contributionHandler := contribution_api.NewHandler(contributionService, producer, log)
	snackHandler := snack_api.NewHandler(snackService, log)

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(log.RequestLogger())

	eventHandler.RegisterRoutes(r)
	goalHandler.RegisterRoutes(r)
	contributionHandler.RegisterRoutes(r)
	snackHandler.RegisterRoutes(r)
	log.Info("ROUTER", "Event, goal, contribution and snack routes registered")

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("EventBite API running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "EventBite API shutdown complete")
	}
}
