package main

import (
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/yamdb-team/yamdb-api/internal/bootstrap"
	"github.com/yamdb-team/yamdb-api/internal/config"
	"github.com/yamdb-team/yamdb-api/internal/server"
	"github.com/yamdb-team/yamdb-api/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := database.Connect()

	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := bootstrap.SeedAdminUser(db, cfg.AdminUsername, cfg.AdminEmail); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL is not set, confirmation codes and rate limits are disabled")
	}

	srv := server.NewServer(cfg, db, redisClient)
	defer srv.Stop()

	log.Printf("Starting server on port %s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
