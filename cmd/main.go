package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"gigflow/backend/internal/api"
	"gigflow/backend/internal/api/handler"
	"gigflow/backend/internal/config"
	"gigflow/backend/internal/hire"
	"gigflow/backend/internal/models"
	"gigflow/backend/internal/presence"
	"gigflow/backend/internal/storage"

	log "github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies() (*gorm.DB, *redis.Client) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the storage layer relies on for the
	// duplicate-bid and duplicate-email checks.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.Bid{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Info("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.Info("Starting GigFlow Backend...")

	if err := godotenv.Load(); err != nil {
		log.Warn("Warning: Error loading .env file")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	hub := presence.NewHub(s)
	dispatcher := presence.NewDispatcher(hub, s)
	coordinator := hire.NewCoordinator(s, dispatcher)

	go hub.Run()
	hub.StartPubSubListener()

	gin.SetMode(gin.ReleaseMode)
	h := handler.NewHandler(s, coordinator, hub)
	r := api.SetupRouter(h)

	port := os.Getenv("PORT")
	if port == "" {
		port = config.DefaultPort
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.WithFields(log.Fields{"port": port}).Info("Server listening")
	log.Fatal(server.ListenAndServe())
}
