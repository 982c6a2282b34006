package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"swapx/backend/internal/api/handler"
	"swapx/backend/internal/catalog"
	"swapx/backend/internal/chathub"
	"swapx/backend/internal/media"
	"swapx/backend/internal/models"
	"swapx/backend/internal/storage"
	"swapx/backend/internal/swap"
	"swapx/backend/internal/telegram"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies() (*gorm.DB, *redis.Client) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "user"),
		envOr("DB_PASSWORD", "password"),
		envOr("DB_NAME", "swapxdb"),
		envOr("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Like{},
		&models.Match{},
		&models.Message{},
		&models.SwapRequest{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	log.Println("Starting SwapX Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	// Object storage for cover images; optional outside production.
	var s3svc *media.S3Service
	if bucket := os.Getenv("AWS_S3_BUCKET"); bucket != "" {
		var err error
		s3svc, err = media.NewS3Service(context.Background(), bucket,
			envOr("AWS_REGION", "eu-central-1"),
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"))
		if err != nil {
			log.Fatalf("Failed to set up S3: %v", err)
		}
	} else {
		log.Println("AWS_S3_BUCKET not set, cover uploads disabled")
	}

	// Telegram notifier; optional.
	var notifier *telegram.Notifier
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		var err error
		notifier, err = telegram.NewNotifier(token, s)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
	} else {
		log.Println("TELEGRAM_BOT_TOKEN not set, match push notifications disabled")
	}

	hub := chathub.NewManagerService(s)
	cat := catalog.NewService(s)
	ledger := swap.NewLedgerService(s)

	// A typed nil notifier must not end up inside the interface.
	matcher := swap.NewMatcherService(s, nil)
	if notifier != nil {
		matcher = swap.NewMatcherService(s, notifier)
	}
	requests := swap.NewRequestService(s)

	go hub.Run()
	hub.StartFeedListener()
	if notifier != nil {
		go notifier.Run()
	}

	r := gin.Default()
	h := handler.NewHandler(hub, cat, ledger, matcher, requests, s, s3svc)

	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/ws", h.ServeWebSocket)

	auth := r.Group("/", h.AuthRequired())
	{
		auth.GET("/books", h.ListBooks)
		auth.POST("/books", h.CreateBook)
		auth.GET("/books/:id", h.GetBook)
		auth.PATCH("/books/:id", h.UpdateBook)
		auth.DELETE("/books/:id", h.DeleteBook)
		auth.PATCH("/books/:id/availability", h.SetAvailability)
		auth.GET("/me/books", h.MyBooks)
		auth.GET("/me/impact", h.Impact)

		auth.POST("/books/:id/like", h.ToggleLike)
		auth.GET("/books/:id/like", h.LikeStatus)

		auth.GET("/matches", h.ListMatches)
		auth.GET("/matches/:id/messages", h.MatchHistory)
		auth.POST("/matches/:id/messages", h.SendMessage)
		auth.POST("/matches/:id/read", h.MarkRead)

		auth.POST("/books/:id/swap-requests", h.CreateSwapRequest)
		auth.GET("/books/:id/swap-requests", h.BookSwapRequests)
		auth.GET("/swap-requests", h.MySwapRequests)
		auth.PATCH("/swap-requests/:id", h.UpdateSwapRequest)

		auth.POST("/uploads", h.UploadCover)
	}

	server := &http.Server{
		Addr:           ":" + envOr("PORT", "8080"),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
