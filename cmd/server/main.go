package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"rental-planner/internal/advisor"
	"rental-planner/internal/app"
	"rental-planner/internal/config"
	"rental-planner/internal/database"
	"rental-planner/internal/events"
	"rental-planner/internal/httpapi"
	"rental-planner/internal/llm"
	"rental-planner/internal/metrics"
	"rental-planner/internal/telegram"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// 2. Initialize Infrastructure
	textGen, closer, err := llm.NewFromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create %s client: %v", cfg.LLMProvider, err)
	}
	defer closer.Close()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	publisher, err := events.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize events publisher: %v", err)
	}
	defer publisher.Close()

	rdb := httpapi.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if rdb != nil {
		defer rdb.Close()
		log.Printf("Rate limiting advice requests via Redis at %s", cfg.RedisAddr)
	} else if cfg.RedisAddr != "" {
		log.Printf("Warning: Redis at %s unreachable, advice rate limiting disabled", cfg.RedisAddr)
	}

	// 3. Initialize Services
	application := app.NewApp(advisor.NewAdvisor(textGen), metrics.NewStore(db.SQL), publisher, cfg)

	e := httpapi.NewServer(application, rdb, httpapi.RateLimitConfig{
		Capacity:       cfg.RateLimitCapacity,
		RefillTokens:   1,
		RefillInterval: cfg.RateLimitRefillInterval,
	})

	// 4. Optional Telegram Bot
	if cfg.TelegramBotToken != "" && cfg.TelegramWebhookURL != "" {
		bot, err := telegram.NewBot(cfg, application)
		if err != nil {
			log.Fatalf("Failed to initialize Telegram Bot: %v", err)
		}
		e.POST("/webhook", echo.WrapHandler(bot))
	} else if cfg.TelegramBotToken != "" {
		log.Println("Warning: TELEGRAM_WEBHOOK_URL not set, Telegram bot disabled")
	}

	// 5. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Rental Planner listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
