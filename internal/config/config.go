package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"

	EventsNone = "none"
	EventsAMQP = "amqp"
	EventsNATS = "nats"
)

// Config holds the configuration for the application.
type Config struct {
	LLMProvider  string
	GeminiAPIKey string
	GeminiModel  string
	GroqAPIKey   string
	GroqModel    string

	DatabasePath  string
	Port          string
	AdviceTimeout time.Duration

	// Rate limiting for advice requests. Disabled when RedisAddr is empty.
	RedisAddr               string
	RedisPassword           string
	RateLimitCapacity       int
	RateLimitRefillInterval time.Duration

	// Lead events
	EventsBackend string
	AMQPURL       string
	NATSURL       string

	// Telegram Config
	TelegramBotToken   string
	TelegramWebhookURL string
	TelegramAdminID    int64
}

// Load reads a .env file when one exists and then builds the Config from
// the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return NewFromEnv()
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	provider := strings.ToLower(getenv("LLM_PROVIDER", ProviderGemini))

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	groqAPIKey := os.Getenv("GROQ_API_KEY")

	switch provider {
	case ProviderGemini:
		if geminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case ProviderGroq:
		if groqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY environment variable not set")
		}
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", provider)
	}

	adviceTimeout, err := parseDuration("ADVICE_TIMEOUT", 45*time.Second)
	if err != nil {
		return nil, err
	}
	refillInterval, err := parseDuration("RATE_LIMIT_REFILL_INTERVAL", 12*time.Second)
	if err != nil {
		return nil, err
	}
	capacity, err := parseInt("RATE_LIMIT_CAPACITY", 5)
	if err != nil {
		return nil, err
	}
	if capacity < 1 {
		capacity = 1
	}

	eventsBackend := strings.ToLower(getenv("EVENTS_BACKEND", EventsNone))
	amqpURL := os.Getenv("AMQP_URL")
	natsURL := os.Getenv("NATS_URL")
	switch eventsBackend {
	case EventsNone:
	case EventsAMQP:
		if amqpURL == "" {
			return nil, fmt.Errorf("AMQP_URL environment variable not set")
		}
	case EventsNATS:
		if natsURL == "" {
			return nil, fmt.Errorf("NATS_URL environment variable not set")
		}
	default:
		return nil, fmt.Errorf("unsupported EVENTS_BACKEND %q", eventsBackend)
	}

	// Telegram Config (optional)
	var telegramAdminID int64
	if s := os.Getenv("TELEGRAM_ADMIN_ID"); s != "" {
		telegramAdminID, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_ADMIN_ID %q: %w", s, err)
		}
	}

	return &Config{
		LLMProvider:             provider,
		GeminiAPIKey:            geminiAPIKey,
		GeminiModel:             getenv("GEMINI_MODEL", "gemini-3-flash-preview"),
		GroqAPIKey:              groqAPIKey,
		GroqModel:               getenv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		DatabasePath:            getenv("DATABASE_PATH", "data/rental-planner.db"),
		Port:                    getenv("PORT", "8080"),
		AdviceTimeout:           adviceTimeout,
		RedisAddr:               os.Getenv("REDIS_ADDR"),
		RedisPassword:           os.Getenv("REDIS_PASSWORD"),
		RateLimitCapacity:       capacity,
		RateLimitRefillInterval: refillInterval,
		EventsBackend:           eventsBackend,
		AMQPURL:                 amqpURL,
		NATSURL:                 natsURL,
		TelegramBotToken:        os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL:      os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramAdminID:         telegramAdminID,
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func parseInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
