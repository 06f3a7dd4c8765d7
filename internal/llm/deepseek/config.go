package deepseek

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/ecom-insights/listing-attributes/internal/llm"
)

// Config for the DeepSeek chat/completions client.
type Config struct {
	APIKey      string  // if empty, falls back to env DEEPSEEK_API_KEY
	BaseURL     string  // default https://api.deepseek.com/v1
	Model       string  // e.g. "deepseek-chat"
	Temperature float32 // low by default: deterministic answers wanted
	Timeout     time.Duration
	Retry       llm.Policy
	// RequestsPerSecond caps outgoing calls per client; 0 means unlimited.
	RequestsPerSecond float64
}

type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("DEEPSEEK_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.deepseek.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-chat"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = llm.DefaultPolicy()
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, 1),
		log:     logger,
	}
}
