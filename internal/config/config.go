// Package config loads server settings from the environment (with an
// optional .env file) and game/market content catalogs from an optional
// YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finlab/finance-engine/internal/game"
	"github.com/finlab/finance-engine/internal/market"
)

// Config holds all server configuration.
type Config struct {
	Port           string
	DatabaseURL    string // PostgreSQL; empty → in-memory score store
	RedisURL       string // optional read-through cache over PostgreSQL
	MarketCron     string // cron spec for scheduled day advances; empty → manual only
	ContentFile    string // optional YAML catalog overrides
	AllowedOrigins []string
}

// Load reads configuration from environment variables, honoring a local
// .env file when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		MarketCron:     os.Getenv("MARKET_CRON"),
		ContentFile:    os.Getenv("CONTENT_FILE"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MarketContent configures the trading simulation catalogs.
type MarketContent struct {
	TotalDays   int                   `yaml:"total_days"`
	InitialCash float64               `yaml:"initial_cash"`
	Securities  []market.SecuritySpec `yaml:"securities"`
	News        []market.NewsEvent    `yaml:"news"`
}

// Content is the on-disk catalog shape (YAML). Omitted sections fall back
// to the built-in catalogs.
type Content struct {
	Market          MarketContent         `yaml:"market"`
	BudgetScenarios []game.BudgetScenario `yaml:"budget_scenarios"`
	QuizQuestions   []game.Question       `yaml:"quiz_questions"`
}

// InitialCashDecimal returns the configured starting cash as a decimal.
func (c *Content) InitialCashDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.Market.InitialCash)
}

// DefaultContent returns a mutable copy of the built-in catalogs.
func DefaultContent() *Content {
	return &Content{
		Market: MarketContent{
			TotalDays:   market.DefaultTotalDays,
			InitialCash: market.DefaultInitialCash.InexactFloat64(),
			Securities:  clone(market.DefaultSecurities),
			News:        clone(market.DefaultNews),
		},
		BudgetScenarios: clone(game.DefaultBudgetScenarios),
		QuizQuestions:   clone(game.DefaultQuizQuestions),
	}
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// LoadContent reads catalog overrides from a YAML file, merging omitted
// sections from the defaults. An empty path returns the defaults.
func LoadContent(path string) (*Content, error) {
	content := DefaultContent()
	if path == "" {
		return content, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var loaded Content
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}

	if loaded.Market.TotalDays > 0 {
		content.Market.TotalDays = loaded.Market.TotalDays
	}
	if loaded.Market.InitialCash > 0 {
		content.Market.InitialCash = loaded.Market.InitialCash
	}
	if len(loaded.Market.Securities) > 0 {
		content.Market.Securities = loaded.Market.Securities
	}
	if len(loaded.Market.News) > 0 {
		content.Market.News = loaded.Market.News
	}
	if len(loaded.BudgetScenarios) > 0 {
		content.BudgetScenarios = loaded.BudgetScenarios
	}
	if len(loaded.QuizQuestions) > 0 {
		content.QuizQuestions = loaded.QuizQuestions
	}

	if err := content.Validate(); err != nil {
		return nil, err
	}
	return content, nil
}

// Validate rejects catalogs the engine cannot run on.
func (c *Content) Validate() error {
	if c.Market.TotalDays <= 0 {
		return errors.New("config: market total_days must be positive")
	}
	if c.Market.InitialCash <= 0 {
		return errors.New("config: market initial_cash must be positive")
	}
	if len(c.Market.Securities) == 0 {
		return errors.New("config: at least one security is required")
	}
	for _, s := range c.Market.Securities {
		if s.Symbol == "" || s.BasePrice <= 0 {
			return fmt.Errorf("config: security %q needs a symbol and positive base price", s.Symbol)
		}
		if s.Volatility <= 0 || s.Volatility >= 1 {
			return fmt.Errorf("config: security %q volatility must be in (0,1)", s.Symbol)
		}
	}
	if len(c.Market.News) == 0 {
		return errors.New("config: at least one news event is required")
	}
	for _, q := range c.QuizQuestions {
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("config: question %q has an out-of-range answer index", q.Question)
		}
	}
	return nil
}
