package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finlab/finance-engine/internal/market"
)

func TestLoadContent_EmptyPathUsesDefaults(t *testing.T) {
	content, err := LoadContent("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.Market.TotalDays != market.DefaultTotalDays {
		t.Errorf("expected %d days, got %d", market.DefaultTotalDays, content.Market.TotalDays)
	}
	if len(content.Market.Securities) != len(market.DefaultSecurities) {
		t.Errorf("expected the default catalog, got %d securities", len(content.Market.Securities))
	}
}

func TestLoadContent_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	yaml := `
market:
  total_days: 30
  securities:
    - symbol: GOLD
      name: GoldCo
      base_price: 200
      volatility: 0.03
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	content, err := LoadContent(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if content.Market.TotalDays != 30 {
		t.Errorf("expected 30 days, got %d", content.Market.TotalDays)
	}
	if len(content.Market.Securities) != 1 || content.Market.Securities[0].Symbol != "GOLD" {
		t.Errorf("expected the GOLD catalog, got %+v", content.Market.Securities)
	}
	// Omitted sections keep their defaults.
	if len(content.Market.News) == 0 {
		t.Error("omitted news must fall back to the default catalog")
	}
	if len(content.QuizQuestions) == 0 {
		t.Error("omitted questions must fall back to the default catalog")
	}
}

func TestLoadContent_MissingFile(t *testing.T) {
	if _, err := LoadContent("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Content)
	}{
		{"zero days", func(c *Content) { c.Market.TotalDays = 0 }},
		{"zero cash", func(c *Content) { c.Market.InitialCash = 0 }},
		{"no securities", func(c *Content) { c.Market.Securities = nil }},
		{"bad volatility", func(c *Content) { c.Market.Securities[0].Volatility = 1.5 }},
		{"no news", func(c *Content) { c.Market.News = nil }},
		{"answer out of range", func(c *Content) { c.QuizQuestions[0].Correct = 99 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultContent()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard origins, got %v", cfg.AllowedOrigins)
	}
}

func TestLoad_SplitsOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}
