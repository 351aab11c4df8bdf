package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Market is one configured supermarket source.
type Market struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

type Config struct {
	Port      string       `mapstructure:"port"`
	DSN       string       `mapstructure:"dsn"`
	JWTSecret string       `mapstructure:"jwt_secret"`
	Scrape    ScrapeConfig `mapstructure:"scrape"`
	Counties  []string     `mapstructure:"counties"`
}

type ScrapeConfig struct {
	Markets       []Market `mapstructure:"markets"`
	DefaultCounty string   `mapstructure:"default_county"`
	// Perturbation applied by the static source, in KES.
	MaxOffset  float64       `mapstructure:"max_offset"`
	FloorPrice float64       `mapstructure:"floor_price"`
	Interval   time.Duration `mapstructure:"interval"`
	// When set, the live Gemini-backed source replaces the static one.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	GeminiModel  string `mapstructure:"gemini_model"`
}

// Load reads config.yaml (optional) with env overrides and defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("app")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8081")
	v.SetDefault("dsn", "")
	v.SetDefault("jwt_secret", "default-secret")
	v.SetDefault("scrape.default_county", "Nairobi")
	v.SetDefault("scrape.max_offset", 7.5)
	v.SetDefault("scrape.floor_price", 10.0)
	v.SetDefault("scrape.interval", 6*time.Hour)
	// Registered with an empty default so AutomaticEnv picks up
	// APP_SCRAPE_GEMINI_API_KEY; viper only resolves env for known keys.
	v.SetDefault("scrape.gemini_api_key", "")
	v.SetDefault("scrape.gemini_model", "gemini-2.5-flash")
	v.SetDefault("counties", []string{
		"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret",
		"Nyeri", "Meru", "Machakos", "Thika", "Kitale",
	})

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional, env + defaults are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Scrape.Markets) == 0 {
		cfg.Scrape.Markets = DefaultMarkets()
	}

	return &cfg, nil
}

// DefaultMarkets lists the supermarkets scraped when none are configured.
func DefaultMarkets() []Market {
	return []Market{
		{Name: "Naivas", URL: "https://naivas.online"},
		{Name: "Carrefour", URL: "https://www.carrefourkenya.com"},
		{Name: "Quickmart", URL: "https://www.quickmart.co.ke"},
		{Name: "Chandarana", URL: "https://shop.chandarana.co.ke"},
	}
}
