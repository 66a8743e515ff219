package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration, populated from the
// environment with sane local-development defaults.
type Config struct {
	App     AppConfig
	Ollama  OllamaConfig
	Catalog CatalogConfig
	CORS    CORSConfig
	Logging LoggingConfig
}

type AppConfig struct {
	Environment string
	Port        int
}

type OllamaConfig struct {
	URL     string
	Model   string
	Timeout time.Duration
}

type CatalogConfig struct {
	URL     string
	Timeout time.Duration
}

type CORSConfig struct {
	AllowOrigins []string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Addr returns the listen address for the HTTP server.
func (a AppConfig) Addr() string {
	return fmt.Sprintf(":%d", a.Port)
}

// Load reads configuration from the environment. Outside production a
// .env file is loaded first if present.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", 8000)
	v.SetDefault("OLLAMA_URL", "http://localhost:11434")
	v.SetDefault("OLLAMA_MODEL", "mistral")
	v.SetDefault("OLLAMA_TIMEOUT_SECONDS", 20)
	v.SetDefault("CATALOG_URL", "https://fakestoreapi.com/products")
	v.SetDefault("CATALOG_TIMEOUT_SECONDS", 15)
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	cfg := &Config{
		App: AppConfig{
			Environment: v.GetString("APP_ENV"),
			Port:        v.GetInt("PORT"),
		},
		Ollama: OllamaConfig{
			URL:     v.GetString("OLLAMA_URL"),
			Model:   v.GetString("OLLAMA_MODEL"),
			Timeout: time.Duration(v.GetInt("OLLAMA_TIMEOUT_SECONDS")) * time.Second,
		},
		Catalog: CatalogConfig{
			URL:     v.GetString("CATALOG_URL"),
			Timeout: time.Duration(v.GetInt("CATALOG_TIMEOUT_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Ollama.URL == "" {
		return fmt.Errorf("missing config: OLLAMA_URL")
	}
	if c.Ollama.Model == "" {
		return fmt.Errorf("missing config: OLLAMA_MODEL")
	}
	if c.Catalog.URL == "" {
		return fmt.Errorf("missing config: CATALOG_URL")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid config: PORT=%d", c.App.Port)
	}
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
