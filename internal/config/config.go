package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	AppEnv               string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	// External providers. Injected into the adapters at construction;
	// business logic never reads the environment directly.
	DeepgramAPIKey  string
	AnthropicAPIKey string
	AnthropicModel  string

	SentryDSN string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		AppEnv:               getenv("APP_ENV", "development"),
		DatabaseURL:          dbURL,
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		DeepgramAPIKey:       getenv("DEEPGRAM_API_KEY", ""),
		AnthropicAPIKey:      getenv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:       getenv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		SentryDSN:            getenv("SENTRY_DSN", ""),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

func (c Config) IsDev() bool {
	return c.AppEnv == "development"
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
