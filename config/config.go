package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	GenAI GenAIConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	Path string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled reports whether a Redis host was configured. The meal-plan cache
// is skipped entirely when it is not.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type GenAIConfig struct {
	APIKey  string
	Models  []string
	Timeout time.Duration
}

func (c GenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

func (c *Config) IsDev() bool {
	return c.App.Env == "development"
}

// LoadConfig reads .env from the working directory when present and lets
// environment variables override it.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(file string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_PATH", "./data/nutriclinic.db")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MEAL_PLAN_CACHE_TTL", "24h")
	v.SetDefault("GENAI_MODELS", "gemini-1.5-flash,gemini-pro")
	v.SetDefault("GENAI_TIMEOUT", "60s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cacheTTL, err := time.ParseDuration(v.GetString("MEAL_PLAN_CACHE_TTL"))
	if err != nil {
		cacheTTL = 24 * time.Hour
	}

	genTimeout, err := time.ParseDuration(v.GetString("GENAI_TIMEOUT"))
	if err != nil {
		genTimeout = 60 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Path: v.GetString("DB_PATH"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      cacheTTL,
		},
		GenAI: GenAIConfig{
			APIKey:  v.GetString("GENAI_API_KEY"),
			Models:  splitList(v.GetString("GENAI_MODELS")),
			Timeout: genTimeout,
		},
	}

	if config.DB.Path == "" {
		return nil, errors.New("DB_PATH is required")
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
