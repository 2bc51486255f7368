package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"smartmeal/internal/scoring"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Pricing PricingConfig
	Suggest SuggestConfig
	Scoring scoring.Params
	Logger  LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type SessionConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

type PricingConfig struct {
	Currency string
}

type SuggestConfig struct {
	Candidates int
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, plain environment variables work too

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	sessionTTL, _ := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "120"))
	cleanupInterval, _ := strconv.Atoi(getEnv("SESSION_CLEANUP_MINUTES", "10"))
	candidates, _ := strconv.Atoi(getEnv("SUGGEST_CANDIDATES", "6"))

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Session: SessionConfig{
			TTL:             time.Duration(sessionTTL) * time.Minute,
			CleanupInterval: time.Duration(cleanupInterval) * time.Minute,
		},
		Pricing: PricingConfig{
			Currency: getEnv("PRICE_CURRENCY", "CHF"),
		},
		Suggest: SuggestConfig{
			Candidates: candidates,
		},
		Scoring: scoring.DefaultParams(),
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	// SCORING_CONFIG points at a YAML file overriding selected scoring
	// parameters; fields it leaves out keep their defaults.
	if path := getEnv("SCORING_CONFIG", ""); path != "" {
		if err := loadScoringFile(path, &cfg.Scoring); err != nil {
			return nil, fmt.Errorf("failed to load scoring config: %w", err)
		}
	}
	if err := cfg.Scoring.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}

	return cfg, nil
}

func loadScoringFile(path string, params *scoring.Params) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, params); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
