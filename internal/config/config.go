package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port     string `env:"PORT" envDefault:"8080"`
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`

	// Database
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"debtpilot"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"debtpilot"`
	DBName     string `env:"DB_NAME" envDefault:"debtpilot"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// JWT (tokens are issued by the auth provider; we only verify them)
	JWTSecret string `env:"JWT_SECRET" envDefault:"fallback-secret-key-for-dev-only"`

	// Cache; empty address selects the in-process cache
	RedisAddr  string        `env:"REDIS_ADDR"`
	AICacheTTL time.Duration `env:"AI_CACHE_TTL" envDefault:"6h"`

	// Text generation
	LLMProvider     string        `env:"LLM_PROVIDER" envDefault:"none"`
	LLMTimeout      time.Duration `env:"LLM_TIMEOUT" envDefault:"20s"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIModel     string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	AnthropicAPIKey string        `env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-haiku-latest"`

	// Strategy engine
	Weights                StrategyWeights `envPrefix:"STRATEGY_WEIGHT_"`
	StrategyReviewSchedule string          `env:"STRATEGY_REVIEW_SCHEDULE" envDefault:"@daily"`

	// Operator endpoints; empty disables them
	InternalAPIKey string `env:"INTERNAL_API_KEY"`
}

// StrategyWeights are the multi-factor weights of the optimized strategy.
type StrategyWeights struct {
	InterestRate float64 `env:"INTEREST" envDefault:"0.40"`
	Balance      float64 `env:"BALANCE" envDefault:"0.30"`
	PayoffTime   float64 `env:"PAYOFF_TIME" envDefault:"0.20"`
	Utilization  float64 `env:"UTILIZATION" envDefault:"0.10"`
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// MigrationURL returns the postgres URL golang-migrate expects.
func (c *Config) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	switch cfg.LLMProvider {
	case "none", "openai", "anthropic":
	default:
		log.Printf("Warning: unknown LLM_PROVIDER '%s', disabling text generation\n", cfg.LLMProvider)
		cfg.LLMProvider = "none"
	}

	appConfig = cfg
	return cfg, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}
