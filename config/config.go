package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Port           string        `mapstructure:"PORT"`
	Env            string        `mapstructure:"ENV"`
	DBURL          string        `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	AutoMigrate    bool          `mapstructure:"AUTO_MIGRATE"`
	RedisAddress   string        `mapstructure:"REDIS_URL"`
	AuthURL        string        `mapstructure:"AUTH_URL"`
	SymmetricKey   string        `mapstructure:"SYMMETRIC_KEY"`
	AgentURL       string        `mapstructure:"AGENT_URL"`
	AgentAPIKey    string        `mapstructure:"AGENT_API_KEY"`
	AgentTimeout   time.Duration `mapstructure:"AGENT_TIMEOUT"`
	KafkaBrokers   []string      `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic     string        `mapstructure:"KAFKA_TOPIC"`
	CORSOrigins    []string      `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int           `mapstructure:"RATE_LIMIT_BURST"`
}

var envKeys = []string{
	"PORT", "ENV", "DATABASE_URL", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	"AUTO_MIGRATE", "REDIS_URL", "AUTH_URL", "SYMMETRIC_KEY", "AGENT_URL",
	"AGENT_API_KEY", "AGENT_TIMEOUT", "KAFKA_BROKERS", "KAFKA_TOPIC",
	"CORS_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8930")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_OPEN_CONNS", 40)
	v.SetDefault("DB_MAX_IDLE_CONNS", 20)
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("AGENT_TIMEOUT", "60s")
	v.SetDefault("KAFKA_TOPIC", "unifymd.events")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 15)
	v.SetDefault("RATE_LIMIT_BURST", 30)

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Comma separated lists arrive as a single string from the environment.
	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the server cannot start without.
func (c *AppConfig) Validate() error {
	if c.DBURL == "" {
		return fmt.Errorf("missing DATABASE_URL environment variable")
	}
	if c.AuthURL == "" {
		return fmt.Errorf("missing AUTH_URL environment variable")
	}
	if len(c.SymmetricKey) != 32 {
		return fmt.Errorf("SYMMETRIC_KEY must be 32 bytes long, got %d", len(c.SymmetricKey))
	}
	return nil
}

// IsDev reports whether the server runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env == "development"
}

// ChatEnabled reports whether a chat agent endpoint is configured.
func (c *AppConfig) ChatEnabled() bool {
	return c.AgentURL != ""
}

// EventsEnabled reports whether domain events are published to Kafka.
func (c *AppConfig) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
