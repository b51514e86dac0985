package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// It is read once at startup and passed explicitly to every component.
type Config struct {
	// Server
	Port     int    `mapstructure:"PORT"`
	Env      string `mapstructure:"APP_ENV"` // development | production | test
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Database
	DBDriver            string `mapstructure:"DB_DRIVER"` // postgres | sqlite
	DBHost              string `mapstructure:"DB_HOST"`
	DBPort              int    `mapstructure:"DB_PORT"`
	DBUser              string `mapstructure:"DB_USER"`
	DBPassword          string `mapstructure:"DB_PASSWORD"`
	DBName              string `mapstructure:"DB_NAME"`
	DBSSLMode           string `mapstructure:"DB_SSLMODE"`
	DBPath              string `mapstructure:"DB_PATH"`
	DBMaxOpenConns      int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns      int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetimeMn int    `mapstructure:"DB_CONN_MAX_LIFETIME_MIN"`
	SeedData            bool   `mapstructure:"SEED_DATA"`

	// Redis (optional, backs the rate limiter when set)
	RedisURL string `mapstructure:"REDIS_URL"`

	// HTTP policy
	CORSOrigin           string `mapstructure:"CORS_ORIGIN"` // comma separated
	RateLimitWindowMS    int    `mapstructure:"RATE_LIMIT_WINDOW_MS"`
	RateLimitMaxRequests int    `mapstructure:"RATE_LIMIT_MAX_REQUESTS"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	setDefaults(v)

	// Optional .env file for local development; does not fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 3000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "personas_db")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "personas.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MIN", 30)
	v.SetDefault("SEED_DATA", true)

	v.SetDefault("REDIS_URL", "")

	v.SetDefault("CORS_ORIGIN", "http://localhost:3000,http://localhost:3001")
	v.SetDefault("RATE_LIMIT_WINDOW_MS", 900000) // 15 minutes
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER %q no soportado (postgres | sqlite)", c.DBDriver)
	}
	if c.RateLimitMaxRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS debe ser positivo")
	}
	if c.RateLimitWindowMS <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_MS debe ser positivo")
	}
	return nil
}

// IsDevelopment reports whether internal error details may be exposed to clients.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// PostgresDSN builds a postgres:// URL understood by pgx. Credentials are
// escaped, so an empty or symbol-laden password is safe.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// CORSOrigins splits CORS_ORIGIN into a trimmed, non-empty list.
func (c *Config) CORSOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowMS) * time.Millisecond
}

func (c *Config) ConnMaxLifetime() time.Duration {
	return time.Duration(c.DBConnMaxLifetimeMn) * time.Minute
}
