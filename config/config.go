package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	App       AppConfig       `envPrefix:"APP_"`
	Server    ServerConfig    `envPrefix:"SERVER_"`
	Database  DatabaseConfig  `envPrefix:"DB_"`
	Campaign  CampaignConfig  `envPrefix:"CAMPAIGN_"`
	Payment   PaymentConfig   `envPrefix:"PAYMENT_"`
	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
	CORS      CORSConfig      `envPrefix:"CORS_"`
}

type AppConfig struct {
	Name        string `env:"NAME" envDefault:"seedfund"`
	Environment string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	Driver          string        `env:"DRIVER" envDefault:"postgres"`
	DSN             string        `env:"DSN"`
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            int           `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER" envDefault:"postgres"`
	Password        string        `env:"PASSWORD"`
	DBName          string        `env:"NAME" envDefault:"seedfund"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnectTimeout  time.Duration `env:"CONNECT_TIMEOUT" envDefault:"30s"`
}

type CampaignConfig struct {
	GoalAmount  int64  `env:"GOAL_AMOUNT" envDefault:"20000000"`
	RecentLimit int    `env:"RECENT_LIMIT" envDefault:"5"`
	Timezone    string `env:"TIMEZONE" envDefault:"Africa/Lagos"`
	Currency    string `env:"CURRENCY" envDefault:"NGN"`
}

type PaymentConfig struct {
	WebhookSecret   string `env:"WEBHOOK_SECRET"`
	SignatureScheme string `env:"SIGNATURE_SCHEME" envDefault:"paystack"`
}

type RateLimitConfig struct {
	Requests int           `env:"REQUESTS" envDefault:"100"`
	Window   time.Duration `env:"WINDOW" envDefault:"1m"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads the configuration from the environment. .env files are loaded
// beforehand by the fx config module.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == "postgres" {
		cfg.Database.DSN = cfg.Database.PostgresDSN()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Database.Driver == "sqlite" && c.Database.DSN == "" {
		return errors.New("config: DB_DSN is required for the sqlite driver")
	}
	if c.Campaign.GoalAmount <= 0 {
		return errors.New("config: CAMPAIGN_GOAL_AMOUNT must be positive")
	}
	if c.Campaign.RecentLimit <= 0 {
		return errors.New("config: CAMPAIGN_RECENT_LIMIT must be positive")
	}
	if _, err := time.LoadLocation(c.Campaign.Timezone); err != nil {
		return fmt.Errorf("config: invalid CAMPAIGN_TIMEZONE: %w", err)
	}
	switch c.Payment.SignatureScheme {
	case "paystack", "stripe":
	default:
		return fmt.Errorf("config: unsupported PAYMENT_SIGNATURE_SCHEME %q", c.Payment.SignatureScheme)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Location returns the campaign timezone. Validate guarantees it loads.
func (c *CampaignConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (d *DatabaseConfig) PostgresDSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.DBName, d.SSLMode)
	if d.Password != "" {
		dsn += " password=" + d.Password
	}
	return dsn
}
