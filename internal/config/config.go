package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host            string        `yaml:"host"`
		Port            int           `yaml:"port"`
		Env             string        `yaml:"env"`
		APIPrefix       string        `yaml:"api_prefix"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
		MaxAge         int      `yaml:"max_age"` // seconds
	} `yaml:"cors"`

	Store struct {
		Type  string `yaml:"type"` // memory, postgres, mysql, redis, mongo
		DSN   string `yaml:"dsn"`
		Table string `yaml:"table"`
		Redis struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
		Mongo struct {
			URI        string `yaml:"uri"`
			Database   string `yaml:"database"`
			Collection string `yaml:"collection"`
		} `yaml:"mongo"`
	} `yaml:"store"`

	Auth struct {
		Mode        string        `yaml:"mode"` // remote, jwt
		ProviderURL string        `yaml:"provider_url"`
		APIKey      string        `yaml:"api_key"`
		ServiceKey  string        `yaml:"service_key"`
		JWTSecret   string        `yaml:"jwt_secret"`
		AdminEmails []string      `yaml:"admin_emails"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"auth"`

	Email struct {
		Provider    string        `yaml:"provider"` // resend, smtp, log
		APIKey      string        `yaml:"api_key"`
		BaseURL     string        `yaml:"base_url"`
		From        string        `yaml:"from"`
		NotifyTo    string        `yaml:"notify_to"`
		Async       bool          `yaml:"async"`
		MaxInFlight int64         `yaml:"max_in_flight"`
		Timeout     time.Duration `yaml:"timeout"`
		SMTP        struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Username string `yaml:"username"`
			Password string `yaml:"password"`
		} `yaml:"smtp"`
	} `yaml:"email"`

	Notifications struct {
		RetentionDays int           `yaml:"retention_days"` // 0 keeps everything
		SweepInterval time.Duration `yaml:"sweep_interval"`
	} `yaml:"notifications"`
}

// Default returns a configuration that runs locally with the in-memory store.
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Server.Env = "development"
	cfg.Server.APIPrefix = "/make-server-ef402f1d"
	cfg.Server.ShutdownTimeout = 10 * time.Second

	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.CORS.MaxAge = 600

	cfg.Store.Type = "memory"
	cfg.Store.Table = "kv_store"
	cfg.Store.Mongo.Database = "letify"
	cfg.Store.Mongo.Collection = "kv_store"

	cfg.Auth.Mode = "remote"
	cfg.Auth.Timeout = 10 * time.Second

	cfg.Email.Provider = "resend"
	cfg.Email.BaseURL = "https://api.resend.com"
	cfg.Email.From = "Letify Realty <onboarding@resend.dev>"
	cfg.Email.NotifyTo = "info@letifyrealty.com"
	cfg.Email.MaxInFlight = 8
	cfg.Email.Timeout = 15 * time.Second
	cfg.Email.SMTP.Port = 587

	cfg.Notifications.SweepInterval = time.Hour

	return &cfg
}

// Load reads the YAML file at path (if it exists) over the defaults and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("config file %s not found, using defaults and environment", path)
	default:
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads from CONFIG_PATH (default config/config.yaml).
func LoadConfig() (*Config, error) {
	return Load(getEnvOrDefault("CONFIG_PATH", "config/config.yaml"))
}

// Validate rejects settings the app cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	switch c.Store.Type {
	case "memory", "postgres", "mysql", "redis", "mongo":
	default:
		return fmt.Errorf("unknown store.type %q", c.Store.Type)
	}
	switch c.Auth.Mode {
	case "remote":
		if c.Auth.ProviderURL == "" {
			return errors.New("auth.provider_url is required in remote mode")
		}
	case "jwt":
		if c.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret is required in jwt mode")
		}
	default:
		return fmt.Errorf("unknown auth.mode %q", c.Auth.Mode)
	}
	switch c.Email.Provider {
	case "resend", "smtp", "log":
	default:
		return fmt.Errorf("unknown email.provider %q", c.Email.Provider)
	}
	return nil
}

// IsDevelopment reports whether the server runs with development logging.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func applyEnv(cfg *Config) {
	cfg.Server.Host = getEnvOrDefault("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvAsIntOrDefault("SERVER_PORT", cfg.Server.Port)
	cfg.Server.Env = getEnvOrDefault("SERVER_ENV", cfg.Server.Env)
	cfg.Server.APIPrefix = getEnvOrDefault("API_PREFIX", cfg.Server.APIPrefix)

	cfg.Store.Type = getEnvOrDefault("STORE_TYPE", cfg.Store.Type)
	cfg.Store.DSN = getEnvOrDefault("DATABASE_URL", cfg.Store.DSN)
	cfg.Store.Redis.Addr = getEnvOrDefault("REDIS_ADDR", cfg.Store.Redis.Addr)
	cfg.Store.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", cfg.Store.Redis.Password)
	cfg.Store.Mongo.URI = getEnvOrDefault("MONGO_URI", cfg.Store.Mongo.URI)

	cfg.Auth.Mode = getEnvOrDefault("AUTH_MODE", cfg.Auth.Mode)
	cfg.Auth.ProviderURL = getEnvOrDefault("AUTH_PROVIDER_URL", cfg.Auth.ProviderURL)
	cfg.Auth.APIKey = getEnvOrDefault("AUTH_API_KEY", cfg.Auth.APIKey)
	cfg.Auth.ServiceKey = getEnvOrDefault("AUTH_SERVICE_KEY", cfg.Auth.ServiceKey)
	cfg.Auth.JWTSecret = getEnvOrDefault("JWT_SECRET", cfg.Auth.JWTSecret)
	if v := os.Getenv("ADMIN_EMAILS"); v != "" {
		cfg.Auth.AdminEmails = splitList(v)
	}

	cfg.Email.Provider = getEnvOrDefault("EMAIL_PROVIDER", cfg.Email.Provider)
	cfg.Email.APIKey = getEnvOrDefault("RESEND_API_KEY", cfg.Email.APIKey)
	cfg.Email.From = getEnvOrDefault("EMAIL_FROM", cfg.Email.From)
	cfg.Email.NotifyTo = getEnvOrDefault("EMAIL_NOTIFY_TO", cfg.Email.NotifyTo)
	cfg.Email.SMTP.Host = getEnvOrDefault("SMTP_HOST", cfg.Email.SMTP.Host)
	cfg.Email.SMTP.Port = getEnvAsIntOrDefault("SMTP_PORT", cfg.Email.SMTP.Port)
	cfg.Email.SMTP.Username = getEnvOrDefault("SMTP_USERNAME", cfg.Email.SMTP.Username)
	cfg.Email.SMTP.Password = getEnvOrDefault("SMTP_PASSWORD", cfg.Email.SMTP.Password)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("invalid integer in %s=%q, using %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
