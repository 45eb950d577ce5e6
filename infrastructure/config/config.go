// Package config loads application configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment names.
const (
	Development = "development"
	Production  = "production"
)

// Cache backend names.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig configures the response cache.
type CacheConfig struct {
	Backend       string        `yaml:"backend"`
	DefaultTTL    time.Duration `yaml:"-"`
	SweepInterval time.Duration `yaml:"-"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisDB       int           `yaml:"redis_db"`
}

// UnmarshalYAML accepts durations in Go syntax ("5m", "90s").
func (c *CacheConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Backend       string `yaml:"backend"`
		DefaultTTL    string `yaml:"default_ttl"`
		SweepInterval string `yaml:"sweep_interval"`
		RedisAddr     string `yaml:"redis_addr"`
		RedisDB       int    `yaml:"redis_db"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Backend != "" {
		c.Backend = raw.Backend
	}
	if raw.RedisAddr != "" {
		c.RedisAddr = raw.RedisAddr
	}
	if raw.RedisDB != 0 {
		c.RedisDB = raw.RedisDB
	}
	if raw.DefaultTTL != "" {
		d, err := time.ParseDuration(raw.DefaultTTL)
		if err != nil {
			return fmt.Errorf("parse cache default_ttl: %w", err)
		}
		c.DefaultTTL = d
	}
	if raw.SweepInterval != "" {
		d, err := time.ParseDuration(raw.SweepInterval)
		if err != nil {
			return fmt.Errorf("parse cache sweep_interval: %w", err)
		}
		c.SweepInterval = d
	}
	return nil
}

// InventoryConfig configures stock alerting.
type InventoryConfig struct {
	LowStockThreshold int `yaml:"low_stock_threshold"`
}

// Config holds all application configuration.
type Config struct {
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`
	LogLevel      string `yaml:"log_level"`

	JWTSecret  string `yaml:"jwt_secret"`
	JWTIssuer  string `yaml:"jwt_issuer"`
	EnableAuth bool   `yaml:"enable_auth"`
	EnableCORS bool   `yaml:"enable_cors"`

	Cache     CacheConfig     `yaml:"cache"`
	Inventory InventoryConfig `yaml:"inventory"`
}

// Load reads configuration: defaults, then the YAML file at path (if any),
// then environment variable overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ServerAddress: ":8080",
		Environment:   Development,
		LogLevel:      "info",
		JWTIssuer:     "pos-backend",
		EnableAuth:    true,
		EnableCORS:    true,
		Cache: CacheConfig{
			Backend:       CacheBackendMemory,
			DefaultTTL:    5 * time.Minute,
			SweepInterval: time.Minute,
			RedisAddr:     "localhost:6379",
		},
		Inventory: InventoryConfig{
			LowStockThreshold: 10,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.JWTIssuer = getEnv("JWT_ISSUER", c.JWTIssuer)
	c.EnableAuth = getEnvBool("ENABLE_AUTH", c.EnableAuth)
	c.EnableCORS = getEnvBool("ENABLE_CORS", c.EnableCORS)

	c.Cache.Backend = getEnv("CACHE_BACKEND", c.Cache.Backend)
	c.Cache.DefaultTTL = getEnvDuration("CACHE_DEFAULT_TTL", c.Cache.DefaultTTL)
	c.Cache.SweepInterval = getEnvDuration("CACHE_SWEEP_INTERVAL", c.Cache.SweepInterval)
	c.Cache.RedisAddr = getEnv("CACHE_REDIS_ADDR", c.Cache.RedisAddr)
	c.Cache.RedisDB = getEnvInt("CACHE_REDIS_DB", c.Cache.RedisDB)

	c.Inventory.LowStockThreshold = getEnvInt("LOW_STOCK_THRESHOLD", c.Inventory.LowStockThreshold)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("invalid cache backend: %q", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheBackendRedis && c.Cache.RedisAddr == "" {
		return fmt.Errorf("CACHE_REDIS_ADDR is required for the redis cache backend")
	}
	if c.Cache.DefaultTTL <= 0 {
		return fmt.Errorf("cache default TTL must be positive")
	}
	if c.Cache.SweepInterval <= 0 {
		return fmt.Errorf("cache sweep interval must be positive")
	}
	if c.Inventory.LowStockThreshold < 0 {
		return fmt.Errorf("low stock threshold cannot be negative")
	}
	if c.IsProduction() && c.EnableAuth && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
