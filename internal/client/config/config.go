package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/bookstore/internal/client/api"
	"github.com/dmitrijs2005/bookstore/internal/client/storage"
	"github.com/dmitrijs2005/bookstore/internal/flagx"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BOOKSTORE_"

// Config holds runtime settings for the bookstore CLI.
//
// Units: RequestTimeout is a time.Duration (e.g., 30*time.Second).
type Config struct {
	BaseURL        string        `env:"BASE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StorageDriver selects the local state backend: sqlite, redis or memory.
	StorageDriver string      `env:"STORAGE_DRIVER"`
	DBPath        string      `env:"DB_PATH"`
	Redis         RedisConfig `envPrefix:"REDIS_"`

	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`
	LogBackend string `env:"LOG_BACKEND"`

	// Language overrides the stored language preference when set.
	Language string `env:"LANGUAGE"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"`
	Prefix   string `env:"PREFIX"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = api.DefaultBaseURL
	c.RequestTimeout = api.DefaultTimeout
	c.StorageDriver = storage.DriverSQLite
	c.DBPath = "bookstore.db"
	c.Redis = RedisConfig{Addr: "127.0.0.1:6379", Prefix: "bookstore"}
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.LogBackend = "slog"
}

// Validate rejects settings the client cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base url %q", c.BaseURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	switch c.StorageDriver {
	case storage.DriverSQLite, storage.DriverRedis, storage.DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	return nil
}

// StorageOptions maps the storage settings onto storage.Options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Driver: c.StorageDriver,
		DSN:    c.DBPath,
		Redis: storage.RedisOptions{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		},
	}
}

// Flags lists every command-line flag the config layer owns, so callers can
// split them off before handing the rest to the command tree.
func Flags() []string {
	return append(append([]string{}, flagx.ConfigFlags...), settingFlags...)
}

// dotEnvFile is loaded into the environment if it exists.
var dotEnvFile = ".env"

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, flagx.ConfigPath(args)); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, dotEnvFile); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
