package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bookstore/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations go
// through timex.Duration so they can be written as "30s" or as nanoseconds.
type JsonConfig struct {
	BaseURL        string          `json:"base_url"`
	RequestTimeout timex.Duration  `json:"request_timeout"`
	StorageDriver  string          `json:"storage_driver"`
	DBPath         string          `json:"db_path"`
	Redis          JsonRedisConfig `json:"redis"`
	LogLevel       string          `json:"log_level"`
	LogFormat      string          `json:"log_format"`
	LogBackend     string          `json:"log_backend"`
	Language       string          `json:"language"`
}

type JsonRedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	Prefix   string `json:"prefix"`
}

// parseJson overlays cfg with the non-empty values of the JSON file at path.
// An empty path loads nothing.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	setString(&cfg.StorageDriver, jc.StorageDriver)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.Redis.Addr, jc.Redis.Addr)
	setString(&cfg.Redis.Password, jc.Redis.Password)
	if jc.Redis.DB != 0 {
		cfg.Redis.DB = jc.Redis.DB
	}
	setString(&cfg.Redis.Prefix, jc.Redis.Prefix)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.Language, jc.Language)

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
