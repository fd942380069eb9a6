// Package config loads runtime configuration for the bookstore CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. A .env file in the working directory, then BOOKSTORE_* environment
//     variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   catalog API base URL
//	-t int      request timeout (seconds)
//	-s string   storage driver: sqlite, redis or memory
//	-d string   sqlite database path
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://api.onsocloud.com",
//	  "request_timeout": "30s",
//	  "storage_driver": "redis",
//	  "redis": {"addr": "127.0.0.1:6379", "prefix": "bookstore"},
//	  "log_level": "debug"
//	}
//
// # Environment
//
//	BOOKSTORE_BASE_URL, BOOKSTORE_REQUEST_TIMEOUT, BOOKSTORE_STORAGE_DRIVER,
//	BOOKSTORE_DB_PATH, BOOKSTORE_REDIS_ADDR, BOOKSTORE_REDIS_PASSWORD,
//	BOOKSTORE_REDIS_DB, BOOKSTORE_REDIS_PREFIX, BOOKSTORE_LOG_LEVEL,
//	BOOKSTORE_LOG_FORMAT, BOOKSTORE_LOG_BACKEND, BOOKSTORE_LANGUAGE
package config
