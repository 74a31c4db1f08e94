package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the startup settings. It is built once by Load and never
// mutated afterwards.
type Config struct {
	APIBaseURL        string
	MaxRetries        int
	RetryDelay        time.Duration
	RequestTimeout    time.Duration
	RetryClientErrors bool
	RefreshInterval   time.Duration
	RateLimit         float64
	RateBurst         int
	CircuitBreaker    bool
	MetricsAddr       string
	LogFile           string
	LogLevel          string
}

const (
	defaultConfigPath = "~/.config/wbgnews/config.toml"
	defaultLogFile    = "~/.local/state/wbgnews/wbgnews.log"
	defaultAPIBaseURL = "http://127.0.0.1:5000"

	defaultMaxRetries     = 3
	defaultRetryDelay     = 1000 * time.Millisecond
	defaultRequestTimeout = 10 * time.Second
	defaultLogLevel       = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBaseURL:     defaultAPIBaseURL,
		MaxRetries:     defaultMaxRetries,
		RetryDelay:     defaultRetryDelay,
		RequestTimeout: defaultRequestTimeout,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
	}
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

type fileConfig struct {
	APIBaseURL        string  `toml:"api_base_url"`
	MaxRetries        *int    `toml:"max_retries"`
	RetryDelayMS      *int    `toml:"retry_delay_ms"`
	RequestTimeoutMS  *int    `toml:"request_timeout_ms"`
	RetryClientErrors bool    `toml:"retry_client_errors"`
	RefreshIntervalMS int     `toml:"refresh_interval_ms"`
	RateLimit         float64 `toml:"rate_limit"`
	RateBurst         int     `toml:"rate_burst"`
	CircuitBreaker    bool    `toml:"circuit_breaker"`
	MetricsAddr       string  `toml:"metrics_addr"`
	LogFile           string  `toml:"log_file"`
	LogLevel          string  `toml:"log_level"`
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if raw.MaxRetries != nil {
		cfg.MaxRetries = *raw.MaxRetries
	}
	if raw.RetryDelayMS != nil {
		cfg.RetryDelay = time.Duration(*raw.RetryDelayMS) * time.Millisecond
	}
	if raw.RequestTimeoutMS != nil {
		cfg.RequestTimeout = time.Duration(*raw.RequestTimeoutMS) * time.Millisecond
	}
	cfg.RetryClientErrors = raw.RetryClientErrors
	cfg.RefreshInterval = time.Duration(raw.RefreshIntervalMS) * time.Millisecond
	cfg.RateLimit = raw.RateLimit
	cfg.RateBurst = raw.RateBurst
	cfg.CircuitBreaker = raw.CircuitBreaker
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the client cannot run with.
func (c Config) Validate() error {
	var problems []string
	if c.MaxRetries < 0 {
		problems = append(problems, "max_retries must be >= 0")
	}
	if c.RetryDelay < 0 {
		problems = append(problems, "retry_delay_ms must be >= 0")
	}
	if c.RequestTimeout < 0 {
		problems = append(problems, "request_timeout_ms must be >= 0")
	}
	if c.RefreshInterval < 0 {
		problems = append(problems, "refresh_interval_ms must be >= 0")
	}
	if c.RateLimit < 0 {
		problems = append(problems, "rate_limit must be >= 0")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// AutoRefresh reports whether periodic refresh is enabled.
func (c Config) AutoRefresh() bool {
	return c.RefreshInterval > 0
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading "~" to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
