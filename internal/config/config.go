package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Analysis limit bounds, mirroring what the screener UI allowed.
const (
	MinAnalysisLimit     = 10
	MaxAnalysisLimit     = 100
	DefaultAnalysisLimit = 30
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Logging   LoggingConfig
	Screener  ScreenerConfig
	Providers ProvidersConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level    string
	Outputs  []string // "console" and/or "file"
	FilePath string
}

// ScreenerConfig holds the analysis run policy
type ScreenerConfig struct {
	Limit      int           // number of receipts analyzed per run
	FetchDelay time.Duration // minimum pause between consecutive fundamentals fetches
	Periods    int           // statement periods retained per symbol
	Schedule   string        // cron spec for background refresh, empty disables it
	RunOnStart bool
}

// ProvidersConfig holds the upstream data source settings
type ProvidersConfig struct {
	ListURL       string
	YahooQueryURL string
	YahooSummary  string
	HTTPTimeout   time.Duration
	UserAgent     string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	limit, err := getEnvInt("SCREENER_LIMIT", DefaultAnalysisLimit)
	if err != nil {
		return nil, err
	}
	periods, err := getEnvInt("SCREENER_PERIODS", 5)
	if err != nil {
		return nil, err
	}
	delay, err := getEnvDuration("SCREENER_FETCH_DELAY", 2*time.Second)
	if err != nil {
		return nil, err
	}
	runOnStart, err := getEnvBool("SCREENER_RUN_ON_START", false)
	if err != nil {
		return nil, err
	}
	timeout, err := getEnvDuration("PROVIDER_HTTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Logging: LoggingConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Outputs:  splitList(getEnv("LOG_OUTPUTS", "console")),
			FilePath: getEnv("LOG_FILE", "logs/screener.log"),
		},
		Screener: ScreenerConfig{
			Limit:      ClampLimit(limit),
			FetchDelay: delay,
			Periods:    periods,
			Schedule:   getEnv("SCREENER_SCHEDULE", "@every 1h"),
			RunOnStart: runOnStart,
		},
		Providers: ProvidersConfig{
			ListURL:       getEnv("BRAPI_LIST_URL", "https://brapi.dev/api/quote/list"),
			YahooQueryURL: getEnv("YAHOO_TIMESERIES_URL", "https://query2.finance.yahoo.com"),
			YahooSummary:  getEnv("YAHOO_SUMMARY_URL", "https://query1.finance.yahoo.com"),
			HTTPTimeout:   timeout,
			UserAgent:     getEnv("PROVIDER_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
		},
	}

	if config.Screener.Periods < 2 {
		return nil, fmt.Errorf("SCREENER_PERIODS must be at least 2, got %d", config.Screener.Periods)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// ClampLimit keeps an analysis limit inside the supported range.
func ClampLimit(limit int) int {
	if limit < MinAnalysisLimit {
		return MinAnalysisLimit
	}
	if limit > MaxAnalysisLimit {
		return MaxAnalysisLimit
	}
	return limit
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
