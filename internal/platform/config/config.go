package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	LogLevel      slog.Level
	JWTSecret     string
	JWTIssuer     string

	CORSAllowedOrigins []string
	RateLimit          string
	PosthogAPIKey      string
	PosthogEndpoint    string

	// Valuation engine
	DecimalWorkingPrecision int32
	InterpolatorConcurrency int
	TimelineDefaultDivision int
	MaxHistoryDivision      int

	// Rate caches
	CurrencyCacheTTL  time.Duration
	RateDatumCacheTTL time.Duration
	BaseRateCacheTTL  time.Duration
	CacheMaxEntries   int
}

const (
	defaultJWTSecret         = "a-very-secret-key-should-be-longer-and-random"
	defaultCurrencyCacheTTL  = 50 * time.Second
	defaultRateDatumCacheTTL = 50 * time.Second
	defaultBaseRateCacheTTL  = 10 * time.Minute
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "")
	viper.SetDefault("DECIMAL_WORKING_PRECISION", 32)
	viper.SetDefault("INTERPOLATOR_CONCURRENCY", 8)
	viper.SetDefault("TIMELINE_DEFAULT_DIVISION", 500)
	viper.SetDefault("MAX_HISTORY_DIVISION", 5000)
	viper.SetDefault("CURRENCY_CACHE_TTL", defaultCurrencyCacheTTL.String())
	viper.SetDefault("RATE_DATUM_CACHE_TTL", defaultRateDatumCacheTTL.String())
	viper.SetDefault("BASE_RATE_CACHE_TTL", defaultBaseRateCacheTTL.String())
	viper.SetDefault("CACHE_MAX_ENTRIES", 0)

	// Environment variables override both the defaults and the .env file.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = parseLogLevel(viper.GetString("LOG_LEVEL"))

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	cfg.DecimalWorkingPrecision = int32(positiveInt("DECIMAL_WORKING_PRECISION", 32))
	cfg.InterpolatorConcurrency = positiveInt("INTERPOLATOR_CONCURRENCY", 8)
	cfg.MaxHistoryDivision = positiveInt("MAX_HISTORY_DIVISION", 5000)
	cfg.TimelineDefaultDivision = positiveInt("TIMELINE_DEFAULT_DIVISION", 500)
	if cfg.TimelineDefaultDivision < 2 || cfg.TimelineDefaultDivision > cfg.MaxHistoryDivision {
		log.Printf("Warning: TIMELINE_DEFAULT_DIVISION (%d) outside [2, %d]. Defaulting to 500.\n", cfg.TimelineDefaultDivision, cfg.MaxHistoryDivision)
		cfg.TimelineDefaultDivision = 500
	}

	cfg.CurrencyCacheTTL = duration("CURRENCY_CACHE_TTL", defaultCurrencyCacheTTL)
	cfg.RateDatumCacheTTL = duration("RATE_DATUM_CACHE_TTL", defaultRateDatumCacheTTL)
	cfg.BaseRateCacheTTL = duration("BASE_RATE_CACHE_TTL", defaultBaseRateCacheTTL)
	cfg.CacheMaxEntries = viper.GetInt("CACHE_MAX_ENTRIES")
	if cfg.CacheMaxEntries < 0 {
		log.Printf("Warning: Invalid value for CACHE_MAX_ENTRIES (%d). Defaulting to unbounded.\n", cfg.CacheMaxEntries)
		cfg.CacheMaxEntries = 0
	}

	return cfg, nil
}

// duration reads a Go duration string, falling back to def on a bad value.
func duration(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func positiveInt(key string, def int) int {
	v := viper.GetInt(key)
	if v <= 0 {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %d.\n", key, viper.GetString(key), def)
		return def
	}
	return v
}

func parseLogLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", raw)
		return slog.LevelInfo
	}
	return level
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
