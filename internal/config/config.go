package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	WebhookSecret      string
	WebhookTolerance   time.Duration
	AdminToken         string
	CORSAllowedOrigins []string
	LogLevel           slog.Level
	ShutdownTimeout    time.Duration
}

const (
	defaultRunAddress       = ":8080"
	defaultDotenvPath       = ".env"
	defaultLogLevel         = "info"
	defaultWebhookTolerance = 5 * time.Minute
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from flags, environment variables and an optional dotenv file.
func Load() (*Config, error) {
	lookup, err := withDotenv(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	return load(os.Args[1:], lookup)
}

type envLookup func(string) (string, bool)

// withDotenv falls back to values from the dotenv file when the process
// environment does not define a key.
func withDotenv(primary envLookup) (envLookup, error) {
	path := getString(primary, "DOTENV_PATH", defaultDotenvPath)
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return primary, nil
		}
		return nil, fmt.Errorf("read dotenv %s: %w", path, err)
	}
	return func(key string) (string, bool) {
		if v, ok := primary(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		WebhookSecret:    getString(lookup, "STRIPE_WEBHOOK_SECRET", ""),
		WebhookTolerance: getDuration(lookup, "WEBHOOK_TOLERANCE", defaultWebhookTolerance),
		AdminToken:       getString(lookup, "ADMIN_API_TOKEN", ""),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	flags := flag.NewFlagSet("storeadmin", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		toleranceStr       = cfg.WebhookTolerance.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		originsStr         = getString(lookup, "CORS_ALLOWED_ORIGINS", "")
		logLevelStr        = getString(lookup, "LOG_LEVEL", defaultLogLevel)
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL or SQLite DSN")
	flags.StringVar(&cfg.WebhookSecret, "webhook-secret", cfg.WebhookSecret, "Stripe webhook signing secret")
	flags.StringVar(&toleranceStr, "webhook-tolerance", toleranceStr, "Maximum accepted webhook signature age")
	flags.StringVar(&cfg.AdminToken, "admin-token", cfg.AdminToken, "Bearer token or its bcrypt hash for the admin order API")
	flags.StringVar(&originsStr, "cors-origins", originsStr, "Comma separated origins allowed to call the admin API")
	flags.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level: debug, info, warn or error")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.WebhookTolerance, err = time.ParseDuration(toleranceStr); err != nil {
		return nil, fmt.Errorf("invalid webhook tolerance: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if secretFile, ok := lookup("STRIPE_WEBHOOK_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read webhook secret file: %w", err)
		}
		cfg.WebhookSecret = strings.TrimSpace(string(content))
	}

	cfg.CORSAllowedOrigins = splitList(originsStr)

	if cfg.WebhookTolerance <= 0 {
		cfg.WebhookTolerance = defaultWebhookTolerance
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.WebhookSecret == "" {
		return nil, fmt.Errorf("webhook secret must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
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
