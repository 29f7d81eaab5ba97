// Package config loads the service configuration from environment variables.
//
// Every setting has a default suited to local development with SQLite. A value
// that is set but cannot be parsed is an error rather than a silent fallback,
// and Load reports all problems at once.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// CORSConfig lists the origins allowed to call the API from a browser.
// Empty means any origin (without credentials).
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig controls the HSTS header.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// DBConfig selects and locates the relational store.
type DBConfig struct {
	Driver string // DB_DRIVER: sqlite|postgres
	Path   string // DB_PATH, sqlite only
	URL    string // DATABASE_URL, postgres only
}

// GateConfig holds the public submission gate timings.
type GateConfig struct {
	StoreTimeout  time.Duration // STORE_TIMEOUT: claim+insert bound per submission
	ChallengeTTL  time.Duration // CHALLENGE_TTL: how long an issued challenge is answerable
	PurgeInterval time.Duration // PURGE_INTERVAL: expired challenge/session/idempotency sweep; 0 disables
}

// AdminConfig holds the single admin account.
type AdminConfig struct {
	Email        string        // ADMIN_EMAIL
	PasswordHash string        // ADMIN_PASSWORD_HASH (bcrypt)
	SessionTTL   time.Duration // ADMIN_SESSION_TTL
}

// OTELConfig configures trace export over OTLP/gRPC.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Config is the full service configuration.
type Config struct {
	Port              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	GinMode           string // debug|release|test

	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool
	SwaggerEnabled bool
	APIBasePath    string

	DB    DBConfig
	Gate  GateConfig
	Admin AdminConfig

	// General limiter applies to every route; the public one is layered on
	// top for the form posts.
	RateRPS         float64
	RateBurst       int
	PublicRateRPS   float64
	PublicRateBurst int

	CORS     CORSConfig
	Security SecurityConfig

	IdempotencyTTL time.Duration

	OTEL OTELConfig
}

// MustLoad is Load for main: it panics on an invalid environment.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the environment, applies defaults and validates the result.
func Load() (Config, error) {
	var e env
	cfg := Config{
		Port:              e.str("PORT", "8080"),
		ReadTimeout:       e.dur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: e.dur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      e.dur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       e.dur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    e.int("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(e.str("GIN_MODE", "release")),

		LogLevel:       strings.ToLower(e.str("LOG_LEVEL", "info")),
		LogPretty:      e.bool("LOG_PRETTY", false),
		SwaggerEnabled: e.bool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(e.str("API_BASE_PATH", "/api/v1")),

		DB: DBConfig{
			Driver: strings.ToLower(e.str("DB_DRIVER", "sqlite")),
			Path:   e.str("DB_PATH", "promo.db"),
			URL:    e.str("DATABASE_URL", ""),
		},
		Gate: GateConfig{
			StoreTimeout:  e.dur("STORE_TIMEOUT", 10*time.Second),
			ChallengeTTL:  e.dur("CHALLENGE_TTL", 15*time.Minute),
			PurgeInterval: e.dur("PURGE_INTERVAL", 10*time.Minute),
		},
		Admin: AdminConfig{
			Email:        strings.TrimSpace(e.str("ADMIN_EMAIL", "")),
			PasswordHash: e.str("ADMIN_PASSWORD_HASH", ""),
			SessionTTL:   e.dur("ADMIN_SESSION_TTL", 12*time.Hour),
		},

		RateRPS:         e.float("RATE_RPS", 5.0),
		RateBurst:       e.int("RATE_BURST", 10),
		PublicRateRPS:   e.float("PUBLIC_RATE_RPS", 0.2),
		PublicRateBurst: e.int("PUBLIC_RATE_BURST", 3),

		CORS: CORSConfig{AllowedOrigins: splitCSV(e.str("CORS_ALLOWED_ORIGINS", ""))},
		Security: SecurityConfig{
			EnableHSTS: e.bool("ENABLE_HSTS", false),
			HSTSMaxAge: e.dur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		IdempotencyTTL: e.dur("IDEMPOTENCY_TTL", 24*time.Hour),

		OTEL: OTELConfig{
			Enabled:     e.bool("OTEL_ENABLED", false),
			Endpoint:    e.str("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    e.bool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: e.str("OTEL_SERVICE_NAME", "promo-backend"),
			SampleRatio: e.float("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}

	return cfg, errors.Join(append(e.errs, cfg.validate()...)...)
}

func (c Config) validate() []error {
	var errs []error
	check := func(bad bool, msg string) {
		if bad {
			errs = append(errs, errors.New(msg))
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		errs = append(errs, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic"))
	}
	check(strings.TrimSpace(c.Port) == "", "PORT must not be empty")
	check(c.ReadTimeout <= 0 || c.ReadHeaderTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0,
		"server timeouts must be positive")
	check(c.MaxHeaderBytes <= 0, "MAX_HEADER_BYTES must be > 0")

	switch c.DB.Driver {
	case "sqlite":
		check(strings.TrimSpace(c.DB.Path) == "", "DB_PATH must not be empty")
	case "postgres":
		check(strings.TrimSpace(c.DB.URL) == "", "DATABASE_URL is required when DB_DRIVER=postgres")
	default:
		errs = append(errs, errors.New("DB_DRIVER must be one of: sqlite, postgres"))
	}

	check(c.Gate.StoreTimeout <= 0, "STORE_TIMEOUT must be > 0")
	check(c.Gate.ChallengeTTL <= 0, "CHALLENGE_TTL must be > 0")
	check(c.Gate.PurgeInterval < 0, "PURGE_INTERVAL must be >= 0")

	check(c.Admin.SessionTTL <= 0, "ADMIN_SESSION_TTL must be > 0")
	check((c.Admin.Email == "") != (c.Admin.PasswordHash == ""),
		"ADMIN_EMAIL and ADMIN_PASSWORD_HASH must be set together")

	check(c.RateRPS < 0 || c.PublicRateRPS < 0, "RATE_RPS and PUBLIC_RATE_RPS must be >= 0")
	check(c.RateBurst < 1 || c.PublicRateBurst < 1, "RATE_BURST and PUBLIC_RATE_BURST must be >= 1")
	check(c.Security.HSTSMaxAge < 0, "HSTS_MAX_AGE must be >= 0")
	check(c.IdempotencyTTL <= 0, "IDEMPOTENCY_TTL must be > 0")
	check(c.OTEL.SampleRatio < 0 || c.OTEL.SampleRatio > 1, "OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	return errs
}

// env reads typed values and remembers which ones failed to parse.
type env struct {
	errs []error
}

func (e *env) str(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func (e *env) int(k string, def int) int {
	return parse(e, k, def, strconv.Atoi)
}

func (e *env) float(k string, def float64) float64 {
	return parse(e, k, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

func (e *env) dur(k string, def time.Duration) time.Duration {
	return parse(e, k, def, time.ParseDuration)
}

func (e *env) bool(k string, def bool) bool {
	return parse(e, k, def, func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "1", "true", "yes", "y", "on":
			return true, nil
		case "0", "false", "no", "n", "off":
			return false, nil
		}
		return false, errors.New("not a boolean")
	})
}

func parse[T any](e *env, k string, def T, fn func(string) (T, error)) T {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	out, err := fn(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s=%q: %w", k, v, err))
		return def
	}
	return out
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures a leading '/' and strips trailing ones ("" and
// "/" both mean root).
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	return "/" + p
}
