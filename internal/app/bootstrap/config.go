package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration.
// It merges file defaults and environment overrides to support both local and deployed runs.
type Config struct {
	ServiceID string

	HTTPPort       int
	AllowedOrigins []string

	DatabaseURL string
	RedisURL    string

	JWTSecret string

	BcryptCost int

	TokenTTL        time.Duration
	LockoutDuration time.Duration
	FailedThreshold int

	CacheTTL            time.Duration
	ContactRecentWindow time.Duration

	UploadDir      string
	MaxUploadBytes int

	MaxDBConns int32

	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminName     string
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID             string   `yaml:"id"`
		HTTPPort       int      `yaml:"http_port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL string `yaml:"postgres_url"`
		RedisURL    string `yaml:"redis_url"`
	} `yaml:"dependencies"`
	Uploads struct {
		Dir          string `yaml:"dir"`
		MaxSizeBytes int    `yaml:"max_size_bytes"`
	} `yaml:"uploads"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// This order keeps local bootstrap simple while allowing environment-specific overrides.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:           "portfolio-backend",
		HTTPPort:            5000,
		AllowedOrigins:      []string{"*"},
		BcryptCost:          12,
		TokenTTL:            7 * 24 * time.Hour,
		LockoutDuration:     30 * time.Minute,
		FailedThreshold:     5,
		CacheTTL:            5 * time.Minute,
		ContactRecentWindow: 7 * 24 * time.Hour,
		UploadDir:           "uploads",
		MaxUploadBytes:      10 << 20,
		MaxDBConns:          20,
		SeedAdminName:       "Administrator",
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if len(f.Service.AllowedOrigins) > 0 {
			cfg.AllowedOrigins = f.Service.AllowedOrigins
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if f.Uploads.Dir != "" {
			cfg.UploadDir = f.Uploads.Dir
		}
		if f.Uploads.MaxSizeBytes > 0 {
			cfg.MaxUploadBytes = f.Uploads.MaxSizeBytes
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.JWTSecret = envOrDefault("JWT_SECRET", cfg.JWTSecret)
	cfg.AllowedOrigins = envCSV("ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.UploadDir = envOrDefault("UPLOAD_DIR", cfg.UploadDir)

	cfg.HTTPPort = envInt("HTTP_PORT", envInt("PORT", cfg.HTTPPort))
	cfg.BcryptCost = envInt("BCRYPT_ROUNDS", cfg.BcryptCost)
	cfg.FailedThreshold = envInt("FAILED_LOGIN_THRESHOLD", cfg.FailedThreshold)
	cfg.MaxUploadBytes = envInt("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))

	cfg.TokenTTL = time.Duration(envInt("TOKEN_EXPIRY_HOURS", int(cfg.TokenTTL.Hours()))) * time.Hour
	cfg.LockoutDuration = time.Duration(envInt("ACCOUNT_LOCKOUT_MINUTES", int(cfg.LockoutDuration.Minutes()))) * time.Minute
	cfg.CacheTTL = time.Duration(envInt("CACHE_TTL_SECONDS", int(cfg.CacheTTL.Seconds()))) * time.Second
	cfg.ContactRecentWindow = time.Duration(envInt("CONTACT_RECENT_DAYS", int(cfg.ContactRecentWindow.Hours()/24))) * 24 * time.Hour

	cfg.SeedAdminEmail = envOrDefault("ADMIN_EMAIL", cfg.SeedAdminEmail)
	cfg.SeedAdminPassword = envOrDefault("ADMIN_PASSWORD", cfg.SeedAdminPassword)
	cfg.SeedAdminName = envOrDefault("ADMIN_NAME", cfg.SeedAdminName)

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}
	// Tokens cannot be signed or verified without a process-wide secret, so
	// refusing to start beats issuing tokens nobody can trust.
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return Config{}, fmt.Errorf("missing JWT_SECRET")
	}

	return cfg, nil
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with safe fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// envCSV parses comma-separated env vars and removes empty segments.
func envCSV(name string, fallback []string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	parts := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	if len(parts) == 0 {
		return fallback
	}
	return parts
}
