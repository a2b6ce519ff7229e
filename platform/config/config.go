// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// UploadConfig provides settings for file uploads.
type UploadConfig interface {
	GetMaxUploadBytes() int64
}

// RulesConfig provides settings for the business-rules file.
type RulesConfig interface {
	GetRulesPath() string
}

// ReportConfig provides settings for report derivations.
type ReportConfig interface {
	GetClosedCaseWindowMonths() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                    string
	HTTPAddr               string
	CORSAllowAll           bool
	CORSOrigins            []string
	MaxUploadBytes         int64
	RulesPath              string
	ClosedCaseWindowMonths int
}

// Load reads configuration from the environment, with .env support.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                    getEnv("APP_ENV", "development"),
		HTTPAddr:               getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:           corsAllowAll,
		CORSOrigins:            corsOrigins,
		MaxUploadBytes:         mustInt64(getEnv("MAX_UPLOAD_BYTES", "33554432")),
		RulesPath:              getEnv("RULES_PATH", "rules.yaml"),
		ClosedCaseWindowMonths: mustInt(getEnv("CLOSED_CASE_WINDOW_MONTHS", "6")),
	}

	return cfg, nil
}

// GetHTTPAddr returns the HTTP listen address.
func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }

// GetCORSAllowAll reports whether any origin is allowed.
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }

// GetCORSOrigins returns the allowed CORS origins.
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// GetMaxUploadBytes returns the maximum accepted upload size.
func (c *Config) GetMaxUploadBytes() int64 { return c.MaxUploadBytes }

// GetRulesPath returns the path of the business-rules YAML file.
func (c *Config) GetRulesPath() string { return c.RulesPath }

// GetClosedCaseWindowMonths returns the default trailing window for the
// closed-case report.
func (c *Config) GetClosedCaseWindowMonths() int { return c.ClosedCaseWindowMonths }

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func mustInt64(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
