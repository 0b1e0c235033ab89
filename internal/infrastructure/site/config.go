// Package site handles loading and validating the site configuration.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the full configuration for the site
type Config struct {
	SiteName     string
	Port         string
	DatabaseType string // "sqlite" or "libsql"
	SQLitePath   string
	LibSQLURL    string
	LibSQLToken  string

	OpenAIAPIKey  string
	OpenAIBaseURL string

	JWTSecret      string
	AdminPassword  string
	EditorPassword string

	ResendAPIKey string
	EmailFrom    string
	EmailTo      string

	AllowedOrigins []string
}

// Load reads configuration from the environment.
func Load() *Config {
	cfg := &Config{
		SiteName:       getEnv("SITE_NAME", "Shanti Himalaya"),
		Port:           getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DATABASE_TYPE", "sqlite"),
		SQLitePath:     getEnv("SQLITE_PATH", ""),
		LibSQLURL:      os.Getenv("LIBSQL_DATABASE_URL"),
		LibSQLToken:    os.Getenv("LIBSQL_AUTH_TOKEN"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		EditorPassword: os.Getenv("EDITOR_PASSWORD"),
		ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
		EmailFrom:      getEnv("EMAIL_FROM", "noreply@shantihimalaya.com"),
		EmailTo:        os.Getenv("ENQUIRY_EMAIL_TO"),
	}

	if cfg.SQLitePath == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			cfg.SQLitePath = filepath.Join(homeDir, "shanti-go-server", "db", "shanti.db")
		} else {
			cfg.SQLitePath = "shanti.db"
		}
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	return cfg
}

// Validate fails fast on configuration the server cannot run without.
// The AI credential is checked here rather than at first use so a
// misconfigured deployment surfaces at startup, not mid-session.
func (c *Config) Validate() error {
	var missing []string

	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.AdminPassword == "" {
		missing = append(missing, "ADMIN_PASSWORD")
	}

	switch c.DatabaseType {
	case "sqlite":
		// nothing further
	case "libsql":
		if c.LibSQLURL == "" {
			missing = append(missing, "LIBSQL_DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown DATABASE_TYPE %q (want sqlite or libsql)", c.DatabaseType)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// DSN returns the driver name and data source for the configured database.
func (c *Config) DSN() (driver, dsn string) {
	if c.DatabaseType == "libsql" {
		dsn = c.LibSQLURL
		if c.LibSQLToken != "" {
			dsn = fmt.Sprintf("%s?authToken=%s", c.LibSQLURL, c.LibSQLToken)
		}
		return "libsql", dsn
	}
	return "sqlite3", c.SQLitePath
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
