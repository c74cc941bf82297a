// Package config reads process configuration from the environment once at
// startup. The resulting struct is passed by injection and never mutated.
package config

import (
	"os"
	"strings"
)

// Config holds the process-wide settings fixed at startup.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	// WidgetHTMLPath overrides the widget template location; empty selects
	// the default.
	WidgetHTMLPath string

	LogLevel string
	// LogFile enables rotated file logging when non-empty.
	LogFile string
}

// FromEnv builds a Config from the environment, applying defaults for any
// unset variable.
func FromEnv() Config {
	return Config{
		Addr:            envOr("ADDR", ":8000"),
		MongoURI:        envOr("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   envOr("MONGO_DB", "newsdb"),
		MongoCollection: envOr("MONGO_COLL", "news"),
		WidgetHTMLPath:  strings.TrimSpace(os.Getenv("WIDGET_HTML")),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		LogFile:         strings.TrimSpace(os.Getenv("LOG_FILE")),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
