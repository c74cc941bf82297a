package config

import "testing"

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "MONGO_URI", "MONGO_DB", "MONGO_COLL", "WIDGET_HTML", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	if cfg.Addr != ":8000" {
		t.Errorf("expected default addr :8000, got %q", cfg.Addr)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("unexpected default URI %q", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "newsdb" || cfg.MongoCollection != "news" {
		t.Errorf("unexpected database defaults %q/%q", cfg.MongoDatabase, cfg.MongoCollection)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.WidgetHTMLPath != "" || cfg.LogFile != "" {
		t.Error("expected optional paths to default empty")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "other")
	t.Setenv("MONGO_COLL", "articles")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := FromEnv()

	if cfg.Addr != ":9000" {
		t.Errorf("expected :9000, got %q", cfg.Addr)
	}
	if cfg.MongoURI != "mongodb://db:27017" {
		t.Errorf("expected override URI, got %q", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "other" || cfg.MongoCollection != "articles" {
		t.Errorf("expected overrides, got %q/%q", cfg.MongoDatabase, cfg.MongoCollection)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel)
	}
}
