package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "secret",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.CommentPolicy != "any" {
		t.Errorf("expected default comment policy any, got %q", cfg.CommentPolicy)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Weather.Timeout != 5*time.Second {
		t.Errorf("expected 5s weather timeout, got %v", cfg.Weather.Timeout)
	}
	if cfg.Mongo.Database != "todo_system" {
		t.Errorf("unexpected mongo database %q", cfg.Mongo.Database)
	}
	if cfg.Audit.Workers != 4 {
		t.Errorf("expected 4 audit workers, got %d", cfg.Audit.Workers)
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":     "secret",
		"PORT":           "9090",
		"JWT_TTL":        "90m",
		"COMMENT_POLICY": "managers",
		"LOG_PRETTY":     "true",
		"REDIS_DB":       "2",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if cfg.Port != "9090" || cfg.Auth.TokenTTL != 90*time.Minute || cfg.CommentPolicy != "managers" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.LogPretty || cfg.Redis.DB != 2 {
		t.Errorf("overrides not applied: pretty=%v redis db=%d", cfg.LogPretty, cfg.Redis.DB)
	}
}

func TestLoadWith_RequiresSecret(t *testing.T) {
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatal("expected an error without JWT_SECRET")
	}
}
