package config

import (
	"testing"
	"time"

	"github.com/hitoshi/saathi/internal/model"
)

// TestLoad_Defaults は環境変数未設定時のデフォルト値を検証する。
func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %s, want 8080", cfg.ServerPort)
	}
	if cfg.SessionMaxAge != 86400 {
		t.Errorf("SessionMaxAge = %d, want 86400", cfg.SessionMaxAge)
	}
	if cfg.AuthDelay != time.Second {
		t.Errorf("AuthDelay = %s, want 1s", cfg.AuthDelay)
	}
	if cfg.AssistantDelay != time.Second {
		t.Errorf("AssistantDelay = %s, want 1s", cfg.AssistantDelay)
	}
	if cfg.RateLimitGeneral != 120 {
		t.Errorf("RateLimitGeneral = %d, want 120", cfg.RateLimitGeneral)
	}
	if cfg.RateLimitAuth != 10 {
		t.Errorf("RateLimitAuth = %d, want 10", cfg.RateLimitAuth)
	}
	if cfg.DefaultLanguage != model.LanguageEnglish {
		t.Errorf("DefaultLanguage = %s, want en", cfg.DefaultLanguage)
	}
	if cfg.CORSAllowedOrigin != "http://localhost:3000" {
		t.Errorf("CORSAllowedOrigin = %s", cfg.CORSAllowedOrigin)
	}
}

// TestLoad_Overrides は環境変数による上書きを検証する。
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AUTH_DELAY", "50ms")
	t.Setenv("RATE_LIMIT_GENERAL", "60")
	t.Setenv("DEFAULT_LANGUAGE", "hi")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %s, want 9090", cfg.ServerPort)
	}
	if cfg.AuthDelay != 50*time.Millisecond {
		t.Errorf("AuthDelay = %s, want 50ms", cfg.AuthDelay)
	}
	if cfg.RateLimitGeneral != 60 {
		t.Errorf("RateLimitGeneral = %d, want 60", cfg.RateLimitGeneral)
	}
	if cfg.DefaultLanguage != model.LanguageHindi {
		t.Errorf("DefaultLanguage = %s, want hi", cfg.DefaultLanguage)
	}
}

// TestLoad_InvalidValuesFallBack は不正な値がデフォルトに落ちることを検証する。
func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_MAX_AGE", "not-a-number")
	t.Setenv("ASSISTANT_DELAY", "soon")
	t.Setenv("DEFAULT_LANGUAGE", "fr")

	cfg := Load()

	if cfg.SessionMaxAge != 86400 {
		t.Errorf("SessionMaxAge = %d, want default", cfg.SessionMaxAge)
	}
	if cfg.AssistantDelay != time.Second {
		t.Errorf("AssistantDelay = %s, want default", cfg.AssistantDelay)
	}
	if cfg.DefaultLanguage != model.LanguageEnglish {
		t.Errorf("DefaultLanguage = %s, want english fallback", cfg.DefaultLanguage)
	}
}
