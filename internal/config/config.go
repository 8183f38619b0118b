// Package config は環境変数からのアプリケーション設定読み込みを提供する。
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/hitoshi/saathi/internal/model"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
// 外部サービスへの接続を持たないため、必須環境変数はない。
type Config struct {
	// Server
	ServerPort string

	// Session
	SessionMaxAge int

	// Simulated latency
	AuthDelay      time.Duration
	AssistantDelay time.Duration

	// Rate Limit（req/min/user）
	RateLimitGeneral int
	RateLimitAuth    int

	// Presentation
	DefaultLanguage model.Language

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// すべての項目にデフォルト値があり、読み込みは失敗しない。
func Load() *Config {
	cfg := &Config{}

	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.SessionMaxAge = getEnvInt("SESSION_MAX_AGE", 86400)
	cfg.AuthDelay = getEnvDuration("AUTH_DELAY", time.Second)
	cfg.AssistantDelay = getEnvDuration("ASSISTANT_DELAY", time.Second)
	cfg.RateLimitGeneral = getEnvInt("RATE_LIMIT_GENERAL", 120)
	cfg.RateLimitAuth = getEnvInt("RATE_LIMIT_AUTH", 10)
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	lang := model.Language(getEnvString("DEFAULT_LANGUAGE", string(model.LanguageEnglish)))
	if !lang.IsValid() {
		lang = model.LanguageEnglish
	}
	cfg.DefaultLanguage = lang

	return cfg
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
