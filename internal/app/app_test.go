package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/hitoshi/saathi/internal/model"
)

func TestInit_LoadsDefaultsAndSetsUpLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := Init(&buf)

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.DefaultLanguage != model.LanguageEnglish {
		t.Errorf("DefaultLanguage = %q, want en", cfg.DefaultLanguage)
	}
}

func TestInit_RespectsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DEFAULT_LANGUAGE", "hi")

	var buf bytes.Buffer
	cfg := Init(&buf)

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.DefaultLanguage != model.LanguageHindi {
		t.Errorf("DefaultLanguage = %q, want hi", cfg.DefaultLanguage)
	}
}

func TestInit_LoggerWritesJSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf)

	// Initの後にslogで書いたログはJSONとしてwriterに出る
	// （ここではInit自体はログを出さないので明示的に書く）
	logLine := struct {
		Level string `json:"level"`
		Msg   string `json:"msg"`
	}{}

	// slog.Defaultがbufに向いていることを確認
	slog.Info("wiring check")

	if err := json.Unmarshal(buf.Bytes(), &logLine); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if logLine.Msg != "wiring check" {
		t.Errorf("msg = %q, want %q", logLine.Msg, "wiring check")
	}
}

func TestRunHealthcheck_NoServer_ReturnsError(t *testing.T) {
	// 未使用ポートに対するヘルスチェックは失敗する
	if err := runHealthcheck("1"); err == nil {
		t.Error("expected error for unreachable server")
	}
}
