package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

// TestSetup_JSONOutput はログがJSON形式で出力されることを検証する。
func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf)

	log.Info("test message", "patient_id", "patient1")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "test message" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["patient_id"] != "patient1" {
		t.Errorf("patient_id = %v", entry["patient_id"])
	}
}

// TestSetup_DebugSuppressed はInfoレベル設定でDebugが抑制されることを検証する。
func TestSetup_DebugSuppressed(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf)

	log.Debug("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected debug output to be suppressed, got %q", buf.String())
	}
}
