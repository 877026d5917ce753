package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func parseLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	return logEntry
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info("test message")

	logEntry := parseLine(t, &buf)

	requiredFields := []string{"timestamp", "level", "message"}
	for _, field := range requiredFields {
		if _, ok := logEntry[field]; !ok {
			t.Errorf("JSON log missing required field %q", field)
		}
	}

	if logEntry["message"] != "test message" {
		t.Errorf("message = %v, want %q", logEntry["message"], "test message")
	}
	if logEntry["level"] != "info" {
		t.Errorf("level = %v, want %q", logEntry["level"], "info")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Info("should be filtered")
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %q", buf.String())
	}

	log.Warn("should appear")
	logEntry := parseLine(t, &buf)
	if logEntry["level"] != "warning" {
		t.Errorf("level = %v, want %q", logEntry["level"], "warning")
	}
}

func TestLogger_WithModule(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithModule("nlp").Info("test message")

	logEntry := parseLine(t, &buf)
	if module, ok := logEntry["module"].(string); !ok || module != "nlp" {
		t.Errorf("WithModule() module = %v, want %q", logEntry["module"], "nlp")
	}
}

func TestLogger_WithSessionID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithSessionID("sess-123").Info("test message")

	logEntry := parseLine(t, &buf)
	if sessionID, ok := logEntry["session_id"].(string); !ok || sessionID != "sess-123" {
		t.Errorf("WithSessionID() session_id = %v, want %q", logEntry["session_id"], "sess-123")
	}
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithError(errors.New("boom")).Error("operation failed")

	logEntry := parseLine(t, &buf)
	if errField, ok := logEntry["error"].(string); !ok || !strings.Contains(errField, "boom") {
		t.Errorf("WithError() error = %v, want to contain %q", logEntry["error"], "boom")
	}
}

func TestLogger_WithFieldsChaining(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithField("intent", "fee_payment").
		WithField("confidence", 0.8).
		Info("classified")

	logEntry := parseLine(t, &buf)
	if logEntry["intent"] != "fee_payment" {
		t.Errorf("intent = %v, want fee_payment", logEntry["intent"])
	}
	if logEntry["confidence"] != 0.8 {
		t.Errorf("confidence = %v, want 0.8", logEntry["confidence"])
	}
}

func TestNewWithOptions_NoToken(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions("info", &buf, Options{})

	log.Info("local only")

	logEntry := parseLine(t, &buf)
	if logEntry["message"] != "local only" {
		t.Errorf("message = %v, want %q", logEntry["message"], "local only")
	}

	// Shutdown is a no-op without remote shipping.
	if err := log.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v, want nil", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"invalid", "INFO"},
		{"", "INFO"},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input).String(); got != tt.want {
				t.Errorf("parseLevel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
