package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	// Log a test message
	Info("test message", "key", "value", "number", 42)

	// Parse JSON output
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	// Verify base attributes
	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}

	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}

	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}

	// Verify message
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}

	// Verify level
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}

	// Verify custom attributes
	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}

	if logEntry["number"] != float64(42) {
		t.Errorf("Expected number=42, got %v", logEntry["number"])
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	requestID := GetRequestID(ctx)
	if requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}

	if GetRequestID(context.Background()) != "" {
		t.Error("Expected empty request_id without one set")
	}
}

func TestFromContext_AddsRequestAndPlayer(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json", ServiceName: "svc"}, &buf)

	ctx := WithRequestID(context.Background(), "req-7")
	ForPlayer(ctx, "player-1").Debug("tapped")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry[AttrKeyRequestID] != "req-7" {
		t.Errorf("Expected request_id=req-7, got %v", logEntry[AttrKeyRequestID])
	}
	if logEntry[AttrKeyPlayerID] != "player-1" {
		t.Errorf("Expected player_id=player-1, got %v", logEntry[AttrKeyPlayerID])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	Info("hidden")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("Expected warn message in output: %q", out)
	}
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()

	if config.ServiceName == "" {
		t.Error("Expected non-empty service name")
	}

	if config.Level == "" {
		t.Error("Expected non-empty log level")
	}

	if config.Format == "" {
		t.Error("Expected non-empty format")
	}
}

func TestNewConfig_FillsEmptyFields(t *testing.T) {
	config := NewConfig("", "json", "", "", "production", false)

	if config.Level != LogLevelInfo {
		t.Errorf("Expected info level fallback, got %s", config.Level)
	}
	if config.Format != LogFormatJSON {
		t.Errorf("Expected explicit json format to be kept, got %s", config.Format)
	}
	if config.ServiceName != DefaultServiceName {
		t.Errorf("Expected %s service name, got %s", DefaultServiceName, config.ServiceName)
	}
	if config.Version != DefaultVersion {
		t.Errorf("Expected %s version, got %s", DefaultVersion, config.Version)
	}
	if config.Environment != "production" {
		t.Errorf("Expected production environment, got %s", config.Environment)
	}
}

func TestConfig_LogLevelAliases(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"warn":    "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
	}
	for level, want := range tests {
		if got := (Config{Level: level}).LogLevel().String(); got != want {
			t.Errorf("LogLevel(%q) = %s, want %s", level, got, want)
		}
	}
}
