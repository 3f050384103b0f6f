package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate runs the test from an empty directory with no user config
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.GinMode != "release" {
		t.Errorf("Server.GinMode = %q, want release", cfg.Server.GinMode)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want info/text", cfg.Log)
	}
	if cfg.App.TranslationDelay != time.Second {
		t.Errorf("App.TranslationDelay = %v, want 1s", cfg.App.TranslationDelay)
	}
	if cfg.App.DefaultLanguage != "German" {
		t.Errorf("App.DefaultLanguage = %q, want German", cfg.App.DefaultLanguage)
	}
	if cfg.App.SessionIdleTimeout != 30*time.Minute {
		t.Errorf("App.SessionIdleTimeout = %v, want 30m", cfg.App.SessionIdleTimeout)
	}
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := isolate(t)

	yaml := "server:\n  port: 9000\napp:\n  translationDelay: 250ms\n  defaultLanguage: French\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("REFUGE_CONNECT_LOG_FORMAT=json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("REFUGE_CONNECT_LOG_FORMAT") })
	t.Setenv("REFUGE_CONNECT_SERVER_PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want env override 9100", cfg.Server.Port)
	}
	if cfg.App.TranslationDelay != 250*time.Millisecond {
		t.Errorf("App.TranslationDelay = %v, want 250ms", cfg.App.TranslationDelay)
	}
	if cfg.App.DefaultLanguage != "French" {
		t.Errorf("App.DefaultLanguage = %q, want French", cfg.App.DefaultLanguage)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json from .env", cfg.Log.Format)
	}
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	dir := isolate(t)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for malformed config file")
	}
}

func TestConfig_GetServerAddr(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 8181}}
	if got := cfg.GetServerAddr(); got != ":8181" {
		t.Errorf("GetServerAddr() = %q, want %q", got, ":8181")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfig_NewLoggerFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		check  func(t *testing.T, out string)
	}{
		{
			name:   "json",
			format: "json",
			check: func(t *testing.T, out string) {
				var entry map[string]any
				if err := json.Unmarshal([]byte(out), &entry); err != nil {
					t.Fatalf("output is not JSON: %q", out)
				}
				if entry["msg"] != "hello" {
					t.Errorf("msg = %v, want hello", entry["msg"])
				}
			},
		},
		{
			name:   "text",
			format: "text",
			check: func(t *testing.T, out string) {
				if !strings.Contains(out, "msg=hello") {
					t.Errorf("output = %q, want text handler output", out)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &Config{Log: LogConfig{Level: "debug", Format: tt.format}}

			cfg.newLogger(&buf).Debug("hello")

			tt.check(t, buf.String())
		})
	}
}
