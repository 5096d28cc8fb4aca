package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BaseURL != "https://pt.wikipedia.org" {
		t.Errorf("BaseURL = %q, want %q", config.BaseURL, "https://pt.wikipedia.org")
	}
	if config.ContentID != "mw-content-text" {
		t.Errorf("ContentID = %q, want %q", config.ContentID, "mw-content-text")
	}
	if config.Pause != time.Second {
		t.Errorf("Pause = %s, want 1s", config.Pause)
	}
	if config.Timeout != 0 {
		t.Errorf("Timeout = %s, want 0", config.Timeout)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") failed: %v", err)
	}
	if config.Locale != DefaultLocale {
		t.Errorf("Locale = %q, want %q", config.Locale, DefaultLocale)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
content_id: bodyContent
pause: 2s
timeout: 30s
detect_language: true
history: false
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.ContentID != "bodyContent" {
		t.Errorf("ContentID = %q, want %q", config.ContentID, "bodyContent")
	}
	if config.Pause != 2*time.Second {
		t.Errorf("Pause = %s, want 2s", config.Pause)
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", config.Timeout)
	}
	if !config.DetectLanguage {
		t.Error("DetectLanguage = false, want true")
	}
	if config.History {
		t.Error("History = true, want false")
	}
	// Untouched fields keep their defaults.
	if config.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default", config.UserAgent)
	}
}

func TestLoadConfig_LocaleMovesBaseURL(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, "locale: en\n"))
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.BaseURL != "https://en.wikipedia.org" {
		t.Errorf("BaseURL = %q, want %q", config.BaseURL, "https://en.wikipedia.org")
	}

	config, err = LoadConfig(writeConfig(t, "locale: en\nbase_url: http://mirror.local\n"))
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.BaseURL != "http://mirror.local" {
		t.Errorf("BaseURL = %q, want explicit base_url kept", config.BaseURL)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"short pause", "pause: 100ms\n", "pause must be at least"},
		{"negative timeout", "timeout: -1s\n", "timeout must not be negative"},
		{"empty content id", "content_id: \"\"\n", "content_id is required"},
		{"bad yaml", "pause: [\n", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() = nil error, want error")
	}
}

func TestSetLocale(t *testing.T) {
	config := DefaultConfig()
	config.SetLocale("es")
	if config.BaseURL != "https://es.wikipedia.org" {
		t.Errorf("BaseURL = %q, want %q", config.BaseURL, "https://es.wikipedia.org")
	}

	config.SetLocale("  ")
	if config.Locale != "es" {
		t.Errorf("Locale = %q, want blank locale ignored", config.Locale)
	}
}
