package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.HTTPAddr != ":8000" {
		t.Errorf("unexpected http_addr: %q", cfg.HTTPAddr)
	}
	if cfg.MaxUploadBytes != 10*1024*1024 {
		t.Errorf("unexpected max_upload_bytes: %d", cfg.MaxUploadBytes)
	}
	if cfg.OCRLanguage != "eng" {
		t.Errorf("unexpected ocr_language: %q", cfg.OCRLanguage)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected shutdown_timeout: %v", cfg.ShutdownTimeout)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "http_addr: \":9000\"\nocr_language: deu\nmax_upload_bytes: 1024\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.HTTPAddr != ":9000" {
		t.Errorf("unexpected http_addr: %q", cfg.HTTPAddr)
	}
	if cfg.OCRLanguage != "deu" {
		t.Errorf("unexpected ocr_language: %q", cfg.OCRLanguage)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("unexpected max_upload_bytes: %d", cfg.MaxUploadBytes)
	}
	// Unset keys keep their defaults.
	if cfg.FrontendOrigin != "http://localhost:8501" {
		t.Errorf("unexpected frontend_origin: %q", cfg.FrontendOrigin)
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}

	for in, want := range cases {
		cfg := &Config{LogLevel: in}
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("level %q: expected %v, got %v", in, want, got)
		}
	}
}
