package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr: got %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.Environment != EnvDevelopment {
		t.Errorf("Environment: got %q, want %q", cfg.Environment, EnvDevelopment)
	}
	if cfg.ProcessingDelay != 5*time.Second {
		t.Errorf("ProcessingDelay: got %v, want 5s", cfg.ProcessingDelay)
	}
	if cfg.ServiceName == "" {
		t.Error("ServiceName must have a default")
	}
}

func TestLoad_envOverride(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("PROCESSING_DELAY", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr: got %q, want %q", cfg.HTTPAddr, ":9999")
	}
	if cfg.ProcessingDelay != 250*time.Millisecond {
		t.Errorf("ProcessingDelay: got %v, want 250ms", cfg.ProcessingDelay)
	}
}

func TestValidateForProduction(t *testing.T) {
	t.Run("non-production is a no-op", func(t *testing.T) {
		cfg := &Config{Environment: EnvDevelopment, CORSAllowedOrigins: "*", LogLevel: "debug"}
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects wildcard CORS and debug log", func(t *testing.T) {
		cfg := &Config{
			Environment:        EnvProduction,
			CORSAllowedOrigins: "*",
			LogLevel:           "debug",
			ProcessingDelay:    time.Second,
		}
		err := ValidateForProduction(cfg)
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") || !strings.Contains(err.Error(), "LOG_LEVEL") {
			t.Errorf("expected both violations named, got: %v", err)
		}
	})

	t.Run("rejects non-positive processing delay", func(t *testing.T) {
		cfg := &Config{
			Environment:        EnvProduction,
			CORSAllowedOrigins: "https://app.example.com",
			LogLevel:           "info",
			ProcessingDelay:    0,
		}
		if err := ValidateForProduction(cfg); err == nil {
			t.Fatal("expected error for zero delay")
		}
	})

	t.Run("passes with safe settings", func(t *testing.T) {
		cfg := &Config{
			Environment:        EnvProduction,
			CORSAllowedOrigins: "https://app.example.com",
			LogLevel:           "info",
			ProcessingDelay:    5 * time.Second,
		}
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
