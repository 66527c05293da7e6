package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"ADVISOR_PORT", "ADVISOR_METRICS_PORT", "ADVISOR_ADMIN_TOKEN",
		"ADVISOR_DATABASE_URL", "ADVISOR_EVENTS_URL",
		"ADVISOR_RETENTION_MAX_AGE_DAYS", "ADVISOR_SWEEP_INTERVAL_MS",
		"ADVISOR_RATE_LIMIT_RPM", "ADVISOR_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Events.URL)
	}
	if cfg.Retention.MaxAgeDays != 90 {
		t.Errorf("expected retention 90 days, got %d", cfg.Retention.MaxAgeDays)
	}
	if cfg.RateLimit.RequestsPerMinute != 120 {
		t.Errorf("expected 120 rpm, got %d", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}

	weights := cfg.EngineWeights()
	if err := weights.Validate(); err != nil {
		t.Errorf("default weights invalid: %v", err)
	}
	if math.Abs(weights.Sum()-1.0) > 0.001 {
		t.Errorf("default weights sum to %f", weights.Sum())
	}

	b := cfg.EngineBaselines()
	if b.CostBaselinePerAcre != 200.0 {
		t.Errorf("expected cost baseline 200, got %f", b.CostBaselinePerAcre)
	}
	if b.SlopeThresholdPercent != 5.0 {
		t.Errorf("expected slope threshold 5, got %f", b.SlopeThresholdPercent)
	}

	if cfg.SweepInterval() != time.Hour {
		t.Errorf("expected 1h sweep interval, got %v", cfg.SweepInterval())
	}
	if cfg.RetentionAge() != 90*24*time.Hour {
		t.Errorf("expected 90 day retention, got %v", cfg.RetentionAge())
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADVISOR_PORT", "9100")
	t.Setenv("ADVISOR_METRICS_PORT", "9101")
	t.Setenv("ADVISOR_ADMIN_TOKEN", "secret-token")
	t.Setenv("ADVISOR_DATABASE_URL", "postgres://localhost/advisor_test")
	t.Setenv("ADVISOR_EVENTS_URL", "nats://nats:4222")
	t.Setenv("ADVISOR_RETENTION_MAX_AGE_DAYS", "30")
	t.Setenv("ADVISOR_RATE_LIMIT_RPM", "60")
	t.Setenv("ADVISOR_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9101 {
		t.Errorf("expected metrics port 9101, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token, got %q", cfg.Server.AdminToken)
	}
	if cfg.Database.URL != "postgres://localhost/advisor_test" {
		t.Errorf("expected database URL, got %q", cfg.Database.URL)
	}
	if cfg.Events.URL != "nats://nats:4222" {
		t.Errorf("expected events URL, got %q", cfg.Events.URL)
	}
	if cfg.Retention.MaxAgeDays != 30 {
		t.Errorf("expected retention 30, got %d", cfg.Retention.MaxAgeDays)
	}
	if cfg.RateLimit.RequestsPerMinute != 60 {
		t.Errorf("expected 60 rpm, got %d", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "advisor.yaml")
	body := `
server:
  port: 8800
scoring:
  baselines:
    cost_baseline_per_acre: 150
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8800 {
		t.Errorf("expected port 8800 from file, got %d", cfg.Server.Port)
	}
	if cfg.Scoring.Baselines.CostBaselinePerAcre != 150 {
		t.Errorf("expected baseline 150 from file, got %f", cfg.Scoring.Baselines.CostBaselinePerAcre)
	}
	// Unset file values keep defaults.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port, got %d", cfg.Server.MetricsPort)
	}
}

func TestLoadRejectsBadWeights(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "advisor.yaml")
	body := `
scoring:
  weights:
    cost_effectiveness: 0.9
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for weights not summing to 1.0")
	}
}
