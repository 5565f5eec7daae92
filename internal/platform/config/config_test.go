package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadReadsYAML(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "")
	t.Setenv(EnvMongoURI, "")
	path := writeConfig(t, `
mode: dev
server:
  addr: ":9090"
database:
  driver: sqlite
  url: "file:test.db"
hours:
  break_minutes: 30
  weekly_target: 36
  monthly_target: 156
  month_policy: weekly
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != ModeDev || cfg.Server.Addr != ":9090" {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
	if cfg.DB.Driver != DriverSQLite || cfg.DB.URL != "file:test.db" {
		t.Fatalf("unexpected db config: %+v", cfg.DB)
	}
	if cfg.Hours.BreakMinutes != 30 || cfg.Hours.MonthPolicy != "weekly" {
		t.Fatalf("unexpected hours config: %+v", cfg.Hours)
	}
}

func TestLoadEnvOverridesURL(t *testing.T) {
	t.Setenv(EnvMongoURI, "")
	t.Setenv(EnvDatabaseURL, "mongodb://localhost:27017")
	path := writeConfig(t, "database:\n  driver: mysql\n  url: \"user:pw@tcp(db:3306)/hours\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DB.URL != "mongodb://localhost:27017" {
		t.Fatalf("env did not override url: %q", cfg.DB.URL)
	}
	if cfg.DB.Driver != DriverMongo {
		t.Fatalf("driver = %q, want %q", cfg.DB.Driver, DriverMongo)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "")
	t.Setenv(EnvMongoURI, "mongodb://localhost:27017")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Hours.BreakMinutes != 24 || cfg.Hours.WeeklyTarget != 40 {
		t.Fatalf("defaults not applied: %+v", cfg.Hours)
	}
}

func TestLoadWithoutConnectionStringFails(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "")
	t.Setenv(EnvMongoURI, "")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrNoConnectionString) {
		t.Fatalf("expected ErrNoConnectionString, got %v", err)
	}
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	cfg := Default()
	cfg.DB.URL = "mongodb://localhost"
	cfg.Mode = "staging"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
