package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadContentServer_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadContentServer(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadContentServer() error = %v", err)
	}
	def := DefaultContentServer()
	if cfg.Port != def.Port || cfg.SessionTTLMinutes != def.SessionTTLMinutes {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadContentServer_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contentserver.yaml")
	raw := `
port: 9100
session_ttl_minutes: 60
content_cache_ttl_seconds: 5
database:
  host: db.internal
  dbname: slop
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadContentServer(path)
	if err != nil {
		t.Fatalf("LoadContentServer() error = %v", err)
	}
	if cfg.Port != 9100 {
		t.Errorf("Port = %d, want 9100", cfg.Port)
	}
	if cfg.SessionTTL() != time.Hour {
		t.Errorf("SessionTTL() = %v, want 1h", cfg.SessionTTL())
	}
	if cfg.ContentCacheTTL() != 5*time.Second {
		t.Errorf("ContentCacheTTL() = %v, want 5s", cfg.ContentCacheTTL())
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.DBName != "slop" {
		t.Errorf("database overrides not applied: %+v", cfg.Database)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want default 5432", cfg.Database.Port)
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", DBName: "db", SSLMode: "disable"}
	want := "postgres://u:p@h:5432/db?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
