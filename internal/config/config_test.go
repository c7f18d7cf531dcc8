package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Database.DBName != "retakereg" {
		t.Errorf("Database.DBName = %q, want %q", cfg.Database.DBName, "retakereg")
	}
	if cfg.Redis.Enabled {
		t.Error("Redis.Enabled = true, want false by default")
	}
	if cfg.Registration.LockWait != "3s" {
		t.Errorf("Registration.LockWait = %q, want %q", cfg.Registration.LockWait, "3s")
	}
	if cfg.Registration.PendingTTL != "72h" {
		t.Errorf("Registration.PendingTTL = %q, want %q", cfg.Registration.PendingTTL, "72h")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	content := `
server:
  port: "9090"
  mode: production
database:
  dbname: retakereg_test
registration:
  lock_wait: 5s
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Server.Mode != "production" {
		t.Errorf("Server.Mode = %q, want %q", cfg.Server.Mode, "production")
	}
	if cfg.Database.DBName != "retakereg_test" {
		t.Errorf("Database.DBName = %q, want %q", cfg.Database.DBName, "retakereg_test")
	}
	if cfg.Registration.LockWait != "5s" {
		t.Errorf("Registration.LockWait = %q, want %q", cfg.Registration.LockWait, "5s")
	}
	// Values the file does not mention keep their defaults.
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want default %q", cfg.Database.Host, "localhost")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("REGISTRATION_LOCK_WAIT", "10s")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "3000")
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("Database.MaxOpenConns = %d, want %d", cfg.Database.MaxOpenConns, 50)
	}
	if !cfg.Redis.Enabled {
		t.Error("Redis.Enabled = false, want true")
	}
	if cfg.Redis.URL != "redis://cache:6379/1" {
		t.Errorf("Redis.URL = %q, want %q", cfg.Redis.URL, "redis://cache:6379/1")
	}
	if cfg.Registration.LockWait != "10s" {
		t.Errorf("Registration.LockWait = %q, want %q", cfg.Registration.LockWait, "10s")
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad lock wait", "REGISTRATION_LOCK_WAIT", "soon"},
		{"bad pending ttl", "REGISTRATION_PENDING_TTL", "three days"},
		{"bad db max conns", "DB_MAX_OPEN_CONNS", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
				t.Errorf("LoadConfig() with %s=%q expected error, got nil", tt.key, tt.value)
			}
		})
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "secret"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "retakereg"
	cfg.Database.SSLMode = ""

	got := cfg.GetPostgresConnectionString()
	want := "postgres://app:secret@db:5433/retakereg?sslmode=disable"
	if got != want {
		t.Errorf("GetPostgresConnectionString() = %q, want %q", got, want)
	}
}
