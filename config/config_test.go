package config

import (
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("setenv %s failed: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		}
	})
}

func TestLoadRequiresMySQLDSN(t *testing.T) {
	unsetEnv(t, "MYSQL_DSN")
	setEnv(t, "ADMIN_PASSWORD", "secret")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing MYSQL_DSN")
	}
}

func TestLoadRequiresAdminPassword(t *testing.T) {
	setEnv(t, "MYSQL_DSN", "user:pass@tcp(localhost:3306)/recharges")
	unsetEnv(t, "ADMIN_PASSWORD")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing ADMIN_PASSWORD")
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, "MYSQL_DSN", "user:pass@tcp(localhost:3306)/recharges")
	setEnv(t, "ADMIN_PASSWORD", "secret")
	unsetEnv(t, "HTTP_HOST")
	unsetEnv(t, "HTTP_PORT")
	unsetEnv(t, "ADMIN_USERNAME")
	unsetEnv(t, "MYSQL_MAX_OPEN_CONNS")
	unsetEnv(t, "NOTIFICATION_SESSION_BUFFER")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTP.Host != "0.0.0.0" || cfg.HTTP.Port != "8080" {
		t.Fatalf("unexpected HTTP defaults: %s:%s", cfg.HTTP.Host, cfg.HTTP.Port)
	}
	if cfg.Admin.Username != "admin" {
		t.Fatalf("expected default admin username, got %q", cfg.Admin.Username)
	}
	if cfg.Admin.Password != "secret" {
		t.Fatalf("expected admin password from env, got %q", cfg.Admin.Password)
	}
	if cfg.MySQL.MaxOpenConns != 10 {
		t.Fatalf("expected default max open conns 10, got %d", cfg.MySQL.MaxOpenConns)
	}
	if cfg.Notifications.SessionBuffer != 16 {
		t.Fatalf("expected default session buffer 16, got %d", cfg.Notifications.SessionBuffer)
	}
}

func TestLoadOverrides(t *testing.T) {
	setEnv(t, "MYSQL_DSN", "user:pass@tcp(localhost:3306)/recharges")
	setEnv(t, "ADMIN_PASSWORD", "secret")
	setEnv(t, "HTTP_PORT", "9000")
	setEnv(t, "MYSQL_CONN_MAX_LIFETIME_MINUTES", "5")
	setEnv(t, "SUPPORT_NUMBER", "+53-5-555-0000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTP.Port != "9000" {
		t.Fatalf("expected port 9000, got %s", cfg.HTTP.Port)
	}
	if cfg.MySQL.ConnMaxLifetime != 5*time.Minute {
		t.Fatalf("expected 5m lifetime, got %s", cfg.MySQL.ConnMaxLifetime)
	}
	if cfg.Support.Number != "+53-5-555-0000" {
		t.Fatalf("unexpected support number %q", cfg.Support.Number)
	}
}
