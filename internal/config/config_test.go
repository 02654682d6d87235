package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("QADMIN_ENV", "dev")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "data/default" {
		t.Fatalf("expected default db path, got %q", cfg.Database.Path)
	}
	if cfg.PollInterval() != 5*time.Second {
		t.Fatalf("expected default 5s poll interval, got %v", cfg.PollInterval())
	}
	if !cfg.IsLocalDevelopment() {
		t.Fatal("expected dev to count as local development")
	}
}

func TestLoadClampsPollInterval(t *testing.T) {
	t.Setenv("QADMIN_POLL_INTERVAL_SECONDS", "100000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PollInterval() != 600*time.Second {
		t.Fatalf("expected clamp to 600s, got %v", cfg.PollInterval())
	}

	t.Setenv("QADMIN_POLL_INTERVAL_SECONDS", "0")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PollInterval() != time.Second {
		t.Fatalf("expected clamp to 1s, got %v", cfg.PollInterval())
	}
}

func TestLoadRecognizesSlowPollingConfiguration(t *testing.T) {
	t.Setenv("QADMIN_POLL_INTERVAL_SECONDS", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PollInterval() != time.Minute {
		t.Fatalf("expected 60s interval, got %v", cfg.PollInterval())
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("QADMIN_PORT", "70000")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestLoadRequiresSecretWithWebhookURL(t *testing.T) {
	t.Setenv("QADMIN_NOTIFY_WEBHOOK_URL", "https://hooks.example.local/notify")
	t.Setenv("QADMIN_NOTIFY_WEBHOOK_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for webhook URL without secret")
	}
}
