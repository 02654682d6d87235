package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Poller      PollerConfig
	Webhook     WebhookConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Path string
}

// PollerConfig controls the order poll cycle. IntervalSeconds trades
// notification latency against read load; 5 suits a live dashboard, 60 a
// background tab.
type PollerConfig struct {
	IntervalSeconds int
}

// WebhookConfig configures optional notification egress. Disabled when
// Endpoint is empty.
type WebhookConfig struct {
	Endpoint  string
	Secret    string
	TimeoutMS int
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("qadmin_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("go_env", "")
	v.SetDefault("qadmin_port", 8080)
	v.SetDefault("qadmin_db_path", "data/default")
	v.SetDefault("qadmin_poll_interval_seconds", 5)
	v.SetDefault("qadmin_notify_webhook_url", "")
	v.SetDefault("qadmin_notify_webhook_secret", "")
	v.SetDefault("qadmin_notify_timeout_ms", 10000)

	env := resolveEnvironment(v)
	port := v.GetInt("qadmin_port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid QADMIN_PORT: %d", port)
	}

	pollInterval := v.GetInt("qadmin_poll_interval_seconds")
	if pollInterval < 1 {
		pollInterval = 1
	}
	if pollInterval > 600 {
		pollInterval = 600
	}

	notifyTimeout := v.GetInt("qadmin_notify_timeout_ms")
	if notifyTimeout <= 0 {
		notifyTimeout = 10000
	}
	if notifyTimeout > 60000 {
		notifyTimeout = 60000
	}

	webhookEndpoint := strings.TrimSpace(v.GetString("qadmin_notify_webhook_url"))
	webhookSecret := strings.TrimSpace(v.GetString("qadmin_notify_webhook_secret"))
	if webhookEndpoint != "" && webhookSecret == "" {
		return Config{}, fmt.Errorf("QADMIN_NOTIFY_WEBHOOK_SECRET is required when a webhook URL is set")
	}

	cfg := Config{
		Environment: env,
		Server:      ServerConfig{Port: port},
		Database: DatabaseConfig{
			Path: strings.TrimSpace(v.GetString("qadmin_db_path")),
		},
		Poller: PollerConfig{IntervalSeconds: pollInterval},
		Webhook: WebhookConfig{
			Endpoint:  webhookEndpoint,
			Secret:    webhookSecret,
			TimeoutMS: notifyTimeout,
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/default"
	}

	return cfg, nil
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

// PollInterval returns the configured fetch period.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.Poller.IntervalSeconds) * time.Second
}

// WebhookTimeout returns the notification webhook request timeout.
func (c Config) WebhookTimeout() time.Duration {
	return time.Duration(c.Webhook.TimeoutMS) * time.Millisecond
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"qadmin_env", "app_env", "go_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
