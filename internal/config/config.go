package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Notification providers accepted by NOTIFY_PROVIDER.
const (
	NotifyProviderLog  = "log"
	NotifyProviderSES  = "ses"
	NotifyProviderSNS  = "sns"
	NotifyProviderNATS = "nats"
)

// Config holds runtime configuration values for the intake service.
type Config struct {
	AppName string
	AppEnv  string
	AppPort string

	// DatabaseURL selects the Postgres-backed store when set; the service
	// falls back to the in-memory store otherwise.
	DatabaseURL string
	// RedisURL backs the intake rate limiter when set.
	RedisURL string

	RateLimitMax    int
	RateLimitWindow time.Duration

	NotifyProvider  string
	NotifySubject   string
	NATSURL         string
	AWSRegion       string
	NotifyEmailFrom string
	NotifyEmailTo   string
	NotifySNSTopic  string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("INTAKE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Studio Intake API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("rate_limit.max", 20)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("notify.provider", NotifyProviderLog)
	v.SetDefault("notify.subject", "intake.submissions")
	v.SetDefault("nats.url", "nats://127.0.0.1:4222")
	v.SetDefault("aws.region", "us-east-1")

	windowString := v.GetString("rate_limit.window")
	window, err := time.ParseDuration(windowString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid rate limit window: %w", err)
	}

	cfg := Config{
		AppName:         v.GetString("app.name"),
		AppEnv:          v.GetString("app.env"),
		AppPort:         v.GetString("app.port"),
		DatabaseURL:     v.GetString("database.url"),
		RedisURL:        v.GetString("redis.url"),
		RateLimitMax:    v.GetInt("rate_limit.max"),
		RateLimitWindow: window,
		NotifyProvider:  strings.ToLower(v.GetString("notify.provider")),
		NotifySubject:   v.GetString("notify.subject"),
		NATSURL:         v.GetString("nats.url"),
		AWSRegion:       v.GetString("aws.region"),
		NotifyEmailFrom: v.GetString("notify.email_from"),
		NotifyEmailTo:   v.GetString("notify.email_to"),
		NotifySNSTopic:  v.GetString("notify.sns_topic"),
	}

	switch cfg.NotifyProvider {
	case NotifyProviderLog, NotifyProviderNATS:
	case NotifyProviderSES:
		if cfg.NotifyEmailFrom == "" || cfg.NotifyEmailTo == "" {
			return Config{}, fmt.Errorf("ses notifier requires notify email from/to addresses")
		}
	case NotifyProviderSNS:
		if cfg.NotifySNSTopic == "" {
			return Config{}, fmt.Errorf("sns notifier requires a topic arn")
		}
	default:
		return Config{}, fmt.Errorf("unknown notify provider %q", cfg.NotifyProvider)
	}

	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = 20
	}

	return cfg, nil
}
