package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env             string
	HTTPPort        string
	ProxyURL        string
	SheetCSVURL     string
	WebAppURL       string
	RefreshInterval time.Duration
	FetchTimeout    time.Duration
	QueueBackend    string
	QueueKey        string
	RedisAddr       string
	RateLimitPerMin int
}

// Load returns application config populated from the environment with
// sensible defaults. A .env file is honored when present.
func Load() App {
	_ = godotenv.Load()

	return App{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        getEnv("HTTP_PORT", "8082"),
		ProxyURL:        getEnv("PROXY_URL", ""),
		SheetCSVURL:     getEnv("SHEET_CSV_URL", ""),
		WebAppURL:       getEnv("WEBAPP_URL", ""),
		RefreshInterval: durationEnv("REFRESH_INTERVAL", time.Minute),
		FetchTimeout:    durationEnv("FETCH_TIMEOUT", 15*time.Second),
		QueueBackend:    getEnv("QUEUE_BACKEND", "redis"),
		QueueKey:        getEnv("QUEUE_KEY", "presensi:submissions"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 120),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			logrus.Warnf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		logrus.Warnf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
