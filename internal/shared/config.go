package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv           string
	HTTPAddr         string
	MetricsAddr      string
	MySQLDSN         string
	RedisAddr        string
	RedisDB          int
	RedisPass        string
	CacheTTL         time.Duration
	SessionTTL       time.Duration
	EmailDelay       time.Duration
	SMSDelay         time.Duration
	NotifyRPS        int
	NotifyFrom       string
	DispatchWorkers  int
	DispatchInterval time.Duration
	DispatchBatch    int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:           env("APP_ENV", "prod"),
		HTTPAddr:         env("HTTP_ADDR", ":8080"),
		MetricsAddr:      env("METRICS_ADDR", ":9100"),
		MySQLDSN:         env("MYSQL_DSN", "root:root@tcp(localhost:3306)/travelease?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:        env("REDIS_ADDR", "localhost:6379"),
		RedisPass:        env("REDIS_PASSWORD", ""),
		RedisDB:          atoi("REDIS_DB", 0),
		CacheTTL:         time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SessionTTL:       time.Duration(atoi("SESSION_TTL_SECONDS", 86400)) * time.Second,
		EmailDelay:       time.Duration(atoi("NOTIFY_EMAIL_DELAY_MS", 1000)) * time.Millisecond,
		SMSDelay:         time.Duration(atoi("NOTIFY_SMS_DELAY_MS", 800)) * time.Millisecond,
		NotifyRPS:        atoi("NOTIFY_RPS", 5),
		NotifyFrom:       env("NOTIFY_FROM", "travel09ease@gmail.com"),
		DispatchWorkers:  atoi("DISPATCH_WORKERS", 8),
		DispatchInterval: time.Duration(atoi("DISPATCH_INTERVAL_SECONDS", 30)) * time.Second,
		DispatchBatch:    atoi("DISPATCH_BATCH", 100),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
