package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string
	CORSOrigins []string

	MySQLDSN    string
	AutoMigrate bool
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	PageTTL     time.Duration

	MockPatternsFile string
	PublishWorkers   int
	PublishSchedule  string

	APIBase        string
	ClientRPS      float64
	RequestTimeout time.Duration
}

// Load reads the environment, after merging a .env file when one exists.
// An empty MYSQL_DSN selects the in-memory store; an empty REDIS_ADDR
// disables publishing.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("invalid integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),

		MySQLDSN:    os.Getenv("MYSQL_DSN"),
		AutoMigrate: boolEnv("DB_AUTOMIGRATE", false),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		PageTTL:     time.Duration(atoi("PAGE_TTL_SECONDS", 0)) * time.Second,

		MockPatternsFile: os.Getenv("MOCK_PATTERNS_FILE"),
		PublishWorkers:   atoi("PUBLISH_WORKERS", 4),
		PublishSchedule:  os.Getenv("PUBLISH_SCHEDULE"),

		APIBase:        env("API_BASE_URL", "http://localhost:8080"),
		ClientRPS:      floatEnv("CLIENT_RPS", 5),
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
	}
	if c.MySQLDSN == "" {
		log.Warn().Msg("MYSQL_DSN is empty; using in-memory store")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func boolEnv(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func floatEnv(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
