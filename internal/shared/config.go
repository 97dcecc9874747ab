package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	SourceSynthetic = "synthetic"
	SourceMySQL     = "mysql"
	SourceRemote    = "remote"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string
	DataSource  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	RemoteBase  string
	RemoteKey   string
	RemoteRPS   int
	HotelCount  int
	Seed        int64
	BinWidth    int
	CacheTTL    time.Duration
	Workers     int
	BatchSize   int
}

// Load reads the environment, after merging an optional .env file that
// never overrides variables already set.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env could not be loaded")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		DataSource:  strings.ToLower(env("DATA_SOURCE", SourceSynthetic)),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotels?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		RemoteBase:  env("REMOTE_BASE_URL", ""),
		RemoteKey:   env("REMOTE_API_KEY", ""),
		RemoteRPS:   atoi("REMOTE_RPS", 5),
		HotelCount:  atoi("HOTEL_COUNT", 447),
		Seed:        int64(atoi("SEED", 1)),
		BinWidth:    atoi("HIST_BIN_WIDTH", 50),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		Workers:     atoi("SEED_WORKERS", 4),
		BatchSize:   atoi("SEED_BATCH_SIZE", 100),
	}
	switch c.DataSource {
	case SourceSynthetic, SourceMySQL:
	case SourceRemote:
		if c.RemoteBase == "" {
			log.Warn().Msg("DATA_SOURCE=remote but REMOTE_BASE_URL is empty")
		}
	default:
		log.Warn().Str("source", c.DataSource).Msg("unknown DATA_SOURCE, using synthetic")
		c.DataSource = SourceSynthetic
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
