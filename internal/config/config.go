package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

type Config struct {
	MongoURI string
	DBName   string

	HTTPPort    string
	CORSOrigins []string

	EnsureIndexes bool

	FondosSyncURL  string
	FondosSyncCron string
}

// LoadEnvFile copies a .env file in the working directory, if any, into the
// process environment. Variables already set win.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LogLevel is the LOG_LEVEL threshold name, "info" when unset.
func LogLevel() string {
	return envOrDefault("LOG_LEVEL", "info")
}

func Load() (Config, error) {
	LoadEnvFile()

	cfg := Config{
		MongoURI:       envOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:         envOrDefault("DB_NAME", "CARTERA"),
		HTTPPort:       envOrDefault("PORT", envOrDefault("HTTP_PORT", "3000")),
		CORSOrigins:    splitList(envOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		FondosSyncURL:  envOrDefault("FONDOS_SYNC_URL", os.Getenv("VITE_MONGO_EXCEL")),
		FondosSyncCron: os.Getenv("FONDOS_SYNC_CRON"),
	}

	ensure, err := envOrBool("ENSURE_INDEXES", true)
	if err != nil {
		return cfg, err
	}
	cfg.EnsureIndexes = ensure

	if cfg.MongoURI == "" || cfg.DBName == "" {
		return cfg, errors.New("missing database configuration")
	}

	if cfg.FondosSyncCron != "" {
		if _, err := cron.ParseStandard(cfg.FondosSyncCron); err != nil {
			return cfg, errors.Wrap(err, "invalid FONDOS_SYNC_CRON")
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envOrBool(key string, fallback bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback, errors.Wrapf(err, "invalid %s", key)
	}
	return parsed, nil
}

func splitList(val string) []string {
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
