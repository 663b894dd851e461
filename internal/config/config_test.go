package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"MONGODB_URI", "DB_NAME", "PORT", "HTTP_PORT", "CORS_ALLOWED_ORIGINS",
		"LOG_LEVEL", "ENSURE_INDEXES", "FONDOS_SYNC_URL", "VITE_MONGO_EXCEL", "FONDOS_SYNC_CRON",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "CARTERA", cfg.DBName)
	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", LogLevel())
	assert.True(t, cfg.EnsureIndexes)
	assert.Empty(t, cfg.FondosSyncURL)
	assert.Empty(t, cfg.FondosSyncCron)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "TEST")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.cl, http://b.cl,")
	t.Setenv("ENSURE_INDEXES", "false")
	t.Setenv("FONDOS_SYNC_CRON", "0 3 * * *")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "TEST", cfg.DBName)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, []string{"http://a.cl", "http://b.cl"}, cfg.CORSOrigins)
	assert.False(t, cfg.EnsureIndexes)
	assert.Equal(t, "0 3 * * *", cfg.FondosSyncCron)
}

func TestLoadSyncURLFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITE_MONGO_EXCEL", "http://sheets/fondos")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://sheets/fondos", cfg.FondosSyncURL)

	t.Setenv("FONDOS_SYNC_URL", "http://sheets/v2")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "http://sheets/v2", cfg.FondosSyncURL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("FONDOS_SYNC_CRON", "every day")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("ENSURE_INDEXES", "maybe")
	_, err = Load()
	assert.Error(t, err)
}

func TestLogLevelFromEnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	LoadEnvFile()
	assert.Equal(t, "debug", LogLevel())
}

func TestLogLevelKeepsProcessEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warning")
	assert.Equal(t, "warning", LogLevel())
}
