package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads so the ambient
// environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TRS_ENV", "TRS_PORT", "SECRET_KEY", "JWT_EXPIRATION",
		"DB_DRIVER", "DB_PATH", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDevelopmentDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "trs.sqlite", cfg.DBPath)
	assert.Equal(t, "dev", cfg.SecretKey)
	assert.Equal(t, 3600, cfg.JWTExpiration)
}

func TestLoadConfigTestingDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRS_ENV", EnvTesting)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, ":memory:", cfg.DBPath)
}

func TestLoadConfigProductionRequiresSecretKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRS_ENV", EnvProduction)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "trs")
	t.Setenv("DB_NAME", "trs")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")

	t.Setenv("SECRET_KEY", "super-secret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "super-secret", cfg.SecretKey)
}

func TestLoadConfigProductionRequiresDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRS_ENV", EnvProduction)
	t.Setenv("SECRET_KEY", "super-secret")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database configuration")
}

func TestLoadConfigRejectsUnknownProfile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRS_ENV", "staging")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigJWTExpiration(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_EXPIRATION", "7200")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7200, cfg.JWTExpiration)

	t.Setenv("JWT_EXPIRATION", "zero")
	_, err = LoadConfig()
	require.Error(t, err)

	t.Setenv("JWT_EXPIRATION", "-1")
	_, err = LoadConfig()
	require.Error(t, err)
}

func TestConnectDatabaseInMemory(t *testing.T) {
	cfg := &Config{Env: EnvTesting, DBDriver: "sqlite", DBPath: ":memory:"}

	db, err := ConnectDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, MigrateDatabase(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestConnectDatabaseUnknownDriver(t *testing.T) {
	_, err := ConnectDatabase(&Config{DBDriver: "oracle"})
	require.Error(t, err)
}
