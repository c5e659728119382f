package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	validConfig := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
storage:
  driver: sqlite
  sqlite_path: ./data/engagement.db
stats:
  batch_page_limit: 1000
  batch_pacing_ms: 100
`

	cfg, err := LoadConfig(writeTempConfig(t, validConfig))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "./data/engagement.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 1000, cfg.Stats.BatchPageLimit)
	assert.Equal(t, 100, cfg.Stats.BatchPacingMs)
}

func TestLoadConfig_MissingRequiredFields(t *testing.T) {
	invalidConfig := `server:
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
storage:
  driver: memory
stats:
  batch_page_limit: 1000
  batch_pacing_ms: 100
`

	cfg, err := LoadConfig(writeTempConfig(t, invalidConfig))
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "port")
}

func TestLoadConfig_UnknownStorageDriver(t *testing.T) {
	invalidConfig := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
storage:
  driver: dynamo
stats:
  batch_page_limit: 1000
  batch_pacing_ms: 100
`

	cfg, err := LoadConfig(writeTempConfig(t, invalidConfig))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.driver")
}

func TestLoadConfig_SQLiteDriverRequiresPath(t *testing.T) {
	invalidConfig := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
storage:
  driver: sqlite
stats:
  batch_page_limit: 1000
  batch_pacing_ms: 100
`

	cfg, err := LoadConfig(writeTempConfig(t, invalidConfig))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite_path")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/configs.yml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
