package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
db_username: postgres
db_password: secret
db_host: localhost
port: "5432"
db_name: garage
disable_tls: true
redis_host: localhost
redis_port: "6379"
base_url: http://localhost:8080
admin_password_hash: "$2a$10$abcdefghijklmnopqrstuv"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBUsername)
	assert.Equal(t, "garage", cfg.DBName)
	assert.True(t, cfg.DisableTLS)
	assert.Equal(t, "http://localhost:8080", cfg.BaseUrl)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", cfg.AdminPasswordHash)
}

func TestLoadMissingDatabase(t *testing.T) {
	path := writeConfig(t, `
db_username: postgres
admin_password_hash: "$2a$10$abcdefghijklmnopqrstuv"
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingAdminHash(t *testing.T) {
	path := writeConfig(t, `
db_username: postgres
db_password: secret
db_host: localhost
db_name: garage
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
