package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFiles(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o644))
	return dir
}

func TestMustLoad(t *testing.T) {
	public := `
pg:
  host: localhost
  port: 5432
  user: ashchan
  dbname: ashchan
index_dir: /tmp/ashchan-index
token_ttl: 48h
max_db_conns: 8
listen_addr: ":9090"
log_level: debug
`
	private := `
pg:
  password: secret
jwt_key: test-signing-key
`
	dir := writeConfigFiles(t, public, private)

	cfg := MustLoad(dir)
	assert.Equal(t, "localhost", cfg.Public.Pg.Host)
	assert.Equal(t, 5432, cfg.Public.Pg.Port)
	assert.Equal(t, "/tmp/ashchan-index", cfg.Public.IndexDir)
	assert.Equal(t, 48*time.Hour, cfg.Public.TokenTTL)
	assert.Equal(t, 8, cfg.Public.MaxDbConns)
	assert.Equal(t, ":9090", cfg.Public.ListenAddr)
	assert.Equal(t, "test-signing-key", cfg.JwtKey())
	assert.Equal(t, "secret", cfg.PgPassword())
}

func TestMustLoadDefaults(t *testing.T) {
	dir := writeConfigFiles(t, "pg:\n  host: localhost\n", "jwt_key: k\n")

	cfg := MustLoad(dir)
	assert.Equal(t, 48*time.Hour, cfg.Public.TokenTTL)
	assert.Equal(t, 16, cfg.Public.MaxDbConns)
	assert.Equal(t, ":8080", cfg.Public.ListenAddr)
	assert.Equal(t, "search_index", cfg.Public.IndexDir)
}

func TestMustLoadMissingFile(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}
