package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSecretsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := SecretsDir
	SecretsDir = dir
	t.Cleanup(func() { SecretsDir = prev })
	return dir
}

func TestReadSecret(t *testing.T) {
	dir := withSecretsDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("  s3cret\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), []byte("\n"), 0o600))

	v, err := ReadSecret("db_password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", v)

	_, err = ReadSecret("empty")
	assert.Error(t, err)
	_, err = ReadSecret("missing")
	assert.Error(t, err)
}

func TestReadSecretOrEnv(t *testing.T) {
	dir := withSecretsDir(t)

	t.Run("File wins over env", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "redis_password"), []byte("from-file"), 0o600))
		t.Setenv("REDIS_PASSWORD", "from-env")
		v, err := ReadSecretOrEnv("redis_password", "REDIS_PASSWORD")
		require.NoError(t, err)
		assert.Equal(t, "from-file", v)
	})

	t.Run("Env fallback", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "from-env")
		v, err := ReadSecretOrEnv("db_password", "DB_PASSWORD")
		require.NoError(t, err)
		assert.Equal(t, "from-env", v)
	})

	t.Run("Not found", func(t *testing.T) {
		t.Setenv("NOPE_PASSWORD", "")
		_, err := ReadSecretOrEnv("nope", "NOPE_PASSWORD")
		assert.ErrorIs(t, err, ErrSecretNotFound)
	})
}
