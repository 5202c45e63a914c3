package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jailfs/internal/configuration"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jailfs.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestEstablishConfiguration(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "JAILFS_ROOT=/srv/confined\nJAILFS_UMASK=022\n")

	handler := configuration.NewHandler(&configuration.GodotenvProvider{})

	config, err := handler.EstablishConfiguration(path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/confined", config.RootPath)
	assert.EqualValues(t, 0o022, config.Umask)
}

func TestEstablishConfiguration_MissingKeysKeepZeroValues(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "UNRELATED=value\n")

	handler := configuration.NewHandler(&configuration.GodotenvProvider{})

	config, err := handler.EstablishConfiguration(path)

	require.NoError(t, err)
	assert.Empty(t, config.RootPath)
	assert.Zero(t, config.Umask)
}

func TestEstablishConfiguration_BadUmaskFallsBackToZero(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "JAILFS_UMASK=not-octal\n")

	handler := configuration.NewHandler(&configuration.GodotenvProvider{})

	config, err := handler.EstablishConfiguration(path)

	require.NoError(t, err)
	assert.Zero(t, config.Umask)
}

func TestEstablishConfiguration_MissingFileFails(t *testing.T) {
	t.Parallel()

	handler := configuration.NewHandler(&configuration.GodotenvProvider{})

	_, err := handler.EstablishConfiguration(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
}
