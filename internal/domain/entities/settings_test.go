//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "vitepatch.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))
	return cfgFile
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should load valid config file", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := writeConfig(t, `
project_dir: /srv/app
node_path:
  - /opt/node_modules
verbose: true
`)

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/srv/app", settings.ProjectDir)
		assert.Equal(t, []string{"/opt/node_modules"}, settings.NodePath)
		assert.True(t, settings.Verbose)
	})

	t.Run("should expand env vars in paths during load", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_VITEPATCH_ROOT", "/workspace")
		cfgFile := writeConfig(t, `
project_dir: ${TEST_VITEPATCH_ROOT}/web
node_path:
  - ${TEST_VITEPATCH_ROOT}/shared/node_modules
`)

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/workspace/web", settings.ProjectDir)
		assert.Equal(t, []string{"/workspace/shared/node_modules"}, settings.NodePath)
	})

	t.Run("should fail when a lookup path expands to nothing", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := writeConfig(t, `
node_path:
  - ${DEFINITELY_NOT_SET_VAR_12345}
`)

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "node_path[0]")
	})

	t.Run("should fail for nonexistent config file", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail for invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := writeConfig(t, "node_path: [unterminated")

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("should return error when no config file exists", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Chdir(tmpDir)
		t.Setenv("HOME", tmpDir)

		// when
		path, err := entities.FindConfigFile()

		// then
		require.Error(t, err)
		assert.Empty(t, path)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("should find vitepatch.yaml in current directory", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Chdir(tmpDir)

		cfgFile := filepath.Join(tmpDir, "vitepatch.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("verbose: false"), 0o600))

		// when
		path, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, "vitepatch.yaml", path)
	})

	t.Run("should prefer .vitepatch.yaml over vitepatch.yaml", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Chdir(tmpDir)

		for _, name := range []string{".vitepatch.yaml", "vitepatch.yaml"} {
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("verbose: false"), 0o600))
		}

		// when
		path, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, ".vitepatch.yaml", path)
	})
}

func TestNodePathFromEnv(t *testing.T) {
	t.Run("should split NODE_PATH and drop empty entries", func(t *testing.T) {
		// given
		sep := string(os.PathListSeparator)
		t.Setenv("NODE_PATH", "/a"+sep+sep+"/b")

		// when
		dirs := entities.NodePathFromEnv()

		// then
		assert.Equal(t, []string{"/a", "/b"}, dirs)
	})

	t.Run("should return nil when NODE_PATH is unset", func(t *testing.T) {
		// given
		t.Setenv("NODE_PATH", "")

		// when
		dirs := entities.NodePathFromEnv()

		// then
		assert.Nil(t, dirs)
	})
}
