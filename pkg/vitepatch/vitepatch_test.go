//go:build unit

package vitepatch_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/vitepatch/pkg/vitepatch"
)

const patchLine = 23655

func installVite(t *testing.T, version string, lineEnding string) (string, string) {
	t.Helper()

	projectDir := t.TempDir()
	root := filepath.Join(projectDir, "node_modules", "vite")
	chunk := filepath.Join(root, "dist", "node", "chunks", "dep-efe32886.js")
	require.NoError(t, os.MkdirAll(filepath.Dir(chunk), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "package.json"),
		[]byte(`{"name": "vite", "version": "`+version+`"}`),
		0o600,
	))

	lines := make([]string, patchLine+2)
	for i := range lines {
		lines[i] = "void 0;"
	}
	lines[patchLine-1] = "foo(importer.includes('node_modules'))bar"
	require.NoError(t, os.WriteFile(chunk, []byte(strings.Join(lines, lineEnding)), 0o600))

	return projectDir, chunk
}

func TestLibrary(t *testing.T) {
	t.Parallel()

	t.Run("should assert, apply and report installed", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir, _ := installVite(t, "2.1.2", "\n")

		// when
		assertBefore := vitepatch.Assert(projectDir)
		installedBefore, beforeErr := vitepatch.IsInstalled(projectDir)
		applyErr := vitepatch.Apply(projectDir, vitepatch.Options{})
		installedAfter, afterErr := vitepatch.IsInstalled(projectDir)
		assertAfter := vitepatch.Assert(projectDir)

		// then
		require.ErrorIs(t, assertBefore, vitepatch.ErrPatchNotApplied)
		require.NoError(t, beforeErr)
		assert.False(t, installedBefore)
		require.NoError(t, applyErr)
		require.NoError(t, afterErr)
		assert.True(t, installedAfter)
		assert.NoError(t, assertAfter)
	})

	t.Run("should keep CRLF line endings", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir, chunk := installVite(t, "2.1.2", "\r\n")

		// when
		err := vitepatch.Apply(projectDir, vitepatch.Options{})

		// then
		require.NoError(t, err)
		data, readErr := os.ReadFile(chunk)
		require.NoError(t, readErr)
		lines := strings.Split(string(data), "\r\n")
		require.Len(t, lines, patchLine+2)
		assert.Equal(t,
			"foo((importer.includes('node_modules') && !source.includes('import.meta.glob')))bar",
			lines[patchLine-1],
		)
	})

	t.Run("should report not applied when the designated line is gone", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir, chunk := installVite(t, "2.1.2", "\n")
		require.NoError(t, os.WriteFile(chunk, []byte("void 0;\nvoid 0;"), 0o600))

		// when
		assertErr := vitepatch.Assert(projectDir)
		installed, installedErr := vitepatch.IsInstalled(projectDir)

		// then
		require.ErrorIs(t, assertErr, vitepatch.ErrPatchNotApplied)
		assert.NotErrorIs(t, assertErr, vitepatch.ErrPatchPrecondition)
		require.NoError(t, installedErr)
		assert.False(t, installed)
	})

	t.Run("should throw from Assert on an unsupported version", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir, _ := installVite(t, "2.1.1", "\n")

		// when
		err := vitepatch.Assert(projectDir)

		// then
		var mismatch *vitepatch.VersionMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "2.1.1", mismatch.Installed)
	})

	t.Run("should only warn from the install hook on an unsupported version", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir, chunk := installVite(t, "2.1.1", "\n")
		before, err := os.ReadFile(chunk)
		require.NoError(t, err)

		// when
		hookErr := vitepatch.Apply(projectDir, vitepatch.Options{InstallHook: true})

		// then
		require.NoError(t, hookErr)
		after, readErr := os.ReadFile(chunk)
		require.NoError(t, readErr)
		assert.Equal(t, before, after)
	})
}

// TestAssertIsSilent swaps the global logger output, so it does not run in parallel.
func TestAssertIsSilent(t *testing.T) {
	t.Run("should not log while asserting an unpatched install", func(t *testing.T) {
		// given
		projectDir, _ := installVite(t, "2.1.2", "\n")
		var output bytes.Buffer
		previousOut, previousLevel := logger.StandardLogger().Out, logger.GetLevel()
		t.Cleanup(func() {
			logger.SetOutput(previousOut)
			logger.SetLevel(previousLevel)
		})
		logger.SetOutput(&output)
		logger.SetLevel(logger.InfoLevel)

		// when
		assertErr := vitepatch.Assert(projectDir)
		installed, installedErr := vitepatch.IsInstalled(projectDir)

		// then
		require.ErrorIs(t, assertErr, vitepatch.ErrPatchNotApplied)
		require.NoError(t, installedErr)
		assert.False(t, installed)
		assert.Empty(t, output.String())
	})
}
