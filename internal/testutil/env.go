package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteConfig writes content as config.yaml in a fresh temp directory and
// returns the file path.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()
	return WriteTestFile(t, t.TempDir(), "config.yaml", content)
}

// WriteTestFile writes a file at the given path relative to base,
// creating parent directories as needed. Returns the full path.
func WriteTestFile(t *testing.T, base, path, content string) string {
	t.Helper()

	fullPath := filepath.Join(base, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	return fullPath
}
