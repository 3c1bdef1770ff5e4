//go:build unit

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_WriteFile(t *testing.T) {
	adapter := NewManagerAdapter()
	tempDir := t.TempDir()

	t.Run("WritesWithPermissions", func(t *testing.T) {
		testFile := filepath.Join(tempDir, "scan.txt")
		content := []byte("wlan0     Scan completed :\n")

		require.NoError(t, adapter.WriteFile(testFile, content, 0600))

		info, err := os.Stat(testFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		data, err := os.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, content, data)
	})

	t.Run("CreatesParentDirectories", func(t *testing.T) {
		testFile := filepath.Join(tempDir, "scans", "2024", "wlan0.txt")

		require.NoError(t, adapter.WriteFile(testFile, []byte("raw"), 0644))
		assert.True(t, adapter.FileExists(testFile))
	})

	t.Run("InvalidPath", func(t *testing.T) {
		blocker := filepath.Join(tempDir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		err := adapter.WriteFile(filepath.Join(blocker, "file.txt"), []byte("test"), 0644)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create directory")
	})
}

func TestManagerAdapter_FileExists(t *testing.T) {
	adapter := NewManagerAdapter()
	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "exists.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("x"), 0644))

	assert.True(t, adapter.FileExists(testFile))
	assert.False(t, adapter.FileExists(filepath.Join(tempDir, "nonexistent.txt")))
}
