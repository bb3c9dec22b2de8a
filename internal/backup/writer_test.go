package backup

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filebak/internal/errors"
)

func writeSource(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.conf")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestBackup(t *testing.T) {
	t.Run("ByteIdenticalCopy", func(t *testing.T) {
		content := bytes.Repeat([]byte("configuration data\n"), 500)
		src := writeSource(t, content)

		w := &Writer{}
		artifact, err := w.Backup(src, "20260830120000000")
		require.NoError(t, err)
		assert.Equal(t, src+".20260830120000000.bak", artifact)

		got, err := os.ReadFile(artifact)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("CollisionProbesSuffix", func(t *testing.T) {
		src := writeSource(t, []byte("new content"))
		w := &Writer{}

		existing := w.ArtifactPath(src, "20260830120000000")
		require.NoError(t, os.WriteFile(existing, []byte("old content"), 0o644))

		artifact, err := w.Backup(src, "20260830120000000")
		require.NoError(t, err)
		assert.Equal(t, src+".20260830120000000-1.bak", artifact)

		// The colliding artifact is left intact.
		old, err := os.ReadFile(existing)
		require.NoError(t, err)
		assert.Equal(t, []byte("old content"), old)
	})

	t.Run("MissingSource", func(t *testing.T) {
		w := &Writer{}
		_, err := w.Backup(filepath.Join(t.TempDir(), "gone"), "20260830120000000")
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeCopy))
	})
}

func TestCompressedBackup(t *testing.T) {
	content := bytes.Repeat([]byte("compressible line of text\n"), 2000)
	src := writeSource(t, content)

	w := &Writer{Compress: true}
	artifact, err := w.Backup(src, "20260830120000000")
	require.NoError(t, err)
	assert.Equal(t, src+".20260830120000000.bak.zst", artifact)

	// On-disk artifact is compressed, and restores to the exact
	// source bytes.
	raw, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Less(t, len(raw), len(content))

	var restored bytes.Buffer
	require.NoError(t, Restore(artifact, &restored))
	assert.Equal(t, content, restored.Bytes())
}

func TestRestorePlainArtifact(t *testing.T) {
	src := writeSource(t, []byte("plain"))
	w := &Writer{}
	artifact, err := w.Backup(src, "20260830120000000")
	require.NoError(t, err)

	var restored bytes.Buffer
	require.NoError(t, Restore(artifact, &restored))
	assert.Equal(t, []byte("plain"), restored.Bytes())
}
