package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PublishAndOpen(t *testing.T) {
	ctx := context.Background()
	basePath := t.TempDir()
	s, err := NewLocalStorage(basePath, "/api/v1/exports/files")
	require.NoError(t, err)

	path, err := s.Publish(ctx, "2025-03/recap-2025-03.zip", bytes.NewReader([]byte("archive")))
	require.NoError(t, err)
	assert.Equal(t, "2025-03/recap-2025-03.zip", path)

	rc, err := s.Open(ctx, path)
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, []byte("archive"), content)

	assert.Equal(t, "/api/v1/exports/files/2025-03/recap-2025-03.zip", s.URL(path))
}

func TestLocalStorage_Open_NotFound(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "/exports")
	require.NoError(t, err)

	_, err = s.Open(ctx, "2025-03/recap-2025-03.zip")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_Publish_ReplacesAtomically(t *testing.T) {
	ctx := context.Background()
	basePath := t.TempDir()
	s, err := NewLocalStorage(basePath, "/exports")
	require.NoError(t, err)

	_, err = s.Publish(ctx, "2025-03/recap-2025-03.zip", bytes.NewReader([]byte("first")))
	require.NoError(t, err)
	_, err = s.Publish(ctx, "2025-03/recap-2025-03.zip", bytes.NewReader([]byte("second")))
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(basePath, "2025-03", "recap-2025-03.zip"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), content)

	// No staging leftovers next to the published file
	entries, err := os.ReadDir(filepath.Join(basePath, "2025-03"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "recap-2025-03.zip", entries[0].Name())
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "/exports")
	require.NoError(t, err)

	_, err = s.Publish(ctx, "../escape.zip", bytes.NewReader([]byte("nope")))
	assert.Error(t, err)

	_, err = s.Open(ctx, "../../etc/passwd")
	assert.Error(t, err)
}
