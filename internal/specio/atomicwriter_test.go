package specio

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAtomicConfig(t *testing.T) {
	cfg := DefaultAtomicConfig()
	assert.False(t, cfg.UseFsync)
	assert.Equal(t, ".modelcore.tmp", cfg.TempSuffix)
}

func TestAtomicWriter_WriteFile_NewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")

	w := NewAtomicWriter(DefaultAtomicConfig())
	require.NoError(t, w.WriteFile(path, `{"elements":[]}`))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"elements":[]}`, string(data))

	_, err = os.Stat(path + ".modelcore.tmp")
	assert.True(t, os.IsNotExist(err), "temp file should not survive a successful write")
}

func TestAtomicWriter_WriteFile_OverwritePreservesMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kind.go")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	w := NewAtomicWriter(DefaultAtomicConfig())
	require.NoError(t, w.WriteFile(path, "new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestAtomicWriter_WriteFile_InvalidDirectory(t *testing.T) {
	w := NewAtomicWriter(DefaultAtomicConfig())
	err := w.WriteFile(filepath.Join(t.TempDir(), "missing-dir", "out.json"), "content")
	assert.Error(t, err)
}

func TestAtomicWriter_WriteFile_SerializesConcurrentCallsToSamePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")

	w := NewAtomicWriter(DefaultAtomicConfig())
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.WriteFile(path, `{"elements":[]}`))
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"elements":[]}`, string(data))
}
