package specio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestFileWalker_Discover_FindsSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sysml", "package A;")
	writeFile(t, dir, "sub/b.sysml", "package B;")
	writeFile(t, dir, "README.md", "not a source file")

	fw := NewFileWalker()
	files, err := fw.Discover(context.Background(), Scope{Path: dir})
	require.NoError(t, err)
	require.Len(t, files, 2)

	paths := map[string]bool{}
	for _, f := range files {
		require.NoError(t, f.Err)
		paths[filepath.Base(f.Path)] = true
	}
	assert.True(t, paths["a.sysml"])
	assert.True(t, paths["b.sysml"])
}

func TestFileWalker_Discover_ExcludePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.sysml", "package Keep;")
	writeFile(t, dir, "vendor/skip.sysml", "package Skip;")

	fw := NewFileWalker()
	files, err := fw.Discover(context.Background(), Scope{Path: dir, Exclude: []string{"vendor"}})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "keep.sysml", filepath.Base(files[0].Path))
}

func TestFileWalker_Discover_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "f.sysml", "package F;")

	fw := NewFileWalker()
	_, err := fw.Discover(context.Background(), Scope{Path: filepath.Join(dir, "f.sysml")})
	assert.Error(t, err)
}

func TestFileWalker_Discover_MaxFiles(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		writeFile(t, dir, manyFilePath(i), "package P;")
	}

	fw := NewFileWalker()
	files, err := fw.Discover(context.Background(), Scope{Path: dir, MaxFiles: 2})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(files), 2)
}

func manyFilePath(i int) string {
	return filepath.Join("many", string(rune('a'+i))+".sysml")
}
