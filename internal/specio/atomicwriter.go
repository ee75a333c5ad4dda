package specio

import (
	"fmt"
	"os"
	"sync"
)

// AtomicWriteConfig controls atomic writing behavior.
type AtomicWriteConfig struct {
	UseFsync   bool   // force fsync on the temp file before the rename
	TempSuffix string // suffix appended to path for the staging file
}

// DefaultAtomicConfig returns the config this module's two write paths
// use: cmd/modelgen's generated Go sources, and the canonical JSON
// persistence format written by WriteCanonicalJSON.
func DefaultAtomicConfig() AtomicWriteConfig {
	return AtomicWriteConfig{
		UseFsync:   false,
		TempSuffix: ".modelcore.tmp",
	}
}

// AtomicWriter writes a file by staging its content in a temp file next
// to the target and renaming it into place, so a reader never observes
// a half-written generated source file or persistence snapshot. A
// per-path mutex serializes concurrent WriteFile calls against the same
// target from within one process — the only contention this module's
// callers can produce, since neither cmd/modelgen nor
// WriteCanonicalJSON ever writes the same path from more than one OS
// process.
type AtomicWriter struct {
	config AtomicWriteConfig
	mu     sync.Mutex
	locks  map[string]*sync.Mutex
}

// NewAtomicWriter constructs an AtomicWriter with the given config.
func NewAtomicWriter(config AtomicWriteConfig) *AtomicWriter {
	return &AtomicWriter{
		config: config,
		locks:  make(map[string]*sync.Mutex),
	}
}

// WriteFile atomically replaces path's content, preserving its existing
// file mode (or defaulting to 0o644 for a new file).
func (aw *AtomicWriter) WriteFile(path, content string) error {
	pathLock := aw.lockFor(path)
	pathLock.Lock()
	defer pathLock.Unlock()

	fileMode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		fileMode = info.Mode()
	}

	tempPath := path + aw.config.TempSuffix
	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tempFile.WriteString(content); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write content: %w", err)
	}

	if aw.config.UseFsync {
		if err := tempFile.Sync(); err != nil {
			tempFile.Close()
			os.Remove(tempPath)
			return fmt.Errorf("failed to sync: %w", err)
		}
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to atomic rename: %w", err)
	}

	return nil
}

func (aw *AtomicWriter) lockFor(path string) *sync.Mutex {
	aw.mu.Lock()
	defer aw.mu.Unlock()
	l, ok := aw.locks[path]
	if !ok {
		l = &sync.Mutex{}
		aw.locks[path] = l
	}
	return l
}
