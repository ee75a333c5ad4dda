// Package specio holds the parallel file discovery and atomic
// persistence helpers C4 and the library loader use to turn a
// filesystem directory into the `(path, text)` pairs the parser
// consumes (§6 Parser input), and to write the canonical JSON
// persistence format back out (§6 Persistence format). Adapted from
// the teacher's worker-pool directory walker, generalized from
// language-file discovery to SysML textual-unit discovery.
package specio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Scope bounds a directory walk: which files count as source units and
// which subtrees to skip.
type Scope struct {
	Path           string
	Include        []string // glob patterns; default *.sysml if empty
	Exclude        []string // glob patterns to skip
	MaxDepth       int      // 0 = unbounded
	MaxFiles       int      // 0 = unbounded
	FollowSymlinks bool
}

// SourceFile is one discovered (logical path, source text) pair (§6
// Parser input).
type SourceFile struct {
	Path string
	Text string
	Err  error
}

// FileWalker performs bounded-concurrency parallel directory traversal,
// sized to twice the host's CPU count (runtime.NumCPU()*2) for
// I/O-bound discovery work (§4.4 Ambient treatment).
type FileWalker struct {
	workers    int
	bufferSize int
}

// NewFileWalker constructs a walker with 2x CPU-core worker concurrency.
func NewFileWalker() *FileWalker {
	return &FileWalker{
		workers:    runtime.NumCPU() * 2,
		bufferSize: 256,
	}
}

// Discover walks scope.Path and returns every matched file's contents,
// read concurrently by the worker pool. Errors reading an individual
// file are reported per-file in SourceFile.Err rather than aborting the
// whole walk.
func (fw *FileWalker) Discover(ctx context.Context, scope Scope) ([]SourceFile, error) {
	if scope.Path == "" {
		return nil, fmt.Errorf("specio: scope.Path is required")
	}
	info, err := os.Stat(scope.Path)
	if err != nil {
		return nil, fmt.Errorf("specio: cannot access %s: %w", scope.Path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("specio: %s is not a directory", scope.Path)
	}
	if len(scope.Include) == 0 {
		scope.Include = []string{"*.sysml"}
	}

	paths := make(chan string, fw.bufferSize)
	results := make(chan SourceFile, fw.bufferSize)

	var wg sync.WaitGroup
	for i := 0; i < fw.workers; i++ {
		wg.Add(1)
		go fw.worker(ctx, paths, results, &wg)
	}

	go func() {
		defer close(paths)
		fw.scan(ctx, scope.Path, scope, paths, 0, new(int), nil)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var files []SourceFile
	for r := range results {
		files = append(files, r)
	}
	return files, nil
}

func (fw *FileWalker) worker(ctx context.Context, paths <-chan string, results chan<- SourceFile, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-paths:
			if !ok {
				return
			}
			data, err := os.ReadFile(path)
			sf := SourceFile{Path: path, Err: err}
			if err == nil {
				sf.Text = string(data)
			}
			select {
			case <-ctx.Done():
				return
			case results <- sf:
			}
		}
	}
}

func (fw *FileWalker) scan(ctx context.Context, dir string, scope Scope, paths chan<- string, depth int, processed *int, visited map[string]struct{}) {
	if scope.MaxFiles > 0 && *processed >= scope.MaxFiles {
		return
	}
	select {
	case <-ctx.Done():
		return
	default:
	}
	if scope.MaxDepth > 0 && depth > scope.MaxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return
		default:
		}

		full := filepath.Join(dir, entry.Name())
		if len(scope.Exclude) > 0 && matchesAny(full, scope.Exclude) {
			continue
		}

		if entry.IsDir() {
			if scope.FollowSymlinks {
				visited = markVisited(visited, full)
			}
			fw.scan(ctx, full, scope, paths, depth+1, processed, visited)
			continue
		}

		if matchesAny(full, scope.Include) {
			if scope.MaxFiles > 0 && *processed >= scope.MaxFiles {
				return
			}
			select {
			case <-ctx.Done():
				return
			case paths <- full:
				*processed++
			}
		}
	}
}

func markVisited(visited map[string]struct{}, path string) map[string]struct{} {
	if visited == nil {
		visited = make(map[string]struct{})
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		visited[resolved] = struct{}{}
	}
	return visited
}

func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.PathMatch(pattern, path); err == nil && matched {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if matched, err := doublestar.PathMatch(pattern, filepath.Base(path)); err == nil && matched {
				return true
			}
		}
	}
	return false
}
