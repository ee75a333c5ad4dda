package parser

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sysml-go/modelcore/internal/graph"
	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/specio"
	"github.com/sysml-go/modelcore/internal/trace"
)

// ParseScope discovers every source file under scope and parses the
// whole set into one merged ModelGraph (§4.4/§5 "parsed in parallel
// with a per-file private graph, then merged ... under a single
// writer"). Per-file diagnostics (grammar errors) ride along on each
// file's private graph and are preserved across the merge.
func ParseScope(ctx context.Context, logger *slog.Logger, scope specio.Scope) (*graph.ModelGraph, error) {
	op := trace.Begin(ctx, logger, "parser.parse_scope", slog.String("path", scope.Path))

	fw := specio.NewFileWalker()
	files, err := fw.Discover(ctx, scope)
	if err != nil {
		op.End(err)
		return nil, err
	}

	result, mergeErr := ParseSources(ctx, logger, files)
	op.End(mergeErr)
	return result, mergeErr
}

// ParseSources parses an already-discovered set of (logical path,
// source text) pairs into one merged ModelGraph, each file parsed on
// its own private graph in parallel then merged under a single writer
// (§4.4/§5). This is the entry point for callers that already hold
// source text in memory rather than a filesystem scope — the in-memory
// counterpart to ParseScope's directory walk (§6 Parser input).
func ParseSources(ctx context.Context, logger *slog.Logger, files []specio.SourceFile) (*graph.ModelGraph, error) {
	result := graph.New(logger)
	var mergeErr error
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, sf := range files {
		sf := sf
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sf.Err != nil {
				mu.Lock()
				defer mu.Unlock()
				result.AddDiagnostic(fileReadDiagnostic(sf))
				return
			}
			fileGraph := ParseFile(ctx, logger, sf.Path, []byte(sf.Text))

			mu.Lock()
			defer mu.Unlock()
			if mergeErr != nil {
				return
			}
			if err := result.Merge(ctx, fileGraph, false); err != nil {
				mergeErr = err
				return
			}
			for _, d := range fileGraph.Diagnostics() {
				result.AddDiagnostic(d)
			}
		}()
	}
	wg.Wait()

	if mergeErr != nil {
		return nil, mergeErr
	}
	return result, nil
}

func fileReadDiagnostic(sf specio.SourceFile) model.Diagnostic {
	return model.Diagnostic{
		Severity: model.SeverityError,
		Code:     model.ECArtifactMissing,
		Message:  fmt.Sprintf("could not read %s: %v", sf.Path, sf.Err),
		Primary:  model.Span{Path: sf.Path},
	}
}
