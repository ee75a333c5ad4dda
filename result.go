// Package modelcore is the public entry point to the SysML textual
// model ingestion pipeline: Parse turns in-memory source text into a
// ParseResult, and ParseResult.IntoResolved (or ResolveWithLibrary)
// runs the resolver to produce a ResolvedResult (§6 External
// interfaces).
package modelcore

import (
	"context"
	"log/slog"

	"github.com/sysml-go/modelcore/internal/graph"
	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/parser"
	"github.com/sysml-go/modelcore/internal/resolver"
	"github.com/sysml-go/modelcore/internal/specio"
)

// SourceInput is one (logical path, source text) pair (§6 Parser
// input). Paths need not be absolute or correspond to real files; they
// are only used as diagnostic anchors and for deterministic ordering.
type SourceInput struct {
	Path string
	Text string
}

// ParseResult is C4's output: the constructed graph plus the
// diagnostics collected while building it (§6 Parser output).
type ParseResult struct {
	Graph       *graph.ModelGraph
	Diagnostics model.Diagnostics
}

// ResolvedResult is the output of running C5 to a fixed point over a
// ParseResult's graph (§6 Parser output, §4.5 Resolver).
type ResolvedResult struct {
	Graph       *graph.ModelGraph
	Resolved    int
	Unresolved  int
	Iterations  int
	Diagnostics model.Diagnostics
}

// Parse builds a ModelGraph from a set of in-memory source files,
// parsing each on a private graph in parallel and merging the result
// under a single writer (§4.4/§5).
func Parse(ctx context.Context, logger *slog.Logger, inputs []SourceInput) (*ParseResult, error) {
	files := make([]specio.SourceFile, 0, len(inputs))
	for _, in := range inputs {
		files = append(files, specio.SourceFile{Path: in.Path, Text: in.Text})
	}
	g, err := parser.ParseSources(ctx, logger, files)
	if err != nil {
		return nil, err
	}
	return &ParseResult{Graph: g, Diagnostics: g.Diagnostics()}, nil
}

// IntoResolved runs the resolver to a fixed point over r's graph with
// default tuning and role strategies (§6 "a convenience into_resolved()
// that runs C5").
func (r *ParseResult) IntoResolved(ctx context.Context, logger *slog.Logger) (*ResolvedResult, error) {
	return r.ResolveWithLibrary(ctx, logger, nil)
}

// ResolveWithLibrary merges lib into r's graph as a library package set
// before resolving, so references into the standard library resolve
// against it; lib may be nil, in which case this behaves exactly like
// IntoResolved (§6 "resolve_with_library(lib_graph) merges a previously
// loaded library graph before resolution").
func (r *ParseResult) ResolveWithLibrary(ctx context.Context, logger *slog.Logger, lib *graph.ModelGraph) (*ResolvedResult, error) {
	if lib != nil {
		if err := r.Graph.Merge(ctx, lib, true); err != nil {
			return nil, err
		}
	}

	rs := resolver.New(r.Graph, logger, resolver.DefaultConfig(), resolver.DefaultRoleStrategies())
	res, err := rs.Run(ctx)
	if err != nil {
		return nil, err
	}

	return &ResolvedResult{
		Graph:       r.Graph,
		Resolved:    res.Resolved,
		Unresolved:  res.Unresolved,
		Iterations:  res.Iterations,
		Diagnostics: res.Diagnostics,
	}, nil
}
