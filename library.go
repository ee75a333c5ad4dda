package modelcore

import (
	"context"
	"log/slog"

	"github.com/sysml-go/modelcore/internal/graph"
	"github.com/sysml-go/modelcore/internal/parser"
	"github.com/sysml-go/modelcore/internal/specartifact"
	"github.com/sysml-go/modelcore/internal/specio"
)

// LoadLibrary parses a standard-library directory — library.kernel
// loaded first, then library.systems, then any other library.*
// package directories in lexical order — into one merged ModelGraph
// suitable for passing to ResolveWithLibrary (§6 Library loader).
// Every package directory is walked and parsed with the same pipeline
// Parse uses, then merged as a library package so its own roots are
// flagged via ModelGraph.IsLibraryElement.
func LoadLibrary(ctx context.Context, logger *slog.Logger, root string) (*graph.ModelGraph, error) {
	dirs, err := specartifact.LibraryPackageDirs(root)
	if err != nil {
		return nil, err
	}

	fw := specio.NewFileWalker()
	result := graph.New(logger)
	for _, dir := range dirs {
		files, err := fw.Discover(ctx, specio.Scope{Path: dir})
		if err != nil {
			return nil, err
		}
		pkgGraph, err := parser.ParseSources(ctx, logger, files)
		if err != nil {
			return nil, err
		}
		if err := result.Merge(ctx, pkgGraph, true); err != nil {
			return nil, err
		}
	}
	return result, nil
}
