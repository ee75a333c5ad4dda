package modelcore

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/graph"
	"github.com/sysml-go/modelcore/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, nil))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func findRelationship(t *testing.T, g *graph.ModelGraph, id model.ElementId, kind genmodel.ElementKind) *model.Element {
	t.Helper()
	for _, relID := range g.Outgoing(id) {
		rel, ok := g.GetElement(relID)
		if ok && rel.Kind == kind {
			return rel
		}
	}
	t.Fatalf("no outgoing %s relationship on %s", kind, id)
	return nil
}

func TestParse_SingleFile_NoDiagnostics(t *testing.T) {
	src := `
package Pkg {
	part def Engine;
	part engine : Engine;
}
`
	res, err := Parse(context.Background(), discardLogger(), []SourceInput{{Path: "a.sysml", Text: src}})
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
	assert.NotZero(t, res.Graph.Len())
}

func TestIntoResolved_LocalResolution(t *testing.T) {
	src := `
package Pkg {
	part def Engine;
	part engine : Engine;
}
`
	res, err := Parse(context.Background(), discardLogger(), []SourceInput{{Path: "a.sysml", Text: src}})
	require.NoError(t, err)

	resolved, err := res.IntoResolved(context.Background(), discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, resolved.Unresolved)
	assert.False(t, resolved.Diagnostics.HasError())

	roots := resolved.Graph.Roots()
	require.Len(t, roots, 1)

	engineID, ok := ResolveQName(resolved.Graph, "Pkg::engine")
	require.True(t, ok)
	engineDefID, ok := ResolveQName(resolved.Graph, "Pkg::Engine")
	require.True(t, ok)

	typing := findRelationship(t, resolved.Graph, engineID, genmodel.KindFeatureTyping)
	target, bound := typing.ResolvedRef("type")
	require.True(t, bound)
	assert.Equal(t, engineDefID, target)
}

func TestIntoResolved_ImportAcrossFiles(t *testing.T) {
	typesSrc := `package Types { part def Engine; }`
	vehicleSrc := `
package Vehicle {
	import Types::*;
	part engine : Engine;
}
`
	res, err := Parse(context.Background(), discardLogger(), []SourceInput{
		{Path: "types.sysml", Text: typesSrc},
		{Path: "vehicle.sysml", Text: vehicleSrc},
	})
	require.NoError(t, err)

	resolved, err := res.IntoResolved(context.Background(), discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, resolved.Unresolved)
}
