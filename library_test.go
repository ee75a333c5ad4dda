package modelcore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-go/modelcore/internal/genmodel"
)

func TestLoadLibrary_MergesKernelBeforeSystems(t *testing.T) {
	lib, err := LoadLibrary(context.Background(), discardLogger(), "testdata/library")
	require.NoError(t, err)

	realID, ok := ResolveQName(lib, "ScalarValues::Real")
	require.True(t, ok)
	assert.True(t, lib.IsLibraryElement(realID))

	partID, ok := ResolveQName(lib, "Parts::Part")
	require.True(t, ok)
	assert.True(t, lib.IsLibraryElement(partID))
}

func TestResolveWithLibrary_BindsAgainstLoadedLibrary(t *testing.T) {
	lib, err := LoadLibrary(context.Background(), discardLogger(), "testdata/library")
	require.NoError(t, err)

	src := `
package Test {
	attribute mass : ScalarValues::Real;
}
`
	res, err := Parse(context.Background(), discardLogger(), []SourceInput{{Path: "test.sysml", Text: src}})
	require.NoError(t, err)

	resolved, err := res.ResolveWithLibrary(context.Background(), discardLogger(), lib)
	require.NoError(t, err)
	assert.Equal(t, 0, resolved.Unresolved)

	realID, ok := ResolveQName(resolved.Graph, "ScalarValues::Real")
	require.True(t, ok)

	massID, ok := ResolveQName(resolved.Graph, "Test::mass")
	require.True(t, ok)

	typing := findRelationship(t, resolved.Graph, massID, genmodel.KindFeatureTyping)
	target, bound := typing.ResolvedRef("type")
	require.True(t, bound)
	assert.Equal(t, realID, target)
}
