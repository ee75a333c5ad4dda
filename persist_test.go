package modelcore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalJSON_RoundTripsByteIdentical(t *testing.T) {
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

	first, err := MarshalCanonicalJSON(resolved.Graph)
	require.NoError(t, err)

	rebuilt, err := RehydrateGraph(discardLogger(), first)
	require.NoError(t, err)

	second, err := MarshalCanonicalJSON(rebuilt)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestCanonicalJSON_SortsElementsAndRelationshipsById(t *testing.T) {
	src := `
package Pkg {
	part def A;
	part def B;
	part a : A;
	part b : B;
}
`
	res, err := Parse(context.Background(), discardLogger(), []SourceInput{{Path: "a.sysml", Text: src}})
	require.NoError(t, err)

	data, err := MarshalCanonicalJSON(res.Graph)
	require.NoError(t, err)

	var doc CanonicalDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	for i := 1; i < len(doc.Elements); i++ {
		assert.Less(t, doc.Elements[i-1].Id, doc.Elements[i].Id)
	}
	for i := 1; i < len(doc.Relationships); i++ {
		assert.Less(t, doc.Relationships[i-1].Id, doc.Relationships[i].Id)
	}
}

func TestCanonicalJSON_OmitsRuntimeCachesKeepsProperties(t *testing.T) {
	src := `package Pkg { attribute mass : Real = 5.0; }`
	res, err := Parse(context.Background(), discardLogger(), []SourceInput{{Path: "a.sysml", Text: src}})
	require.NoError(t, err)

	data, err := MarshalCanonicalJSON(res.Graph)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mass"`)
	assert.NotContains(t, string(data), "childrenOf")
	assert.NotContains(t, string(data), "byKind")
}
