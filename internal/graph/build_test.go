package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/model"
)

func TestFromElements_ReconstructsOwnershipAndRelationshipIndexes(t *testing.T) {
	ctx := context.Background()
	original := New(nil)

	pkg := model.NewElement(genmodel.KindPackage)
	pkg.Name = "Pkg"
	pkgID, err := original.AddElement(ctx, pkg)
	require.NoError(t, err)

	engineDef := newPartDef("Engine")
	engineDefID, err := original.AddOwnedElement(ctx, engineDef, pkgID, "public")
	require.NoError(t, err)

	engine := model.NewElement(genmodel.KindPartUsage)
	engine.Name = "engine"
	engineID, err := original.AddOwnedElement(ctx, engine, pkgID, "public")
	require.NoError(t, err)

	typing := model.NewElement(genmodel.KindFeatureTyping)
	typing.Set(PropSource, refValue(engineID))
	typing.Set(PropTarget, refValue(engineDefID))
	require.NoError(t, original.AddRelationship(ctx, typing))

	var flat []*model.Element
	for _, id := range original.Order() {
		e, ok := original.GetElement(id)
		require.True(t, ok)
		flat = append(flat, e)
	}

	rebuilt, err := FromElements(nil, flat)
	require.NoError(t, err)

	assert.ElementsMatch(t, original.ChildrenOf(pkgID), rebuilt.ChildrenOf(pkgID))
	assert.Equal(t, original.Outgoing(engineID), rebuilt.Outgoing(engineID))
	assert.Equal(t, original.Incoming(engineDefID), rebuilt.Incoming(engineDefID))

	got, ok := rebuilt.GetElement(engineID)
	require.True(t, ok)
	assert.Equal(t, "engine", got.Name)
}

func TestFromElements_RejectsDuplicateIds(t *testing.T) {
	pkg := model.NewElement(genmodel.KindPackage)
	pkg.Name = "Pkg"

	_, err := FromElements(nil, []*model.Element{pkg, pkg})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrIDCollision)
}
