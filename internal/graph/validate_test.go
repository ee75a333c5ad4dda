package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/model"
)

func TestValidateStructure_DanglingMembership(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	pkg := model.NewElement(genmodel.KindPackage)
	pkgID, err := g.AddElement(ctx, pkg)
	require.NoError(t, err)

	// Insert a membership that points at a target never added to the graph.
	ghost := model.NewElementId()
	membership := model.NewElement(genmodel.KindOwningMembership)
	membership.Resolve(PropSource, pkgID)
	membership.Resolve(PropTarget, ghost)
	_, err = g.AddElement(ctx, membership)
	require.NoError(t, err)

	report := g.ValidateStructure()
	assert.False(t, report.OK())
	assert.Contains(t, report.DanglingMemberships, membership.Id)
}

func TestValidateStructure_OwnershipCycle(t *testing.T) {
	g := New(nil)
	ctx := context.Background()

	a := model.NewElement(genmodel.KindPartDefinition)
	b := model.NewElement(genmodel.KindPartDefinition)
	_, err := g.AddElement(ctx, a)
	require.NoError(t, err)
	_, err = g.AddElement(ctx, b)
	require.NoError(t, err)

	mAB := model.NewElement(genmodel.KindOwningMembership)
	mAB.Resolve(PropSource, a.Id)
	mAB.Resolve(PropTarget, b.Id)
	require.NoError(t, g.AddRelationship(ctx, mAB))

	mBA := model.NewElement(genmodel.KindOwningMembership)
	mBA.Resolve(PropSource, b.Id)
	mBA.Resolve(PropTarget, a.Id)
	require.NoError(t, g.AddRelationship(ctx, mBA))

	report := g.ValidateStructure()
	assert.False(t, report.OK())
	require.Len(t, report.OwnershipCycles, 1)
	assert.ElementsMatch(t, []model.ElementId{a.Id, b.Id}, report.OwnershipCycles[0])
}
