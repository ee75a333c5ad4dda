package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/model"
)

func newPartDef(name string) *model.Element {
	e := model.NewElement(genmodel.KindPartDefinition)
	e.Name = name
	return e
}

func TestAddElement_RootAndCollision(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	pkg := model.NewElement(genmodel.KindPackage)
	pkg.Name = "Pkg"

	id, err := g.AddElement(ctx, pkg)
	require.NoError(t, err)
	assert.Equal(t, pkg.Id, id)

	_, err = g.AddElement(ctx, pkg)
	assert.ErrorIs(t, err, model.ErrIDCollision)
}

func TestAddOwnedElement_CreatesMembershipAndChildren(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	pkg := model.NewElement(genmodel.KindPackage)
	pkg.Name = "Pkg"
	pkgID, err := g.AddElement(ctx, pkg)
	require.NoError(t, err)

	engine := newPartDef("Engine")
	engineID, err := g.AddOwnedElement(ctx, engine, pkgID, "public")
	require.NoError(t, err)

	children := g.ChildrenOf(pkgID)
	assert.Equal(t, []model.ElementId{engineID}, children)

	got, ok := g.GetElement(engineID)
	require.True(t, ok)
	assert.False(t, got.OwningMembership.IsNil())
}

func TestAddOwnedElement_ChildNamespaceKindAccepted(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	pkg := model.NewElement(genmodel.KindPackage)
	pkgID, err := g.AddElement(ctx, pkg)
	require.NoError(t, err)

	lit := model.NewElement(genmodel.KindLiteralInteger)
	_, err = g.AddOwnedElement(ctx, lit, pkgID, "public")
	assert.NoError(t, err) // LiteralInteger is a namespace kind (Expression->Feature->Type->Namespace)
}

func TestAddOwnedElement_NonNamespaceParentRejected(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	comment := model.NewElement(genmodel.KindComment)
	commentID, err := g.AddElement(ctx, comment)
	require.NoError(t, err)

	child := newPartDef("Engine")
	_, err = g.AddOwnedElement(ctx, child, commentID, "public")
	assert.Error(t, err) // Comment is not a namespace kind
}

func TestRoots(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	pkg := model.NewElement(genmodel.KindPackage)
	pkgID, err := g.AddElement(ctx, pkg)
	require.NoError(t, err)

	child := newPartDef("Engine")
	_, err = g.AddOwnedElement(ctx, child, pkgID, "public")
	require.NoError(t, err)

	roots := g.Roots()
	assert.Equal(t, []model.ElementId{pkgID}, roots)
}

func TestAddRelationship_MissingEndpoints(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	rel := model.NewElement(genmodel.KindFeatureTyping)
	err := g.AddRelationship(ctx, rel)
	assert.Error(t, err)
}

func TestAddRelationship_Success(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	pkg := model.NewElement(genmodel.KindPackage)
	pkgID, _ := g.AddElement(ctx, pkg)
	def := newPartDef("Engine")
	defID, _ := g.AddOwnedElement(ctx, def, pkgID, "public")
	usage := model.NewElement(genmodel.KindPartUsage)
	usage.Name = "engine"
	usageID, _ := g.AddOwnedElement(ctx, usage, pkgID, "public")

	rel := model.NewElement(genmodel.KindFeatureTyping)
	rel.Resolve(PropSource, usageID)
	rel.Resolve(PropTarget, defID)
	require.NoError(t, g.AddRelationship(ctx, rel))

	assert.Contains(t, g.Outgoing(usageID), rel.Id)
	assert.Contains(t, g.Incoming(defID), rel.Id)
}

func TestAddRelationship_ConstraintViolation(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	pkg := model.NewElement(genmodel.KindPackage)
	pkgID, _ := g.AddElement(ctx, pkg)
	a := newPartDef("A")
	aID, _ := g.AddOwnedElement(ctx, a, pkgID, "public")
	b := newPartDef("B")
	bID, _ := g.AddOwnedElement(ctx, b, pkgID, "public")

	// FeatureTyping requires a Feature source; PartDefinition is a
	// Classifier, not a Feature, so this must be rejected.
	rel := model.NewElement(genmodel.KindFeatureTyping)
	rel.Resolve(PropSource, aID)
	rel.Resolve(PropTarget, bID)
	assert.Error(t, g.AddRelationship(ctx, rel))
}

func TestRegisterLibraryPackage_AndIsLibraryElement(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	pkg := model.NewElement(genmodel.KindLibraryPackage)
	pkgID, _ := g.AddElement(ctx, pkg)
	require.NoError(t, g.RegisterLibraryPackage(pkgID))

	child := newPartDef("Real")
	childID, _ := g.AddOwnedElement(ctx, child, pkgID, "public")

	assert.True(t, g.IsLibraryElement(childID))
	assert.True(t, g.IsLibraryElement(pkgID))
}

func TestValidateStructure_Clean(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	pkg := model.NewElement(genmodel.KindPackage)
	pkgID, _ := g.AddElement(ctx, pkg)
	child := newPartDef("Engine")
	_, err := g.AddOwnedElement(ctx, child, pkgID, "public")
	require.NoError(t, err)

	report := g.ValidateStructure()
	assert.True(t, report.OK())
}

func TestMerge_IDCollision(t *testing.T) {
	g1 := New(nil)
	g2 := New(nil)
	ctx := context.Background()
	pkg := model.NewElement(genmodel.KindPackage)
	_, err := g1.AddElement(ctx, pkg)
	require.NoError(t, err)
	_, err = g2.AddElement(ctx, pkg) // same element, same id
	require.NoError(t, err)

	err = g1.Merge(ctx, g2, false)
	assert.ErrorIs(t, err, model.ErrMergeIDCollision)
}

func TestMerge_Success(t *testing.T) {
	g1 := New(nil)
	g2 := New(nil)
	ctx := context.Background()

	pkg1 := model.NewElement(genmodel.KindPackage)
	pkg1ID, _ := g1.AddElement(ctx, pkg1)

	pkg2 := model.NewElement(genmodel.KindLibraryPackage)
	pkg2ID, _ := g2.AddElement(ctx, pkg2)
	require.NoError(t, g2.RegisterLibraryPackage(pkg2ID))

	require.NoError(t, g1.Merge(ctx, g2, true))
	assert.Equal(t, 2, g1.Len())
	_, ok := g1.GetElement(pkg2ID)
	assert.True(t, ok)
	_, ok = g1.GetElement(pkg1ID)
	assert.True(t, ok)
}

func TestQualifiedNameOf(t *testing.T) {
	g := New(nil)
	ctx := context.Background()
	pkg := model.NewElement(genmodel.KindPackage)
	pkg.Name = "Pkg"
	pkgID, _ := g.AddElement(ctx, pkg)

	engine := newPartDef("Engine")
	engineID, _ := g.AddOwnedElement(ctx, engine, pkgID, "public")

	segs, ok := g.QualifiedNameOf(engineID)
	require.True(t, ok)
	assert.Equal(t, []string{"Pkg", "Engine"}, segs)
}
