package parser

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

func findChild(t *testing.T, g *graph.ModelGraph, parent model.ElementId, name string) *model.Element {
	t.Helper()
	for _, id := range g.ChildrenOf(parent) {
		e, ok := g.GetElement(id)
		if ok && e.Name == name {
			return e
		}
	}
	t.Fatalf("no child named %q under %s", name, parent)
	return nil
}

func TestParseFile_PackageAndPartDefinition(t *testing.T) {
	src := `
package Vehicles {
	part def Engine {
		attribute power : Real;
	}
}
`
	g := ParseFile(context.Background(), discardLogger(), "test.sysml", []byte(src))
	require.Empty(t, g.Diagnostics().ByCode(model.ECGrammarError))

	roots := g.Roots()
	require.Len(t, roots, 1)

	pkg := findChild(t, g, roots[0], "Vehicles")
	assert.Equal(t, genmodel.KindPackage, pkg.Kind)

	engine := findChild(t, g, pkg.Id, "Engine")
	assert.Equal(t, genmodel.KindPartDefinition, engine.Kind)

	power := findChild(t, g, engine.Id, "power")
	assert.Equal(t, genmodel.KindAttributeUsage, power.Kind)
	text, ok := power.UnresolvedText("type")
	require.True(t, ok)
	assert.Equal(t, "Real", text)
}

func TestParseFile_PartUsageWithMultiplicityAndTyping(t *testing.T) {
	src := `
package P {
	part def Wheel;
	part wheels[4] : Wheel;
}
`
	g := ParseFile(context.Background(), discardLogger(), "test.sysml", []byte(src))
	require.Empty(t, g.Diagnostics().ByCode(model.ECGrammarError))

	pkg := findChild(t, g, g.Roots()[0], "P")

	wheels := findChild(t, g, pkg.Id, "wheels")
	assert.Equal(t, genmodel.KindPartUsage, wheels.Kind)

	lower, ok := wheels.Get("multiplicityLower").String()
	require.True(t, ok)
	assert.Equal(t, "4", lower)
	upper, ok := wheels.Get("multiplicityUpper").String()
	require.True(t, ok)
	assert.Equal(t, "4", upper)

	typeText, ok := wheels.UnresolvedText("type")
	require.True(t, ok)
	assert.Equal(t, "Wheel", typeText)
}

func TestParseFile_Specialization(t *testing.T) {
	src := `
package P {
	part def Base;
	part def Sub :> Base;
}
`
	g := ParseFile(context.Background(), discardLogger(), "test.sysml", []byte(src))
	require.Empty(t, g.Diagnostics().ByCode(model.ECGrammarError))

	pkg := findChild(t, g, g.Roots()[0], "P")
	sub := findChild(t, g, pkg.Id, "Sub")

	var specRel *model.Element
	for _, id := range g.ChildrenOf(sub.Id) {
		e, _ := g.GetElement(id)
		if e.Kind == genmodel.KindSubclassification {
			specRel = e
		}
	}
	require.NotNil(t, specRel)
	text, ok := specRel.UnresolvedText("generalType")
	require.True(t, ok)
	assert.Equal(t, "Base", text)
}

func TestParseFile_RedefinitionAndValueBinding(t *testing.T) {
	src := `
package P {
	part def Base {
		attribute value : Real;
	}
	part sub : Base {
		:>> value = 5;
	}
}
`
	g := ParseFile(context.Background(), discardLogger(), "test.sysml", []byte(src))
	require.Empty(t, g.Diagnostics().ByCode(model.ECGrammarError))

	pkg := findChild(t, g, g.Roots()[0], "P")
	sub := findChild(t, g, pkg.Id, "sub")

	// The bare ":>> value = 5;" statement has no category keyword, so it
	// inherits sub's own kind (PartUsage) per the nested-redefinition
	// shorthand rule.
	var nested *model.Element
	for _, id := range g.ChildrenOf(sub.Id) {
		e, _ := g.GetElement(id)
		if e.Kind == genmodel.KindPartUsage {
			nested = e
		}
	}
	require.NotNil(t, nested)

	v, ok := nested.Get("value").Int()
	require.True(t, ok)
	assert.Equal(t, int64(5), v)

	var redef *model.Element
	for _, id := range g.ChildrenOf(nested.Id) {
		e, _ := g.GetElement(id)
		if e.Kind == genmodel.KindRedefinition {
			redef = e
		}
	}
	require.NotNil(t, redef)
	text, ok := redef.UnresolvedText("redefinedFeature")
	require.True(t, ok)
	assert.Equal(t, "value", text)
}

func TestParseFile_Import(t *testing.T) {
	src := `
package P {
	import Other::Thing;
	import Library::*;
	import Nested::**;
}
`
	g := ParseFile(context.Background(), discardLogger(), "test.sysml", []byte(src))
	require.Empty(t, g.Diagnostics().ByCode(model.ECGrammarError))

	pkg := findChild(t, g, g.Roots()[0], "P")
	var imports []*model.Element
	for _, id := range g.ChildrenOf(pkg.Id) {
		e, _ := g.GetElement(id)
		if e.Kind == genmodel.KindImport {
			imports = append(imports, e)
		}
	}
	require.Len(t, imports, 3)
}

func TestParseFile_DocComment(t *testing.T) {
	src := `
package P {
	/** Describes the chassis. */
	part def Chassis;
}
`
	g := ParseFile(context.Background(), discardLogger(), "test.sysml", []byte(src))
	require.Empty(t, g.Diagnostics().ByCode(model.ECGrammarError))

	pkg := findChild(t, g, g.Roots()[0], "P")
	chassis := findChild(t, g, pkg.Id, "Chassis")
	doc, ok := chassis.Get("documentation").String()
	require.True(t, ok)
	assert.Equal(t, "Describes the chassis.", doc)
}

func TestParseFile_LiteralVsReferenceDistinction(t *testing.T) {
	src := `
package P {
	attribute def Speed;
	part car {
		attribute topSpeed : Speed = 120;
		attribute note = referencedThing;
	}
}
`
	g := ParseFile(context.Background(), discardLogger(), "test.sysml", []byte(src))
	require.Empty(t, g.Diagnostics().ByCode(model.ECGrammarError))

	pkg := findChild(t, g, g.Roots()[0], "P")
	car := findChild(t, g, pkg.Id, "car")

	topSpeed := findChild(t, g, car.Id, "topSpeed")
	n, ok := topSpeed.Get("value").Int()
	require.True(t, ok)
	assert.Equal(t, int64(120), n)

	note := findChild(t, g, car.Id, "note")
	text, ok := note.UnresolvedText("valueExpression")
	require.True(t, ok)
	assert.Equal(t, "referencedThing", text)
}

func TestParseFile_GrammarErrorRecovers(t *testing.T) {
	src := `
package P {
	part def Good;
	&&& not a valid statement;
	part def AlsoGood;
}
`
	g := ParseFile(context.Background(), discardLogger(), "test.sysml", []byte(src))
	assert.NotEmpty(t, g.Diagnostics().ByCode(model.ECGrammarError))
}
