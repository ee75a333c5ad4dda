package specingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseVocabulary_TypesAndSubclassEdges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "kernel.ttl", `
@prefix : <https://example.org/kernel#> .

:Element a owl:Class .

:Namespace a owl:Class ;
    rdfs:subClassOf :Element .

:Type a owl:Class ;
    rdfs:subClassOf :Namespace .

:Classifier a owl:Class ;
    rdfs:subClassOf :Type, :Namespace .

:VisibilityKind a owl:Class ;
    sysml:isEnumeration true .
`)

	table, err := ParseVocabulary(path)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Element", "Namespace", "Type", "Classifier", "VisibilityKind"}, table.Types)
	assert.Equal(t, []string{"Element"}, table.SuperOf["Namespace"])
	assert.ElementsMatch(t, []string{"Type", "Namespace"}, table.SuperOf["Classifier"])
	assert.True(t, table.IsEnum["VisibilityKind"])
	assert.False(t, table.IsEnum["Classifier"])
}

func TestParseVocabulary_RejectsUndeclaredSuperclass(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.ttl", `
:Sub a owl:Class ;
    rdfs:subClassOf :NeverDeclared .
`)
	_, err := ParseVocabulary(path)
	require.Error(t, err)
}

func TestParseShapes_PropertyCardinalityAndRange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "kernel-shapes.ttl", `
:PartDefinitionShape a sh:NodeShape ;
    sh:targetClass :PartDefinition ;
    sh:property [ sh:path :isAbstract ; sh:minCount 1 ; sh:maxCount 1 ; sh:datatype xsd:boolean ] ;
    sh:property [ sh:path :ownedPart ; sh:minCount 0 ; sh:class :PartUsage ] .
`)

	table, err := ParseShapes(path)
	require.NoError(t, err)

	props := table.PropertiesOf["PartDefinition"]
	require.Len(t, props, 2)

	assert.Equal(t, "isAbstract", props[0].Name)
	assert.Equal(t, CardinalityExactlyOne, props[0].Cardinality)
	assert.True(t, props[0].IsScalar)
	assert.Equal(t, "boolean", props[0].Range)

	assert.Equal(t, "ownedPart", props[1].Name)
	assert.Equal(t, CardinalityZeroOrMany, props[1].Cardinality)
	assert.False(t, props[1].IsScalar)
	assert.Equal(t, "PartUsage", props[1].Range)
}

func TestParseMetamodel_ClassesAndAssociations(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "metamodel.uml", `
# classes
class PartDefinition
class PartUsage
class Specialization

association Specialization : Type -> Type
association FeatureTyping : Feature -> Type
`)

	table, err := ParseMetamodel(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"PartDefinition", "PartUsage", "Specialization"}, table.Classes)
	require.Len(t, table.Relationships, 2)
	assert.Equal(t, RelationshipConstraint{Kind: "Specialization", Source: "Type", Target: "Type"}, table.Relationships[0])
	assert.Equal(t, RelationshipConstraint{Kind: "FeatureTyping", Source: "Feature", Target: "Type"}, table.Relationships[1])
}

func TestParseMetamodel_RejectsUnrecognizedLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.uml", "not a known declaration\n")
	_, err := ParseMetamodel(path)
	require.Error(t, err)
}

func TestParseShapesEnumerations_OrderedCollection(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "shapes.ttl", `
:VisibilityKind a owl:Class ;
    sysml:isEnumeration true ;
    sysml:enumValues ( :public :private :protected ) .
`)
	table, err := ParseShapesEnumerations(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"public", "private", "protected"}, table.ValuesOf["VisibilityKind"])
}

func TestParseJSONEnumerations(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "enums.json", `{"VisibilityKind": ["public", "private", "protected"], "DirectionKind": ["in", "out", "inout"]}`)
	table, err := ParseJSONEnumerations(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"public", "private", "protected"}, table.ValuesOf["VisibilityKind"])
	assert.Equal(t, []string{"in", "out", "inout"}, table.ValuesOf["DirectionKind"])
}

func TestParseGrammar_KeywordsOperatorsAndLiterals(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sysml.peg", `
Keyword <- "abstract" / "action" / "part" / "attribute"

Operator <- "::**" / "::*" / "::" / ":>>" / ":>" / ":="

EnumLiteral_VisibilityKind <- "public" / "private" / "protected"
`)
	table, err := ParseGrammar(path)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"abstract", "action", "part", "attribute"}, table.Keywords)
	assert.Contains(t, table.Operators, ":>>")
	assert.ElementsMatch(t, []string{"public", "private", "protected"}, table.Literals["VisibilityKind"])
}
