package genmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllKinds_NoDuplicates(t *testing.T) {
	seen := make(map[ElementKind]bool)
	for _, k := range AllKinds() {
		require.False(t, seen[k], "duplicate kind %s", k)
		seen[k] = true
	}
	assert.Equal(t, Count(), len(seen))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(KindPartDefinition))
	assert.False(t, Known(ElementKind("NotAKind")))
}

func TestIsSubtypeOf_Reflexive(t *testing.T) {
	assert.True(t, IsSubtypeOf(KindPartUsage, KindPartUsage))
}

func TestIsSubtypeOf_Transitive(t *testing.T) {
	assert.True(t, IsSubtypeOf(KindWhileLoopActionUsage, KindActionUsage))
	assert.True(t, IsSubtypeOf(KindWhileLoopActionUsage, KindFeature))
	assert.False(t, IsSubtypeOf(KindWhileLoopActionUsage, KindPartUsage))
}

func TestDefinitionUsagePartners(t *testing.T) {
	cases := []struct{ def, usage ElementKind }{
		{KindPartDefinition, KindPartUsage},
		{KindAttributeDefinition, KindAttributeUsage},
		{KindRequirementDefinition, KindRequirementUsage},
		{KindCaseDefinition, KindCaseUsage},
	}
	for _, c := range cases {
		require.True(t, IsDefinition(c.def), c.def)
		require.True(t, IsUsage(c.usage), c.usage)
		assert.Equal(t, c.usage, Partner(c.def))
		assert.Equal(t, c.def, Partner(c.usage))
	}
}

func TestRelationshipConstraints(t *testing.T) {
	src, tgt, ok := RelationshipConstraint(KindFeatureTyping)
	require.True(t, ok)
	assert.Equal(t, KindFeature, src)
	assert.Equal(t, KindType, tgt)

	_, _, ok = RelationshipConstraint(KindPartUsage)
	assert.False(t, ok)
}

func TestValidateConstraint(t *testing.T) {
	assert.True(t, ValidateConstraint(KindFeatureTyping, KindPartUsage, KindPartDefinition))
	assert.False(t, ValidateConstraint(KindFeatureTyping, KindPartDefinition, KindPartDefinition))
}

func TestEveryRelationshipKindHasConstraint(t *testing.T) {
	for _, k := range RelationshipKinds() {
		_, _, ok := RelationshipConstraint(k)
		assert.True(t, ok, "relationship kind %s missing source/target constraint", k)
	}
}

func TestNamespaceKindsAreSelfConsistent(t *testing.T) {
	// Every definition and usage kind nests members, so must be flagged
	// as a namespace kind.
	for _, k := range AllKinds() {
		if IsDefinition(k) || IsUsage(k) {
			assert.True(t, IsNamespaceKind(k), "%s should be a namespace kind", k)
		}
	}
}
