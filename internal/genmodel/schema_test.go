package genmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_InheritsFromSupertypes(t *testing.T) {
	props := Schema(KindPartUsage)
	names := make(map[string]bool)
	for _, p := range props {
		names[p.Name] = true
	}
	assert.True(t, names["direction"], "PartUsage should inherit Feature.direction")
	assert.True(t, names["visibility"], "PartUsage should inherit Namespace.visibility")
}

func TestSchema_OwnWinsOverInherited(t *testing.T) {
	assert.True(t, HasProperty(KindRequirementUsage, "requiredConstraintKind"))
}

func TestEnumMembers(t *testing.T) {
	members := EnumMembers(EnumFeatureDirection)
	assert.Equal(t, []string{"in", "out", "inout"}, members)
	assert.True(t, IsEnumMember(EnumFeatureDirection, "inout"))
	assert.False(t, IsEnumMember(EnumFeatureDirection, "sideways"))
}

func TestEnumMembers_UnknownEnumeration(t *testing.T) {
	assert.Nil(t, EnumMembers(ValueEnumeration("NotAnEnum")))
}
