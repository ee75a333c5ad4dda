package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/value"
)

func TestNewElement_FreshIdentity(t *testing.T) {
	a := NewElement(genmodel.KindPartUsage)
	b := NewElement(genmodel.KindPartUsage)
	assert.NotEqual(t, a.Id, b.Id)
	assert.False(t, a.Id.IsNil())
}

func TestSetGet_RoundTrip(t *testing.T) {
	e := NewElement(genmodel.KindPartUsage)
	e.Set("declaredName", value.String("engine"))
	got := e.Get("declaredName")
	s, ok := got.String()
	require.True(t, ok)
	assert.Equal(t, "engine", s)
}

func TestGet_MissingIsNull(t *testing.T) {
	e := NewElement(genmodel.KindPartUsage)
	assert.True(t, e.Get("nope").IsNull())
}

func TestUnresolvedText_AndResolve(t *testing.T) {
	e := NewElement(genmodel.KindFeatureTyping)
	e.Set(UnresolvedRoleName("type"), value.String("Pkg::Engine"))

	text, ok := e.UnresolvedText("type")
	require.True(t, ok)
	assert.Equal(t, "Pkg::Engine", text)

	target := NewElementId()
	e.Resolve("type", target)

	resolved, ok := e.ResolvedRef("type")
	require.True(t, ok)
	assert.Equal(t, target, resolved)

	// original unresolved string is retained alongside the resolved ref.
	text, ok = e.UnresolvedText("type")
	require.True(t, ok)
	assert.Equal(t, "Pkg::Engine", text)
}

func TestUnresolvedRoles_ExcludesResolved(t *testing.T) {
	e := NewElement(genmodel.KindFeatureTyping)
	e.Set(UnresolvedRoleName("type"), value.String("Pkg::Engine"))
	e.Set(UnresolvedRoleName("general"), value.String("Pkg::Other"))
	e.Resolve("type", NewElementId())

	roles := e.UnresolvedRoles()
	assert.ElementsMatch(t, []string{"general"}, roles)
}
