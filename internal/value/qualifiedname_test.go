package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_RoundTrip(t *testing.T) {
	qn := Parse("Pkg::Sub::Engine")
	assert.Equal(t, []string{"Pkg", "Sub", "Engine"}, qn.Segments())
	assert.Equal(t, "Pkg::Sub::Engine", qn.String())
}

func TestParse_Unicode(t *testing.T) {
	qn := Parse("包::エンジン")
	assert.Equal(t, "包::エンジン", qn.String())
	assert.Equal(t, "エンジン", qn.SimpleName())
}

func TestSimpleNameAndParent(t *testing.T) {
	qn := Parse("Pkg::Sub::Engine")
	assert.Equal(t, "Engine", qn.SimpleName())
	assert.Equal(t, "Pkg::Sub", qn.Parent().String())
}

func TestChild(t *testing.T) {
	qn := New("Pkg").Child("Engine")
	assert.Equal(t, "Pkg::Engine", qn.String())
}

func TestEmpty(t *testing.T) {
	var qn QualifiedName
	assert.True(t, qn.IsEmpty())
	assert.Equal(t, "", qn.SimpleName())
	assert.True(t, qn.Parent().IsEmpty())
}

func TestValueEquality(t *testing.T) {
	assert.True(t, Equal(Int(5), Int(5)))
	assert.False(t, Equal(Int(5), Int(6)))
	assert.True(t, Equal(List(Int(1), String("a")), List(Int(1), String("a"))))
	assert.False(t, Equal(List(Int(1)), List(Int(1), Int(2))))
	assert.True(t, Equal(Null, Value{}))
}
