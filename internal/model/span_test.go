package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIndex_Position(t *testing.T) {
	src := []byte("abc\ndef\nghi")
	li := BuildLineIndex(src)

	line, col := li.Position(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = li.Position(4) // 'd'
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = li.Position(9) // 'h'
	assert.Equal(t, 3, line)
	assert.Equal(t, 2, col)
}

func TestMakeSpan(t *testing.T) {
	src := []byte("part def Engine;\npart engine : Engine;")
	li := BuildLineIndex(src)
	s := MakeSpan(li, "a.sysml", 18, 22)
	assert.Equal(t, "a.sysml", s.Path)
	assert.Equal(t, 2, s.Line)
	assert.Equal(t, 2, s.Column)
}
