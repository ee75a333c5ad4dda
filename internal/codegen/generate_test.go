package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-go/modelcore/internal/specingest"
)

func TestGenerate_WritesFormattedSourcesWhenCoveragePasses(t *testing.T) {
	tables := baseTables()
	tables.KernelShapes = specingest.ShapeTable{PropertiesOf: map[string][]specingest.PropertyShape{
		"PartDefinition": {
			{Name: "isAbstract", Cardinality: specingest.CardinalityExactlyOne, Range: "boolean", IsScalar: true},
		},
	}}

	outDir := t.TempDir()
	err := Generate(tables, outDir)
	require.NoError(t, err)

	for _, name := range []string{"kind.go", "enums.go", "schema.go", "relconstraints.go"} {
		content, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "// Code generated by cmd/modelgen"))
		assert.Contains(t, string(content), "package genmodel")
	}

	kindSrc, err := os.ReadFile(filepath.Join(outDir, "kind.go"))
	require.NoError(t, err)
	assert.Contains(t, string(kindSrc), `"PartDefinition"`)

	schemaSrc, err := os.ReadFile(filepath.Join(outDir, "schema.go"))
	require.NoError(t, err)
	assert.Contains(t, string(schemaSrc), "isAbstract")
}

func TestGenerate_FailsWhenCoverageFails(t *testing.T) {
	tables := baseTables()
	tables.Metamodel.Classes = append(tables.Metamodel.Classes, "GhostClass")

	err := Generate(tables, t.TempDir())
	require.Error(t, err)
}
