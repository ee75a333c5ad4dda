package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/specingest"
)

func completeRelationshipPairs() []specingest.RelationshipConstraint {
	var out []specingest.RelationshipConstraint
	for _, kind := range genmodel.AllKinds() {
		if !genmodel.IsRelationship(kind) {
			continue
		}
		out = append(out, specingest.RelationshipConstraint{Kind: string(kind), Source: "Type", Target: "Type"})
	}
	return out
}

func baseTables() *specingest.Tables {
	return &specingest.Tables{
		KernelVocabulary:  specingest.VocabularyTable{Types: []string{"PartDefinition"}, SuperOf: map[string][]string{}, IsEnum: map[string]bool{}},
		SystemsVocabulary: specingest.VocabularyTable{Types: nil, SuperOf: map[string][]string{}, IsEnum: map[string]bool{}},
		Metamodel:         specingest.MetamodelTable{Classes: []string{"PartDefinition"}, Relationships: completeRelationshipPairs()},
		ShapesEnums:       specingest.EnumerationTable{ValuesOf: map[string][]string{"VisibilityKind": {"public", "private"}}},
		JSONEnums:         specingest.EnumerationTable{ValuesOf: map[string][]string{"VisibilityKind": {"public", "private"}}},
	}
}

func TestValidateCoverage_PassesOnConsistentTables(t *testing.T) {
	err := ValidateCoverage(baseTables())
	require.NoError(t, err)
}

func TestValidateTypeCoverage_DetectsMismatch(t *testing.T) {
	tables := baseTables()
	tables.Metamodel.Classes = append(tables.Metamodel.Classes, "GhostClass")
	tables.KernelVocabulary.Types = append(tables.KernelVocabulary.Types, "UncoveredType")

	err := ValidateTypeCoverage(tables)
	require.Error(t, err)
	var buildErr *model.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, model.ECTypeCoverageFailed, buildErr.Code)
	assert.Contains(t, buildErr.Detail, "GhostClass")
	assert.Contains(t, buildErr.Detail, "UncoveredType")
}

func TestValidateEnumCoverage_DetectsMemberSetMismatch(t *testing.T) {
	tables := baseTables()
	tables.JSONEnums.ValuesOf["VisibilityKind"] = []string{"public", "private", "protected"}

	err := ValidateEnumCoverage(tables)
	require.Error(t, err)
	var buildErr *model.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, model.ECEnumCoverageFailed, buildErr.Code)
}

func TestValidateRelationshipConstraints_ToleratesSingleFallbackGap(t *testing.T) {
	tables := baseTables()
	var filtered []specingest.RelationshipConstraint
	for _, rel := range tables.Metamodel.Relationships {
		if rel.Kind != "Conjugation" {
			filtered = append(filtered, rel)
		}
	}
	tables.Metamodel.Relationships = filtered

	err := ValidateRelationshipConstraints(tables)
	assert.NoError(t, err)
}

func TestValidateRelationshipConstraints_FailsOnTwoMissingPairs(t *testing.T) {
	tables := baseTables()
	var filtered []specingest.RelationshipConstraint
	for _, rel := range tables.Metamodel.Relationships {
		if rel.Kind != "Conjugation" && rel.Kind != "Disjoining" {
			filtered = append(filtered, rel)
		}
	}
	tables.Metamodel.Relationships = filtered

	err := ValidateRelationshipConstraints(tables)
	require.Error(t, err)
	var buildErr *model.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, model.ECRelConstraintBad, buildErr.Code)
}

func TestValidateRelationshipConstraints_FailsOnAmbiguousPair(t *testing.T) {
	tables := baseTables()
	tables.Metamodel.Relationships = append(tables.Metamodel.Relationships, specingest.RelationshipConstraint{Kind: "Specialization", Source: "Feature", Target: "Feature"})

	err := ValidateRelationshipConstraints(tables)
	require.Error(t, err)
	var buildErr *model.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Contains(t, buildErr.Detail, "Specialization")
}
