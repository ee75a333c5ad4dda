package codegen

import (
	"fmt"
	"sort"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/specingest"
)

// fallbackRelationshipPairs supplies the one (source, target) pair the
// metamodel artifact is permitted to omit for a relationship kind
// before declaring coverage failed (§4.2 "a small named fallback table
// may supply exactly one missing pair").
var fallbackRelationshipPairs = map[string]specingest.RelationshipConstraint{
	"Conjugation": {Kind: "Conjugation", Source: "Type", Target: "Type"},
}

// ValidateCoverage runs the three build-fatal coverage cross-checks.
// The first failure short-circuits the rest, matching the order the
// spec lists them in (type coverage, enum coverage, relationship
// constraint coverage).
func ValidateCoverage(t *specingest.Tables) error {
	if err := ValidateTypeCoverage(t); err != nil {
		return err
	}
	if err := ValidateEnumCoverage(t); err != nil {
		return err
	}
	if err := ValidateRelationshipConstraints(t); err != nil {
		return err
	}
	return nil
}

// ValidateTypeCoverage requires every metamodel class to appear in the
// vocabulary and every non-enum vocabulary type to appear in the
// metamodel.
func ValidateTypeCoverage(t *specingest.Tables) error {
	vocabTypes := make(map[string]bool)
	for _, name := range t.AllTypes() {
		vocabTypes[name] = true
	}
	metaClasses := make(map[string]bool)
	for _, name := range t.Metamodel.Classes {
		metaClasses[name] = true
	}

	var missingFromVocab, missingFromMetamodel []string
	for _, name := range t.Metamodel.Classes {
		if !vocabTypes[name] {
			missingFromVocab = append(missingFromVocab, name)
		}
	}
	for _, name := range t.AllTypes() {
		if t.IsEnumType(name) {
			continue
		}
		if !metaClasses[name] {
			missingFromMetamodel = append(missingFromMetamodel, name)
		}
	}

	if len(missingFromVocab) == 0 && len(missingFromMetamodel) == 0 {
		return nil
	}
	sort.Strings(missingFromVocab)
	sort.Strings(missingFromMetamodel)
	return &model.BuildError{
		Code:    model.ECTypeCoverageFailed,
		Message: "TYPE COVERAGE VALIDATION FAILED",
		Detail:  fmt.Sprintf("metamodel classes missing from vocabulary: %v; vocabulary types missing from metamodel: %v", missingFromVocab, missingFromMetamodel),
	}
}

// ValidateEnumCoverage requires every enumeration in the JSON schema
// source to have an identical member set to its shapes counterpart.
func ValidateEnumCoverage(t *specingest.Tables) error {
	var mismatches []string

	names := make(map[string]bool)
	for name := range t.JSONEnums.ValuesOf {
		names[name] = true
	}
	for name := range t.ShapesEnums.ValuesOf {
		names[name] = true
	}

	sortedNames := make([]string, 0, len(names))
	for name := range names {
		sortedNames = append(sortedNames, name)
	}
	sort.Strings(sortedNames)

	for _, name := range sortedNames {
		jsonVals, shapeVals := t.JSONEnums.ValuesOf[name], t.ShapesEnums.ValuesOf[name]
		if !sameMemberSet(jsonVals, shapeVals) {
			mismatches = append(mismatches, fmt.Sprintf("%s: json=%v shapes=%v", name, jsonVals, shapeVals))
		}
	}

	if len(mismatches) == 0 {
		return nil
	}
	return &model.BuildError{
		Code:    model.ECEnumCoverageFailed,
		Message: "ENUM COVERAGE VALIDATION FAILED",
		Detail:  fmt.Sprintf("%v", mismatches),
	}
}

func sameMemberSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// ValidateRelationshipConstraints requires every relationship kind in
// the taxonomy to have exactly one (source, target) pair declared in
// the metamodel. Zero declared pairs for a kind is tolerated for the
// kinds named in fallbackRelationshipPairs (at most one such kind);
// more than one missing pair, or any kind with more than one declared
// pair, is fatal.
func ValidateRelationshipConstraints(t *specingest.Tables) error {
	counts := make(map[string]int)
	for _, rel := range t.Metamodel.Relationships {
		counts[rel.Kind]++
	}

	var ambiguous []string
	for _, kind := range genmodel.AllKinds() {
		if !genmodel.IsRelationship(kind) {
			continue
		}
		if counts[string(kind)] > 1 {
			ambiguous = append(ambiguous, fmt.Sprintf("%s (%d pairs)", kind, counts[string(kind)]))
		}
	}
	if len(ambiguous) > 0 {
		sort.Strings(ambiguous)
		return &model.BuildError{
			Code:    model.ECRelConstraintBad,
			Message: "RELATIONSHIP CONSTRAINT VALIDATION FAILED",
			Detail:  fmt.Sprintf("relationship kinds with more than one (source, target) pair: %v", ambiguous),
		}
	}

	var missingKinds []string
	for _, kind := range genmodel.AllKinds() {
		if genmodel.IsRelationship(kind) && counts[string(kind)] == 0 {
			missingKinds = append(missingKinds, string(kind))
		}
	}
	switch len(missingKinds) {
	case 0:
		return nil
	case 1:
		if _, ok := fallbackRelationshipPairs[missingKinds[0]]; ok {
			return nil
		}
		return &model.BuildError{
			Code:    model.ECRelConstraintBad,
			Message: "RELATIONSHIP CONSTRAINT VALIDATION FAILED",
			Detail:  fmt.Sprintf("relationship kind %s has no declared (source, target) pair and no fallback entry", missingKinds[0]),
		}
	default:
		sort.Strings(missingKinds)
		return &model.BuildError{
			Code:    model.ECRelConstraintBad,
			Message: "RELATIONSHIP CONSTRAINT VALIDATION FAILED",
			Detail:  fmt.Sprintf("relationship kinds with no declared (source, target) pair, more than the one fallback allowance: %v", missingKinds),
		}
	}
}
