// Written by hand, not by cmd/modelgen; see the package doc in kind.go.
package genmodel

// RelationshipLabel is a coarse-grained classification used by the
// graph's relationships-by-label indexes and by diagnostics, distinct
// from the full ElementKind (several relationship kinds share a label).
type RelationshipLabel string

const (
	LabelOwning     RelationshipLabel = "Owning"
	LabelTypeOf     RelationshipLabel = "TypeOf"
	LabelSatisfy    RelationshipLabel = "Satisfy"
	LabelVerify     RelationshipLabel = "Verify"
	LabelDerive     RelationshipLabel = "Derive"
	LabelTrace      RelationshipLabel = "Trace"
	LabelReference  RelationshipLabel = "Reference"
	LabelSpecialize RelationshipLabel = "Specialize"
	LabelRedefine   RelationshipLabel = "Redefine"
	LabelSubsetting RelationshipLabel = "Subsetting"
	LabelFlow       RelationshipLabel = "Flow"
	LabelTransition RelationshipLabel = "Transition"
)

// relationshipLabels maps each relationship ElementKind to its coarse
// label. Kinds not present here (e.g. FlowConnectionUsage, which is a
// usage kind rather than a relationship kind) are not relationships at
// all and have no label.
var relationshipLabels = map[ElementKind]RelationshipLabel{
	KindOwningMembership:          LabelOwning,
	KindFeatureMembership:         LabelOwning,
	KindEndFeatureMembership:      LabelOwning,
	KindParameterMembership:       LabelOwning,
	KindReturnParameterMembership: LabelOwning,
	KindResultExpressionMembership: LabelOwning,
	KindElementFilterMembership:   LabelOwning,
	KindMembership:                LabelOwning,

	KindFeatureTyping:    LabelTypeOf,
	KindSpecialization:   LabelSpecialize,
	KindSubclassification: LabelSpecialize,
	KindConjugation:      LabelTypeOf,

	KindSubsetting:          LabelSubsetting,
	KindReferenceSubsetting: LabelReference,
	KindCrossSubsetting:     LabelSubsetting,
	KindRedefinition:        LabelRedefine,

	KindDependency:   LabelTrace,
	KindDisjoining:   LabelSpecialize,
	KindDifferencing: LabelSpecialize,
	KindUnioning:     LabelSpecialize,
	KindIntersecting: LabelSpecialize,
	KindImport:       LabelReference,
}

// RelationshipLabelOf returns the coarse label for a relationship kind,
// ok is false if k isn't a relationship kind or has no assigned label.
func RelationshipLabelOf(k ElementKind) (RelationshipLabel, bool) {
	label, ok := relationshipLabels[k]
	return label, ok
}

// ValidateConstraint reports whether a candidate (sourceKind,
// targetKind) pair satisfies rel's documented source/target constraint
// (§3 "Relationship Kind Constraints"). Non-relationship kinds always
// fail.
func ValidateConstraint(rel, sourceKind, targetKind ElementKind) bool {
	wantSource, wantTarget, ok := RelationshipConstraint(rel)
	if !ok {
		return false
	}
	return IsSubtypeOf(sourceKind, wantSource) && IsSubtypeOf(targetKind, wantTarget)
}

// RelationshipKinds returns every ElementKind flagged as a relationship
// kind, in taxonomy order.
func RelationshipKinds() []ElementKind {
	var out []ElementKind
	for _, k := range AllKinds() {
		if IsRelationship(k) {
			out = append(out, k)
		}
	}
	return out
}
