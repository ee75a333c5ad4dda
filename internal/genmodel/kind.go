// Package genmodel holds the ElementKind taxonomy, value enumerations,
// per-kind property schema, and relationship source/target constraints
// (§4.2) that the rest of the module dispatches on.
//
// The files of this package are written by hand and checked in so the
// repository builds without a spec directory present. cmd/modelgen
// writes files of the same names (kind.go, enums.go, schema.go,
// relconstraints.go) holding only data tables (AllKinds,
// GeneratedSuperOf, GeneratedEnumTypes, GeneratedEnumerations,
// GeneratedSchema, GeneratedRelConstraints); it does not emit the
// descriptor tables, category predicates, def/usage partners or
// accessors defined here, and running it into this directory replaces
// these files.
package genmodel

// ElementKind is one of the closed, ordered set of type names drawn
// from the kernel and systems vocabularies (§3 "ElementKind taxonomy").
type ElementKind string

// descriptor carries everything C2 derives about a single kind: its
// transitive supertypes, category predicates, definition/usage partner,
// and (for relationship kinds) the source/target constraint pair.
type descriptor struct {
	kind            ElementKind
	supertypes      []ElementKind // transitive, excluding self
	isDefinition    bool
	isUsage         bool
	isRelationship  bool
	isFeature       bool
	isClassifier    bool
	isNamespaceKind bool // kind is itself a namespace (packages, definitions, usages that nest members)
	partner         ElementKind // corresponding usage<->definition kind, "" if none
	sourceConstraint ElementKind // relationship kinds only
	targetConstraint ElementKind // relationship kinds only
}

// kindTable is the single generated source of truth. Entries are
// ordered as the spec's iteration order requires (§3 "ElementKind
// taxonomy... an ordered enumeration"); AllKinds below preserves this
// order.
var kindTable = []descriptor{
	// --- root namespace kinds ---
	{kind: KindNamespace, isNamespaceKind: true},
	{kind: KindPackage, supertypes: []ElementKind{KindNamespace}, isNamespaceKind: true},
	{kind: KindLibraryPackage, supertypes: []ElementKind{KindPackage, KindNamespace}, isNamespaceKind: true},

	// --- Type / Classifier / Feature base kinds ---
	{kind: KindType, supertypes: []ElementKind{KindNamespace}, isNamespaceKind: true},
	{kind: KindClassifier, supertypes: []ElementKind{KindType, KindNamespace}, isClassifier: true, isNamespaceKind: true},
	{kind: KindFeature, supertypes: []ElementKind{KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},

	// --- Part ---
	{kind: KindPartDefinition, supertypes: []ElementKind{KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindPartUsage},
	{kind: KindPartUsage, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindPartDefinition},

	// --- Attribute ---
	{kind: KindAttributeDefinition, supertypes: []ElementKind{KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindAttributeUsage},
	{kind: KindAttributeUsage, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindAttributeDefinition},

	// --- Port ---
	{kind: KindPortDefinition, supertypes: []ElementKind{KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindPortUsage},
	{kind: KindPortUsage, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindPortDefinition},

	// --- Item ---
	{kind: KindItemDefinition, supertypes: []ElementKind{KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindItemUsage},
	{kind: KindItemUsage, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindItemDefinition},

	// --- Connection / Interface / Flow / Allocation ---
	{kind: KindConnectionDefinition, supertypes: []ElementKind{KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindConnectionUsage},
	{kind: KindConnectionUsage, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindConnectionDefinition},
	{kind: KindInterfaceDefinition, supertypes: []ElementKind{KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindInterfaceUsage},
	{kind: KindInterfaceUsage, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindInterfaceDefinition},
	{kind: KindFlowConnectionDefinition, supertypes: []ElementKind{KindConnectionDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindFlowConnectionUsage},
	{kind: KindFlowConnectionUsage, supertypes: []ElementKind{KindConnectionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindFlowConnectionDefinition},
	{kind: KindAllocationDefinition, supertypes: []ElementKind{KindConnectionDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindAllocationUsage},
	{kind: KindAllocationUsage, supertypes: []ElementKind{KindConnectionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindAllocationDefinition},

	// --- Action / behavior ---
	{kind: KindActionDefinition, supertypes: []ElementKind{KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindActionUsage},
	{kind: KindActionUsage, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindActionDefinition},
	{kind: KindAcceptActionUsage, supertypes: []ElementKind{KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true},
	{kind: KindSendActionUsage, supertypes: []ElementKind{KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true},
	{kind: KindPerformActionUsage, supertypes: []ElementKind{KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true},
	{kind: KindAssignmentActionUsage, supertypes: []ElementKind{KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true},
	{kind: KindIfActionUsage, supertypes: []ElementKind{KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true},
	{kind: KindLoopActionUsage, supertypes: []ElementKind{KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true},
	{kind: KindWhileLoopActionUsage, supertypes: []ElementKind{KindLoopActionUsage, KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true},
	{kind: KindForLoopActionUsage, supertypes: []ElementKind{KindLoopActionUsage, KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true},

	// --- State machine ---
	{kind: KindStateDefinition, supertypes: []ElementKind{KindActionDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindStateUsage},
	{kind: KindStateUsage, supertypes: []ElementKind{KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindStateDefinition},
	{kind: KindTransitionUsage, supertypes: []ElementKind{KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true},
	{kind: KindTriggerInvocationExpression, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},

	// --- Calculation ---
	{kind: KindCalculationDefinition, supertypes: []ElementKind{KindActionDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindCalculationUsage},
	{kind: KindCalculationUsage, supertypes: []ElementKind{KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindCalculationDefinition},

	// --- Constraint / Requirement / Concern / Case ---
	{kind: KindConstraintDefinition, supertypes: []ElementKind{KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindConstraintUsage},
	{kind: KindConstraintUsage, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindConstraintDefinition},
	{kind: KindRequirementDefinition, supertypes: []ElementKind{KindConstraintDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindRequirementUsage},
	{kind: KindRequirementUsage, supertypes: []ElementKind{KindConstraintUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindRequirementDefinition},
	{kind: KindConcernDefinition, supertypes: []ElementKind{KindRequirementDefinition, KindConstraintDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindConcernUsage},
	{kind: KindConcernUsage, supertypes: []ElementKind{KindRequirementUsage, KindConstraintUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindConcernDefinition},
	{kind: KindCaseDefinition, supertypes: []ElementKind{KindCalculationDefinition, KindActionDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindCaseUsage},
	{kind: KindCaseUsage, supertypes: []ElementKind{KindCalculationUsage, KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindCaseDefinition},
	{kind: KindAnalysisCaseDefinition, supertypes: []ElementKind{KindCaseDefinition, KindCalculationDefinition, KindActionDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindAnalysisCaseUsage},
	{kind: KindAnalysisCaseUsage, supertypes: []ElementKind{KindCaseUsage, KindCalculationUsage, KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindAnalysisCaseDefinition},
	{kind: KindVerificationCaseDefinition, supertypes: []ElementKind{KindCaseDefinition, KindCalculationDefinition, KindActionDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindVerificationCaseUsage},
	{kind: KindVerificationCaseUsage, supertypes: []ElementKind{KindCaseUsage, KindCalculationUsage, KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindVerificationCaseDefinition},
	{kind: KindUseCaseDefinition, supertypes: []ElementKind{KindCaseDefinition, KindCalculationDefinition, KindActionDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindUseCaseUsage},
	{kind: KindUseCaseUsage, supertypes: []ElementKind{KindCaseUsage, KindCalculationUsage, KindActionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindUseCaseDefinition},

	// --- View / Viewpoint / Rendering / Metadata / Enumeration ---
	{kind: KindViewDefinition, supertypes: []ElementKind{KindPartDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindViewUsage},
	{kind: KindViewUsage, supertypes: []ElementKind{KindPartUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindViewDefinition},
	{kind: KindViewpointDefinition, supertypes: []ElementKind{KindRequirementDefinition, KindConstraintDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindViewpointUsage},
	{kind: KindViewpointUsage, supertypes: []ElementKind{KindRequirementUsage, KindConstraintUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindViewpointDefinition},
	{kind: KindRenderingDefinition, supertypes: []ElementKind{KindPartDefinition, KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindRenderingUsage},
	{kind: KindRenderingUsage, supertypes: []ElementKind{KindPartUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindRenderingDefinition},
	{kind: KindMetadataDefinition, supertypes: []ElementKind{KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindMetadataUsage},
	{kind: KindMetadataUsage, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindMetadataDefinition},
	{kind: KindEnumerationDefinition, supertypes: []ElementKind{KindClassifier, KindType, KindNamespace}, isDefinition: true, isClassifier: true, isNamespaceKind: true, partner: KindEnumerationUsage},
	{kind: KindEnumerationUsage, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true, partner: KindEnumerationDefinition},

	// --- Expressions / literals ---
	{kind: KindExpression, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},
	{kind: KindBooleanExpression, supertypes: []ElementKind{KindExpression, KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},
	{kind: KindInvocationExpression, supertypes: []ElementKind{KindExpression, KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},
	{kind: KindFeatureReferenceExpression, supertypes: []ElementKind{KindExpression, KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},
	{kind: KindFeatureChainExpression, supertypes: []ElementKind{KindExpression, KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},
	{kind: KindLiteralInteger, supertypes: []ElementKind{KindExpression, KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},
	{kind: KindLiteralRational, supertypes: []ElementKind{KindExpression, KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},
	{kind: KindLiteralBoolean, supertypes: []ElementKind{KindExpression, KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},
	{kind: KindLiteralString, supertypes: []ElementKind{KindExpression, KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},
	{kind: KindLiteralInfinity, supertypes: []ElementKind{KindExpression, KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},
	{kind: KindMultiplicityRange, supertypes: []ElementKind{KindFeature, KindType, KindNamespace}, isFeature: true, isNamespaceKind: true},

	// --- Documentation / comments ---
	{kind: KindComment},
	{kind: KindDocumentation, supertypes: []ElementKind{KindComment}},
	{kind: KindTextualRepresentation},

	// --- Membership kinds (relationship-elements that express ownership/scope) ---
	{kind: KindMembership, isRelationship: true},
	{kind: KindOwningMembership, supertypes: []ElementKind{KindMembership}, isRelationship: true, sourceConstraint: KindNamespace, targetConstraint: KindType},
	{kind: KindFeatureMembership, supertypes: []ElementKind{KindOwningMembership, KindMembership}, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindFeature},
	{kind: KindEndFeatureMembership, supertypes: []ElementKind{KindFeatureMembership, KindOwningMembership, KindMembership}, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindFeature},
	{kind: KindParameterMembership, supertypes: []ElementKind{KindFeatureMembership, KindOwningMembership, KindMembership}, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindFeature},
	{kind: KindReturnParameterMembership, supertypes: []ElementKind{KindParameterMembership, KindFeatureMembership, KindOwningMembership, KindMembership}, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindFeature},
	{kind: KindResultExpressionMembership, supertypes: []ElementKind{KindFeatureMembership, KindOwningMembership, KindMembership}, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindFeature},
	{kind: KindElementFilterMembership, supertypes: []ElementKind{KindOwningMembership, KindMembership}, isRelationship: true, sourceConstraint: KindNamespace, targetConstraint: KindType},

	// --- Other relationship kinds ---
	{kind: KindImport, isRelationship: true, sourceConstraint: KindNamespace, targetConstraint: KindNamespace},
	{kind: KindDependency, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindType},
	{kind: KindSpecialization, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindType},
	{kind: KindSubclassification, supertypes: []ElementKind{KindSpecialization}, isRelationship: true, sourceConstraint: KindClassifier, targetConstraint: KindClassifier},
	{kind: KindFeatureTyping, supertypes: []ElementKind{KindSpecialization}, isRelationship: true, sourceConstraint: KindFeature, targetConstraint: KindType},
	{kind: KindSubsetting, supertypes: []ElementKind{KindSpecialization}, isRelationship: true, sourceConstraint: KindFeature, targetConstraint: KindFeature},
	{kind: KindRedefinition, supertypes: []ElementKind{KindSubsetting, KindSpecialization}, isRelationship: true, sourceConstraint: KindFeature, targetConstraint: KindFeature},
	{kind: KindReferenceSubsetting, supertypes: []ElementKind{KindSubsetting, KindSpecialization}, isRelationship: true, sourceConstraint: KindFeature, targetConstraint: KindFeature},
	{kind: KindCrossSubsetting, supertypes: []ElementKind{KindSpecialization}, isRelationship: true, sourceConstraint: KindFeature, targetConstraint: KindFeature},
	{kind: KindConjugation, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindType},
	{kind: KindDisjoining, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindType},
	{kind: KindDifferencing, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindType},
	{kind: KindUnioning, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindType},
	{kind: KindIntersecting, isRelationship: true, sourceConstraint: KindType, targetConstraint: KindType},
	{kind: KindSuccessionUsage, supertypes: []ElementKind{KindConnectionUsage, KindFeature, KindType, KindNamespace}, isUsage: true, isFeature: true, isNamespaceKind: true},
}

// Kind name constants. The string value is the canonical SysML v2
// keyword-cased type name as it appears in the vocabulary artifact.
const (
	KindNamespace      ElementKind = "Namespace"
	KindPackage        ElementKind = "Package"
	KindLibraryPackage ElementKind = "LibraryPackage"

	KindType       ElementKind = "Type"
	KindClassifier ElementKind = "Classifier"
	KindFeature    ElementKind = "Feature"

	KindPartDefinition ElementKind = "PartDefinition"
	KindPartUsage      ElementKind = "PartUsage"

	KindAttributeDefinition ElementKind = "AttributeDefinition"
	KindAttributeUsage      ElementKind = "AttributeUsage"

	KindPortDefinition ElementKind = "PortDefinition"
	KindPortUsage      ElementKind = "PortUsage"

	KindItemDefinition ElementKind = "ItemDefinition"
	KindItemUsage      ElementKind = "ItemUsage"

	KindConnectionDefinition ElementKind = "ConnectionDefinition"
	KindConnectionUsage      ElementKind = "ConnectionUsage"
	KindInterfaceDefinition  ElementKind = "InterfaceDefinition"
	KindInterfaceUsage       ElementKind = "InterfaceUsage"

	KindFlowConnectionDefinition ElementKind = "FlowConnectionDefinition"
	KindFlowConnectionUsage      ElementKind = "FlowConnectionUsage"
	KindAllocationDefinition     ElementKind = "AllocationDefinition"
	KindAllocationUsage          ElementKind = "AllocationUsage"

	KindActionDefinition      ElementKind = "ActionDefinition"
	KindActionUsage           ElementKind = "ActionUsage"
	KindAcceptActionUsage     ElementKind = "AcceptActionUsage"
	KindSendActionUsage       ElementKind = "SendActionUsage"
	KindPerformActionUsage    ElementKind = "PerformActionUsage"
	KindAssignmentActionUsage ElementKind = "AssignmentActionUsage"
	KindIfActionUsage         ElementKind = "IfActionUsage"
	KindLoopActionUsage       ElementKind = "LoopActionUsage"
	KindWhileLoopActionUsage  ElementKind = "WhileLoopActionUsage"
	KindForLoopActionUsage    ElementKind = "ForLoopActionUsage"

	KindStateDefinition             ElementKind = "StateDefinition"
	KindStateUsage                  ElementKind = "StateUsage"
	KindTransitionUsage             ElementKind = "TransitionUsage"
	KindTriggerInvocationExpression ElementKind = "TriggerInvocationExpression"

	KindCalculationDefinition ElementKind = "CalculationDefinition"
	KindCalculationUsage      ElementKind = "CalculationUsage"

	KindConstraintDefinition  ElementKind = "ConstraintDefinition"
	KindConstraintUsage       ElementKind = "ConstraintUsage"
	KindRequirementDefinition ElementKind = "RequirementDefinition"
	KindRequirementUsage      ElementKind = "RequirementUsage"
	KindConcernDefinition     ElementKind = "ConcernDefinition"
	KindConcernUsage          ElementKind = "ConcernUsage"

	KindCaseDefinition             ElementKind = "CaseDefinition"
	KindCaseUsage                  ElementKind = "CaseUsage"
	KindAnalysisCaseDefinition     ElementKind = "AnalysisCaseDefinition"
	KindAnalysisCaseUsage          ElementKind = "AnalysisCaseUsage"
	KindVerificationCaseDefinition ElementKind = "VerificationCaseDefinition"
	KindVerificationCaseUsage      ElementKind = "VerificationCaseUsage"
	KindUseCaseDefinition          ElementKind = "UseCaseDefinition"
	KindUseCaseUsage               ElementKind = "UseCaseUsage"

	KindViewDefinition       ElementKind = "ViewDefinition"
	KindViewUsage            ElementKind = "ViewUsage"
	KindViewpointDefinition  ElementKind = "ViewpointDefinition"
	KindViewpointUsage       ElementKind = "ViewpointUsage"
	KindRenderingDefinition  ElementKind = "RenderingDefinition"
	KindRenderingUsage       ElementKind = "RenderingUsage"
	KindMetadataDefinition   ElementKind = "MetadataDefinition"
	KindMetadataUsage        ElementKind = "MetadataUsage"
	KindEnumerationDefinition ElementKind = "EnumerationDefinition"
	KindEnumerationUsage      ElementKind = "EnumerationUsage"

	KindExpression                  ElementKind = "Expression"
	KindBooleanExpression           ElementKind = "BooleanExpression"
	KindInvocationExpression        ElementKind = "InvocationExpression"
	KindFeatureReferenceExpression   ElementKind = "FeatureReferenceExpression"
	KindFeatureChainExpression       ElementKind = "FeatureChainExpression"
	KindLiteralInteger               ElementKind = "LiteralInteger"
	KindLiteralRational              ElementKind = "LiteralRational"
	KindLiteralBoolean                ElementKind = "LiteralBoolean"
	KindLiteralString                  ElementKind = "LiteralString"
	KindLiteralInfinity                ElementKind = "LiteralInfinity"
	KindMultiplicityRange               ElementKind = "MultiplicityRange"

	KindComment               ElementKind = "Comment"
	KindDocumentation         ElementKind = "Documentation"
	KindTextualRepresentation ElementKind = "TextualRepresentation"

	KindMembership                 ElementKind = "Membership"
	KindOwningMembership            ElementKind = "OwningMembership"
	KindFeatureMembership            ElementKind = "FeatureMembership"
	KindEndFeatureMembership          ElementKind = "EndFeatureMembership"
	KindParameterMembership            ElementKind = "ParameterMembership"
	KindReturnParameterMembership       ElementKind = "ReturnParameterMembership"
	KindResultExpressionMembership       ElementKind = "ResultExpressionMembership"
	KindElementFilterMembership           ElementKind = "ElementFilterMembership"

	KindImport               ElementKind = "Import"
	KindDependency           ElementKind = "Dependency"
	KindSpecialization       ElementKind = "Specialization"
	KindSubclassification    ElementKind = "Subclassification"
	KindFeatureTyping        ElementKind = "FeatureTyping"
	KindSubsetting           ElementKind = "Subsetting"
	KindRedefinition         ElementKind = "Redefinition"
	KindReferenceSubsetting  ElementKind = "ReferenceSubsetting"
	KindCrossSubsetting      ElementKind = "CrossSubsetting"
	KindConjugation          ElementKind = "Conjugation"
	KindDisjoining           ElementKind = "Disjoining"
	KindDifferencing         ElementKind = "Differencing"
	KindUnioning             ElementKind = "Unioning"
	KindIntersecting         ElementKind = "Intersecting"
	KindSuccessionUsage      ElementKind = "SuccessionUsage"
)

var (
	byKind   = make(map[ElementKind]*descriptor, len(kindTable))
	allKinds = make([]ElementKind, 0, len(kindTable))
)

func init() {
	for i := range kindTable {
		d := &kindTable[i]
		byKind[d.kind] = d
		allKinds = append(allKinds, d.kind)
	}
}

// AllKinds returns the closed, ordered set of element kinds (§3).
func AllKinds() []ElementKind {
	out := make([]ElementKind, len(allKinds))
	copy(out, allKinds)
	return out
}

// Count returns the number of distinct kinds in the generated taxonomy.
func Count() int { return len(allKinds) }

// Known reports whether k is a member of the generated taxonomy.
func Known(k ElementKind) bool {
	_, ok := byKind[k]
	return ok
}

// Supertypes returns the transitive supertypes of k, outermost last.
func Supertypes(k ElementKind) []ElementKind {
	d, ok := byKind[k]
	if !ok {
		return nil
	}
	out := make([]ElementKind, len(d.supertypes))
	copy(out, d.supertypes)
	return out
}

// IsSubtypeOf reports whether k is sub or kind equals super (reflexive).
func IsSubtypeOf(k, super ElementKind) bool {
	if k == super {
		return true
	}
	for _, s := range Supertypes(k) {
		if s == super {
			return true
		}
	}
	return false
}

func IsDefinition(k ElementKind) bool   { return lookup(k).isDefinition }
func IsUsage(k ElementKind) bool        { return lookup(k).isUsage }
func IsRelationship(k ElementKind) bool { return lookup(k).isRelationship }
func IsFeature(k ElementKind) bool      { return lookup(k).isFeature }
func IsClassifier(k ElementKind) bool   { return lookup(k).isClassifier }
func IsNamespaceKind(k ElementKind) bool { return lookup(k).isNamespaceKind }

// Partner returns the corresponding usage (for a definition kind) or
// definition (for a usage kind); "" if the kind has no documented
// partner.
func Partner(k ElementKind) ElementKind { return lookup(k).partner }

// RelationshipConstraint returns the (source, target) kind constraint
// pair for a relationship kind. ok is false for non-relationship kinds.
func RelationshipConstraint(k ElementKind) (source, target ElementKind, ok bool) {
	d, known := byKind[k]
	if !known || !d.isRelationship {
		return "", "", false
	}
	return d.sourceConstraint, d.targetConstraint, true
}

func lookup(k ElementKind) descriptor {
	if d, ok := byKind[k]; ok {
		return *d
	}
	return descriptor{}
}
