// Written by hand, not by cmd/modelgen; see the package doc in kind.go.
package genmodel

import "github.com/sysml-go/modelcore/internal/value"

// PropertyKind tags the shape of a single declared property.
type PropertyKind int

const (
	PropScalar PropertyKind = iota // Bool, Int, Float, String
	PropEnum
	PropRef    // single reference to another element by id
	PropRefList
)

// PropertySchema describes one property declared (or inherited) on an
// element kind.
type PropertySchema struct {
	Name     string
	Kind     PropertyKind
	Enum     ValueEnumeration // set iff Kind == PropEnum
	Required bool
}

// ownSchema lists the properties a kind declares directly, excluding
// anything it inherits from a supertype; Schema below walks the
// supertype chain to produce the full effective set.
var ownSchema = map[ElementKind][]PropertySchema{
	KindFeature: {
		{Name: "direction", Kind: PropEnum, Enum: EnumFeatureDirection},
		{Name: "isComposite", Kind: PropScalar},
		{Name: "isPortion", Kind: PropScalar},
		{Name: "portionKind", Kind: PropEnum, Enum: EnumFeaturePortionKind},
		{Name: "isDerived", Kind: PropScalar},
		{Name: "isEnd", Kind: PropScalar},
	},
	KindType: {
		{Name: "isAbstract", Kind: PropScalar},
		{Name: "isSufficient", Kind: PropScalar},
	},
	KindNamespace: {
		{Name: "visibility", Kind: PropEnum, Enum: EnumVisibilityKind, Required: true},
		{Name: "declaredName", Kind: PropScalar},
		{Name: "declaredShortName", Kind: PropScalar},
	},
	KindMultiplicityRange: {
		{Name: "lowerBound", Kind: PropScalar},
		{Name: "upperBound", Kind: PropScalar},
	},
	KindRequirementUsage: {
		{Name: "requiredConstraintKind", Kind: PropEnum, Enum: EnumRequirementConstraintKind},
	},
	KindRequirementDefinition: {
		{Name: "requiredConstraintKind", Kind: PropEnum, Enum: EnumRequirementConstraintKind},
	},
	KindTransitionUsage: {
		{Name: "transitionFeatureKind", Kind: PropEnum, Enum: EnumTransitionFeatureKind},
	},
	KindTriggerInvocationExpression: {
		{Name: "triggerKind", Kind: PropEnum, Enum: EnumTriggerKind},
	},
	KindLiteralInteger: {
		{Name: "value", Kind: PropScalar, Required: true},
	},
	KindLiteralRational: {
		{Name: "value", Kind: PropScalar, Required: true},
	},
	KindLiteralBoolean: {
		{Name: "value", Kind: PropScalar, Required: true},
	},
	KindLiteralString: {
		{Name: "value", Kind: PropScalar, Required: true},
	},
	KindImport: {
		{Name: "isRecursive", Kind: PropScalar},
		{Name: "importedNamespace", Kind: PropScalar, Required: true},
	},
	KindMembership: {
		{Name: "memberName", Kind: PropScalar},
		{Name: "memberShortName", Kind: PropScalar},
	},
}

// Schema returns the full effective property set for k: its own
// declared properties plus everything inherited from its supertype
// chain, own properties first, most-general supertype last within each
// inherited block, duplicate names from a subtype winning over the
// same name on a supertype.
func Schema(k ElementKind) []PropertySchema {
	seen := make(map[string]bool)
	var out []PropertySchema

	appendUnseen := func(props []PropertySchema) {
		for _, p := range props {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			out = append(out, p)
		}
	}

	appendUnseen(ownSchema[k])
	for _, super := range Supertypes(k) {
		appendUnseen(ownSchema[super])
	}
	return out
}

// HasProperty reports whether name is in k's effective schema (own or
// inherited).
func HasProperty(k ElementKind, name string) bool {
	for _, p := range Schema(k) {
		if p.Name == name {
			return true
		}
	}
	return false
}

// ZeroValue returns the schema-appropriate zero value.Value for a
// property, used to seed defaults before a parser or merge populates
// them.
func ZeroValue(p PropertySchema) value.Value {
	switch p.Kind {
	case PropEnum:
		return value.Null
	case PropRef, PropRefList:
		return value.Null
	default:
		return value.Null
	}
}
