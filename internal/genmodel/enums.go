// Written by hand, not by cmd/modelgen; see the package doc in kind.go.
package genmodel

// ValueEnumeration names one of the closed value enumerations used by
// property schema (§3 "ValueEnumeration").
type ValueEnumeration string

const (
	EnumFeatureDirection        ValueEnumeration = "FeatureDirection"
	EnumVisibilityKind          ValueEnumeration = "VisibilityKind"
	EnumFeaturePortionKind      ValueEnumeration = "FeaturePortionKind"
	EnumRequirementConstraintKind ValueEnumeration = "RequirementConstraintKind"
	EnumStateSubactionKind       ValueEnumeration = "StateSubactionKind"
	EnumTransitionFeatureKind    ValueEnumeration = "TransitionFeatureKind"
	EnumTriggerKind              ValueEnumeration = "TriggerKind"
)

// enumMembers is the ordered, closed member set for each enumeration.
var enumMembers = map[ValueEnumeration][]string{
	EnumFeatureDirection:          {"in", "out", "inout"},
	EnumVisibilityKind:            {"public", "private", "protected"},
	EnumFeaturePortionKind:        {"snapshot", "timeslice"},
	EnumRequirementConstraintKind: {"assumption", "requirement"},
	EnumStateSubactionKind:        {"entry", "do", "exit"},
	EnumTransitionFeatureKind:     {"trigger", "guard", "effect"},
	EnumTriggerKind:               {"when", "at", "after"},
}

// EnumMembers returns the ordered member names of e, or nil if e is not
// a known enumeration.
func EnumMembers(e ValueEnumeration) []string {
	members, ok := enumMembers[e]
	if !ok {
		return nil
	}
	out := make([]string, len(members))
	copy(out, members)
	return out
}

// IsEnumMember reports whether name is a valid member of e.
func IsEnumMember(e ValueEnumeration, name string) bool {
	for _, m := range enumMembers[e] {
		if m == name {
			return true
		}
	}
	return false
}

// AllEnumerations returns the closed set of enumeration names.
func AllEnumerations() []ValueEnumeration {
	out := make([]ValueEnumeration, 0, len(enumMembers))
	for _, e := range []ValueEnumeration{
		EnumFeatureDirection,
		EnumVisibilityKind,
		EnumFeaturePortionKind,
		EnumRequirementConstraintKind,
		EnumStateSubactionKind,
		EnumTransitionFeatureKind,
		EnumTriggerKind,
	} {
		out = append(out, e)
	}
	return out
}
