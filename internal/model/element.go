package model

import (
	"sort"

	"github.com/google/uuid"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/value"
)

// ElementId is the opaque, stable identity of an Element, created once
// at construction and never reused (§3 Element).
type ElementId uuid.UUID

// NewElementId mints a fresh random identity.
func NewElementId() ElementId {
	return ElementId(uuid.New())
}

// NilElementId is the zero identity, used to mean "no owning membership".
var NilElementId ElementId

func (id ElementId) String() string {
	return uuid.UUID(id).String()
}

func (id ElementId) IsNil() bool {
	return id == NilElementId
}

// Element is the atomic node of the model graph (§3 Element). Every
// element except roots has exactly one owning membership; membership
// elements themselves have no owning membership (OwningMembership ==
// NilElementId on a Membership-kind element).
type Element struct {
	Id               ElementId
	Kind             genmodel.ElementKind
	Name             string // simple declared name; "" if anonymous
	OwningMembership ElementId
	Spans            []Span
	Properties       map[string]value.Value
}

// NewElement constructs a fresh element of kind k with a new identity
// and an empty property map. Callers fill properties and attach spans
// and ownership as parsing/resolution proceeds.
func NewElement(k genmodel.ElementKind) *Element {
	return &Element{
		Id:         NewElementId(),
		Kind:       k,
		Properties: make(map[string]value.Value),
	}
}

// Get returns the property named name, or value.Null if absent.
func (e *Element) Get(name string) value.Value {
	if e.Properties == nil {
		return value.Null
	}
	v, ok := e.Properties[name]
	if !ok {
		return value.Null
	}
	return v
}

// Set installs a property value, creating the property map if needed.
func (e *Element) Set(name string, v value.Value) {
	if e.Properties == nil {
		e.Properties = make(map[string]value.Value)
	}
	e.Properties[name] = v
}

// AddSpan appends a source span to the element's span list.
func (e *Element) AddSpan(s Span) {
	e.Spans = append(e.Spans, s)
}

// unresolvedPrefix is the conventional property-name prefix for an
// unresolved symbolic reference (§4.4 AST conversion).
const unresolvedPrefix = "unresolved_"

// UnresolvedRoleName returns the conventional unresolved_<role>
// property name for a reference role.
func UnresolvedRoleName(role string) string {
	return unresolvedPrefix + role
}

// UnresolvedText returns the raw unresolved reference text for role, ok
// is false if no such unresolved property is set (already resolved or
// never present).
func (e *Element) UnresolvedText(role string) (string, bool) {
	v := e.Get(UnresolvedRoleName(role))
	return v.String()
}

// Resolve installs the resolved element id for role and clears nothing:
// the original unresolved_<role> string is retained for debugging
// alongside the resolved <role> (§4.5 Diagnostics).
func (e *Element) Resolve(role string, target ElementId) {
	e.Set(role, value.Ref(uuid.UUID(target)))
}

// ResolvedRef returns the resolved target id for role, ok is false if
// role has not been resolved yet.
func (e *Element) ResolvedRef(role string) (ElementId, bool) {
	v := e.Get(role)
	id, ok := v.Ref()
	if !ok {
		return NilElementId, false
	}
	return ElementId(id), true
}

// UnresolvedRoles lists every role name with a pending unresolved_<role>
// property still set and no corresponding resolved <role> property, in
// sorted order so callers that iterate it (§5 "element-id, then
// property name" deterministic diagnostic order) get a stable sequence
// regardless of the underlying property map's iteration order.
func (e *Element) UnresolvedRoles() []string {
	var roles []string
	for name := range e.Properties {
		if len(name) <= len(unresolvedPrefix) || name[:len(unresolvedPrefix)] != unresolvedPrefix {
			continue
		}
		role := name[len(unresolvedPrefix):]
		if _, resolved := e.ResolvedRef(role); !resolved {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)
	return roles
}
