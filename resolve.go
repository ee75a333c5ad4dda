package modelcore

import (
	"strings"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/graph"
	"github.com/sysml-go/modelcore/internal/model"
)

// ResolveName looks up a simple (unqualified) name among namespace's
// direct owned members, the LOCAL tier the resolver's own scoping
// strategies are built from (§4.5 "Scope tiers: LOCAL/INHERITED/IMPORTED").
// It does not walk inheritance or imports; use ResolveWithLibrary-produced
// graphs and the resolver itself for full reference resolution — this
// is the read-only query surface named in §6.
func ResolveName(g *graph.ModelGraph, namespace model.ElementId, name string) (model.ElementId, bool) {
	for _, id := range g.ChildrenOf(namespace) {
		e, ok := g.GetElement(id)
		if !ok {
			continue
		}
		if e.Name == name {
			return id, true
		}
	}
	return model.NilElementId, false
}

// ResolveQName resolves a "::"-separated qualified name against g: a
// registered root path (via ModelGraph.RegisterQualifiedName) is tried
// first, falling back to a segment-by-segment walk from the root
// element whose name matches the first segment, or from the member of
// that name directly owned by an unnamed root (each parsed file's
// implicit root namespace) (§3 QualifiedName, §6 resolve_qname).
func ResolveQName(g *graph.ModelGraph, qualified string) (model.ElementId, bool) {
	if id, ok := g.LookupQualifiedName(qualified); ok {
		return id, true
	}

	segments := strings.Split(qualified, "::")
	if len(segments) == 0 {
		return model.NilElementId, false
	}

	var cur model.ElementId
	found := false
	for _, id := range g.Roots() {
		e, ok := g.GetElement(id)
		if !ok {
			continue
		}
		if e.Name == segments[0] {
			cur, found = id, true
			break
		}
		if e.Name == "" {
			if child, ok := ResolveName(g, id, segments[0]); ok {
				cur, found = child, true
				break
			}
		}
	}
	if !found {
		return model.NilElementId, false
	}
	for _, seg := range segments[1:] {
		cur, found = ResolveName(g, cur, seg)
		if !found {
			return model.NilElementId, false
		}
	}
	return cur, true
}

// ResolvePath walks a feature chain starting at start: for each
// segment it follows start's (then each intermediate feature's)
// resolved FeatureTyping target and looks up the next segment among
// that type's members, matching the "vehicle.engine.pistons" scenario
// of §8 End-to-end scenarios. Returns the element the final segment
// binds to and the zero-based index of the first segment that could
// not resolve (-1 on full success).
func ResolvePath(g *graph.ModelGraph, start model.ElementId, path []string) (model.ElementId, int) {
	cur := start
	for i, seg := range path {
		typeID, ok := typeOf(g, cur)
		if !ok {
			return model.NilElementId, i
		}
		next, ok := ResolveName(g, typeID, seg)
		if !ok {
			return model.NilElementId, i
		}
		cur = next
	}
	return cur, -1
}

// typeOf returns the resolved target of id's FeatureTyping relationship,
// if any (§3 Relationship-element: the typing edge's "type" role holds
// the resolved id once the resolver binds it).
func typeOf(g *graph.ModelGraph, id model.ElementId) (model.ElementId, bool) {
	for _, relID := range g.Outgoing(id) {
		rel, ok := g.GetElement(relID)
		if !ok || rel.Kind != genmodel.KindFeatureTyping {
			continue
		}
		if target, ok := rel.ResolvedRef("type"); ok {
			return target, true
		}
	}
	return model.NilElementId, false
}
