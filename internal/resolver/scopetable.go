// Package resolver implements C5: the iterative multi-strategy name
// resolver that replaces every unresolved_<role> string property with a
// concrete element identity, or records a diagnostic (§4.5 Resolver).
package resolver

import (
	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/graph"
	"github.com/sysml-go/modelcore/internal/model"
)

// ScopeTable caches, per namespace, the simple-name -> candidate
// element ids assembled from LOCAL+INHERITED+IMPORTED (§4.5 Bookkeeping
// and cost). Tables are invalidated between fixed-point iterations
// because imports and inheritance may add members as other references
// resolve.
type ScopeTable struct {
	// local holds members declared directly in the namespace.
	local map[string][]model.ElementId
	// inherited holds members exposed through the Specialization chain,
	// already shadowed by same-named local members.
	inherited map[string][]model.ElementId
	// imported holds members exposed through Import children, already
	// respecting per-import visibility.
	imported map[string][]model.ElementId
}

// tierCandidates returns the candidate ids for name at each of the
// three tiers separately: local, inherited, imported.
func (st *ScopeTable) tierCandidates(name string) (local, inherited, imported []model.ElementId) {
	return st.local[name], st.inherited[name], st.imported[name]
}

// buildScopeTable assembles the LOCAL+INHERITED+IMPORTED scope for
// namespace ns.
func buildScopeTable(g *graph.ModelGraph, ns model.ElementId) *ScopeTable {
	st := &ScopeTable{
		local:     localMembers(g, ns),
		inherited: make(map[string][]model.ElementId),
		imported:  make(map[string][]model.ElementId),
	}

	nsElem, ok := g.GetElement(ns)
	if ok && (genmodel.IsClassifier(nsElem.Kind) || genmodel.IsFeature(nsElem.Kind)) {
		st.inherited = inheritedMembers(g, ns, st.local, make(map[model.ElementId]bool))
	}

	st.imported = importedMembers(g, ns)
	return st
}

// localMembers returns every owned child of ns keyed by its simple
// name (§4.5 LOCAL: owned members of the reference's enclosing
// namespace).
func localMembers(g *graph.ModelGraph, ns model.ElementId) map[string][]model.ElementId {
	out := make(map[string][]model.ElementId)
	for _, child := range g.ChildrenOf(ns) {
		e, ok := g.GetElement(child)
		if !ok || e.Name == "" {
			continue
		}
		out[e.Name] = append(out[e.Name], child)
	}
	return out
}

// relationshipChildrenAndOutgoing returns every relationship element
// reachable from ns either as an owned child (the convention the
// parser uses for a relationship whose target is not yet resolved at
// insertion time) or via the outgoing-edge index (populated once a
// relationship has been inserted fully resolved through
// graph.ModelGraph.AddRelationship). Both are checked so a caller does
// not care which path produced the relationship.
func relationshipChildrenAndOutgoing(g *graph.ModelGraph, ns model.ElementId) []model.ElementId {
	seen := make(map[model.ElementId]bool)
	var out []model.ElementId
	add := func(id model.ElementId) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range g.ChildrenOf(ns) {
		add(id)
	}
	for _, id := range g.Outgoing(ns) {
		add(id)
	}
	return out
}

// resolvedRelTarget returns the resolved target of a relationship
// element, preferring a semantically named role (e.g. "generalType",
// "redefinedFeature") over the generic graph.PropTarget property so a
// relationship the parser inserted with a role-specific property name
// is still found.
func resolvedRelTarget(rel *model.Element, roles ...string) (model.ElementId, bool) {
	for _, role := range roles {
		if id, ok := rel.ResolvedRef(role); ok {
			return id, true
		}
	}
	return rel.ResolvedRef(graph.PropTarget)
}

// supertypesOf returns the resolved target ids of every Specialization
// (or subtype, e.g. Subclassification/Subsetting) relationship whose
// source is ns, drawn from both ns's owned relationship children and
// its outgoing edges. An unresolved target is skipped; nothing can be
// inherited from a supertype that has not resolved yet this pass.
func supertypesOf(g *graph.ModelGraph, ns model.ElementId) []model.ElementId {
	var out []model.ElementId
	for _, relID := range relationshipChildrenAndOutgoing(g, ns) {
		rel, ok := g.GetElement(relID)
		if !ok || !genmodel.IsSubtypeOf(rel.Kind, genmodel.KindSpecialization) {
			continue
		}
		src, ok := rel.ResolvedRef(graph.PropSource)
		if !ok || src != ns {
			continue
		}
		target, ok := resolvedRelTarget(rel, "generalType", "type")
		if !ok {
			continue // unresolved supertype; nothing to inherit from yet this pass
		}
		out = append(out, target)
	}
	return out
}

// inheritedMembers walks ns's Specialization relationships (§4.5
// INHERITED), collecting each supertype's owned members. shadow holds
// names already resolved at a nearer tier (local, or a nearer
// supertype) so a name is never reported twice; visited guards against
// inheritance cycles (§7 inheritance cycle detected during resolution).
func inheritedMembers(g *graph.ModelGraph, ns model.ElementId, shadow map[string][]model.ElementId, visited map[model.ElementId]bool) map[string][]model.ElementId {
	out := make(map[string][]model.ElementId)
	if visited[ns] {
		return out
	}
	visited[ns] = true

	for _, super := range supertypesOf(g, ns) {
		redefined := redefinedNames(g, ns)

		for name, ids := range localMembers(g, super) {
			if _, present := shadow[name]; present {
				continue
			}
			if _, present := out[name]; present {
				continue
			}
			if redefined[name] {
				continue
			}
			out[name] = ids
		}

		combinedShadow := mergeShadow(shadow, out)
		for name, ids := range inheritedMembers(g, super, combinedShadow, visited) {
			if _, present := out[name]; present {
				continue
			}
			if _, present := shadow[name]; present {
				continue
			}
			out[name] = ids
		}
	}
	return out
}

// redefinedNames returns the simple names of features that ns
// redefines locally, via an outgoing Redefinition relationship whose
// source is one of ns's own features (§4.5 "Redefinitions shadow
// inherited members of the same simple name").
func redefinedNames(g *graph.ModelGraph, ns model.ElementId) map[string]bool {
	out := make(map[string]bool)
	for _, child := range g.ChildrenOf(ns) {
		for _, relID := range relationshipChildrenAndOutgoing(g, child) {
			rel, ok := g.GetElement(relID)
			if !ok || !genmodel.IsSubtypeOf(rel.Kind, genmodel.KindRedefinition) {
				continue
			}
			target, ok := resolvedRelTarget(rel, "redefinedFeature")
			if !ok {
				continue
			}
			targetElem, ok := g.GetElement(target)
			if ok && targetElem.Name != "" {
				out[targetElem.Name] = true
			}
		}
	}
	return out
}

func mergeShadow(a, b map[string][]model.ElementId) map[string][]model.ElementId {
	out := make(map[string][]model.ElementId, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// importedMembers expands every Import child of ns (§4.5 IMPORTED).
func importedMembers(g *graph.ModelGraph, ns model.ElementId) map[string][]model.ElementId {
	out := make(map[string][]model.ElementId)
	for _, child := range g.ChildrenOf(ns) {
		e, ok := g.GetElement(child)
		if !ok || e.Kind != genmodel.KindImport {
			continue
		}
		target, ok := e.ResolvedRef("importedNamespace")
		if !ok {
			continue // unresolved import target; resolved in a later fixed-point pass
		}

		recursive, _ := e.Get("isRecursive").Bool()
		memberName, hasMemberName := e.Get("memberName").String()

		if hasMemberName && memberName != "" {
			for name, ids := range localMembers(g, target) {
				if name != memberName {
					continue
				}
				out[name] = append(out[name], publicOnly(g, ids)...)
			}
			continue
		}

		for name, ids := range publicMembersOf(g, target) {
			out[name] = append(out[name], ids...)
		}
		if recursive {
			for _, childNS := range transitiveNamespaceChildren(g, target) {
				for name, ids := range publicMembersOf(g, childNS) {
					out[name] = append(out[name], ids...)
				}
			}
		}
	}
	return out
}

// transitiveNamespaceChildren returns every namespace reachable from ns
// through nested namespace membership, at any depth (§4.5/§8: "Pkg::**"
// exposes members of Pkg's namespace descendants transitively, not just
// its direct children). visited guards against an ownership cycle
// walking back into a namespace already queued.
func transitiveNamespaceChildren(g *graph.ModelGraph, ns model.ElementId) []model.ElementId {
	var out []model.ElementId
	visited := map[model.ElementId]bool{ns: true}
	queue := namespaceChildren(g, ns)
	for len(queue) > 0 {
		childNS := queue[0]
		queue = queue[1:]
		if visited[childNS] {
			continue
		}
		visited[childNS] = true
		out = append(out, childNS)
		queue = append(queue, namespaceChildren(g, childNS)...)
	}
	return out
}

// publicMembersOf returns ns's owned members filtered to public
// visibility, keyed by simple name.
func publicMembersOf(g *graph.ModelGraph, ns model.ElementId) map[string][]model.ElementId {
	out := make(map[string][]model.ElementId)
	for name, ids := range localMembers(g, ns) {
		out[name] = publicOnly(g, ids)
	}
	for name := range out {
		if len(out[name]) == 0 {
			delete(out, name)
		}
	}
	return out
}

func publicOnly(g *graph.ModelGraph, ids []model.ElementId) []model.ElementId {
	var out []model.ElementId
	for _, id := range ids {
		e, ok := g.GetElement(id)
		if !ok {
			continue
		}
		membership, ok := g.GetElement(e.OwningMembership)
		if !ok {
			continue
		}
		vis, _ := membership.Get("visibility").String()
		if vis == "" || vis == "public" {
			out = append(out, id)
		}
	}
	return out
}

// namespaceChildren returns ns's owned members that are themselves
// namespace kinds, used to expand a recursive import transitively.
func namespaceChildren(g *graph.ModelGraph, ns model.ElementId) []model.ElementId {
	var out []model.ElementId
	for _, child := range g.ChildrenOf(ns) {
		e, ok := g.GetElement(child)
		if ok && genmodel.IsNamespaceKind(e.Kind) {
			out = append(out, child)
		}
	}
	return out
}
