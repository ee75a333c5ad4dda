package resolver

import (
	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/model"
)

// Tier names which precedence level produced a match, recorded on
// Diagnostic-adjacent debug output (§4.5 Scoping precedence).
type Tier string

const (
	TierLocal     Tier = "LOCAL"
	TierInherited Tier = "INHERITED"
	TierImported  Tier = "IMPORTED"
	TierParent    Tier = "PARENT"
	TierGlobal    Tier = "GLOBAL"
)

// candidateSite names the namespace (or, for Chaining, the type) a
// lookup is performed against.
type candidateSite struct {
	ns model.ElementId
}

// lookupResult is what a single strategy invocation found.
type lookupResult struct {
	ids   []model.ElementId
	tier  Tier
	found bool
}

// scopeTable returns the cached LOCAL/INHERITED/IMPORTED table for ns,
// building it on first use within the current fixed-point pass.
func (rs *Resolver) scopeTable(ns model.ElementId) *ScopeTable {
	if st, ok := rs.tables[ns]; ok {
		return st
	}
	st := buildScopeTable(rs.g, ns)
	rs.tables[ns] = st
	return st
}

// enclosingNamespace ascends one owning-membership level from id,
// returning model.NilElementId once id is a root (§4.5 PARENT:
// "ascend one owning-membership level and repeat").
func (rs *Resolver) enclosingNamespace(id model.ElementId) model.ElementId {
	e, ok := rs.g.GetElement(id)
	if !ok || e.OwningMembership.IsNil() {
		return model.NilElementId
	}
	membership, ok := rs.g.GetElement(e.OwningMembership)
	if !ok {
		return model.NilElementId
	}
	parent, ok := membership.ResolvedRef("source")
	if !ok {
		return model.NilElementId
	}
	return parent
}

// resolveOwning implements the default 5-tier precedence chain: LOCAL,
// INHERITED, IMPORTED at the starting namespace, then PARENT repeats
// the same three tiers at each ancestor namespace in turn, and GLOBAL
// is tried only once every ancestor is exhausted (§4.5 Scoping
// precedence).
func resolveOwning(rs *Resolver, site candidateSite, name string) lookupResult {
	cur := site.ns
	visited := make(map[model.ElementId]bool)
	for !cur.IsNil() {
		if visited[cur] {
			break // ownership cycle; reported separately by graph validation
		}
		visited[cur] = true

		if res := lookupAtNamespace(rs, cur, name); res.found {
			return res
		}
		cur = rs.enclosingNamespace(cur)
	}
	return resolveGlobal(rs, site, name)
}

// lookupAtNamespace checks LOCAL, then INHERITED, then IMPORTED at a
// single namespace, returning the first non-empty tier.
func lookupAtNamespace(rs *Resolver, ns model.ElementId, name string) lookupResult {
	st := rs.scopeTable(ns)
	if ids := st.local[name]; len(ids) > 0 {
		return lookupResult{ids: ids, tier: TierLocal, found: true}
	}
	if ids := st.inherited[name]; len(ids) > 0 {
		return lookupResult{ids: ids, tier: TierInherited, found: true}
	}
	if ids := st.imported[name]; len(ids) > 0 {
		seen := make(map[model.ElementId]bool, len(ids))
		var distinct []model.ElementId
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				distinct = append(distinct, id)
			}
		}
		return lookupResult{ids: distinct, tier: TierImported, found: true}
	}
	return lookupResult{}
}

// resolveNonExpression behaves like resolveOwning but does not treat an
// expression-kind namespace as a place to search: it is skipped over
// while ascending so a name inside an expression body cannot bind to a
// sibling of the expression itself (§4.5 Scoping variants).
func resolveNonExpression(rs *Resolver, site candidateSite, name string) lookupResult {
	cur := site.ns
	visited := make(map[model.ElementId]bool)
	for !cur.IsNil() {
		if visited[cur] {
			break
		}
		visited[cur] = true

		if elem, ok := rs.g.GetElement(cur); !ok || !genmodel.IsSubtypeOf(elem.Kind, genmodel.KindExpression) {
			if res := lookupAtNamespace(rs, cur, name); res.found {
				return res
			}
		}
		cur = rs.enclosingNamespace(cur)
	}
	return resolveGlobal(rs, site, name)
}

// resolveRelative checks only LOCAL/INHERITED/IMPORTED of the given
// namespace: used for the second and later segments of a qualified
// name, which must not escape the namespace the preceding segment
// resolved to (§4.5 "subsequent segments via LOCAL").
func resolveRelative(rs *Resolver, site candidateSite, name string) lookupResult {
	return lookupAtNamespace(rs, site.ns, name)
}

// resolveChaining resolves a feature-chain step against the type
// (site.ns) the preceding step resolved to: local and inherited
// features only, no imports, no ascension (§4.5 Scoping variants).
func resolveChaining(rs *Resolver, site candidateSite, name string) lookupResult {
	st := rs.scopeTable(site.ns)
	if ids := st.local[name]; len(ids) > 0 {
		return lookupResult{ids: ids, tier: TierLocal, found: true}
	}
	if ids := st.inherited[name]; len(ids) > 0 {
		return lookupResult{ids: ids, tier: TierInherited, found: true}
	}
	return lookupResult{}
}

// resolveTransition resolves a transition trigger/effect reference
// against the owning state's own features first, falling back to the
// ordinary Owning precedence chain so a name outside the state can
// still be found (§4.5 Scoping variants).
func resolveTransition(rs *Resolver, site candidateSite, name string) lookupResult {
	if res := resolveChaining(rs, site, name); res.found {
		return res
	}
	return resolveOwning(rs, site, name)
}

// resolveGlobal looks name up only among root packages and registered
// library packages and their direct owned members (so the named
// packages under each file's unnamed root, and a library package's
// members, are found), ignoring LOCAL/INHERITED/IMPORTED/PARENT
// entirely (§4.5 Scoping variants, and the terminal GLOBAL tier of
// Owning).
func resolveGlobal(rs *Resolver, _ candidateSite, name string) lookupResult {
	var ids []model.ElementId
	seen := make(map[model.ElementId]bool)

	add := func(id model.ElementId) {
		e, ok := rs.g.GetElement(id)
		if !ok || e.Name != name || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}
	for _, id := range rs.g.Roots() {
		add(id)
		for _, child := range rs.g.ChildrenOf(id) {
			add(child)
		}
	}
	for _, id := range rs.g.LibraryRoots() {
		add(id)
		for _, child := range rs.g.ChildrenOf(id) {
			add(child)
		}
	}

	if len(ids) == 0 {
		return lookupResult{}
	}
	return lookupResult{ids: ids, tier: TierGlobal, found: true}
}
