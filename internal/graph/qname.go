package graph

import (
	"github.com/sysml-go/modelcore/internal/model"
)

// QualifiedNameOf computes id's qualified name by walking the
// ownership chain (element -> owning membership -> source namespace)
// up to the nearest root, collecting declared names along the way
// (§3 QualifiedName, §9 Ownership: a two-hop lookup per level).
func (g *ModelGraph) QualifiedNameOf(id model.ElementId) ([]string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.qualifiedNameOfLocked(id)
}

func (g *ModelGraph) qualifiedNameOfLocked(id model.ElementId) ([]string, bool) {
	var segments []string
	cur := id
	seen := make(map[model.ElementId]bool)
	for {
		if seen[cur] {
			return nil, false // ownership cycle; validated separately
		}
		seen[cur] = true

		e, ok := g.elements[cur]
		if !ok {
			return nil, false
		}
		if e.Name != "" {
			segments = append([]string{e.Name}, segments...)
		}
		if e.OwningMembership.IsNil() {
			return segments, true
		}
		membership, ok := g.elements[e.OwningMembership]
		if !ok {
			return nil, false
		}
		parent, ok := membership.ResolvedRef(PropSource)
		if !ok {
			return nil, false
		}
		cur = parent
	}
}

// RegisterQualifiedName indexes a "::"-joined path (already joined with
// value.QualifiedName semantics upstream) to id, for resolve_qname's
// first-segment lookup among named root paths (§3 ModelGraph).
func (g *ModelGraph) RegisterQualifiedName(qualified string, id model.ElementId) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.qnameIndex[qualified] = id
}

// LookupQualifiedName returns the id registered for qualified, ok is
// false if absent.
func (g *ModelGraph) LookupQualifiedName(qualified string) (model.ElementId, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.qnameIndex[qualified]
	return id, ok
}
